package controllers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"tablebook/models"
)

func GetOrders() gin.HandlerFunc {
	return func(c *gin.Context) {
		sheetMu.Lock()
		defer sheetMu.Unlock()
		views := make([]gin.H, 0, len(restaurant.Sheet.Orders()))
		for _, order := range restaurant.Sheet.Orders() {
			views = append(views, orderView(order))
		}
		c.JSON(http.StatusOK, views)
	}
}

// CreateOrder records an order against a reservation. Items arrive as
// repeated "name|quantity" form fields and every one must be on the menu.
func CreateOrder() gin.HandlerFunc {
	return func(c *gin.Context) {
		reservationID, ok := c.GetPostForm("reservationId")
		if !ok || reservationID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "missing reservationId"})
			return
		}
		rawItems := c.PostFormArray("items")
		if len(rawItems) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "no items supplied"})
			return
		}

		type parsedItem struct {
			item     models.MenuItem
			quantity int
		}
		items := make([]parsedItem, 0, len(rawItems))
		for _, entry := range rawItems {
			name, quantityField, found := strings.Cut(entry, "|")
			if !found {
				c.JSON(http.StatusBadRequest, gin.H{"error": "invalid item format, want name|quantity"})
				return
			}
			quantity, err := strconv.Atoi(quantityField)
			if err != nil || quantity <= 0 {
				c.JSON(http.StatusBadRequest, gin.H{"error": "invalid quantity"})
				return
			}
			item, ok := restaurant.FindMenuItem(name)
			if !ok {
				c.JSON(http.StatusBadRequest, gin.H{"error": "unknown menu item: " + name})
				return
			}
			items = append(items, parsedItem{item: item, quantity: quantity})
		}

		sheetMu.Lock()
		if restaurant.Sheet.ReservationByID(reservationID) == nil {
			sheetMu.Unlock()
			c.JSON(http.StatusNotFound, gin.H{"error": "reservation not found"})
			return
		}
		order := restaurant.Sheet.RecordOrder(reservationID)
		for _, entry := range items {
			if err := order.AddItem(entry.item, entry.quantity); err != nil {
				sheetMu.Unlock()
				respondError(c, err)
				return
			}
		}
		total := order.Total()
		id := order.ID
		snapshot, tables := snapshotLocked()
		sheetMu.Unlock()

		commit(snapshot, tables)
		c.JSON(http.StatusCreated, gin.H{"success": true, "id": id, "total": total})
	}
}
