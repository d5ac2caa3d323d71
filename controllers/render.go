package controllers

import (
	"time"

	"github.com/gin-gonic/gin"

	"tablebook/helpers"
	"tablebook/models"
)

// View builders. These produce the wire shapes; call them with sheetMu held
// since they read the aggregate.

func reservationView(r *models.Reservation) gin.H {
	var tableID interface{}
	if r.TableID != nil {
		tableID = *r.TableID
	}
	return gin.H{
		"id":              r.ID,
		"customer":        r.Customer.Name,
		"phone":           r.Customer.Phone,
		"email":           r.Customer.Email,
		"preference":      r.Customer.Preference,
		"partySize":       r.PartySize,
		"time":            helpers.FormatDateTime(r.StartTime),
		"endTime":         helpers.FormatDateTime(r.EndTime()),
		"durationMinutes": int(r.Duration / time.Minute),
		"status":          r.Status,
		"notes":           r.Notes,
		"tableId":         tableID,
		"lastModified":    helpers.FormatDateTime(r.LastModified),
	}
}

// tableViewsLocked nests each table's active reservations and their order
// ids, the shape the floor view and the stream push both use.
func tableViewsLocked() []gin.H {
	sheet := restaurant.Sheet
	views := make([]gin.H, 0, len(sheet.Tables()))
	for _, table := range sheet.Tables() {
		reservations := make([]gin.H, 0)
		for _, r := range sheet.Reservations() {
			if r.TableID == nil || *r.TableID != table.ID {
				continue
			}
			if r.Status == models.ReservationCancelled {
				continue
			}
			orderIDs := make([]string, 0)
			for _, order := range sheet.Orders() {
				if order.ReservationID == r.ID {
					orderIDs = append(orderIDs, order.ID)
				}
			}
			reservations = append(reservations, gin.H{
				"id":        r.ID,
				"customer":  r.Customer.Name,
				"partySize": r.PartySize,
				"status":    r.Status,
				"orders":    orderIDs,
			})
		}
		views = append(views, gin.H{
			"id":           table.ID,
			"capacity":     table.Capacity,
			"location":     table.Location,
			"status":       table.Status,
			"reservations": reservations,
		})
	}
	return views
}

func orderView(o *models.Order) gin.H {
	items := make([]gin.H, 0, len(o.Items))
	for _, item := range o.Items {
		items = append(items, gin.H{
			"name":      item.Item.Name,
			"category":  item.Item.Category,
			"price":     item.Item.Price,
			"quantity":  item.Quantity,
			"lineTotal": item.LineTotal(),
		})
	}
	return gin.H{
		"id":            o.ID,
		"reservationId": o.ReservationID,
		"total":         o.Total(),
		"items":         items,
	}
}

func reportView(report *models.Report) gin.H {
	breakdown := make([]gin.H, 0, len(report.Breakdown))
	for _, entry := range report.Breakdown {
		breakdown = append(breakdown, gin.H{
			"reservationId": entry.ReservationID,
			"status":        entry.Status,
		})
	}
	return gin.H{
		"date":              report.Date,
		"totalReservations": report.TotalReservations,
		"seatedGuests":      report.SeatedGuests,
		"revenue":           report.Revenue,
		"breakdown":         breakdown,
	}
}
