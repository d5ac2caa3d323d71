package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetTables returns the floor view: every table with its derived status and
// the active reservations seated or booked on it.
func GetTables() gin.HandlerFunc {
	return func(c *gin.Context) {
		sheetMu.Lock()
		defer sheetMu.Unlock()
		restaurant.Sheet.UpdateTableStatuses(now())
		c.JSON(http.StatusOK, tableViewsLocked())
	}
}
