package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func GetReport() gin.HandlerFunc {
	return func(c *gin.Context) {
		sheetMu.Lock()
		defer sheetMu.Unlock()
		restaurant.Sheet.UpdateTableStatuses(now())
		c.JSON(http.StatusOK, reportView(restaurant.GenerateDailyReport()))
	}
}
