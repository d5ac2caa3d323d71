package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func GetMenu() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, restaurant.Menu())
	}
}
