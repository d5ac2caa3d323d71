package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func GetStaff() gin.HandlerFunc {
	return func(c *gin.Context) {
		views := make([]gin.H, 0, len(restaurant.Staff()))
		for _, member := range restaurant.Staff() {
			views = append(views, gin.H{
				"name":    member.Name,
				"role":    member.Role.Name,
				"contact": member.Contact,
			})
		}
		c.JSON(http.StatusOK, views)
	}
}
