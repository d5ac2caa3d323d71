package routes

import (
	"tablebook/controllers"

	"github.com/gin-gonic/gin"
)

func OrderRoutes(incomingRoutes *gin.Engine) {
	incomingRoutes.GET("/api/orders", controllers.GetOrders())
	incomingRoutes.POST("/api/orders", controllers.CreateOrder())
}
