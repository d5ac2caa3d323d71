package routes

import (
	"tablebook/controllers"

	"github.com/gin-gonic/gin"
)

func StreamRoutes(incomingRoutes *gin.Engine) {
	incomingRoutes.GET("/api/stream", controllers.StreamTables())
}
