package routes

import (
	"tablebook/controllers"

	"github.com/gin-gonic/gin"
)

func TableRoutes(incomingRoutes *gin.Engine) {
	incomingRoutes.GET("/api/tables", controllers.GetTables())
}
