package routes

import (
	"tablebook/controllers"

	"github.com/gin-gonic/gin"
)

func ReportRoutes(incomingRoutes *gin.Engine) {
	incomingRoutes.GET("/api/report", controllers.GetReport())
}
