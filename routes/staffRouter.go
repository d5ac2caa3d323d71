package routes

import (
	"tablebook/controllers"

	"github.com/gin-gonic/gin"
)

func StaffRoutes(incomingRoutes *gin.Engine) {
	incomingRoutes.GET("/api/staff", controllers.GetStaff())
}
