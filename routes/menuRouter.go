package routes

import (
	"tablebook/controllers"

	"github.com/gin-gonic/gin"
)

func MenuRoutes(incomingRoutes *gin.Engine) {
	incomingRoutes.GET("/api/menu", controllers.GetMenu())
}
