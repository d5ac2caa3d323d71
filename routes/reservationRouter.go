package routes

import (
	"tablebook/controllers"

	"github.com/gin-gonic/gin"
)

func ReservationRoutes(incomingRoutes *gin.Engine) {
	incomingRoutes.GET("/api/reservations", controllers.GetReservations())
	incomingRoutes.GET("/api/reservations/:reservation_id", controllers.GetReservation())
	incomingRoutes.POST("/api/reservations", controllers.CreateReservation())
	incomingRoutes.PUT("/api/reservations/:reservation_id", controllers.UpdateReservation())
	incomingRoutes.DELETE("/api/reservations/:reservation_id", controllers.CancelReservation())
	incomingRoutes.POST("/api/reservations/:reservation_id/status", controllers.UpdateReservationStatus())
	incomingRoutes.POST("/api/reservations/:reservation_id/table", controllers.UpdateReservationTable())
	incomingRoutes.POST("/api/walkins", controllers.CreateWalkIn())
}
