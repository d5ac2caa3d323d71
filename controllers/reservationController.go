package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"tablebook/helpers"
	"tablebook/models"
)

type reservationForm struct {
	Name            string `form:"name" validate:"required"`
	Phone           string `form:"phone" validate:"required"`
	PartySize       int    `form:"partySize" validate:"required,min=1"`
	Time            string `form:"time" validate:"required"`
	DurationMinutes int    `form:"durationMinutes" validate:"omitempty,min=1"`
	Email           string `form:"email"`
	Preference      string `form:"preference"`
	Notes           string `form:"notes"`
}

type walkInForm struct {
	Name      string `form:"name" validate:"required"`
	Phone     string `form:"phone" validate:"required"`
	PartySize int    `form:"partySize" validate:"required,min=1"`
	Notes     string `form:"notes"`
}

func GetReservations() gin.HandlerFunc {
	return func(c *gin.Context) {
		sheetMu.Lock()
		defer sheetMu.Unlock()
		restaurant.Sheet.UpdateTableStatuses(now())
		views := make([]gin.H, 0, len(restaurant.Sheet.Reservations()))
		for _, r := range restaurant.Sheet.Reservations() {
			views = append(views, reservationView(r))
		}
		c.JSON(http.StatusOK, views)
	}
}

func GetReservation() gin.HandlerFunc {
	return func(c *gin.Context) {
		sheetMu.Lock()
		defer sheetMu.Unlock()
		restaurant.Sheet.UpdateTableStatuses(now())
		reservation := restaurant.Sheet.ReservationByID(c.Param("reservation_id"))
		if reservation == nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "reservation not found"})
			return
		}
		c.JSON(http.StatusOK, reservationView(reservation))
	}
}

func CreateReservation() gin.HandlerFunc {
	return func(c *gin.Context) {
		var form reservationForm
		if err := c.ShouldBind(&form); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if err := validate.Struct(form); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		start, err := helpers.ParseDateTime(form.Time)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid time format, want YYYY-MM-DD HH:MM"})
			return
		}
		customer, err := models.NewCustomer(form.Name, form.Phone, form.Email, form.Preference)
		if err != nil {
			respondError(c, err)
			return
		}
		duration := models.DefaultSeatingDuration
		if form.DurationMinutes > 0 {
			duration = time.Duration(form.DurationMinutes) * time.Minute
		}

		sheetMu.Lock()
		restaurant.Sheet.UpdateTableStatuses(now())
		reservation, err := restaurant.Sheet.CreateReservation(customer, form.PartySize, start, duration, form.Notes, now())
		if err != nil {
			sheetMu.Unlock()
			respondError(c, err)
			return
		}
		snapshot, tables := snapshotLocked()
		id := reservation.ID
		sheetMu.Unlock()

		commit(snapshot, tables)
		c.JSON(http.StatusCreated, gin.H{"success": true, "id": id})
	}
}

func CreateWalkIn() gin.HandlerFunc {
	return func(c *gin.Context) {
		var form walkInForm
		if err := c.ShouldBind(&form); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if err := validate.Struct(form); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		customer, err := models.NewCustomer(form.Name, form.Phone, "", "")
		if err != nil {
			respondError(c, err)
			return
		}

		sheetMu.Lock()
		restaurant.Sheet.UpdateTableStatuses(now())
		reservation, err := restaurant.Sheet.RecordWalkIn(customer, form.PartySize, form.Notes, now())
		if err != nil {
			sheetMu.Unlock()
			respondError(c, err)
			return
		}
		snapshot, tables := snapshotLocked()
		id := reservation.ID
		sheetMu.Unlock()

		commit(snapshot, tables)
		c.JSON(http.StatusCreated, gin.H{"success": true, "id": id})
	}
}

func UpdateReservation() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("reservation_id")
		var form reservationForm
		if err := c.ShouldBind(&form); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if err := validate.Struct(form); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		start, err := helpers.ParseDateTime(form.Time)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid time format, want YYYY-MM-DD HH:MM"})
			return
		}
		customer, err := models.NewCustomer(form.Name, form.Phone, form.Email, form.Preference)
		if err != nil {
			respondError(c, err)
			return
		}
		duration := models.DefaultSeatingDuration
		if form.DurationMinutes > 0 {
			duration = time.Duration(form.DurationMinutes) * time.Minute
		}

		// A tableId field present in the form is an explicit table choice; an
		// empty value means "explicitly unassigned". An absent field leaves
		// the assignment to the sheet.
		var requestedTable *int
		tableField, tableSpecified := c.GetPostForm("tableId")
		if tableSpecified && tableField != "" {
			parsed, err := strconv.Atoi(tableField)
			if err != nil || parsed <= 0 {
				c.JSON(http.StatusBadRequest, gin.H{"error": "invalid tableId"})
				return
			}
			requestedTable = &parsed
		}

		sheetMu.Lock()
		restaurant.Sheet.UpdateTableStatuses(now())
		err = restaurant.Sheet.UpdateReservationDetails(id, customer, form.PartySize, start, duration, form.Notes, requestedTable, tableSpecified, now())
		if err != nil {
			sheetMu.Unlock()
			respondError(c, err)
			return
		}
		restaurant.Sheet.UpdateTableStatuses(now())
		view := reservationView(restaurant.Sheet.ReservationByID(id))
		snapshot, tables := snapshotLocked()
		sheetMu.Unlock()

		commit(snapshot, tables)
		c.JSON(http.StatusOK, view)
	}
}

func CancelReservation() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("reservation_id")

		sheetMu.Lock()
		err := restaurant.Sheet.CancelReservation(id, now())
		if err != nil {
			sheetMu.Unlock()
			respondError(c, err)
			return
		}
		restaurant.Sheet.UpdateTableStatuses(now())
		snapshot, tables := snapshotLocked()
		sheetMu.Unlock()

		commit(snapshot, tables)
		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}

func UpdateReservationStatus() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("reservation_id")
		statusField, ok := c.GetPostForm("status")
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "missing status"})
			return
		}
		status, ok := models.ParseReservationStatus(statusField)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid status"})
			return
		}

		sheetMu.Lock()
		reservation := restaurant.Sheet.ReservationByID(id)
		if reservation == nil {
			sheetMu.Unlock()
			c.JSON(http.StatusNotFound, gin.H{"error": "reservation not found"})
			return
		}
		if err := reservation.Transition(status, now()); err != nil {
			sheetMu.Unlock()
			respondError(c, err)
			return
		}
		restaurant.Sheet.UpdateTableStatuses(now())
		snapshot, tables := snapshotLocked()
		sheetMu.Unlock()

		commit(snapshot, tables)
		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}

// UpdateReservationTable handles mode=auto, mode=clear and explicit tableId
// assignment.
func UpdateReservationTable() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("reservation_id")
		mode := c.PostForm("mode")

		var tableID int
		if mode != "auto" && mode != "clear" {
			tableField, ok := c.GetPostForm("tableId")
			if !ok || tableField == "" {
				c.JSON(http.StatusBadRequest, gin.H{"error": "missing tableId"})
				return
			}
			parsed, err := strconv.Atoi(tableField)
			if err != nil || parsed <= 0 {
				c.JSON(http.StatusBadRequest, gin.H{"error": "invalid tableId"})
				return
			}
			tableID = parsed
		}

		sheetMu.Lock()
		var err error
		switch mode {
		case "auto":
			err = restaurant.Sheet.AutoAssignTable(id, now())
		case "clear":
			err = restaurant.Sheet.ClearTableAssignment(id, now())
		default:
			err = restaurant.Sheet.AssignTable(id, tableID, now())
		}
		if err != nil {
			sheetMu.Unlock()
			respondError(c, err)
			return
		}
		restaurant.Sheet.UpdateTableStatuses(now())
		view := reservationView(restaurant.Sheet.ReservationByID(id))
		snapshot, tables := snapshotLocked()
		sheetMu.Unlock()

		commit(snapshot, tables)
		c.JSON(http.StatusOK, view)
	}
}
