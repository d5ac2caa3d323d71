package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"tablebook/helpers"
	"tablebook/models"
	"tablebook/storage"
)

// newTestRouter wires the API against a seeded restaurant, a temp data file
// and a clock frozen at 09:00 on the sheet date.
func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	sheet := models.NewBookingSheet("2024-05-20")
	rest := models.NewRestaurant("The Dockside Grill", "12 Harbour Street", sheet)
	helpers.SeedRestaurant(rest)
	Setup(Env{
		Restaurant: rest,
		Store:      storage.NewStore(filepath.Join(t.TempDir(), "booking_data.txt")),
		Now:        func() time.Time { return time.Date(2024, 5, 20, 9, 0, 0, 0, time.Local) },
	})

	router := gin.New()
	router.GET("/api/reservations", GetReservations())
	router.GET("/api/reservations/:reservation_id", GetReservation())
	router.POST("/api/reservations", CreateReservation())
	router.PUT("/api/reservations/:reservation_id", UpdateReservation())
	router.DELETE("/api/reservations/:reservation_id", CancelReservation())
	router.POST("/api/reservations/:reservation_id/status", UpdateReservationStatus())
	router.POST("/api/reservations/:reservation_id/table", UpdateReservationTable())
	router.POST("/api/walkins", CreateWalkIn())
	router.GET("/api/tables", GetTables())
	router.GET("/api/orders", GetOrders())
	router.POST("/api/orders", CreateOrder())
	router.GET("/api/menu", GetMenu())
	router.GET("/api/report", GetReport())
	return router
}

func doForm(t *testing.T, router *gin.Engine, method, path string, form url.Values) *httptest.ResponseRecorder {
	t.Helper()
	var body *strings.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	} else {
		body = strings.NewReader("")
	}
	req := httptest.NewRequest(method, path, body)
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal response %q: %v", w.Body.String(), err)
	}
	return body
}

func reservationForm18h(partySize string) url.Values {
	return url.Values{
		"name":      {"Dana Reyes"},
		"phone":     {"555-0101"},
		"partySize": {partySize},
		"time":      {"2024-05-20 18:00"},
	}
}

func createReservation(t *testing.T, router *gin.Engine, form url.Values) string {
	t.Helper()
	w := doForm(t, router, http.MethodPost, "/api/reservations", form)
	if w.Code != http.StatusCreated {
		t.Fatalf("POST /api/reservations = %d, body %s", w.Code, w.Body.String())
	}
	id, _ := decodeBody(t, w)["id"].(string)
	if id == "" {
		t.Fatalf("POST /api/reservations returned no id: %s", w.Body.String())
	}
	return id
}

func TestCreateReservationEndpoint(t *testing.T) {
	router := newTestRouter(t)

	id := createReservation(t, router, reservationForm18h("2"))
	if id != "R1000" {
		t.Errorf("first reservation id = %s, want R1000", id)
	}

	w := doForm(t, router, http.MethodGet, "/api/reservations/"+id, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("GET /api/reservations/%s = %d", id, w.Code)
	}
	view := decodeBody(t, w)
	if view["status"] != "Open" {
		t.Errorf("status = %v, want Open", view["status"])
	}
	if view["tableId"] != float64(1) {
		t.Errorf("tableId = %v, want 1", view["tableId"])
	}
	if view["time"] != "2024-05-20 18:00" {
		t.Errorf("time = %v, want 2024-05-20 18:00", view["time"])
	}
	if view["durationMinutes"] != float64(120) {
		t.Errorf("durationMinutes = %v, want 120", view["durationMinutes"])
	}
}

func TestCreateReservationValidation(t *testing.T) {
	router := newTestRouter(t)

	tests := []struct {
		name string
		form url.Values
	}{
		{name: "missingName", form: url.Values{"phone": {"555-0101"}, "partySize": {"2"}, "time": {"2024-05-20 18:00"}}},
		{name: "missingPhone", form: url.Values{"name": {"Dana"}, "partySize": {"2"}, "time": {"2024-05-20 18:00"}}},
		{name: "zeroPartySize", form: url.Values{"name": {"Dana"}, "phone": {"555-0101"}, "partySize": {"0"}, "time": {"2024-05-20 18:00"}}},
		{name: "badTime", form: url.Values{"name": {"Dana"}, "phone": {"555-0101"}, "partySize": {"2"}, "time": {"tonight"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if w := doForm(t, router, http.MethodPost, "/api/reservations", tt.form); w.Code != http.StatusBadRequest {
				t.Errorf("POST /api/reservations = %d, want 400", w.Code)
			}
		})
	}
}

func TestGetReservationNotFound(t *testing.T) {
	router := newTestRouter(t)
	if w := doForm(t, router, http.MethodGet, "/api/reservations/R9999", nil); w.Code != http.StatusNotFound {
		t.Errorf("GET unknown reservation = %d, want 404", w.Code)
	}
}

func TestUpdateReservationTableConflict(t *testing.T) {
	router := newTestRouter(t)

	first := createReservation(t, router, reservationForm18h("2"))
	second := createReservation(t, router, reservationForm18h("2"))

	// move the second booking onto the first one's table for the same window
	form := reservationForm18h("2")
	form.Set("tableId", "1")
	w := doForm(t, router, http.MethodPut, "/api/reservations/"+second, form)
	if w.Code != http.StatusConflict {
		t.Fatalf("PUT with occupied table = %d, want 409; body %s", w.Code, w.Body.String())
	}

	// the rejected update must not have moved it
	view := decodeBody(t, doForm(t, router, http.MethodGet, "/api/reservations/"+second, nil))
	if view["tableId"] != float64(2) {
		t.Errorf("tableId after rejected update = %v, want 2", view["tableId"])
	}
	_ = first
}

func TestUpdateReservationMovesTables(t *testing.T) {
	router := newTestRouter(t)
	id := createReservation(t, router, reservationForm18h("2"))

	form := reservationForm18h("6")
	w := doForm(t, router, http.MethodPut, "/api/reservations/"+id, form)
	if w.Code != http.StatusOK {
		t.Fatalf("PUT /api/reservations/%s = %d, body %s", id, w.Code, w.Body.String())
	}
	view := decodeBody(t, w)
	if view["tableId"] != float64(5) {
		t.Errorf("tableId = %v, want 5 (the six-top)", view["tableId"])
	}
	if view["partySize"] != float64(6) {
		t.Errorf("partySize = %v, want 6", view["partySize"])
	}
}

func TestCancelReservationEndpoint(t *testing.T) {
	router := newTestRouter(t)
	id := createReservation(t, router, reservationForm18h("2"))

	if w := doForm(t, router, http.MethodDelete, "/api/reservations/"+id, nil); w.Code != http.StatusOK {
		t.Fatalf("DELETE /api/reservations/%s = %d", id, w.Code)
	}

	view := decodeBody(t, doForm(t, router, http.MethodGet, "/api/reservations/"+id, nil))
	if view["status"] != "Cancelled" {
		t.Errorf("status = %v, want Cancelled", view["status"])
	}
	if view["tableId"] != nil {
		t.Errorf("tableId = %v, want null", view["tableId"])
	}

	if w := doForm(t, router, http.MethodDelete, "/api/reservations/R9999", nil); w.Code != http.StatusNotFound {
		t.Errorf("DELETE unknown reservation = %d, want 404", w.Code)
	}
}

func TestReservationStatusEndpoint(t *testing.T) {
	router := newTestRouter(t)
	id := createReservation(t, router, reservationForm18h("2"))

	seat := url.Values{"status": {"Seated"}}
	if w := doForm(t, router, http.MethodPost, "/api/reservations/"+id+"/status", seat); w.Code != http.StatusOK {
		t.Fatalf("POST status Seated = %d", w.Code)
	}

	complete := url.Values{"status": {"Completed"}}
	if w := doForm(t, router, http.MethodPost, "/api/reservations/"+id+"/status", complete); w.Code != http.StatusOK {
		t.Fatalf("POST status Completed = %d", w.Code)
	}

	// terminal now: seating again is a conflict
	if w := doForm(t, router, http.MethodPost, "/api/reservations/"+id+"/status", seat); w.Code != http.StatusConflict {
		t.Errorf("POST status on completed reservation = %d, want 409", w.Code)
	}

	bad := url.Values{"status": {"Eating"}}
	if w := doForm(t, router, http.MethodPost, "/api/reservations/"+id+"/status", bad); w.Code != http.StatusBadRequest {
		t.Errorf("POST unknown status = %d, want 400", w.Code)
	}
}

func TestReservationTableModes(t *testing.T) {
	router := newTestRouter(t)
	id := createReservation(t, router, reservationForm18h("2"))

	clear := url.Values{"mode": {"clear"}}
	w := doForm(t, router, http.MethodPost, "/api/reservations/"+id+"/table", clear)
	if w.Code != http.StatusOK {
		t.Fatalf("POST table mode=clear = %d", w.Code)
	}
	if view := decodeBody(t, w); view["tableId"] != nil {
		t.Errorf("tableId after clear = %v, want null", view["tableId"])
	}

	auto := url.Values{"mode": {"auto"}}
	w = doForm(t, router, http.MethodPost, "/api/reservations/"+id+"/table", auto)
	if w.Code != http.StatusOK {
		t.Fatalf("POST table mode=auto = %d", w.Code)
	}
	if view := decodeBody(t, w); view["tableId"] != float64(1) {
		t.Errorf("tableId after auto = %v, want 1", view["tableId"])
	}

	explicit := url.Values{"tableId": {"5"}}
	w = doForm(t, router, http.MethodPost, "/api/reservations/"+id+"/table", explicit)
	if w.Code != http.StatusOK {
		t.Fatalf("POST table tableId=5 = %d", w.Code)
	}
	if view := decodeBody(t, w); view["tableId"] != float64(5) {
		t.Errorf("tableId after explicit assign = %v, want 5", view["tableId"])
	}

	if w := doForm(t, router, http.MethodPost, "/api/reservations/"+id+"/table", url.Values{"tableId": {"42"}}); w.Code != http.StatusNotFound {
		t.Errorf("POST unknown table = %d, want 404", w.Code)
	}
}

func TestWalkInEndpoint(t *testing.T) {
	router := newTestRouter(t)

	form := url.Values{"name": {"Sam"}, "phone": {"555-0102"}, "partySize": {"4"}}
	w := doForm(t, router, http.MethodPost, "/api/walkins", form)
	if w.Code != http.StatusCreated {
		t.Fatalf("POST /api/walkins = %d, body %s", w.Code, w.Body.String())
	}
	id, _ := decodeBody(t, w)["id"].(string)

	view := decodeBody(t, doForm(t, router, http.MethodGet, "/api/reservations/"+id, nil))
	if view["status"] != "Seated" {
		t.Errorf("walk-in status = %v, want Seated", view["status"])
	}
	if view["tableId"] != float64(3) {
		t.Errorf("walk-in tableId = %v, want 3 (first four-top)", view["tableId"])
	}
}

func TestCreateOrderEndpoint(t *testing.T) {
	router := newTestRouter(t)
	id := createReservation(t, router, reservationForm18h("2"))

	form := url.Values{
		"reservationId": {id},
		"items":         {"Seared Salmon|2", "Fresh Lemonade|1"},
	}
	w := doForm(t, router, http.MethodPost, "/api/orders", form)
	if w.Code != http.StatusCreated {
		t.Fatalf("POST /api/orders = %d, body %s", w.Code, w.Body.String())
	}
	body := decodeBody(t, w)
	if body["id"] != "O1" {
		t.Errorf("order id = %v, want O1", body["id"])
	}
	if body["total"] != "53.50" {
		t.Errorf("total = %v, want 53.50", body["total"])
	}
}

func TestCreateOrderRejectsBadInput(t *testing.T) {
	router := newTestRouter(t)
	id := createReservation(t, router, reservationForm18h("2"))

	tests := []struct {
		name string
		form url.Values
		want int
	}{
		{name: "missingReservation", form: url.Values{"items": {"Tiramisu|1"}}, want: http.StatusBadRequest},
		{name: "unknownReservation", form: url.Values{"reservationId": {"R9999"}, "items": {"Tiramisu|1"}}, want: http.StatusNotFound},
		{name: "unknownItem", form: url.Values{"reservationId": {id}, "items": {"Lobster|1"}}, want: http.StatusBadRequest},
		{name: "badQuantity", form: url.Values{"reservationId": {id}, "items": {"Tiramisu|zero"}}, want: http.StatusBadRequest},
		{name: "noItems", form: url.Values{"reservationId": {id}}, want: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if w := doForm(t, router, http.MethodPost, "/api/orders", tt.form); w.Code != tt.want {
				t.Errorf("POST /api/orders = %d, want %d", w.Code, tt.want)
			}
		})
	}
}

func TestTablesEndpointDerivesStatus(t *testing.T) {
	router := newTestRouter(t)

	walkIn := url.Values{"name": {"Sam"}, "phone": {"555-0102"}, "partySize": {"2"}}
	if w := doForm(t, router, http.MethodPost, "/api/walkins", walkIn); w.Code != http.StatusCreated {
		t.Fatalf("POST /api/walkins = %d", w.Code)
	}

	w := doForm(t, router, http.MethodGet, "/api/tables", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("GET /api/tables = %d", w.Code)
	}
	var tables []map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &tables); err != nil {
		t.Fatalf("unmarshal tables: %v", err)
	}
	if len(tables) != 5 {
		t.Fatalf("len(tables) = %d, want 5", len(tables))
	}
	if tables[0]["status"] != "Occupied" {
		t.Errorf("table 1 status = %v, want Occupied", tables[0]["status"])
	}
	if tables[1]["status"] != "Free" {
		t.Errorf("table 2 status = %v, want Free", tables[1]["status"])
	}
	seated, _ := tables[0]["reservations"].([]interface{})
	if len(seated) != 1 {
		t.Errorf("table 1 reservations = %v, want one entry", tables[0]["reservations"])
	}
}

func TestReportEndpoint(t *testing.T) {
	router := newTestRouter(t)
	id := createReservation(t, router, reservationForm18h("2"))

	order := url.Values{"reservationId": {id}, "items": {"Tiramisu|2"}}
	if w := doForm(t, router, http.MethodPost, "/api/orders", order); w.Code != http.StatusCreated {
		t.Fatalf("POST /api/orders = %d", w.Code)
	}

	w := doForm(t, router, http.MethodGet, "/api/report", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("GET /api/report = %d", w.Code)
	}
	report := decodeBody(t, w)
	if report["totalReservations"] != float64(1) {
		t.Errorf("totalReservations = %v, want 1", report["totalReservations"])
	}
	if report["revenue"] != "15.00" {
		t.Errorf("revenue = %v, want 15.00", report["revenue"])
	}
}

func TestMenuEndpoint(t *testing.T) {
	router := newTestRouter(t)
	w := doForm(t, router, http.MethodGet, "/api/menu", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("GET /api/menu = %d", w.Code)
	}
	var menu []map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &menu); err != nil {
		t.Fatalf("unmarshal menu: %v", err)
	}
	if len(menu) != 5 {
		t.Errorf("len(menu) = %d, want 5", len(menu))
	}
}
