package models

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ReportEntry pairs a reservation id with its status at report time.
type ReportEntry struct {
	ReservationID string            `json:"reservationId"`
	Status        ReservationStatus `json:"status"`
}

// Report is a point-in-time projection over the booking sheet. It holds
// copies only and never updates after construction.
type Report struct {
	Date              string          `json:"date"`
	TotalReservations int             `json:"totalReservations"`
	SeatedGuests      int             `json:"seatedGuests"`
	Revenue           decimal.Decimal `json:"revenue"`
	Breakdown         []ReportEntry   `json:"breakdown"`
}

// GenerateReport aggregates the sheet: every reservation counts toward the
// total, Seated and Completed party sizes count as seated guests, and revenue
// sums every order regardless of its reservation's state.
func (s *BookingSheet) GenerateReport() *Report {
	report := &Report{
		Date:    s.date,
		Revenue: decimal.Zero,
	}
	for _, reservation := range s.reservations {
		if reservation.Status == ReservationSeated || reservation.Status == ReservationCompleted {
			report.SeatedGuests += reservation.PartySize
		}
		report.Breakdown = append(report.Breakdown, ReportEntry{
			ReservationID: reservation.ID,
			Status:        reservation.Status,
		})
	}
	report.TotalReservations = len(s.reservations)
	for _, order := range s.orders {
		report.Revenue = report.Revenue.Add(order.Total())
	}
	return report
}

// Summary renders the report for the console.
func (r *Report) Summary() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Report for %s\n", r.Date)
	fmt.Fprintf(&b, "Total reservations: %d\n", r.TotalReservations)
	fmt.Fprintf(&b, "Guests seated: %d\n", r.SeatedGuests)
	fmt.Fprintf(&b, "Revenue: $%s\n", r.Revenue.StringFixed(2))
	b.WriteString("Reservation breakdown:\n")
	for _, entry := range r.Breakdown {
		fmt.Fprintf(&b, "  - %s: %s\n", entry.ReservationID, entry.Status)
	}
	return b.String()
}
