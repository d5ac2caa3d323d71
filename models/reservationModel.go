package models

import (
	"fmt"
	"time"
)

type ReservationStatus string

const (
	ReservationOpen      ReservationStatus = "Open"
	ReservationSeated    ReservationStatus = "Seated"
	ReservationCompleted ReservationStatus = "Completed"
	ReservationCancelled ReservationStatus = "Cancelled"
)

// ParseReservationStatus maps the wire spelling of a status to its value.
func ParseReservationStatus(value string) (ReservationStatus, bool) {
	switch ReservationStatus(value) {
	case ReservationOpen, ReservationSeated, ReservationCompleted, ReservationCancelled:
		return ReservationStatus(value), true
	}
	return "", false
}

// Reservation is one booking on the sheet. TableID is a weak reference: a
// lookup key into the sheet's table list, nil when unassigned.
type Reservation struct {
	ID           string
	Customer     Customer
	PartySize    int
	StartTime    time.Time
	Duration     time.Duration
	Status       ReservationStatus
	TableID      *int
	Notes        string
	LastModified time.Time
}

func newReservation(id string, customer Customer, partySize int, start time.Time, duration time.Duration, notes string, now time.Time) (*Reservation, error) {
	if partySize <= 0 {
		return nil, fmt.Errorf("%w: party size must be positive", ErrInvalidInput)
	}
	if duration <= 0 {
		return nil, fmt.Errorf("%w: duration must be positive", ErrInvalidInput)
	}
	return &Reservation{
		ID:           id,
		Customer:     customer,
		PartySize:    partySize,
		StartTime:    start,
		Duration:     duration,
		Status:       ReservationOpen,
		Notes:        notes,
		LastModified: now,
	}, nil
}

func (r *Reservation) EndTime() time.Time {
	return r.StartTime.Add(r.Duration)
}

// Overlaps reports whether the reservation's half-open window intersects
// [start, start+duration). Windows that only touch at an endpoint do not
// overlap, so back-to-back bookings on one table are fine.
func (r *Reservation) Overlaps(start time.Time, duration time.Duration) bool {
	end := start.Add(duration)
	return r.StartTime.Before(end) && start.Before(r.EndTime())
}

func (r *Reservation) terminal() bool {
	return r.Status == ReservationCompleted || r.Status == ReservationCancelled
}

// Transition moves the reservation through its lifecycle. Completed and
// Cancelled are terminal. Setting the current status again is a no-op.
func (r *Reservation) Transition(to ReservationStatus, now time.Time) error {
	if to == r.Status {
		return nil
	}
	if r.terminal() {
		return fmt.Errorf("%w: reservation %s is %s", ErrInvalidTransition, r.ID, r.Status)
	}
	switch to {
	case ReservationSeated:
		if r.Status != ReservationOpen {
			return fmt.Errorf("%w: cannot seat a %s reservation", ErrInvalidTransition, r.Status)
		}
	case ReservationCompleted:
		if r.Status != ReservationSeated {
			return fmt.Errorf("%w: cannot complete a %s reservation", ErrInvalidTransition, r.Status)
		}
	case ReservationCancelled:
		// allowed from any non-terminal state
	case ReservationOpen:
		return fmt.Errorf("%w: cannot reopen a %s reservation", ErrInvalidTransition, r.Status)
	default:
		return fmt.Errorf("%w: unknown status %q", ErrInvalidInput, to)
	}
	r.Status = to
	if to == ReservationCancelled {
		r.TableID = nil
	}
	r.LastModified = now
	return nil
}

func (r *Reservation) MarkSeated(now time.Time) error {
	return r.Transition(ReservationSeated, now)
}

func (r *Reservation) MarkCompleted(now time.Time) error {
	return r.Transition(ReservationCompleted, now)
}

func (r *Reservation) Cancel(now time.Time) error {
	return r.Transition(ReservationCancelled, now)
}

func (r *Reservation) assignTable(tableID int, now time.Time) {
	id := tableID
	r.TableID = &id
	r.LastModified = now
}

func (r *Reservation) clearTable(now time.Time) {
	r.TableID = nil
	r.LastModified = now
}
