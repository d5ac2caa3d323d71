package models

import (
	"fmt"
	"strconv"
	"time"
)

// DefaultSeatingDuration is used for walk-ins and any caller that does not
// supply a duration.
const DefaultSeatingDuration = 120 * time.Minute

const (
	firstReservationNumber = 1000
	firstOrderNumber       = 1
)

// BookingSheet is the aggregate root for one business date. It owns the
// tables, reservations and orders plus the id counters, and it is the only
// thing that mutates them. It does no locking itself; callers hold one coarse
// lock around each operation.
type BookingSheet struct {
	date            string
	tables          []*Table
	reservations    []*Reservation
	orders          []*Order
	nextReservation int
	nextOrder       int
}

func NewBookingSheet(date string) *BookingSheet {
	return &BookingSheet{
		date:            date,
		nextReservation: firstReservationNumber,
		nextOrder:       firstOrderNumber,
	}
}

func (s *BookingSheet) Date() string { return s.date }

func (s *BookingSheet) Tables() []*Table { return s.tables }

func (s *BookingSheet) Reservations() []*Reservation { return s.reservations }

func (s *BookingSheet) Orders() []*Order { return s.orders }

// NextReservationNumber and NextOrderNumber expose the counters for the
// persistence codec.
func (s *BookingSheet) NextReservationNumber() int { return s.nextReservation }

func (s *BookingSheet) NextOrderNumber() int { return s.nextOrder }

// AddTable registers a table. Table ids are unique within the sheet.
func (s *BookingSheet) AddTable(table *Table) error {
	if table == nil {
		return fmt.Errorf("%w: table is required", ErrInvalidInput)
	}
	if s.TableByID(table.ID) != nil {
		return fmt.Errorf("%w: duplicate table id %d", ErrInvalidInput, table.ID)
	}
	s.tables = append(s.tables, table)
	return nil
}

func (s *BookingSheet) TableByID(id int) *Table {
	for _, table := range s.tables {
		if table.ID == id {
			return table
		}
	}
	return nil
}

func (s *BookingSheet) ReservationByID(id string) *Reservation {
	for _, reservation := range s.reservations {
		if reservation.ID == id {
			return reservation
		}
	}
	return nil
}

func (s *BookingSheet) OrderByID(id string) *Order {
	for _, order := range s.orders {
		if order.ID == id {
			return order
		}
	}
	return nil
}

// CreateReservation allocates a fresh id, records the reservation in Open
// state and auto-assigns the first available table if there is one. Finding
// no table is not an error; the booking just stays unassigned.
func (s *BookingSheet) CreateReservation(customer Customer, partySize int, start time.Time, duration time.Duration, notes string, now time.Time) (*Reservation, error) {
	id := "R" + strconv.Itoa(s.nextReservation)
	reservation, err := newReservation(id, customer, partySize, start, duration, notes, now)
	if err != nil {
		return nil, err
	}
	s.nextReservation++
	s.reservations = append(s.reservations, reservation)
	if tableID, ok := s.FindAvailableTable(partySize, start, duration, ""); ok {
		reservation.assignTable(tableID, now)
	}
	return reservation, nil
}

// RecordWalkIn books a party that is already at the door: the window starts
// now with the default duration and the reservation is seated immediately.
func (s *BookingSheet) RecordWalkIn(customer Customer, partySize int, notes string, now time.Time) (*Reservation, error) {
	reservation, err := s.CreateReservation(customer, partySize, now, DefaultSeatingDuration, notes, now)
	if err != nil {
		return nil, err
	}
	if err := reservation.MarkSeated(now); err != nil {
		return nil, err
	}
	return reservation, nil
}

// UpdateReservationDetails replaces every editable field of a reservation and
// re-derives the table assignment under the new window. When the caller
// specified a table (including an explicit "none") that choice is validated
// and the whole operation fails without mutating anything if it does not fit.
// Without an explicit choice the current table is kept when it still works,
// otherwise any available table is picked, otherwise the booking ends up
// unassigned.
func (s *BookingSheet) UpdateReservationDetails(id string, customer Customer, partySize int, start time.Time, duration time.Duration, notes string, requestedTable *int, tableSpecified bool, now time.Time) error {
	reservation := s.ReservationByID(id)
	if reservation == nil {
		return fmt.Errorf("%w: reservation %s", ErrNotFound, id)
	}
	if partySize <= 0 {
		return fmt.Errorf("%w: party size must be positive", ErrInvalidInput)
	}
	if duration <= 0 {
		return fmt.Errorf("%w: duration must be positive", ErrInvalidInput)
	}

	var newTable *int
	if tableSpecified {
		if requestedTable != nil {
			table := s.TableByID(*requestedTable)
			if table == nil {
				return fmt.Errorf("%w: table %d", ErrNotFound, *requestedTable)
			}
			if table.Capacity < partySize {
				return fmt.Errorf("%w: table %d seats %d", ErrTableUnavailable, table.ID, table.Capacity)
			}
			if !s.TableAvailable(table.ID, start, duration, reservation.ID) {
				return fmt.Errorf("%w: table %d is booked for that window", ErrTableUnavailable, table.ID)
			}
			newTable = requestedTable
		}
	} else {
		if current := reservation.TableID; current != nil {
			table := s.TableByID(*current)
			if table != nil && table.Capacity >= partySize && s.TableAvailable(*current, start, duration, reservation.ID) {
				newTable = current
			}
		}
		if newTable == nil {
			if candidate, ok := s.FindAvailableTable(partySize, start, duration, reservation.ID); ok {
				newTable = &candidate
			}
		}
	}

	reservation.Customer = customer
	reservation.PartySize = partySize
	reservation.StartTime = start
	reservation.Duration = duration
	reservation.Notes = notes
	if newTable != nil {
		reservation.assignTable(*newTable, now)
	} else {
		reservation.clearTable(now)
	}
	return nil
}

// CancelReservation moves the reservation to Cancelled and frees its table.
func (s *BookingSheet) CancelReservation(id string, now time.Time) error {
	reservation := s.ReservationByID(id)
	if reservation == nil {
		return fmt.Errorf("%w: reservation %s", ErrNotFound, id)
	}
	return reservation.Cancel(now)
}

// AssignTable pins a reservation to a specific table after checking capacity
// and availability for the reservation's own window.
func (s *BookingSheet) AssignTable(id string, tableID int, now time.Time) error {
	reservation := s.ReservationByID(id)
	if reservation == nil {
		return fmt.Errorf("%w: reservation %s", ErrNotFound, id)
	}
	table := s.TableByID(tableID)
	if table == nil {
		return fmt.Errorf("%w: table %d", ErrNotFound, tableID)
	}
	if table.Capacity < reservation.PartySize {
		return fmt.Errorf("%w: table %d seats %d", ErrTableUnavailable, table.ID, table.Capacity)
	}
	if !s.TableAvailable(tableID, reservation.StartTime, reservation.Duration, reservation.ID) {
		return fmt.Errorf("%w: table %d is booked for that window", ErrTableUnavailable, tableID)
	}
	reservation.assignTable(tableID, now)
	return nil
}

// AutoAssignTable picks the first available table for the reservation's
// current window.
func (s *BookingSheet) AutoAssignTable(id string, now time.Time) error {
	reservation := s.ReservationByID(id)
	if reservation == nil {
		return fmt.Errorf("%w: reservation %s", ErrNotFound, id)
	}
	tableID, ok := s.FindAvailableTable(reservation.PartySize, reservation.StartTime, reservation.Duration, reservation.ID)
	if !ok {
		return fmt.Errorf("%w: party of %d at %s", ErrNoTableAvailable, reservation.PartySize, reservation.StartTime.Format("15:04"))
	}
	reservation.assignTable(tableID, now)
	return nil
}

func (s *BookingSheet) ClearTableAssignment(id string, now time.Time) error {
	reservation := s.ReservationByID(id)
	if reservation == nil {
		return fmt.Errorf("%w: reservation %s", ErrNotFound, id)
	}
	reservation.clearTable(now)
	return nil
}

// RecordOrder opens an empty order for a reservation id. The id is not
// validated here; the HTTP layer checks it before calling.
func (s *BookingSheet) RecordOrder(reservationID string) *Order {
	order := &Order{
		ID:            "O" + strconv.Itoa(s.nextOrder),
		ReservationID: reservationID,
	}
	s.nextOrder++
	s.orders = append(s.orders, order)
	return order
}

// UpdateTableStatuses recomputes every table's derived status from the
// reservation set and the given instant. OutOfService tables are left alone.
// The computation is idempotent: running it twice without an intervening
// mutation yields identical statuses.
func (s *BookingSheet) UpdateTableStatuses(now time.Time) {
	for _, table := range s.tables {
		if table.Status != TableOutOfService {
			table.Status = TableFree
		}
	}
	for _, reservation := range s.reservations {
		if reservation.TableID == nil {
			continue
		}
		if reservation.Status == ReservationCancelled || reservation.Status == ReservationCompleted {
			continue
		}
		table := s.TableByID(*reservation.TableID)
		if table == nil || table.Status == TableOutOfService {
			continue
		}
		start := reservation.StartTime
		end := reservation.EndTime()
		if reservation.Status == ReservationSeated || (!now.Before(start) && now.Before(end)) {
			table.Status = TableOccupied
		} else if now.Before(start) {
			table.Status = TableReserved
		}
	}
}

// ReplaceState swaps in a whole new sheet state. The persistence codec calls
// this after a bulk load; counters are clamped so ids never repeat.
func (s *BookingSheet) ReplaceState(date string, tables []*Table, reservations []*Reservation, orders []*Order, nextReservation, nextOrder int) {
	s.date = date
	s.tables = tables
	s.reservations = reservations
	s.orders = orders
	if nextReservation < firstReservationNumber {
		nextReservation = firstReservationNumber
	}
	if nextOrder < firstOrderNumber {
		nextOrder = firstOrderNumber
	}
	s.nextReservation = nextReservation
	s.nextOrder = nextOrder
}
