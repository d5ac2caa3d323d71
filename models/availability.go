package models

import "time"

// FindAvailableTables returns the ids of every table that can host a party
// for the half-open window [start, start+duration), preserving table
// insertion order. OutOfService tables and tables too small for the party are
// skipped. ignoreReservationID excludes one reservation from the overlap
// check, used when re-evaluating that reservation's own slot; pass "" to
// consider every booking.
func (s *BookingSheet) FindAvailableTables(partySize int, start time.Time, duration time.Duration, ignoreReservationID string) []int {
	var ids []int
	for _, table := range s.tables {
		if table.Status == TableOutOfService {
			continue
		}
		if table.Capacity < partySize {
			continue
		}
		if s.TableAvailable(table.ID, start, duration, ignoreReservationID) {
			ids = append(ids, table.ID)
		}
	}
	return ids
}

// FindAvailableTable returns the first candidate in table-list order. That is
// the one selection policy used everywhere: create, auto-assign and update.
func (s *BookingSheet) FindAvailableTable(partySize int, start time.Time, duration time.Duration, ignoreReservationID string) (int, bool) {
	ids := s.FindAvailableTables(partySize, start, duration, ignoreReservationID)
	if len(ids) == 0 {
		return 0, false
	}
	return ids[0], true
}

// TableAvailable reports whether a single table is free of overlapping
// bookings for the window. Cancelled reservations never block a table. Pure
// query, no side effects.
func (s *BookingSheet) TableAvailable(tableID int, start time.Time, duration time.Duration, ignoreReservationID string) bool {
	table := s.TableByID(tableID)
	if table == nil || table.Status == TableOutOfService {
		return false
	}
	for _, reservation := range s.reservations {
		if reservation.Status == ReservationCancelled || reservation.TableID == nil {
			continue
		}
		if ignoreReservationID != "" && reservation.ID == ignoreReservationID {
			continue
		}
		if *reservation.TableID != tableID {
			continue
		}
		if reservation.Overlaps(start, duration) {
			return false
		}
	}
	return true
}
