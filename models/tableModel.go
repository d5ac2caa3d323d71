package models

import "fmt"

type TableStatus string

const (
	TableFree         TableStatus = "Free"
	TableReserved     TableStatus = "Reserved"
	TableOccupied     TableStatus = "Occupied"
	TableOutOfService TableStatus = "OutOfService"
)

// Table is a physical table on the floor. Status is derived from reservations
// by the booking sheet, except OutOfService which is a manual override the
// derivation never clears.
type Table struct {
	ID       int         `json:"id"`
	Capacity int         `json:"capacity"`
	Location string      `json:"location"`
	Status   TableStatus `json:"status"`
}

func NewTable(id int, capacity int, location string) (*Table, error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("%w: table capacity must be positive", ErrInvalidInput)
	}
	return &Table{
		ID:       id,
		Capacity: capacity,
		Location: location,
		Status:   TableFree,
	}, nil
}
