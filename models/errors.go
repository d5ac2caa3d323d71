package models

import "errors"

// Sentinel errors returned by booking sheet operations. Callers pick them apart
// with errors.Is to decide between "bad request", "missing record" and
// "conflict, try another time or table".
var (
	ErrInvalidInput      = errors.New("invalid input")
	ErrNotFound          = errors.New("not found")
	ErrNoTableAvailable  = errors.New("no table available")
	ErrTableUnavailable  = errors.New("table not available")
	ErrInvalidTransition = errors.New("invalid status transition")
)
