package models

import "fmt"

// Customer is an immutable value embedded in each reservation. Editing a
// reservation's customer replaces the copy and never touches other bookings.
type Customer struct {
	Name       string `json:"name" validate:"required"`
	Phone      string `json:"phone" validate:"required"`
	Email      string `json:"email"`
	Preference string `json:"preference"`
}

func NewCustomer(name, phone, email, preference string) (Customer, error) {
	if name == "" {
		return Customer{}, fmt.Errorf("%w: customer name is required", ErrInvalidInput)
	}
	if phone == "" {
		return Customer{}, fmt.Errorf("%w: customer phone is required", ErrInvalidInput)
	}
	return Customer{Name: name, Phone: phone, Email: email, Preference: preference}, nil
}
