package services

import (
	"errors"
	"fmt"
)

// Business-rule failures returned by the services. Services never log these
// on the caller's behalf; controllers translate them into HTTP responses.
var (
	ErrInvalidRange    = errors.New("check-in date must be before check-out date")
	ErrInvalidGuests   = errors.New("number of adults must be at least 1")
	ErrRoomNotFound    = errors.New("room not found")
	ErrUserNotFound    = errors.New("user not found")
	ErrRoomUnavailable = errors.New("room is not available for the selected dates")
	ErrBookingNotFound = errors.New("booking not found")
	ErrForbidden       = errors.New("you can only cancel your own bookings")
	ErrInvalidAmount   = errors.New("amount must be greater than 0")
	ErrEmailTaken      = errors.New("user already exists with this email")
)

// InsufficientFundsError reports the shortfall so the caller can tell the
// user exactly how much is missing.
type InsufficientFundsError struct {
	Current  float64
	Required float64
}

func (e *InsufficientFundsError) Error() string {
	return fmt.Sprintf("Insufficient wallet balance. Current: ₹%g, Required: ₹%g", e.Current, e.Required)
}
