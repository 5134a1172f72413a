package domain

import "errors"

var (
	ErrEventNotFound   = errors.New("event not found")
	ErrBookingNotFound = errors.New("booking not found")
	ErrUserNotFound    = errors.New("user not found")
)

var (
	ErrNotBookable      = errors.New("event is not open for booking")
	ErrCapacityExceeded = errors.New("event is fully booked")
	ErrAlreadyBooked    = errors.New("user already has an active booking for this event")
	ErrAlreadyCancelled = errors.New("booking is already cancelled")
	ErrForbidden        = errors.New("booking belongs to another user")
	ErrTransientStorage = errors.New("transient storage failure")
)

var (
	ErrValidation = errors.New("validation error")
)
