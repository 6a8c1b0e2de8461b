package domain

import "errors"

// Sentinel errors shared across services. Controllers map these to HTTP
// statuses; repositories translate sql.ErrNoRows into ErrNotFound.
var (
	// ErrNotFound is returned when a referenced event or attendee does not exist.
	ErrNotFound = errors.New("not found")

	// ErrCapacityExceeded is returned when admitting one more attendee would
	// exceed the event's capacity.
	ErrCapacityExceeded = errors.New("event capacity exceeded")

	// ErrInvalidTransition is returned when a payment confirmation targets an
	// attendee that is not in the unpaid state (and not already paid).
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrInvalidInput is returned when the request is invalid.
	ErrInvalidInput = errors.New("invalid input")

	// ErrForbidden is returned when the caller is not allowed to act on the resource.
	ErrForbidden = errors.New("forbidden")

	// ErrPaymentsDisabled is returned when no payment gateway is configured.
	ErrPaymentsDisabled = errors.New("payment gateway not configured")

	// ErrStorageDisabled is returned when no photo storage is configured.
	ErrStorageDisabled = errors.New("photo storage not configured")
)
