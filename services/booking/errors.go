package booking

import "errors"

// Sentinel errors returned by the booking service. Handlers map these onto
// HTTP status codes; everything else is treated as an internal error.
var (
	ErrUserNotFound        = errors.New("user not found")
	ErrProviderNotFound    = errors.New("provider not found")
	ErrBookingNotFound     = errors.New("booking not found")
	ErrInvalidService      = errors.New("service not found")
	ErrInvalidServicePrice = errors.New("service has invalid price")
	ErrNoConsultationFee   = errors.New("no service or consultation fee available")
	ErrSlotTaken           = errors.New("time slot is not available")
)
