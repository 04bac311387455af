package bookingRepo

import (
	"errors"

	"legalsahyog/models"
)

// ErrDuplicateActiveSlot is returned by Create when the storage-level
// uniqueness constraint over (provider, date, start time) rejects the insert.
// The constraint only covers bookings in an active status, so two concurrent
// requests for the same slot cannot both succeed.
var ErrDuplicateActiveSlot = errors.New("active booking already exists for this provider, date and start time")

// BookingRepository defines methods for booking data access.
type BookingRepository interface {
	// GetByID retrieves a booking by its unique ID.
	GetByID(id string) (*models.Booking, error)
	// GetAll retrieves all bookings, newest first.
	GetAll() ([]models.Booking, error)
	// GetByUser retrieves all bookings made by a user.
	GetByUser(userID string) ([]models.Booking, error)
	// GetByProvider retrieves all bookings for a provider.
	GetByProvider(providerID string) ([]models.Booking, error)
	// GetByUserAndStatus retrieves a user's bookings in the given status.
	GetByUserAndStatus(userID string, status models.BookingStatus) ([]models.Booking, error)
	// GetByProviderAndStatus retrieves a provider's bookings in the given status.
	GetByProviderAndStatus(providerID string, status models.BookingStatus) ([]models.Booking, error)
	// GetActiveByProviderAndDate retrieves a provider's PENDING/CONFIRMED bookings on a date.
	GetActiveByProviderAndDate(providerID, date string) ([]models.Booking, error)
	// GetActiveByProviderDateStart retrieves active bookings matching the exact start time.
	GetActiveByProviderDateStart(providerID, date, startTime string) ([]models.Booking, error)
	// GetRecent retrieves the most recently created bookings, up to limit.
	GetRecent(limit int) ([]models.Booking, error)
	// Count returns the total number of bookings.
	Count() (int64, error)
	// Create inserts a new booking. Returns ErrDuplicateActiveSlot when the
	// active-slot uniqueness constraint rejects the insert.
	Create(booking *models.Booking) error
	// UpdateStatus atomically applies a status transition, keeping the
	// denormalized active flag in sync. An optional meeting link is stored
	// when non-empty.
	UpdateStatus(id string, status models.BookingStatus, meetingLink string) error
	// Delete removes a booking record by its ID.
	Delete(id string) error
}
