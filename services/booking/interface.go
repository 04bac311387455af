package booking

import (
	"legalsahyog/models"

	adminRepo "legalsahyog/database/repository/admin"
	bookingRepo "legalsahyog/database/repository/booking"
	catalogRepo "legalsahyog/database/repository/catalog"
	providerRepo "legalsahyog/database/repository/provider"
	userRepo "legalsahyog/database/repository/user"
)

// CreateBookingRequest carries the caller-supplied identifiers and schedule
// for a new booking. ServiceID is optional; when empty the provider's standing
// consultation fee prices the booking.
type CreateBookingRequest struct {
	UserID     string `json:"userId" binding:"required"`
	ProviderID string `json:"providerId" binding:"required"`
	ServiceID  string `json:"serviceId"`
	Date       string `json:"date" binding:"required"`      // "YYYY-MM-DD"
	StartTime  string `json:"startTime" binding:"required"` // "HH:MM"
	EndTime    string `json:"endTime"`
	Notes      string `json:"notes"`
}

// NotificationSink receives the fire-and-forget notifications the engine
// emits. Errors from the sink never fail the booking operation that caused
// them.
type NotificationSink interface {
	NotifyProvider(providerID, title, message string) error
	NotifyAdmin(adminID, title, message string, notifType models.NotificationType) error
	NotifyUser(userID, title, message string, notifType models.NotificationType) error
}

// BookingService manages the booking lifecycle: creation with validation,
// pricing and conflict prevention, and the status state machine with its
// derived side effects.
type BookingService interface {
	// CreateBooking validates the request, resolves the price, guards the
	// slot and persists a PENDING booking. Notification fan-out after the
	// persist is best-effort.
	CreateBooking(req CreateBookingRequest) (*models.Booking, error)
	// ConfirmBooking moves the booking to CONFIRMED and stores a generated
	// meeting link.
	ConfirmBooking(id string) (*models.Booking, error)
	// CompleteBooking moves the booking to COMPLETED and credits the
	// provider's session counter and cumulative earnings.
	CompleteBooking(id string) (*models.Booking, error)
	// CancelBooking moves the booking to CANCELLED, freeing its slot. An
	// existing meeting link is left in place.
	CancelBooking(id string) (*models.Booking, error)
	// UpdateBookingStatus applies an arbitrary named transition.
	UpdateBookingStatus(id string, status models.BookingStatus) (*models.Booking, error)
	// GetAvailableSlots returns the open start times for a provider on a
	// date, ascending, at most the full daily catalog.
	GetAvailableSlots(providerID, date string) ([]string, error)

	GetBookingByID(id string) (*models.Booking, error)
	GetUserBookings(userID string) ([]models.Booking, error)
	GetProviderBookings(providerID string) ([]models.Booking, error)
	GetUserBookingsByStatus(userID string, status models.BookingStatus) ([]models.Booking, error)
	GetProviderBookingsByStatus(providerID string, status models.BookingStatus) ([]models.Booking, error)
}

// DefaultBookingService is the production implementation of BookingService.
type DefaultBookingService struct {
	Bookings  bookingRepo.BookingRepository
	Users     userRepo.UserRepository
	Providers providerRepo.ProviderRepository
	Admins    adminRepo.AdminRepository
	Services  catalogRepo.ServiceRepository
	Notifier  NotificationSink
}

var _ BookingService = (*DefaultBookingService)(nil)

// NewBookingService wires a BookingService from its collaborators.
func NewBookingService(
	bookings bookingRepo.BookingRepository,
	users userRepo.UserRepository,
	providers providerRepo.ProviderRepository,
	admins adminRepo.AdminRepository,
	services catalogRepo.ServiceRepository,
	notifier NotificationSink,
) *DefaultBookingService {
	return &DefaultBookingService{
		Bookings:  bookings,
		Users:     users,
		Providers: providers,
		Admins:    admins,
		Services:  services,
		Notifier:  notifier,
	}
}
