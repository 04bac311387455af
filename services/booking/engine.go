package booking

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"legalsahyog/config"
	"legalsahyog/models"
	"legalsahyog/utils"

	bookingRepo "legalsahyog/database/repository/booking"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// fallbackServiceName names bookings priced from the provider's standing
// consultation fee.
const fallbackServiceName = "Legal Consultation"

// CreateBooking runs the full creation pipeline: resolve the user and
// provider, resolve the price (catalog service or consultation fee), guard the
// slot, split the fee and persist the booking as PENDING. Fan-out to the
// provider and active admins happens after the persist and never fails the
// call.
func (s *DefaultBookingService) CreateBooking(req CreateBookingRequest) (*models.Booking, error) {
	user, err := s.Users.GetByID(req.UserID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to resolve user: %w", err)
	}

	provider, err := s.Providers.GetByID(req.ProviderID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrProviderNotFound
		}
		return nil, fmt.Errorf("failed to resolve provider: %w", err)
	}

	var totalAmount float64
	serviceID := ""
	serviceName := fallbackServiceName
	if req.ServiceID != "" {
		service, err := s.Services.GetByID(req.ServiceID)
		if err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				return nil, ErrInvalidService
			}
			return nil, fmt.Errorf("failed to resolve service: %w", err)
		}
		if service.Price <= 0 {
			return nil, ErrInvalidServicePrice
		}
		totalAmount = service.Price
		serviceID = service.ID
		serviceName = service.Title
	} else {
		if provider.ConsultationFee <= 0 {
			return nil, ErrNoConsultationFee
		}
		totalAmount = provider.ConsultationFee
	}

	// Pre-check for a friendlier error; the storage-level uniqueness
	// constraint stays authoritative under races.
	existing, err := s.Bookings.GetActiveByProviderDateStart(req.ProviderID, req.Date, req.StartTime)
	if err != nil {
		return nil, fmt.Errorf("failed to check slot availability: %w", err)
	}
	if len(existing) > 0 {
		return nil, ErrSlotTaken
	}

	platformFee, providerEarnings := CalculateFees(totalAmount)

	newBooking := &models.Booking{
		ID:          uuid.New().String(),
		UserID:      user.ID,
		ProviderID:  provider.ID,
		ServiceID:   serviceID,
		Date:        req.Date,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		TotalAmount: totalAmount,
		PlatformFee: platformFee,
		Earnings:    providerEarnings,
		Status:      models.BookingPending,
		Notes:       req.Notes,
		CreatedAt:   time.Now(),
	}

	if err := s.Bookings.Create(newBooking); err != nil {
		if errors.Is(err, bookingRepo.ErrDuplicateActiveSlot) {
			return nil, ErrSlotTaken
		}
		return nil, fmt.Errorf("failed to persist booking: %w", err)
	}

	s.invalidateSlotCache(provider.ID, req.Date)
	s.notifyBookingCreated(user, provider, serviceName, newBooking)

	return newBooking, nil
}

// ConfirmBooking moves the booking to CONFIRMED.
func (s *DefaultBookingService) ConfirmBooking(id string) (*models.Booking, error) {
	return s.UpdateBookingStatus(id, models.BookingConfirmed)
}

// CompleteBooking moves the booking to COMPLETED.
func (s *DefaultBookingService) CompleteBooking(id string) (*models.Booking, error) {
	return s.UpdateBookingStatus(id, models.BookingCompleted)
}

// CancelBooking moves the booking to CANCELLED.
func (s *DefaultBookingService) CancelBooking(id string) (*models.Booking, error) {
	return s.UpdateBookingStatus(id, models.BookingCancelled)
}

// UpdateBookingStatus applies the named transition and its side effects. Any
// booking found by id accepts any of the named transitions; the current state
// is not checked first.
func (s *DefaultBookingService) UpdateBookingStatus(id string, status models.BookingStatus) (*models.Booking, error) {
	switch status {
	case models.BookingPending, models.BookingConfirmed, models.BookingCompleted, models.BookingCancelled:
	default:
		return nil, fmt.Errorf("unknown booking status %q", status)
	}

	current, err := s.Bookings.GetByID(id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrBookingNotFound
		}
		return nil, fmt.Errorf("failed to resolve booking: %w", err)
	}

	meetingLink := ""
	if status == models.BookingConfirmed {
		meetingLink = generateMeetingLink(current.ID)
	}

	if err := s.Bookings.UpdateStatus(id, status, meetingLink); err != nil {
		return nil, fmt.Errorf("failed to update booking status: %w", err)
	}
	current.Status = status
	if meetingLink != "" {
		current.MeetingLink = meetingLink
	}
	s.invalidateSlotCache(current.ProviderID, current.Date)

	switch status {
	case models.BookingConfirmed:
		s.notifyStatusChange(current, "Booking Confirmed",
			fmt.Sprintf("Your booking on %s at %s has been confirmed. Meeting link: %s", current.Date, current.StartTime, current.MeetingLink),
			models.NotifBookingConfirmed)
	case models.BookingCompleted:
		if err := s.Providers.IncrementCompletedSessions(current.ProviderID); err != nil {
			return nil, fmt.Errorf("failed to credit provider session count: %w", err)
		}
		if err := s.Providers.AddEarnings(current.ProviderID, current.Earnings); err != nil {
			return nil, fmt.Errorf("failed to credit provider earnings: %w", err)
		}
	case models.BookingCancelled:
		s.notifyStatusChange(current, "Booking Cancelled",
			fmt.Sprintf("Your booking on %s at %s has been cancelled.", current.Date, current.StartTime),
			models.NotifBookingCancelled)
	}

	return current, nil
}

// GetAvailableSlots returns the daily catalog minus the start times of the
// provider's active bookings on the date, ascending. Results are cached for a
// short window when Redis is up.
func (s *DefaultBookingService) GetAvailableSlots(providerID, date string) ([]string, error) {
	active, err := s.Bookings.GetActiveByProviderAndDate(providerID, date)
	if err != nil {
		return nil, fmt.Errorf("failed to load active bookings: %w", err)
	}
	taken := make(map[string]bool, len(active))
	for _, b := range active {
		taken[b.StartTime] = true
	}
	slots := availableSlots(taken)
	s.cacheSlots(providerID, date, slots)
	return slots, nil
}

func (s *DefaultBookingService) GetBookingByID(id string) (*models.Booking, error) {
	b, err := s.Bookings.GetByID(id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrBookingNotFound
		}
		return nil, fmt.Errorf("failed to resolve booking: %w", err)
	}
	return b, nil
}

func (s *DefaultBookingService) GetUserBookings(userID string) ([]models.Booking, error) {
	return s.Bookings.GetByUser(userID)
}

func (s *DefaultBookingService) GetProviderBookings(providerID string) ([]models.Booking, error) {
	return s.Bookings.GetByProvider(providerID)
}

func (s *DefaultBookingService) GetUserBookingsByStatus(userID string, status models.BookingStatus) ([]models.Booking, error) {
	return s.Bookings.GetByUserAndStatus(userID, status)
}

func (s *DefaultBookingService) GetProviderBookingsByStatus(providerID string, status models.BookingStatus) ([]models.Booking, error) {
	return s.Bookings.GetByProviderAndStatus(providerID, status)
}

// generateMeetingLink derives a meeting room URL from the booking id and the
// current instant. Repeated confirmations yield a fresh link.
func generateMeetingLink(bookingID string) string {
	base := config.AppConfig.MeetingBaseURL
	if base == "" {
		base = "https://meet.jit.si"
	}
	return fmt.Sprintf("%s/legal-%s-%d", base, bookingID, time.Now().UnixMilli())
}

// notifyBookingCreated fans out creation notifications to the provider and
// every active admin. Failures are logged and swallowed; the booking has
// already been persisted.
func (s *DefaultBookingService) notifyBookingCreated(user *models.User, provider *models.Provider, serviceName string, b *models.Booking) {
	logger := utils.GetLogger()
	defer func() {
		if r := recover(); r != nil {
			logger.Error("booking notification fan-out panicked", zap.Any("panic", r), zap.String("bookingID", b.ID))
		}
	}()
	if s.Notifier == nil {
		return
	}

	providerMsg := fmt.Sprintf("%s booked for %s at %s", serviceName, b.Date, b.StartTime)
	if b.Notes != "" {
		providerMsg += ". Notes: " + b.Notes
	}
	if err := s.Notifier.NotifyProvider(provider.ID, "New Booking Received", providerMsg); err != nil {
		logger.Error("failed to notify provider of new booking",
			zap.String("bookingID", b.ID), zap.String("providerID", provider.ID), zap.Error(err))
	}

	admins, err := s.Admins.GetActive()
	if err != nil {
		logger.Error("failed to list active admins for booking fan-out",
			zap.String("bookingID", b.ID), zap.Error(err))
		return
	}
	adminMsg := fmt.Sprintf("%s booked %s with %s for %s at %s",
		user.FullName(), serviceName, provider.FullName(), b.Date, b.StartTime)
	if b.Notes != "" {
		adminMsg += ". Notes: " + b.Notes
	}
	for _, admin := range admins {
		if err := s.Notifier.NotifyAdmin(admin.ID, "New Booking Created", adminMsg, models.NotifGeneral); err != nil {
			logger.Error("failed to notify admin of new booking",
				zap.String("bookingID", b.ID), zap.String("adminID", admin.ID), zap.Error(err))
		}
	}
}

// notifyStatusChange tells the booking's user about a confirm or cancel.
// Best-effort, same as the creation fan-out.
func (s *DefaultBookingService) notifyStatusChange(b *models.Booking, title, message string, notifType models.NotificationType) {
	logger := utils.GetLogger()
	defer func() {
		if r := recover(); r != nil {
			logger.Error("booking status notification panicked", zap.Any("panic", r), zap.String("bookingID", b.ID))
		}
	}()
	if s.Notifier == nil {
		return
	}
	if err := s.Notifier.NotifyUser(b.UserID, title, message, notifType); err != nil {
		logger.Error("failed to notify user of booking status change",
			zap.String("bookingID", b.ID), zap.String("userID", b.UserID), zap.Error(err))
	}
}

func (s *DefaultBookingService) cacheSlots(providerID, date string, slots []string) {
	if utils.CacheClient == nil {
		return
	}
	key := utils.SlotCachePrefix + providerID + ":" + date
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := utils.CacheClient.Set(ctx, key, strings.Join(slots, ","), utils.SlotCacheTTL).Err(); err != nil {
		utils.GetLogger().Debug("failed to cache available slots", zap.String("key", key), zap.Error(err))
	}
}

func (s *DefaultBookingService) invalidateSlotCache(providerID, date string) {
	if utils.CacheClient == nil {
		return
	}
	key := utils.SlotCachePrefix + providerID + ":" + date
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := utils.CacheClient.Del(ctx, key).Err(); err != nil {
		utils.GetLogger().Debug("failed to invalidate slot cache", zap.String("key", key), zap.Error(err))
	}
}
