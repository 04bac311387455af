package handlers

import (
	"errors"
	"net/http"

	"legalsahyog/middleware"
	"legalsahyog/models"
	"legalsahyog/services/auth"
	"legalsahyog/services/booking"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// bookingErrorStatus maps the booking service's sentinel errors to HTTP codes.
func bookingErrorStatus(err error) int {
	switch {
	case errors.Is(err, booking.ErrUserNotFound),
		errors.Is(err, booking.ErrProviderNotFound),
		errors.Is(err, booking.ErrBookingNotFound):
		return http.StatusNotFound
	case errors.Is(err, booking.ErrInvalidService):
		return http.StatusBadRequest
	case errors.Is(err, booking.ErrInvalidServicePrice),
		errors.Is(err, booking.ErrNoConsultationFee):
		return http.StatusUnprocessableEntity
	case errors.Is(err, booking.ErrSlotTaken):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func bookingError(c *gin.Context, err error) {
	status := bookingErrorStatus(err)
	if status == http.StatusInternalServerError {
		getLogger(c).Error("booking operation failed", zap.Error(err))
		c.JSON(status, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

// CreateBookingHandler creates a booking for the authenticated user.
func (hb *HandlerBundle) CreateBookingHandler(c *gin.Context) {
	var req booking.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	// Users always book as themselves; admins may book on behalf of a user.
	if middleware.Role(c) == auth.RoleUser {
		req.UserID = middleware.Subject(c)
	}

	created, err := hb.Bookings.CreateBooking(req)
	if err != nil {
		bookingError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// GetBookingHandler returns a booking by id.
func (hb *HandlerBundle) GetBookingHandler(c *gin.Context) {
	b, err := hb.Bookings.GetBookingByID(c.Param("id"))
	if err != nil {
		bookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

// MyBookingsHandler returns the authenticated user's bookings, optionally
// filtered by ?status=.
func (hb *HandlerBundle) MyBookingsHandler(c *gin.Context) {
	userID := middleware.Subject(c)
	var (
		bookings []models.Booking
		err      error
	)
	if status := c.Query("status"); status != "" {
		bookings, err = hb.Bookings.GetUserBookingsByStatus(userID, models.BookingStatus(status))
	} else {
		bookings, err = hb.Bookings.GetUserBookings(userID)
	}
	if err != nil {
		getLogger(c).Error("failed to list user bookings", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve bookings"})
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// ProviderBookingsHandler returns the authenticated provider's bookings,
// optionally filtered by ?status=.
func (hb *HandlerBundle) ProviderBookingsHandler(c *gin.Context) {
	providerID := middleware.Subject(c)
	var (
		bookings []models.Booking
		err      error
	)
	if status := c.Query("status"); status != "" {
		bookings, err = hb.Bookings.GetProviderBookingsByStatus(providerID, models.BookingStatus(status))
	} else {
		bookings, err = hb.Bookings.GetProviderBookings(providerID)
	}
	if err != nil {
		getLogger(c).Error("failed to list provider bookings", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve bookings"})
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// ConfirmBookingHandler moves a booking to CONFIRMED.
func (hb *HandlerBundle) ConfirmBookingHandler(c *gin.Context) {
	b, err := hb.Bookings.ConfirmBooking(c.Param("id"))
	if err != nil {
		bookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

// CompleteBookingHandler moves a booking to COMPLETED.
func (hb *HandlerBundle) CompleteBookingHandler(c *gin.Context) {
	b, err := hb.Bookings.CompleteBooking(c.Param("id"))
	if err != nil {
		bookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

// CancelBookingHandler moves a booking to CANCELLED.
func (hb *HandlerBundle) CancelBookingHandler(c *gin.Context) {
	b, err := hb.Bookings.CancelBooking(c.Param("id"))
	if err != nil {
		bookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

// UpdateBookingStatusHandler applies an arbitrary status transition (admin).
func (hb *HandlerBundle) UpdateBookingStatusHandler(c *gin.Context) {
	var req struct {
		Status models.BookingStatus `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	b, err := hb.Bookings.UpdateBookingStatus(c.Param("id"), req.Status)
	if err != nil {
		bookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

// AvailableSlotsHandler returns the open start times for a provider on a date.
func (hb *HandlerBundle) AvailableSlotsHandler(c *gin.Context) {
	providerID := c.Param("id")
	date := c.Query("date")
	if date == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Query parameter 'date' is required"})
		return
	}
	slots, err := hb.Bookings.GetAvailableSlots(providerID, date)
	if err != nil {
		getLogger(c).Error("failed to compute available slots", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve available slots"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"providerId": providerID, "date": date, "slots": slots})
}
