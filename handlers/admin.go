package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// DashboardHandler returns the platform counters, recent bookings and the
// provider verification queue.
func (hb *HandlerBundle) DashboardHandler(c *gin.Context) {
	logger := getLogger(c)

	userCount, err := hb.UserRepo.Count()
	if err != nil {
		logger.Error("failed to count users", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build dashboard"})
		return
	}
	providerCount, err := hb.ProviderRepo.Count()
	if err != nil {
		logger.Error("failed to count providers", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build dashboard"})
		return
	}
	bookingCount, err := hb.BookingRepo.Count()
	if err != nil {
		logger.Error("failed to count bookings", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build dashboard"})
		return
	}
	recent, err := hb.BookingRepo.GetRecent(10)
	if err != nil {
		logger.Error("failed to list recent bookings", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build dashboard"})
		return
	}
	pending, err := hb.ProviderRepo.GetPendingVerification()
	if err != nil {
		logger.Error("failed to list pending providers", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build dashboard"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"totalUsers":       userCount,
		"totalProviders":   providerCount,
		"totalBookings":    bookingCount,
		"recentBookings":   recent,
		"pendingProviders": pending,
	})
}

// ListUsersHandler returns all user accounts (admin).
func (hb *HandlerBundle) ListUsersHandler(c *gin.Context) {
	users, err := hb.Users.GetAllUsers()
	if err != nil {
		getLogger(c).Error("failed to list users", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve users"})
		return
	}
	c.JSON(http.StatusOK, users)
}

// ListAllProvidersHandler returns all provider accounts, verified or not
// (admin).
func (hb *HandlerBundle) ListAllProvidersHandler(c *gin.Context) {
	providers, err := hb.Providers.GetAllProviders()
	if err != nil {
		getLogger(c).Error("failed to list providers", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve providers"})
		return
	}
	c.JSON(http.StatusOK, providers)
}

// AllBookingsHandler returns all bookings, optionally capped by ?limit=.
func (hb *HandlerBundle) AllBookingsHandler(c *gin.Context) {
	if raw := c.Query("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			bookings, err := hb.BookingRepo.GetRecent(n)
			if err != nil {
				getLogger(c).Error("failed to list bookings", zap.Error(err))
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve bookings"})
				return
			}
			c.JSON(http.StatusOK, bookings)
			return
		}
	}
	bookings, err := hb.BookingRepo.GetAll()
	if err != nil {
		getLogger(c).Error("failed to list bookings", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve bookings"})
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// VerifyProviderHandler marks the outcome of a provider verification review
// and notifies the provider.
func (hb *HandlerBundle) VerifyProviderHandler(c *gin.Context) {
	var req struct {
		Approved *bool `json:"approved" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	providerID := c.Param("id")
	if err := hb.Providers.SetVerified(providerID, *req.Approved); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Provider not found"})
		return
	}

	// Verification outcome notification is best-effort.
	title, message := "Profile Verified", "Your profile has been verified. You are now visible to clients."
	if !*req.Approved {
		title, message = "Verification Declined", "Your profile verification was declined. Please review your details and resubmit."
	}
	if err := hb.Notifications.NotifyProvider(providerID, title, message); err != nil {
		getLogger(c).Warn("failed to notify provider of verification outcome",
			zap.String("providerID", providerID), zap.Error(err))
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// SetUserActiveHandler toggles a user account's active flag (admin).
func (hb *HandlerBundle) SetUserActiveHandler(c *gin.Context) {
	var req struct {
		Active *bool `json:"active" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	if err := hb.Users.SetActive(c.Param("id"), *req.Active); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// SetProviderActiveHandler toggles a provider account's active flag (admin).
func (hb *HandlerBundle) SetProviderActiveHandler(c *gin.Context) {
	var req struct {
		Active *bool `json:"active" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	if err := hb.Providers.SetActive(c.Param("id"), *req.Active); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Provider not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// DeleteBookingHandler removes a booking record outright. The lifecycle never
// deletes; this is the administrative escape hatch.
func (hb *HandlerBundle) DeleteBookingHandler(c *gin.Context) {
	if err := hb.BookingRepo.Delete(c.Param("id")); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
