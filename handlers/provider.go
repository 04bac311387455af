package handlers

import (
	"net/http"
	"strconv"

	"legalsahyog/middleware"
	"legalsahyog/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ListProvidersHandler returns verified providers, optionally filtered by
// ?city=, ?state= or ?practiceArea=.
func (hb *HandlerBundle) ListProvidersHandler(c *gin.Context) {
	var (
		providers []models.Provider
		err       error
	)
	switch {
	case c.Query("city") != "":
		providers, err = hb.Providers.GetProvidersByCity(c.Query("city"))
	case c.Query("state") != "":
		providers, err = hb.Providers.GetProvidersByState(c.Query("state"))
	case c.Query("practiceArea") != "":
		providers, err = hb.Providers.GetProvidersByPracticeArea(c.Query("practiceArea"))
	default:
		providers, err = hb.Providers.GetVerifiedProviders()
	}
	if err != nil {
		getLogger(c).Error("failed to list providers", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve providers"})
		return
	}
	c.JSON(http.StatusOK, providers)
}

// TopProvidersHandler returns verified providers ranked by ?by=rating
// (default) or ?by=experience, up to ?limit= (default 10).
func (hb *HandlerBundle) TopProvidersHandler(c *gin.Context) {
	limit := 10
	if raw := c.Query("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			limit = n
		}
	}
	var (
		providers []models.Provider
		err       error
	)
	if c.Query("by") == "experience" {
		providers, err = hb.Providers.GetMostExperiencedProviders(limit)
	} else {
		providers, err = hb.Providers.GetTopRatedProviders(limit)
	}
	if err != nil {
		getLogger(c).Error("failed to rank providers", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve providers"})
		return
	}
	c.JSON(http.StatusOK, providers)
}

// GetProviderHandler returns a provider's public profile.
func (hb *HandlerBundle) GetProviderHandler(c *gin.Context) {
	p, err := hb.Providers.GetProviderByID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Provider not found"})
		return
	}
	c.JSON(http.StatusOK, p)
}

// GetProviderProfileHandler returns the authenticated provider's own profile.
func (hb *HandlerBundle) GetProviderProfileHandler(c *gin.Context) {
	p, err := hb.Providers.GetProviderByID(middleware.Subject(c))
	if err != nil {
		getLogger(c).Error("failed to get provider profile", zap.Error(err))
		c.JSON(http.StatusNotFound, gin.H{"error": "Provider not found"})
		return
	}
	c.JSON(http.StatusOK, p)
}

// UpdateProviderProfileHandler patches the authenticated provider's profile.
func (hb *HandlerBundle) UpdateProviderProfileHandler(c *gin.Context) {
	var fields map[string]interface{}
	if err := c.ShouldBindJSON(&fields); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	updated, err := hb.Providers.UpdateProfile(middleware.Subject(c), fields)
	if err != nil {
		getLogger(c).Error("failed to update provider profile", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, updated)
}

// SetProviderFCMTokenHandler stores the provider's push token.
func (hb *HandlerBundle) SetProviderFCMTokenHandler(c *gin.Context) {
	var req struct {
		Token string `json:"token" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	if err := hb.Providers.SetFCMToken(middleware.Subject(c), req.Token); err != nil {
		getLogger(c).Error("failed to store provider fcm token", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store token"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
