package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"legalsahyog/middleware"
	"legalsahyog/models"
	"legalsahyog/services/catalog"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ListServicesHandler returns available services, optionally filtered by
// ?category=, ?q= (keyword) or ?minPrice=/?maxPrice=.
func (hb *HandlerBundle) ListServicesHandler(c *gin.Context) {
	var (
		services []models.Service
		err      error
	)
	switch {
	case c.Query("q") != "":
		services, err = hb.Catalog.SearchServices(c.Query("q"))
	case c.Query("category") != "":
		services, err = hb.Catalog.GetServicesByCategory(c.Query("category"))
	case c.Query("minPrice") != "" || c.Query("maxPrice") != "":
		min, _ := strconv.ParseFloat(c.DefaultQuery("minPrice", "0"), 64)
		max, perr := strconv.ParseFloat(c.DefaultQuery("maxPrice", "0"), 64)
		if perr != nil || max <= 0 {
			max = 1e12
		}
		services, err = hb.Catalog.GetServicesByPriceRange(min, max)
	default:
		services, err = hb.Catalog.GetAvailableServices()
	}
	if err != nil {
		getLogger(c).Error("failed to list services", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve services"})
		return
	}
	c.JSON(http.StatusOK, services)
}

// GetServiceHandler returns a service by id.
func (hb *HandlerBundle) GetServiceHandler(c *gin.Context) {
	service, err := hb.Catalog.GetServiceByID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Service not found"})
		return
	}
	c.JSON(http.StatusOK, service)
}

// ProviderServicesHandler returns a provider's available services.
func (hb *HandlerBundle) ProviderServicesHandler(c *gin.Context) {
	services, err := hb.Catalog.GetServicesByProvider(c.Param("id"))
	if err != nil {
		getLogger(c).Error("failed to list provider services", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve services"})
		return
	}
	c.JSON(http.StatusOK, services)
}

// CreateServiceHandler creates a catalog entry for the authenticated provider.
func (hb *HandlerBundle) CreateServiceHandler(c *gin.Context) {
	var req models.Service
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	req.ProviderID = middleware.Subject(c)
	created, err := hb.Catalog.CreateService(&req)
	if err != nil {
		if errors.Is(err, catalog.ErrInvalidPrice) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, created)
}

// UpdateServiceHandler updates one of the authenticated provider's services.
func (hb *HandlerBundle) UpdateServiceHandler(c *gin.Context) {
	existing, err := hb.Catalog.GetServiceByID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Service not found"})
		return
	}
	if existing.ProviderID != middleware.Subject(c) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Service belongs to another provider"})
		return
	}

	var req models.Service
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	req.ID = existing.ID
	req.ProviderID = existing.ProviderID
	req.CreatedAt = existing.CreatedAt
	updated, err := hb.Catalog.UpdateService(&req)
	if err != nil {
		if errors.Is(err, catalog.ErrInvalidPrice) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, updated)
}

// SetServiceAvailabilityHandler toggles whether a service can be booked.
func (hb *HandlerBundle) SetServiceAvailabilityHandler(c *gin.Context) {
	existing, err := hb.Catalog.GetServiceByID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Service not found"})
		return
	}
	if existing.ProviderID != middleware.Subject(c) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Service belongs to another provider"})
		return
	}
	var req struct {
		Available *bool `json:"available" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	if err := hb.Catalog.SetAvailability(existing.ID, *req.Available); err != nil {
		getLogger(c).Error("failed to set service availability", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update service"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// DeleteServiceHandler removes one of the authenticated provider's services.
func (hb *HandlerBundle) DeleteServiceHandler(c *gin.Context) {
	existing, err := hb.Catalog.GetServiceByID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Service not found"})
		return
	}
	if existing.ProviderID != middleware.Subject(c) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Service belongs to another provider"})
		return
	}
	if err := hb.Catalog.DeleteService(existing.ID); err != nil {
		getLogger(c).Error("failed to delete service", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete service"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
