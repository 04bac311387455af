package handlers

import (
	"net/http"

	"legalsahyog/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// GetUserProfileHandler returns the authenticated user's profile.
func (hb *HandlerBundle) GetUserProfileHandler(c *gin.Context) {
	profile, err := hb.Users.GetUserByID(middleware.Subject(c))
	if err != nil {
		getLogger(c).Error("failed to get user profile", zap.Error(err))
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	c.JSON(http.StatusOK, profile)
}

// UpdateUserProfileHandler patches the authenticated user's profile.
func (hb *HandlerBundle) UpdateUserProfileHandler(c *gin.Context) {
	var fields map[string]interface{}
	if err := c.ShouldBindJSON(&fields); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	updated, err := hb.Users.UpdateProfile(middleware.Subject(c), fields)
	if err != nil {
		getLogger(c).Error("failed to update user profile", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, updated)
}

// SetUserFCMTokenHandler stores the user's push token.
func (hb *HandlerBundle) SetUserFCMTokenHandler(c *gin.Context) {
	var req struct {
		Token string `json:"token" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	if err := hb.Users.SetFCMToken(middleware.Subject(c), req.Token); err != nil {
		getLogger(c).Error("failed to store user fcm token", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store token"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
