package handlers

import (
	"net/http"

	"legalsahyog/middleware"
	"legalsahyog/models"
	"legalsahyog/services/auth"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// MyNotificationsHandler returns the caller's active notifications. With
// ?unread=true only unread ones are returned.
func (hb *HandlerBundle) MyNotificationsHandler(c *gin.Context) {
	subject := middleware.Subject(c)
	unreadOnly := c.Query("unread") == "true"

	var (
		notifications []models.Notification
		err           error
	)
	switch middleware.Role(c) {
	case auth.RoleUser:
		if unreadOnly {
			notifications, err = hb.Notifications.GetUnreadForUser(subject)
		} else {
			notifications, err = hb.Notifications.GetForUser(subject)
		}
	case auth.RoleProvider:
		notifications, err = hb.Notifications.GetForProvider(subject)
	case auth.RoleAdmin:
		notifications, err = hb.Notifications.GetForAdmin(subject)
	default:
		c.JSON(http.StatusForbidden, gin.H{"error": "Unknown role"})
		return
	}
	if err != nil {
		getLogger(c).Error("failed to list notifications", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve notifications"})
		return
	}
	c.JSON(http.StatusOK, notifications)
}

// UnreadCountHandler returns the caller's unread notification count.
func (hb *HandlerBundle) UnreadCountHandler(c *gin.Context) {
	subject := middleware.Subject(c)
	var (
		count int64
		err   error
	)
	switch middleware.Role(c) {
	case auth.RoleUser:
		count, err = hb.Notifications.CountUnreadForUser(subject)
	case auth.RoleProvider:
		count, err = hb.Notifications.CountUnreadForProvider(subject)
	default:
		c.JSON(http.StatusForbidden, gin.H{"error": "Unknown role"})
		return
	}
	if err != nil {
		getLogger(c).Error("failed to count unread notifications", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count notifications"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"unread": count})
}

// MarkNotificationReadHandler flags one notification as read.
func (hb *HandlerBundle) MarkNotificationReadHandler(c *gin.Context) {
	if err := hb.Notifications.MarkRead(c.Param("id")); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Notification not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// MarkAllNotificationsReadHandler flags all the caller's unread notifications
// as read.
func (hb *HandlerBundle) MarkAllNotificationsReadHandler(c *gin.Context) {
	subject := middleware.Subject(c)
	var err error
	switch middleware.Role(c) {
	case auth.RoleUser:
		err = hb.Notifications.MarkAllReadForUser(subject)
	case auth.RoleProvider:
		err = hb.Notifications.MarkAllReadForProvider(subject)
	default:
		c.JSON(http.StatusForbidden, gin.H{"error": "Unknown role"})
		return
	}
	if err != nil {
		getLogger(c).Error("failed to mark notifications read", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update notifications"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// ArchiveNotificationHandler hides a notification without deleting it.
func (hb *HandlerBundle) ArchiveNotificationHandler(c *gin.Context) {
	if err := hb.Notifications.Archive(c.Param("id")); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Notification not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "archived"})
}

// DeleteNotificationHandler soft-deletes a notification.
func (hb *HandlerBundle) DeleteNotificationHandler(c *gin.Context) {
	if err := hb.Notifications.Delete(c.Param("id")); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Notification not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
