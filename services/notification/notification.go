package notification

import (
	"context"
	"fmt"
	"time"

	"legalsahyog/models"
	"legalsahyog/utils"

	notificationRepo "legalsahyog/database/repository/notification"

	"firebase.google.com/go/v4/messaging"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

func (s *DefaultNotificationService) NotifyUser(userID, title, message string, notifType models.NotificationType) error {
	n := s.newNotification(title, message, notifType)
	n.UserID = userID
	if err := s.Notifications.Create(n); err != nil {
		return fmt.Errorf("failed to store user notification: %w", err)
	}
	if utils.FCMClient != nil && s.Users != nil {
		if user, err := s.Users.GetByID(userID); err == nil {
			s.push(user.FCMToken, title, message, "user")
		}
	}
	return nil
}

func (s *DefaultNotificationService) NotifyProvider(providerID, title, message string) error {
	n := s.newNotification(title, message, models.NotifGeneral)
	n.ProviderID = providerID
	if err := s.Notifications.Create(n); err != nil {
		return fmt.Errorf("failed to store provider notification: %w", err)
	}
	if utils.FCMClient != nil && s.Providers != nil {
		if provider, err := s.Providers.GetByID(providerID); err == nil {
			s.push(provider.FCMToken, title, message, "provider")
		}
	}
	return nil
}

func (s *DefaultNotificationService) NotifyAdmin(adminID, title, message string, notifType models.NotificationType) error {
	n := s.newNotification(title, message, notifType)
	n.AdminID = adminID
	if err := s.Notifications.Create(n); err != nil {
		return fmt.Errorf("failed to store admin notification: %w", err)
	}
	return nil
}

func (s *DefaultNotificationService) newNotification(title, message string, notifType models.NotificationType) *models.Notification {
	return &models.Notification{
		ID:        uuid.New().String(),
		Title:     title,
		Message:   message,
		Type:      notifType,
		IsRead:    false,
		Status:    models.NotifActive,
		CreatedAt: time.Now(),
	}
}

// push sends an FCM message when pushes are configured and the recipient has
// a token. Failures are logged; the stored notification already succeeded.
func (s *DefaultNotificationService) push(token, title, body, role string) {
	if utils.FCMClient == nil || token == "" {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	msg := &messaging.Message{
		Token: token,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: map[string]string{"role": role},
	}
	if _, err := utils.FCMClient.Send(ctx, msg); err != nil {
		utils.GetLogger().Warn("failed to send push notification", zap.String("role", role), zap.Error(err))
	}
}

func (s *DefaultNotificationService) GetForUser(userID string) ([]models.Notification, error) {
	return s.Notifications.GetFor(notificationRepo.RecipientUser, userID)
}

func (s *DefaultNotificationService) GetForProvider(providerID string) ([]models.Notification, error) {
	return s.Notifications.GetFor(notificationRepo.RecipientProvider, providerID)
}

func (s *DefaultNotificationService) GetForAdmin(adminID string) ([]models.Notification, error) {
	return s.Notifications.GetFor(notificationRepo.RecipientAdmin, adminID)
}

func (s *DefaultNotificationService) GetUnreadForUser(userID string) ([]models.Notification, error) {
	return s.Notifications.GetUnreadFor(notificationRepo.RecipientUser, userID)
}

func (s *DefaultNotificationService) CountUnreadForUser(userID string) (int64, error) {
	return s.Notifications.CountUnreadFor(notificationRepo.RecipientUser, userID)
}

func (s *DefaultNotificationService) CountUnreadForProvider(providerID string) (int64, error) {
	return s.Notifications.CountUnreadFor(notificationRepo.RecipientProvider, providerID)
}

func (s *DefaultNotificationService) MarkRead(id string) error {
	return s.Notifications.MarkRead(id)
}

func (s *DefaultNotificationService) MarkAllReadForUser(userID string) error {
	return s.Notifications.MarkAllReadFor(notificationRepo.RecipientUser, userID)
}

func (s *DefaultNotificationService) MarkAllReadForProvider(providerID string) error {
	return s.Notifications.MarkAllReadFor(notificationRepo.RecipientProvider, providerID)
}

func (s *DefaultNotificationService) Archive(id string) error {
	return s.Notifications.SetStatus(id, models.NotifArchived)
}

func (s *DefaultNotificationService) Delete(id string) error {
	return s.Notifications.SetStatus(id, models.NotifDeleted)
}
