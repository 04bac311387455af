package notification

import (
	"legalsahyog/models"

	notificationRepo "legalsahyog/database/repository/notification"
	providerRepo "legalsahyog/database/repository/provider"
	userRepo "legalsahyog/database/repository/user"
)

// NotificationService persists in-app notifications and, when a recipient has
// a device token, mirrors them as FCM pushes. Push delivery is always
// best-effort; the stored notification is the source of truth.
type NotificationService interface {
	// NotifyUser stores a notification for a user and pushes it when possible.
	NotifyUser(userID, title, message string, notifType models.NotificationType) error
	// NotifyProvider stores a notification for a provider and pushes it when possible.
	NotifyProvider(providerID, title, message string) error
	// NotifyAdmin stores a notification for an admin. Admins get no pushes.
	NotifyAdmin(adminID, title, message string, notifType models.NotificationType) error

	// GetForUser returns a user's active notifications, newest first.
	GetForUser(userID string) ([]models.Notification, error)
	// GetForProvider returns a provider's active notifications, newest first.
	GetForProvider(providerID string) ([]models.Notification, error)
	// GetForAdmin returns an admin's active notifications, newest first.
	GetForAdmin(adminID string) ([]models.Notification, error)
	// GetUnreadForUser returns a user's unread active notifications.
	GetUnreadForUser(userID string) ([]models.Notification, error)
	// CountUnreadForUser counts a user's unread active notifications.
	CountUnreadForUser(userID string) (int64, error)
	// CountUnreadForProvider counts a provider's unread active notifications.
	CountUnreadForProvider(providerID string) (int64, error)

	// MarkRead flags a single notification as read.
	MarkRead(id string) error
	// MarkAllReadForUser flags all of a user's unread notifications as read.
	MarkAllReadForUser(userID string) error
	// MarkAllReadForProvider flags all of a provider's unread notifications as read.
	MarkAllReadForProvider(providerID string) error
	// Archive hides a notification without deleting it.
	Archive(id string) error
	// Delete soft-deletes a notification.
	Delete(id string) error
}

// DefaultNotificationService is the production implementation.
type DefaultNotificationService struct {
	Notifications notificationRepo.NotificationRepository
	Users         userRepo.UserRepository
	Providers     providerRepo.ProviderRepository
}

var _ NotificationService = (*DefaultNotificationService)(nil)

// NewNotificationService wires a NotificationService from its repositories.
func NewNotificationService(
	notifications notificationRepo.NotificationRepository,
	users userRepo.UserRepository,
	providers providerRepo.ProviderRepository,
) *DefaultNotificationService {
	return &DefaultNotificationService{
		Notifications: notifications,
		Users:         users,
		Providers:     providers,
	}
}
