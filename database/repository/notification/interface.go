package notificationRepo

import "legalsahyog/models"

// Recipient selects the owner field a notification query keys on.
type Recipient string

const (
	RecipientUser     Recipient = "userId"
	RecipientProvider Recipient = "providerId"
	RecipientAdmin    Recipient = "adminId"
)

// NotificationRepository defines methods for notification data access.
type NotificationRepository interface {
	// GetByID retrieves a notification by its unique ID.
	GetByID(id string) (*models.Notification, error)
	// GetFor retrieves a recipient's active notifications, newest first.
	GetFor(recipient Recipient, id string) ([]models.Notification, error)
	// GetUnreadFor retrieves a recipient's unread active notifications.
	GetUnreadFor(recipient Recipient, id string) ([]models.Notification, error)
	// CountUnreadFor counts a recipient's unread active notifications.
	CountUnreadFor(recipient Recipient, id string) (int64, error)
	// Create inserts a new notification record.
	Create(notification *models.Notification) error
	// MarkRead flags a notification as read.
	MarkRead(id string) error
	// MarkAllReadFor flags all of a recipient's unread notifications as read.
	MarkAllReadFor(recipient Recipient, id string) error
	// SetStatus moves a notification between ACTIVE/ARCHIVED/DELETED.
	SetStatus(id string, status models.NotificationStatus) error
}
