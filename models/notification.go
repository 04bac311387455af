package models

import "time"

// NotificationType categorizes a notification for client rendering.
type NotificationType string

const (
	NotifBookingConfirmed NotificationType = "BOOKING_CONFIRMED"
	NotifBookingCancelled NotificationType = "BOOKING_CANCELLED"
	NotifReviewReceived   NotificationType = "REVIEW_RECEIVED"
	NotifProviderVerified NotificationType = "PROVIDER_VERIFIED"
	NotifProviderRejected NotificationType = "PROVIDER_REJECTED"
	NotifGeneral          NotificationType = "GENERAL"
)

// NotificationStatus is the visibility state of a stored notification.
type NotificationStatus string

const (
	NotifActive   NotificationStatus = "ACTIVE"
	NotifArchived NotificationStatus = "ARCHIVED"
	NotifDeleted  NotificationStatus = "DELETED"
)

// Notification is an in-app notification addressed to exactly one of a user,
// a provider or an admin.
type Notification struct {
	ID                string             `bson:"id" json:"id"`
	UserID            string             `bson:"userId,omitempty" json:"userId,omitempty"`
	ProviderID        string             `bson:"providerId,omitempty" json:"providerId,omitempty"`
	AdminID           string             `bson:"adminId,omitempty" json:"adminId,omitempty"`
	Title             string             `bson:"title" json:"title"`
	Message           string             `bson:"message" json:"message"`
	Type              NotificationType   `bson:"type" json:"type"`
	RelatedEntityType string             `bson:"relatedEntityType,omitempty" json:"relatedEntityType,omitempty"` // e.g. "BOOKING"
	RelatedEntityID   string             `bson:"relatedEntityId,omitempty" json:"relatedEntityId,omitempty"`
	IsRead            bool               `bson:"isRead" json:"isRead"`
	Status            NotificationStatus `bson:"status" json:"status"`
	CreatedAt         time.Time          `bson:"createdAt" json:"createdAt"`
}
