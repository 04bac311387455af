package models

import "time"

// BookingStatus is the lifecycle state of a booking.
type BookingStatus string

const (
	BookingPending   BookingStatus = "PENDING"
	BookingConfirmed BookingStatus = "CONFIRMED"
	BookingCompleted BookingStatus = "COMPLETED"
	BookingCancelled BookingStatus = "CANCELLED"
)

// ActiveBookingStatuses are the statuses that count against slot availability.
var ActiveBookingStatuses = []BookingStatus{BookingPending, BookingConfirmed}

// Booking represents a consultation booking between a user and a provider.
type Booking struct {
	ID          string        `bson:"id" json:"id"`                                     // Unique booking identifier (UUID)
	UserID      string        `bson:"userId" json:"userId"`                             // User who made the booking
	ProviderID  string        `bson:"providerId" json:"providerId"`                     // Provider who was booked
	ServiceID   string        `bson:"serviceId,omitempty" json:"serviceId,omitempty"`   // Optional catalog service; empty for bare consultations
	Date        string        `bson:"date" json:"date"`                                 // Booking date in "YYYY-MM-DD" format
	StartTime   string        `bson:"startTime" json:"startTime"`                       // Start time in "HH:MM" format
	EndTime     string        `bson:"endTime,omitempty" json:"endTime,omitempty"`       // Optional end time in "HH:MM" format
	TotalAmount float64       `bson:"totalAmount" json:"totalAmount"`                   // Full price paid by the user
	PlatformFee float64       `bson:"platformFee" json:"platformFee"`                   // Commission retained by the platform
	Earnings    float64       `bson:"providerEarnings" json:"providerEarnings"`         // Amount owed to the provider
	Status      BookingStatus `bson:"status" json:"status"`
	MeetingLink string        `bson:"meetingLink,omitempty" json:"meetingLink,omitempty"` // Set when the booking is confirmed
	Notes       string        `bson:"notes" json:"notes"`                               // Free text, never null once persisted
	CreatedAt   time.Time     `bson:"createdAt" json:"createdAt"`
}

// IsActive reports whether the booking blocks its time slot.
func (b *Booking) IsActive() bool {
	for _, s := range ActiveBookingStatuses {
		if b.Status == s {
			return true
		}
	}
	return false
}
