package models

import "time"

// Service is a catalog entry a provider offers for booking.
type Service struct {
	ID              string    `bson:"id" json:"id"`
	ProviderID      string    `bson:"providerId" json:"providerId"`
	Title           string    `bson:"title" json:"title"`
	Description     string    `bson:"description" json:"description,omitempty"`
	Category        string    `bson:"category" json:"category"` // Defaults to "General"
	Price           float64   `bson:"price" json:"price"`
	DurationMinutes int       `bson:"durationMinutes" json:"durationMinutes,omitempty"`
	IsAvailable     bool      `bson:"isAvailable" json:"isAvailable"`
	Languages       []string  `bson:"languages,omitempty" json:"languages,omitempty"`
	CreatedAt       time.Time `bson:"createdAt" json:"createdAt"`
}
