package models

import "time"

// Provider is a legal professional offering bookable services and/or a
// standing consultation fee.
type Provider struct {
	ID               string    `bson:"id" json:"id"`
	Email            string    `bson:"email" json:"email"`
	Password         string    `bson:"-" json:"password,omitempty"`
	PasswordHash     string    `bson:"passwordHash" json:"-"`
	FirstName        string    `bson:"firstName" json:"firstName"`
	LastName         string    `bson:"lastName" json:"lastName"`
	Phone            string    `bson:"phone" json:"phone,omitempty"`
	BarCouncilNumber string    `bson:"barCouncilNumber" json:"barCouncilNumber"`
	PracticeArea     string    `bson:"practiceArea" json:"practiceArea,omitempty"`
	ExperienceYears  int       `bson:"experienceYears" json:"experienceYears,omitempty"`
	Qualification    string    `bson:"qualification" json:"qualification,omitempty"`
	Bio              string    `bson:"bio" json:"bio,omitempty"`
	Address          string    `bson:"address" json:"address,omitempty"`
	City             string    `bson:"city" json:"city,omitempty"`
	State            string    `bson:"state" json:"state,omitempty"`
	Pincode          string    `bson:"pincode" json:"pincode,omitempty"`
	ConsultationFee  float64   `bson:"consultationFee" json:"consultationFee"` // Standing fee used when no catalog service is booked
	IsVerified       bool      `bson:"isVerified" json:"isVerified"`
	IsActive         bool      `bson:"isActive" json:"isActive"`
	Rating           float64   `bson:"rating" json:"rating,omitempty"`
	CompletedSessions int      `bson:"completedSessions" json:"completedSessions"` // Incremented when a booking completes
	TotalEarnings    float64   `bson:"totalEarnings" json:"totalEarnings"`         // Cumulative provider earnings
	FCMToken         string    `bson:"fcmToken,omitempty" json:"-"`
	CreatedAt        time.Time `bson:"createdAt" json:"createdAt"`
}

// FullName returns the display name used in notifications.
func (p *Provider) FullName() string {
	return p.FirstName + " " + p.LastName
}
