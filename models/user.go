package models

import "time"

// User is a client seeking legal services.
type User struct {
	ID           string    `bson:"id" json:"id"`
	Email        string    `bson:"email" json:"email"`
	Password     string    `bson:"-" json:"password,omitempty"`
	PasswordHash string    `bson:"passwordHash" json:"-"`
	FirstName    string    `bson:"firstName" json:"firstName"`
	LastName     string    `bson:"lastName" json:"lastName"`
	Phone        string    `bson:"phone" json:"phone,omitempty"`
	Address      string    `bson:"address" json:"address,omitempty"`
	City         string    `bson:"city" json:"city,omitempty"`
	State        string    `bson:"state" json:"state,omitempty"`
	Pincode      string    `bson:"pincode" json:"pincode,omitempty"`
	IsActive     bool      `bson:"isActive" json:"isActive"`
	FCMToken     string    `bson:"fcmToken,omitempty" json:"-"`
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
}

// FullName returns the display name used in notifications.
func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}
