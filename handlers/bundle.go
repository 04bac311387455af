package handlers

import (
	adminRepo "legalsahyog/database/repository/admin"
	bookingRepo "legalsahyog/database/repository/booking"
	providerRepo "legalsahyog/database/repository/provider"
	userRepo "legalsahyog/database/repository/user"

	"legalsahyog/services/assistant"
	"legalsahyog/services/auth"
	"legalsahyog/services/booking"
	"legalsahyog/services/catalog"
	"legalsahyog/services/content"
	"legalsahyog/services/notification"
	"legalsahyog/services/provider"
	"legalsahyog/services/user"
)

// HandlerBundle groups all endpoint handlers and the services they delegate
// to. Routes register its methods.
type HandlerBundle struct {
	Auth          auth.AuthService
	Users         user.UserService
	Providers     provider.ProviderService
	Catalog       catalog.CatalogService
	Bookings      booking.BookingService
	Notifications notification.NotificationService
	Content       content.ContentService
	Assistant     assistant.AssistantService // nil when no API key is configured

	// Direct repository access for the admin dashboard aggregates.
	UserRepo     userRepo.UserRepository
	ProviderRepo providerRepo.ProviderRepository
	AdminRepo    adminRepo.AdminRepository
	BookingRepo  bookingRepo.BookingRepository
}
