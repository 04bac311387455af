package routes

import (
	"net/http"
	"time"

	"legalsahyog/handlers"
	"legalsahyog/middleware"
	"legalsahyog/services/auth"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers registration, login and token resolution.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/register/user", hb.RegisterUserHandler)
		api.POST("/register/provider", hb.RegisterProviderHandler)
		api.POST("/login", hb.LoginHandler)
		api.GET("/me", middleware.JWTAuth(), hb.MeHandler)
	}
}

// RegisterUserRoutes registers the authenticated user's profile endpoints.
func RegisterUserRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/users")
	{
		api.Use(middleware.UserAuth())
		api.GET("/me", hb.GetUserProfileHandler)
		api.PATCH("/me", hb.UpdateUserProfileHandler)
		api.PUT("/me/fcm-token", hb.SetUserFCMTokenHandler)
	}
}

// RegisterProviderRoutes registers provider discovery and self-management.
func RegisterProviderRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/providers")
	{
		// Public discovery endpoints.
		api.GET("", hb.ListProvidersHandler)
		api.GET("/top", hb.TopProvidersHandler)
		api.GET("/:id", hb.GetProviderHandler)
		api.GET("/:id/services", hb.ProviderServicesHandler)
		api.GET("/:id/slots", hb.AvailableSlotsHandler)

		// Self-management requires a provider token.
		me := api.Group("/me")
		me.Use(middleware.ProviderAuth())
		me.GET("", hb.GetProviderProfileHandler)
		me.PATCH("", hb.UpdateProviderProfileHandler)
		me.PUT("/fcm-token", hb.SetProviderFCMTokenHandler)
		me.GET("/bookings", hb.ProviderBookingsHandler)
	}
}

// RegisterCatalogRoutes registers catalog browsing and provider-side CRUD.
func RegisterCatalogRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/services")
	{
		api.GET("", hb.ListServicesHandler)
		api.GET("/:id", hb.GetServiceHandler)

		protected := api.Group("")
		protected.Use(middleware.ProviderAuth())
		protected.POST("", hb.CreateServiceHandler)
		protected.PUT("/:id", hb.UpdateServiceHandler)
		protected.PATCH("/:id/availability", hb.SetServiceAvailabilityHandler)
		protected.DELETE("/:id", hb.DeleteServiceHandler)
	}
}

// RegisterBookingRoutes registers the booking lifecycle endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/bookings")
	{
		api.POST("", middleware.JWTAuth(auth.RoleUser, auth.RoleAdmin), hb.CreateBookingHandler)
		api.GET("/me", middleware.UserAuth(), hb.MyBookingsHandler)
		api.GET("/:id", middleware.JWTAuth(), hb.GetBookingHandler)

		// Providers run the day-to-day lifecycle; admins can force any
		// transition through the status endpoint below.
		api.PUT("/:id/confirm", middleware.JWTAuth(auth.RoleProvider, auth.RoleAdmin), hb.ConfirmBookingHandler)
		api.PUT("/:id/complete", middleware.JWTAuth(auth.RoleProvider, auth.RoleAdmin), hb.CompleteBookingHandler)
		api.PUT("/:id/cancel", middleware.JWTAuth(), hb.CancelBookingHandler)
		api.PUT("/:id/status", middleware.AdminAuth(), hb.UpdateBookingStatusHandler)
	}
}

// RegisterNotificationRoutes registers the caller's notification center.
func RegisterNotificationRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/notifications")
	{
		api.Use(middleware.JWTAuth())
		api.GET("", hb.MyNotificationsHandler)
		api.GET("/unread-count", hb.UnreadCountHandler)
		api.PUT("/:id/read", hb.MarkNotificationReadHandler)
		api.PUT("/read-all", hb.MarkAllNotificationsReadHandler)
		api.PUT("/:id/archive", hb.ArchiveNotificationHandler)
		api.DELETE("/:id", hb.DeleteNotificationHandler)
	}
}

// RegisterContentRoutes registers the public knowledge base and the admin
// publishing endpoints.
func RegisterContentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/content")
	{
		api.GET("", hb.ListContentHandler)
		api.GET("/categories", hb.ContentCategoriesHandler)
		api.GET("/tags", hb.ContentTagsHandler)
		api.GET("/:id", hb.GetContentHandler)

		admin := api.Group("")
		admin.Use(middleware.AdminAuth())
		admin.POST("", hb.CreateContentHandler)
		admin.PUT("/:id", hb.UpdateContentHandler)
		admin.PUT("/:id/publish", hb.PublishContentHandler)
		admin.PUT("/:id/unpublish", hb.UnpublishContentHandler)
		admin.DELETE("/:id", hb.DeleteContentHandler)
	}
}

// RegisterAssistantRoutes registers the AI assistant endpoint.
func RegisterAssistantRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/assistant")
	{
		api.Use(middleware.JWTAuth())
		api.POST("/ask", hb.AskAssistantHandler)
	}
}

// RegisterAdminRoutes registers platform administration endpoints.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/admin")
	{
		api.Use(middleware.AdminAuth())
		api.GET("/dashboard", hb.DashboardHandler)
		api.GET("/users", hb.ListUsersHandler)
		api.GET("/providers", hb.ListAllProvidersHandler)
		api.GET("/bookings", hb.AllBookingsHandler)
		api.PUT("/providers/:id/verify", hb.VerifyProviderHandler)
		api.PUT("/providers/:id/active", hb.SetProviderActiveHandler)
		api.PUT("/users/:id/active", hb.SetUserActiveHandler)
		api.DELETE("/bookings/:id", hb.DeleteBookingHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm LegalSahyog"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterAuthRoutes(r, hb)
	RegisterUserRoutes(r, hb)
	RegisterProviderRoutes(r, hb)
	RegisterCatalogRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterNotificationRoutes(r, hb)
	RegisterContentRoutes(r, hb)
	RegisterAssistantRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
}
