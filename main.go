package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"legalsahyog/config"
	"legalsahyog/database"
	"legalsahyog/handlers"
	"legalsahyog/middleware"
	"legalsahyog/models"
	"legalsahyog/routes"
	"legalsahyog/utils"

	adminRepoPkg "legalsahyog/database/repository/admin"
	bookingRepoPkg "legalsahyog/database/repository/booking"
	catalogRepoPkg "legalsahyog/database/repository/catalog"
	contentRepoPkg "legalsahyog/database/repository/content"
	notificationRepoPkg "legalsahyog/database/repository/notification"
	providerRepoPkg "legalsahyog/database/repository/provider"
	userRepoPkg "legalsahyog/database/repository/user"

	"legalsahyog/services/assistant"
	"legalsahyog/services/auth"
	"legalsahyog/services/booking"
	"legalsahyog/services/catalog"
	"legalsahyog/services/content"
	"legalsahyog/services/notification"
	"legalsahyog/services/provider"
	"legalsahyog/services/user"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	config.LoadConfig()
	utils.InitializeLogger()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.InitAssistCache()
	utils.FirebaseInit()

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// Repositories.
	userRepo := userRepoPkg.NewMongoUserRepo()
	provRepo := providerRepoPkg.NewMongoProviderRepo()
	adminRepo := adminRepoPkg.NewMongoAdminRepo()
	serviceRepo := catalogRepoPkg.NewMongoServiceRepo()
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()
	notificationRepo := notificationRepoPkg.NewMongoNotificationRepo()
	contentRepo := contentRepoPkg.NewMongoContentRepo()

	seedAdmin(adminRepo, logger)

	// Services.
	authService := auth.NewAuthService(userRepo, provRepo, adminRepo)
	userService := user.NewUserService(userRepo)
	providerService := provider.NewProviderService(provRepo)
	catalogService := catalog.NewCatalogService(serviceRepo)
	notificationService := notification.NewNotificationService(notificationRepo, userRepo, provRepo)
	bookingService := booking.NewBookingService(bookingRepo, userRepo, provRepo, adminRepo, serviceRepo, notificationService)
	contentService := content.NewContentService(contentRepo)

	handlerBundle := &handlers.HandlerBundle{
		Auth:          authService,
		Users:         userService,
		Providers:     providerService,
		Catalog:       catalogService,
		Bookings:      bookingService,
		Notifications: notificationService,
		Content:       contentService,

		UserRepo:     userRepo,
		ProviderRepo: provRepo,
		AdminRepo:    adminRepo,
		BookingRepo:  bookingRepo,
	}
	if key := config.AppConfig.GeminiAPIKey; key != "" {
		handlerBundle.Assistant = assistant.NewAssistantService(assistant.NewGeminiClient(key))
	} else {
		logger.Info("GEMINI_API_KEY not set, assistant disabled")
	}

	routes.RegisterRoutes(router, handlerBundle)

	srv := &http.Server{
		Addr:    ":" + config.AppConfig.AppPort,
		Handler: router,
	}

	go func() {
		logger.Info("Starting server", zap.String("port", config.AppConfig.AppPort))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Server failed", zap.Error(err))
		}
	}()

	// Wait for interrupt, then drain in-flight requests.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("Server forced to shutdown", zap.Error(err))
	}
	logger.Info("Server exited")
}

// seedAdmin creates the configured default admin account when no admin
// exists yet.
func seedAdmin(admins adminRepoPkg.AdminRepository, logger *zap.Logger) {
	email := config.AppConfig.AdminSeedEmail
	password := config.AppConfig.AdminSeedPassword
	if email == "" || password == "" {
		return
	}

	count, err := admins.Count()
	if err != nil {
		logger.Error("failed to check for existing admins", zap.Error(err))
		return
	}
	if count > 0 {
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logger.Error("failed to hash seed admin password", zap.Error(err))
		return
	}
	admin := &models.Admin{
		ID:           uuid.New().String(),
		Email:        email,
		PasswordHash: string(hash),
		FirstName:    "Platform",
		LastName:     "Admin",
		Role:         "SUPER_ADMIN",
		IsActive:     true,
		CreatedAt:    time.Now(),
	}
	if err := admins.Create(admin); err != nil {
		logger.Error("failed to seed default admin", zap.Error(err))
		return
	}
	logger.Info("Seeded default admin account", zap.String("email", email))
}
