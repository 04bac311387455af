package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	DatabaseURL       string `mapstructure:"DATABASE_URL"`
	DatabaseName      string `mapstructure:"DATABASE_NAME"`
	Env               string `mapstructure:"ENV"`
	JWTSecret         string `mapstructure:"JWT_SECRET"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Redis configuration.
	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisCacheDB  int    `mapstructure:"REDIS_CACHE_DB"`
	RedisAssistDB int    `mapstructure:"REDIS_ASSIST_DB"`

	// Platform commission rate applied to every booking. Defaults to 0.15.
	PlatformFeeRate float64 `mapstructure:"PLATFORM_FEE_RATE"`

	// Base URL for generated meeting rooms.
	MeetingBaseURL string `mapstructure:"MEETING_BASE_URL"`

	// Gemini API key for the legal assistant.
	GeminiAPIKey string `mapstructure:"GEMINI_API_KEY"`

	// Firebase service account key path for FCM push. Empty disables push.
	FirebaseKeyPath string `mapstructure:"FIREBASE_KEY_PATH"`

	// Default admin seeded at startup when no admin account exists.
	AdminSeedEmail    string `mapstructure:"ADMIN_SEED_EMAIL"`
	AdminSeedPassword string `mapstructure:"ADMIN_SEED_PASSWORD"`
}

var AppConfig Config

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	// Set default values.
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_CACHE_DB", 0)
	viper.SetDefault("REDIS_ASSIST_DB", 1)
	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	viper.SetDefault("DATABASE_NAME", "legalsahyog")
	viper.SetDefault("PLATFORM_FEE_RATE", 0.15)
	viper.SetDefault("MEETING_BASE_URL", "https://meet.jit.si")
	viper.SetDefault("GEMINI_API_KEY", "")
	viper.SetDefault("FIREBASE_KEY_PATH", "")
	viper.SetDefault("ADMIN_SEED_EMAIL", "")
	viper.SetDefault("ADMIN_SEED_PASSWORD", "")

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
