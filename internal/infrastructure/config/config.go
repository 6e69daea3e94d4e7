// internal/infrastructure/config/config.go
package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	// App
	AppVersion string

	// Server
	Port            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	CORSOrigins     []string
	RefreshInterval time.Duration

	// PostgreSQL
	PostgresURI string

	// MongoDB
	MongoURI      string
	MongoDB       string
	MongoUser     string
	MongoPassword string

	// WhatsApp bridge
	WhatsAppEndpoint string
	WhatsAppToken    string
	WhatsAppGroupID  string
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	// Load .env file if it exists
	godotenv.Load()

	// Set defaults and override with env vars
	config := &Config{
		AppVersion:      getEnv("APP_VERSION", "1.0.0"),
		Port:            getEnv("PORT", "8080"),
		ReadTimeout:     time.Duration(getEnvAsInt("READ_TIMEOUT", 30)) * time.Second,
		WriteTimeout:    time.Duration(getEnvAsInt("WRITE_TIMEOUT", 30)) * time.Second,
		CORSOrigins:     getEnvAsSlice("CORS_ORIGINS", []string{"http://localhost:3000"}),
		RefreshInterval: time.Duration(getEnvAsInt("REFRESH_INTERVAL", 60)) * time.Second,

		PostgresURI: getEnv("POSTGRES_DSN", "postgres://localhost:5432/rampcontrol"),

		MongoURI:      getEnv("MONGODB_DSN", "mongodb://localhost:27017"),
		MongoDB:       getEnv("MONGO_DB", "rampcontrol"),
		MongoUser:     getEnv("MONGO_USER", ""),
		MongoPassword: getEnv("MONGO_PASSWORD", ""),

		WhatsAppEndpoint: getEnv("WHATSAPP_ENDPOINT", ""),
		WhatsAppToken:    getEnv("WHATSAPP_TOKEN", ""),
		WhatsAppGroupID:  getEnv("WHATSAPP_GROUP_ID", ""),
	}

	return config, nil
}

// Helper functions to get environment variables
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsSlice(key string, defaultValue []string) []string {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	parts := strings.Split(valueStr, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}
