// internal/infrastructure/config/config.go
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	// App
	AppVersion string
	LogLevel   string

	// Server
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration

	// MongoDB (conversation store; optional, in-memory fallback when empty)
	MongoURI      string
	MongoDB       string
	MongoUser     string
	MongoPassword string

	// Postgres (catalog + airport lookup; optional, file catalog when empty)
	PostgresDSN string

	// Catalog files
	TripsFile    string
	SpotsFile    string
	AirportsFile string
	WeightsFile  string

	// External model
	ModelAPIKey  string
	ModelBaseURL string
	ModelName    string
	ModelTimeout time.Duration

	// Recommendations
	TopN int
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	// Load .env file if it exists
	godotenv.Load()

	// Set defaults and override with env vars
	config := &Config{
		AppVersion:   getEnv("APP_VERSION", "1.0.0"),
		LogLevel:     getEnv("LOG_LEVEL", "info"),
		Port:         getEnv("PORT", "8080"),
		ReadTimeout:  time.Duration(getEnvAsInt("READ_TIMEOUT", 30)) * time.Second,
		WriteTimeout: time.Duration(getEnvAsInt("WRITE_TIMEOUT", 30)) * time.Second,

		MongoURI:      getEnv("MONGODB_DSN", ""),
		MongoDB:       getEnv("MONGO_DB", "kitematch"),
		MongoUser:     getEnv("MONGO_USER", ""),
		MongoPassword: getEnv("MONGO_PASSWORD", ""),

		PostgresDSN: getEnv("POSTGRES_DSN", ""),

		TripsFile:    getEnv("TRIPS_FILE", "data/trips.json"),
		SpotsFile:    getEnv("SPOTS_FILE", "data/spots.json"),
		AirportsFile: getEnv("AIRPORTS_FILE", "data/airports.json"),
		WeightsFile:  getEnv("WEIGHTS_FILE", ""),

		ModelAPIKey:  getEnv("MODEL_API_KEY", ""),
		ModelBaseURL: getEnv("MODEL_BASE_URL", "https://api.anthropic.com/v1/messages"),
		ModelName:    getEnv("MODEL_NAME", "claude-sonnet-4-20250514"),
		ModelTimeout: time.Duration(getEnvAsInt("MODEL_TIMEOUT", 10)) * time.Second,

		TopN: getEnvAsInt("TOP_N", 3),
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
