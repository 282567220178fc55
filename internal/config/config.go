package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	// Server configuration
	Port            string        `json:"port"`
	Env             string        `json:"env"`
	ShutdownTimeout time.Duration `json:"shutdown_timeout"`
	HTTPTimeout     time.Duration `json:"http_timeout"`

	// JSONBin document store
	JSONBinAPIKey string `json:"jsonbin_api_key"`
	JSONBinBinID  string `json:"jsonbin_bin_id"`

	// Scrape trigger
	ScrapeSecretKey string `json:"scrape_secret_key"`

	// Eventbrite
	EventbriteToken string `json:"eventbrite_token"`

	// AI Configuration
	GeminiAPIKey string `json:"gemini_api_key"`
	GeminiModel  string `json:"gemini_model"`

	// Logging
	LogLevel string `json:"log_level"`
}

// Load loads configuration from environment variables
func Load() *Config {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Warning: Error loading .env file: %v", err)
	}

	cfg := &Config{
		Port:            getEnv("PORT", "3000"),
		Env:             getEnv("APP_ENV", "development"),
		ShutdownTimeout: getEnvAsDuration("SHUTDOWN_TIMEOUT", 10*time.Second),
		HTTPTimeout:     getEnvAsDuration("HTTP_TIMEOUT", 30*time.Second),

		JSONBinAPIKey: getEnv("JSONBIN_API_KEY", ""),
		JSONBinBinID:  getEnv("JSONBIN_BIN_ID", ""),

		ScrapeSecretKey: getEnv("SCRAPE_SECRET_KEY", ""),

		EventbriteToken: getEnv("EVENTBRITE_API_TOKEN", ""),

		GeminiAPIKey: getEnv("GEMINI_API_KEY", ""),
		GeminiModel:  getEnv("GEMINI_MODEL", "gemini-2.0-flash"),

		LogLevel: getEnv("LOG_LEVEL", "info"),
	}

	cfg.warnMissing()

	return cfg
}

// warnMissing logs a startup warning for each secret that is absent. The
// process still starts; the endpoints that need the secret answer 500.
func (c *Config) warnMissing() {
	if c.GeminiAPIKey == "" {
		log.Println("Warning: GEMINI_API_KEY is not set; candidates cannot be classified and the chatbot is disabled")
	}
	if !c.StoreConfigured() {
		log.Println("Warning: JSONBIN_API_KEY/JSONBIN_BIN_ID are not set; reading and publishing events will fail")
	}
	if c.ScrapeSecretKey == "" {
		log.Println("Warning: SCRAPE_SECRET_KEY is not set; /run-scrape will reject every request")
	}
	if c.EventbriteToken == "" {
		log.Println("Warning: EVENTBRITE_API_TOKEN is not set; API sources will be skipped")
	}
}

// StoreConfigured reports whether the remote document store can be used.
func (c *Config) StoreConfigured() bool {
	return c.JSONBinAPIKey != "" && c.JSONBinBinID != ""
}

// Helper functions for environment variable handling
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(name string, defaultVal time.Duration) time.Duration {
	valueStr := getEnv(name, "")
	if valueStr == "" {
		return defaultVal
	}
	value, err := time.ParseDuration(valueStr)
	if err != nil {
		log.Printf("Invalid %s value: %v, using default: %v", name, err, defaultVal)
		return defaultVal
	}
	return value
}
