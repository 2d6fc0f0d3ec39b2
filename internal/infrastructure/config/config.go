package config

import (
	"os"
	"strconv"
)

// Config holds application configuration values.
type Config struct {
	Port             string
	MongoURI         string
	MongoDBName      string
	RedisURL         string
	StripeSecret     string
	SiteDomain       string
	CheckoutCurrency string
	RateLimit        float64
}

// NewConfig creates a new Config instance, loading values from environment variables.
func NewConfig() *Config {
	return &Config{
		Port:             getEnv("PORT", "3000"),
		MongoURI:         getEnv("MONGODB_URI", ""),
		MongoDBName:      getEnv("MONGODB_DB_NAME", "digital_life_lessons"),
		RedisURL:         getEnv("REDIS_URL", ""),
		StripeSecret:     getEnv("STRIPE_SECRET", ""),
		SiteDomain:       getEnv("SITE_DOMAIN", "http://localhost:5173"),
		CheckoutCurrency: getEnv("CHECKOUT_CURRENCY", "bdt"),
		RateLimit:        float64(getEnvAsInt("RATE_LIMIT_RPS", 10)),
	}
}

// Helper function to get an environment variable or return a default value.
func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// Helper function to get an environment variable as an integer or return a default value.
func getEnvAsInt(name string, fallback int) int {
	valueStr := getEnv(name, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return fallback
}
