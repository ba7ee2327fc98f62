package ratelimit

import (
	"os"
	"strconv"
	"time"
)

// EndpointLimits holds the per-endpoint rate limit settings.
type EndpointLimits struct {
	Window        time.Duration
	EnhanceLimit  int
	ChatLimit     int
	ParseLimit    int
}

// LoadLimits loads rate limit settings from environment variables, with
// defaults tuned to each endpoint's upstream cost.
func LoadLimits() EndpointLimits {
	return EndpointLimits{
		Window:       getEnvDuration("RATE_LIMIT_WINDOW", time.Minute),
		EnhanceLimit: getEnvInt("RATE_LIMIT_ENHANCE", 30),
		ChatLimit:    getEnvInt("RATE_LIMIT_CHAT", 60),
		ParseLimit:   getEnvInt("RATE_LIMIT_PARSE", 10),
	}
}

// getEnvInt gets an environment variable as an integer with a default value.
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvDuration gets an environment variable as a duration with a default value.
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
