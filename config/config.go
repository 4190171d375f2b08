// File: /config/config.go
package config

import (
	"os"
	"strconv"
)

type Config struct {
	Port        string
	DatabaseURL string
	JWTSecret   string
	LogLevel    string

	// Processing pipeline
	ProcessIntervalSeconds int

	// Matching defaults applied to freshly synced routes
	DefaultBufferMeters    float64
	DefaultMinOverlapRatio float64
}

func Load() *Config {
	return &Config{
		Port:        getEnv("PORT", "8080"),
		DatabaseURL: getEnv("DATABASE_URL", "user:password@tcp(localhost:3306)/stagechase?charset=utf8mb4&parseTime=True&loc=Local"),
		JWTSecret:   getEnv("JWT_SECRET", "your-secret-key"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),

		ProcessIntervalSeconds: getEnvInt("PROCESS_INTERVAL_SECONDS", 300),

		DefaultBufferMeters:    getEnvFloat("DEFAULT_BUFFER_METERS", 30),
		DefaultMinOverlapRatio: getEnvFloat("DEFAULT_MIN_OVERLAP_RATIO", 0.8),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseFloat(value, 64); err == nil {
			return parsed
		}
	}
	return defaultValue
}
