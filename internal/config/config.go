// Package config provides configuration management for the application.
package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all configuration values for the application.
type Config struct {
	// Extraction collaborator
	GeminiAPIKey string
	GeminiModel  string

	// Postal lookup collaborator
	PostalAPIURL string

	// Reference data
	CatalogPath  string
	AccountsPath string

	// Persistence
	DBPath string

	// Application
	Port     int
	Stage    string
	LogLevel string
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	// Load .env file if it exists (for local development)
	_ = godotenv.Load()

	cfg := &Config{
		GeminiAPIKey: getEnv("GEMINI_API_KEY", ""),
		GeminiModel:  getEnv("GEMINI_MODEL", "gemini-1.5-flash"),

		PostalAPIURL: getEnv("POSTAL_API_URL", "https://zipcloud.ibsnet.co.jp/api/search"),

		CatalogPath:  getEnv("CATALOG_PATH", "data/catalog.csv"),
		AccountsPath: getEnv("ACCOUNTS_PATH", "accounts.yaml"),

		DBPath: getEnv("DB_PATH", "customer_info.db"),

		Port:     getEnvInt("PORT", 8080),
		Stage:    getEnv("STAGE", "dev"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}

	return cfg, nil
}

// getEnv retrieves an environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt retrieves an environment variable as int or returns a default value.
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}
