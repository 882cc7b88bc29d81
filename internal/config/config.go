package config

import (
	"os"
	"strconv"
	"strings"
)

const (
	StoreDynamoDB = "dynamodb"
	StoreMemory   = "memory"
)

// Config centralises the runtime configuration read from the environment.
//
// DynamoDB connection and table names are read by the database and repository
// packages themselves.
type Config struct {
	Port         int
	StoreBackend string
	CatalogPath  string
	SeedOnStart  bool
	LogLevel     string
	LogFormat    string
}

// Load reads the environment. Missing values fall back to local defaults.
func Load() Config {
	return Config{
		Port:         getEnvInt("PORT", 8080),
		StoreBackend: strings.ToLower(getEnvOrDefault("STORE_BACKEND", StoreDynamoDB)),
		CatalogPath:  getEnvOrDefault("CATALOG_PATH", "config/catalog.yaml"),
		SeedOnStart:  parseBoolEnv(getEnvOrDefault("SEED_PHOTOGRAPHERS", "true")),
		LogLevel:     getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:    getEnvOrDefault("LOG_FORMAT", "text"),
	}
}

func getEnvOrDefault(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	v, err := strconv.Atoi(strings.TrimSpace(os.Getenv(key)))
	if err != nil || v <= 0 {
		return def
	}
	return v
}

func parseBoolEnv(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "true", "t", "yes", "y", "on":
		return true
	default:
		return false
	}
}
