package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const (
	defaultDatabasePath   = "bandstand.db"
	defaultPort           = "8080"
	defaultAllowedOrigins = "http://localhost:5173"
)

type Config struct {
	// database path
	DatabasePath string

	// HTTP listen port
	Port string

	// browser origins allowed to call the DELETE endpoint
	AllowedOrigins []string
}

func getEnvOrDefault(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func LoadConfig() (Config, error) {
	dbPath := getEnvOrDefault("DATABASE_PATH", defaultDatabasePath)
	absDBPath, err := filepath.Abs(dbPath)
	if err != nil {
		return Config{}, fmt.Errorf("failed to get absolute path for database '%s': %w", dbPath, err)
	}

	origins := strings.Split(getEnvOrDefault("ALLOWED_ORIGINS", defaultAllowedOrigins), ",")
	for i := range origins {
		origins[i] = strings.TrimSpace(origins[i])
	}

	cfg := Config{
		DatabasePath:   absDBPath,
		Port:           getEnvOrDefault("PORT", defaultPort),
		AllowedOrigins: origins,
	}

	return cfg, nil
}
