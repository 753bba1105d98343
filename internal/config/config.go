package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	ServerPort       string
	DatabaseType     string
	DatabasePath     string
	DatabaseURL      string
	DatabaseMaxConns int
	MigrationsPath   string
	LocationsPath    string
	DefaultCommunity string
	TokenSecret      string
	AllowedOrigins   []string
	FetchTimeout     time.Duration
	WriteRateLimit   int
}

// Load reads configuration from the environment, after applying any .env file
func Load() *Config {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Warning: failed to load .env file: %v", err)
	}

	return &Config{
		ServerPort:       getEnv("PORT", "8080"),
		DatabaseType:     getEnv("DB_TYPE", "sqlite"),
		DatabasePath:     getEnv("DB_PATH", "./directory.db"),
		DatabaseURL:      getEnv("DATABASE_URL", ""),
		DatabaseMaxConns: getIntEnv("DB_MAX_OPEN_CONNS", 25),
		MigrationsPath:   getEnv("MIGRATIONS_PATH", "./migrations"),
		LocationsPath:    getEnv("LOCATIONS_PATH", "./data/locations.yaml"),
		DefaultCommunity: getEnv("DEFAULT_COMMUNITY", "Community"),
		TokenSecret:      getEnv("TOKEN_SECRET", ""),
		AllowedOrigins:   getListEnv("CORS_ALLOWED_ORIGINS", []string{"http://localhost:5173"}),
		FetchTimeout:     getDurationEnv("FETCH_TIMEOUT", 10*time.Second),
		WriteRateLimit:   getIntEnv("WRITE_RATE_LIMIT", 30), // per minute per client
	}
}

// getEnv reads an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil || d <= 0 {
		log.Printf("Warning: invalid %s=%q, using %s", key, value, defaultValue)
		return defaultValue
	}
	return d
}

func getIntEnv(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil || n <= 0 {
		log.Printf("Warning: invalid %s=%q, using %d", key, value, defaultValue)
		return defaultValue
	}
	return n
}

func getListEnv(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
