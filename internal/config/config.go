package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port          string
	GinMode       string
	DBDriver      string
	DBDSN         string
	JWTSecret     string
	SessionSecret string
	LogLevel      string
	LogPretty     bool
}

func Load() *Config {
	// Values from a local .env file are merged into the environment first.
	_ = godotenv.Load()

	return &Config{
		Port:          getEnv("PORT", "8082"),
		GinMode:       getEnv("GIN_MODE", "debug"),
		DBDriver:      getEnv("DB_DRIVER", "sqlite"),
		DBDSN:         getEnv("DATABASE_URL", "todos.db"),
		JWTSecret:     getEnv("JWT_SECRET", "default-jwt-secret-change-me"),
		SessionSecret: getEnv("SESSION_SECRET", "default-session-secret-change-me"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		LogPretty:     getEnv("LOG_PRETTY", "true") == "true",
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
