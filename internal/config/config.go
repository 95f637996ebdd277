package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Port               string
	Environment        string
	FrontendURL        string
	AllowedOrigins     []string
	JWTSecret          string
	SessionTokenTTL    time.Duration
	BotMoveDelay       time.Duration
	SessionIdleTimeout time.Duration
	FinishedSessionTTL time.Duration
	CleanupInterval    time.Duration
}

var AppConfig *Config

func LoadConfig() *Config {
	port := GetEnv("PORT", "8080")
	environment := GetEnv("ENVIRONMENT", "development")

	// Frontend & CORS
	frontendURL := GetEnv("FRONTEND_URL", "http://localhost:5173")
	allowedOrigins := []string{frontendURL}
	allowedOriginsStr := GetEnv("ALLOWED_ORIGINS", "")
	if allowedOriginsStr != "" {
		for _, origin := range strings.Split(allowedOriginsStr, ",") {
			trimmed := strings.TrimSpace(origin)
			if trimmed != "" {
				allowedOrigins = append(allowedOrigins, trimmed)
			}
		}
	}

	// Security
	jwtSecret := GetEnv("JWT_SECRET", "your-secret-key-change-this-in-production")
	tokenTTLHours := GetEnvAsInt("SESSION_TOKEN_TTL_HOURS", 24)

	// Game pacing & housekeeping
	botDelayMs := GetEnvAsInt("BOT_MOVE_DELAY_MS", 500)
	idleMinutes := GetEnvAsInt("SESSION_IDLE_TIMEOUT_MINUTES", 60)
	finishedMinutes := GetEnvAsInt("FINISHED_SESSION_TTL_MINUTES", 60)
	cleanupMinutes := GetEnvAsInt("CLEANUP_INTERVAL_MINUTES", 10)

	AppConfig = &Config{
		Port:               port,
		Environment:        environment,
		FrontendURL:        frontendURL,
		AllowedOrigins:     allowedOrigins,
		JWTSecret:          jwtSecret,
		SessionTokenTTL:    time.Duration(tokenTTLHours) * time.Hour,
		BotMoveDelay:       time.Duration(botDelayMs) * time.Millisecond,
		SessionIdleTimeout: time.Duration(idleMinutes) * time.Minute,
		FinishedSessionTTL: time.Duration(finishedMinutes) * time.Minute,
		CleanupInterval:    time.Duration(cleanupMinutes) * time.Minute,
	}

	return AppConfig
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func GetEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func GetEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil || value < 0 {
		log.Printf("Invalid integer value for %s: %s, using default: %d", key, valueStr, defaultValue)
		return defaultValue
	}
	return value
}
