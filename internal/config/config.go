package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"soundthread/internal/utils"
)

type Config struct {
	Port            string
	DBDriver        string
	DatabaseURL     string
	SessionSecret   string
	SiteURL         string
	SMTPHost        string
	SMTPPort        string
	SMTPUser        string
	SMTPPass        string
	SMTPFrom        string
	LogLevel        string
	CORSOrigins     []string
	ListingMaxLimit int
	ConfirmTTL      time.Duration
}

// Load reads .env when present, then the process environment.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		utils.LogInfo("No .env file found, reading configuration from the environment")
	}

	return &Config{
		Port:            getEnv("PORT", "8080"),
		DBDriver:        getEnv("DB_DRIVER", "postgres"),
		DatabaseURL:     getEnv("DATABASE_URL", "host=localhost user=postgres password=postgres dbname=soundthread port=5432 sslmode=disable"),
		SessionSecret:   getEnv("SESSION_SECRET", "secret_key_change_me"),
		SiteURL:         getEnv("SITE_URL", "http://localhost:8080"),
		SMTPHost:        os.Getenv("SMTP_HOST"),
		SMTPPort:        os.Getenv("SMTP_PORT"),
		SMTPUser:        os.Getenv("SMTP_USER"),
		SMTPPass:        os.Getenv("SMTP_PASS"),
		SMTPFrom:        os.Getenv("SMTP_FROM"),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		CORSOrigins:     splitList(os.Getenv("CORS_ORIGINS")),
		ListingMaxLimit: getEnvInt("LISTING_MAX_LIMIT", 50),
		ConfirmTTL:      getEnvDuration("CONFIRM_TTL", 2*time.Minute),
	}
}

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%s", c.Port)
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	n, err := strconv.Atoi(os.Getenv(key))
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(os.Getenv(key))
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
