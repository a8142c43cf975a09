package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

// ConfigError reports a required setting that is absent. It is surfaced
// before any network activity.
type ConfigError struct {
	Key string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%s environment variable is required", e.Key)
}

type Config struct {
	Weather struct {
		APIKey    string
		Latitude  float64
		Longitude float64
		Units     string
	}

	Mail struct {
		SenderEmail    string
		SenderPassword string
		RecipientEmail string
		SMTPServer     string
		SMTPPort       int
	}

	Assets struct {
		IconDir string
	}

	FetchTimeout time.Duration
}

func LoadConfig() (*Config, error) {
	// Load .env file if exists
	if err := godotenv.Load(); err != nil {
		zap.L().Info("No .env file found, using environment variables")
	}

	cfg := &Config{}

	cfg.Weather.APIKey = getEnv("OPENWEATHER_API_KEY", "")
	cfg.Weather.Latitude = parseFloat(getEnv("LATITUDE", "40.7128"))
	cfg.Weather.Longitude = parseFloat(getEnv("LONGITUDE", "-74.0060"))
	cfg.Weather.Units = getEnv("UNITS", "metric")

	cfg.Mail.SenderEmail = getEnv("SENDER_EMAIL", "")
	cfg.Mail.SenderPassword = getEnv("SENDER_PASSWORD", "")
	cfg.Mail.RecipientEmail = getEnv("RECIPIENT_EMAIL", cfg.Mail.SenderEmail)
	cfg.Mail.SMTPServer = getEnv("SMTP_SERVER", "smtp.gmail.com")
	cfg.Mail.SMTPPort = parseInt(getEnv("SMTP_PORT", "587"))

	cfg.Assets.IconDir = getEnv("ICON_DIR", "assets/icons")

	cfg.FetchTimeout = parseDuration(getEnv("FETCH_TIMEOUT", "30s"))

	if cfg.Weather.APIKey == "" {
		return nil, &ConfigError{Key: "OPENWEATHER_API_KEY"}
	}
	if cfg.Mail.SenderEmail == "" {
		return nil, &ConfigError{Key: "SENDER_EMAIL"}
	}
	if cfg.Mail.SenderPassword == "" {
		return nil, &ConfigError{Key: "SENDER_PASSWORD"}
	}
	if cfg.Weather.Units != "metric" && cfg.Weather.Units != "imperial" {
		return nil, fmt.Errorf("UNITS must be metric or imperial, got %q", cfg.Weather.Units)
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func parseDuration(value string) time.Duration {
	duration, err := time.ParseDuration(value)
	if err != nil {
		zap.L().Warn("Failed to parse duration", zap.String("value", value), zap.Error(err))
		return 0
	}
	return duration
}

func parseInt(value string) int {
	intValue, err := strconv.Atoi(value)
	if err != nil {
		zap.L().Warn("Failed to parse int", zap.String("value", value), zap.Error(err))
		return 0
	}
	return intValue
}

func parseFloat(value string) float64 {
	floatValue, err := strconv.ParseFloat(value, 64)
	if err != nil {
		zap.L().Warn("Failed to parse float", zap.String("value", value), zap.Error(err))
		return 0
	}
	return floatValue
}
