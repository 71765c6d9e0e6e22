package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	HTTPPort    string
	Env         string
	LogLevel    string
	CORSOrigins []string
	DatabaseURL string
	AMQPURL     string
	// EnrollPerMinute caps add-to-campaign calls per client IP.
	EnrollPerMinute int
	Smartlead       SmartleadConfig
	Mail            MailConfig
}

type SmartleadConfig struct {
	BaseURL string
	Timeout time.Duration
	// APIKey seeds the stored credential when nothing is stored yet.
	APIKey string
}

type MailConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
	NotifyTo string
}

func (m MailConfig) Enabled() bool {
	return m.Host != "" && m.NotifyTo != ""
}

// Load reads .env when present, then the process environment.
func Load() (*AppConfig, error) {
	_ = godotenv.Load()

	timeout, err := time.ParseDuration(getEnv("SMARTLEAD_TIMEOUT", "10s"))
	if err != nil {
		return nil, fmt.Errorf("SMARTLEAD_TIMEOUT: %w", err)
	}
	if timeout <= 0 {
		return nil, fmt.Errorf("SMARTLEAD_TIMEOUT must be positive")
	}

	enrollPerMinute, err := strconv.Atoi(getEnv("ENROLL_RATE_PER_MINUTE", "10"))
	if err != nil || enrollPerMinute <= 0 {
		return nil, fmt.Errorf("ENROLL_RATE_PER_MINUTE must be a positive integer")
	}

	mailPort, err := strconv.Atoi(getEnv("MAIL_PORT", "587"))
	if err != nil {
		return nil, fmt.Errorf("MAIL_PORT: %w", err)
	}

	cfg := &AppConfig{
		HTTPPort:        getEnv("HTTP_PORT", "8080"),
		Env:             getEnv("APP_ENV", "development"),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		CORSOrigins:     splitList(getEnv("CORS_ORIGINS", "https://localhost:3000")),
		DatabaseURL:     strings.TrimSpace(getEnv("DATABASE_URL", "")),
		AMQPURL:         strings.TrimSpace(getEnv("AMQP_URL", "")),
		EnrollPerMinute: enrollPerMinute,
		Smartlead: SmartleadConfig{
			BaseURL: getEnv("SMARTLEAD_BASE_URL", "https://server.smartlead.ai/api/v1"),
			Timeout: timeout,
			APIKey:  strings.TrimSpace(getEnv("SMARTLEAD_API_KEY", "")),
		},
		Mail: MailConfig{
			Host:     getEnv("MAIL_HOST", ""),
			Port:     mailPort,
			User:     getEnv("MAIL_USER", ""),
			Password: getEnv("MAIL_PASS", ""),
			From:     getEnv("MAIL_FROM", "no-reply@localhost"),
			NotifyTo: getEnv("MAIL_NOTIFY_TO", ""),
		},
	}
	return cfg, nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
