// Package config loads runtime configuration from a local .env file and the
// process environment. Credentials are externally supplied secrets only:
// there are no literal fallbacks, and missing SMTP credentials simply leave
// mail delivery disabled (reported by the diagnostic endpoints).
package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/rezonia/invoicemate/internal/mail"
)

// Config is the process configuration.
type Config struct {
	Address string
	SMTP    mail.SMTPConfig
}

// Load reads .env (if present) and the environment.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		Address: envStr("ADDR", ":8080"),
		SMTP: mail.SMTPConfig{
			Host:     os.Getenv("SMTP_HOST"),
			Port:     envInt("SMTP_PORT", 587),
			Username: os.Getenv("EMAIL_USER"),
			Password: os.Getenv("EMAIL_PASS"),
			FromName: envStr("MAIL_FROM_NAME", "Invoicemate"),
		},
	}
}

func envStr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// envInt reads an int env var with a default fallback.
func envInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}
