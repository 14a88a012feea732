package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config stores runtime configuration loaded from environment variables.
type Config struct {
	Port                 string
	TwilioAccountSID     string
	TwilioAuthToken      string
	TwilioOutgoingNumber string
	// TwilioWebhookURL is the public URL Twilio posts to. Signatures are only
	// validated when it is set.
	TwilioWebhookURL string
	DatabaseURL      string
	AccountDomain    string
	DigestSchedule   string
	LogLevel         string
	LocalTimezone    *time.Location
	ShutdownTimeout  time.Duration
}

// Load reads configuration values and prepares defaults where applicable.
func Load() *Config {
	_ = godotenv.Load()

	timezoneName := getenvDefault("LOCAL_TIMEZONE", "Local")
	location, err := time.LoadLocation(timezoneName)
	if err != nil {
		log.Printf("config: invalid LOCAL_TIMEZONE %q, defaulting to system local: %v", timezoneName, err)
		location = time.Local
	}

	return &Config{
		Port:                 getenvDefault("PORT", "8080"),
		TwilioAccountSID:     os.Getenv("TWILIO_ACCOUNT_SID"),
		TwilioAuthToken:      os.Getenv("TWILIO_AUTH_TOKEN"),
		TwilioOutgoingNumber: os.Getenv("TWILIO_OUTGOING_NUMBER"),
		TwilioWebhookURL:     os.Getenv("TWILIO_WEBHOOK_URL"),
		DatabaseURL:          os.Getenv("DATABASE_URL"),
		AccountDomain:        getenvDefault("ACCOUNT_DOMAIN", "foreverly.cloud"),
		DigestSchedule:       os.Getenv("DIGEST_SCHEDULE"),
		LogLevel:             getenvDefault("LOG_LEVEL", "info"),
		LocalTimezone:        location,
		ShutdownTimeout:      time.Duration(ParseIntEnv("SHUTDOWN_TIMEOUT_SECONDS", 10)) * time.Second,
	}
}

// TwilioEnabled reports whether outbound SMS can go through the Twilio API.
func (c *Config) TwilioEnabled() bool {
	return c.TwilioAccountSID != "" && c.TwilioAuthToken != ""
}

func getenvDefault(key, def string) string {
	value := os.Getenv(key)
	if value == "" {
		return def
	}
	return value
}

// ParseIntEnv returns the integer value for an environment variable or the provided default.
func ParseIntEnv(key string, def int) int {
	value := os.Getenv(key)
	if value == "" {
		return def
	}

	parsed, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("config: unable to parse %s=%q as int: %v", key, value, err)
		return def
	}
	return parsed
}
