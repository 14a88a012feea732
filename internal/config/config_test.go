package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{
		"PORT", "TWILIO_ACCOUNT_SID", "TWILIO_AUTH_TOKEN", "TWILIO_OUTGOING_NUMBER",
		"TWILIO_WEBHOOK_URL", "DATABASE_URL", "ACCOUNT_DOMAIN", "DIGEST_SCHEDULE",
		"LOG_LEVEL", "SHUTDOWN_TIMEOUT_SECONDS",
	} {
		t.Setenv(key, "")
	}
	t.Setenv("LOCAL_TIMEZONE", "UTC")

	cfg := Load()
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "foreverly.cloud", cfg.AccountDomain)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, time.UTC, cfg.LocalTimezone)
	assert.Empty(t, cfg.DigestSchedule)
	assert.False(t, cfg.TwilioEnabled())
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("TWILIO_ACCOUNT_SID", "AC123")
	t.Setenv("TWILIO_AUTH_TOKEN", "secret")
	t.Setenv("TWILIO_OUTGOING_NUMBER", "+61400000000")
	t.Setenv("LOCAL_TIMEZONE", "Not/AZone")
	t.Setenv("SHUTDOWN_TIMEOUT_SECONDS", "3")

	cfg := Load()
	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, "+61400000000", cfg.TwilioOutgoingNumber)
	assert.Equal(t, time.Local, cfg.LocalTimezone)
	assert.Equal(t, 3*time.Second, cfg.ShutdownTimeout)
	assert.True(t, cfg.TwilioEnabled())
}

func TestParseIntEnv(t *testing.T) {
	t.Setenv("SOME_INT", "42")
	assert.Equal(t, 42, ParseIntEnv("SOME_INT", 1))

	t.Setenv("SOME_INT", "abc")
	assert.Equal(t, 1, ParseIntEnv("SOME_INT", 1))

	t.Setenv("SOME_INT", "")
	assert.Equal(t, 7, ParseIntEnv("SOME_INT", 7))
}
