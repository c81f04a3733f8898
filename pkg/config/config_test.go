package config

import (
	"os"
	"testing"
	"time"
)

func TestLoad_Success(t *testing.T) {
	setMinimalEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}

	if cfg.App.Env != "production" {
		t.Fatalf("expected App.Env to be production, got %q", cfg.App.Env)
	}

	if cfg.Redis.URL != "redis://localhost:6379/0" {
		t.Fatalf("unexpected Redis URL: %q", cfg.Redis.URL)
	}

	if cfg.Storage.UsersKey != "myryde_users" {
		t.Fatalf("unexpected users key %q", cfg.Storage.UsersKey)
	}

	if got := cfg.ResetToken.TTL(); got != 15*time.Minute {
		t.Fatalf("expected reset token ttl 15m, got %v", got)
	}

	if cfg.Password.MinStrengthScore != 3 {
		t.Fatalf("expected min strength 3, got %d", cfg.Password.MinStrengthScore)
	}

	if cfg.Booking.WhatsAppNumber != "2348109600178" {
		t.Fatalf("unexpected whatsapp number %q", cfg.Booking.WhatsAppNumber)
	}

	if cfg.Simulation.MailLatency != 2*time.Second {
		t.Fatalf("expected 2s simulated latency, got %v", cfg.Simulation.MailLatency)
	}
}

func TestLoad_MissingRequired(t *testing.T) {
	setMinimalEnv(t)
	if err := os.Unsetenv(EnvAppEnv); err != nil {
		t.Fatalf("failed to unset %s: %v", EnvAppEnv, err)
	}

	if _, err := Load(); err == nil {
		t.Fatal("expected missing required env to return an error")
	}
}

func setMinimalEnv(t *testing.T) {
	t.Helper()

	t.Setenv(EnvAppEnv, "production")
	t.Setenv(EnvPort, "8081")
	t.Setenv(EnvRedisURL, "redis://localhost:6379/0")
	t.Setenv(EnvResetTokenSecret, "secret")
}
