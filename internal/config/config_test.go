package config

import (
	"testing"
	"time"
)

func TestLoad(t *testing.T) {
	t.Run("missing JWT_SECRET is an error", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "")
		if _, err := Load(); err == nil {
			t.Error("expected error without JWT_SECRET")
		}
	})

	t.Run("defaults apply", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "s3cret")
		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load failed: %v", err)
		}
		if cfg.Addr != ":8080" {
			t.Errorf("Addr: expected :8080, got %s", cfg.Addr)
		}
		if cfg.TokenTTL != 8*time.Hour {
			t.Errorf("TokenTTL: expected 8h, got %s", cfg.TokenTTL)
		}
	})

	t.Run("overrides apply", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "s3cret")
		t.Setenv("ADDR", ":9090")
		t.Setenv("TOKEN_TTL", "30m")
		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load failed: %v", err)
		}
		if cfg.Addr != ":9090" {
			t.Errorf("Addr: expected :9090, got %s", cfg.Addr)
		}
		if cfg.TokenTTL != 30*time.Minute {
			t.Errorf("TokenTTL: expected 30m, got %s", cfg.TokenTTL)
		}
	})

	t.Run("bad TOKEN_TTL is an error", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "s3cret")
		t.Setenv("TOKEN_TTL", "eight hours")
		if _, err := Load(); err == nil {
			t.Error("expected error for unparseable TOKEN_TTL")
		}
	})
}
