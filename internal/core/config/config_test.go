package config

import (
	"os"
	"testing"
	"time"
)

func TestLoadConfig(t *testing.T) {
	// Clean environment
	os.Unsetenv("CF_SERVER_HOST")
	os.Unsetenv("CF_SERVER_PORT")

	t.Run("defaults", func(t *testing.T) {
		cfg, err := LoadConfig("")
		if err != nil {
			t.Fatalf("LoadConfig failed: %v", err)
		}
		if cfg.Host != "0.0.0.0" {
			t.Errorf("expected host 0.0.0.0, got %s", cfg.Host)
		}
		if cfg.Port != 8780 {
			t.Errorf("expected port 8780, got %d", cfg.Port)
		}
		if cfg.RequestTimeout != 15*time.Second {
			t.Errorf("expected request_timeout 15s, got %v", cfg.RequestTimeout)
		}
		if cfg.ShutdownTimeout != 10*time.Second {
			t.Errorf("expected shutdown_timeout 10s, got %v", cfg.ShutdownTimeout)
		}
		if cfg.MaxBodyBytes != 1<<20 {
			t.Errorf("expected max_body_bytes %d, got %d", 1<<20, cfg.MaxBodyBytes)
		}
	})

	t.Run("environment override", func(t *testing.T) {
		os.Setenv("CF_SERVER_PORT", "9999")
		os.Setenv("CF_SERVER_HOST", "127.0.0.1")
		defer os.Unsetenv("CF_SERVER_PORT")
		defer os.Unsetenv("CF_SERVER_HOST")

		cfg, err := LoadConfig("")
		if err != nil {
			t.Fatalf("LoadConfig failed: %v", err)
		}
		if cfg.Port != 9999 {
			t.Errorf("expected port 9999, got %d", cfg.Port)
		}
		if cfg.Host != "127.0.0.1" {
			t.Errorf("expected host 127.0.0.1, got %s", cfg.Host)
		}
	})

	t.Run("invalid port range", func(t *testing.T) {
		os.Setenv("CF_SERVER_PORT", "70000")
		defer os.Unsetenv("CF_SERVER_PORT")

		_, err := LoadConfig("")
		if err == nil {
			t.Error("expected error for port > 65535")
		}
	})

	t.Run("invalid negative timeout", func(t *testing.T) {
		os.Setenv("CF_SERVER_REQUEST_TIMEOUT", "-5s")
		defer os.Unsetenv("CF_SERVER_REQUEST_TIMEOUT")

		_, err := LoadConfig("")
		if err == nil {
			t.Error("expected error for negative request_timeout")
		}
	})

	t.Run("missing config file", func(t *testing.T) {
		_, err := LoadConfig("/nonexistent/cfpattern.yaml")
		if err == nil {
			t.Error("expected error for missing config file")
		}
	})
}
