package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"chi-calculator/internal/presentation"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("OTEL_SERVICE_NAME", "")
	t.Setenv("CALCULATOR_CONFIG", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("loading config: %v", err)
	}

	if cfg.Addr != ":8080" {
		t.Fatalf("expected addr %q, got %q", ":8080", cfg.Addr)
	}
	if cfg.Theme != presentation.ThemeDark {
		t.Fatalf("expected theme %q, got %q", presentation.ThemeDark, cfg.Theme)
	}
	if cfg.DrawerCloseDelay != 220*time.Millisecond {
		t.Fatalf("expected delay 220ms, got %v", cfg.DrawerCloseDelay)
	}
	if !cfg.Telemetry {
		t.Fatal("expected telemetry enabled by default")
	}
	if cfg.ServiceName != "calculator" {
		t.Fatalf("expected service name %q, got %q", "calculator", cfg.ServiceName)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("CALCULATOR_CONFIG", "")
	t.Setenv("CALCULATOR_ADDR", ":9090")
	t.Setenv("CALCULATOR_THEME", "light")
	t.Setenv("CALCULATOR_DRAWER_CLOSE_DELAY", "300ms")
	t.Setenv("CALCULATOR_TELEMETRY", "false")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("loading config: %v", err)
	}

	if cfg.Addr != ":9090" {
		t.Fatalf("expected addr %q, got %q", ":9090", cfg.Addr)
	}
	if cfg.Theme != presentation.ThemeLight {
		t.Fatalf("expected theme %q, got %q", presentation.ThemeLight, cfg.Theme)
	}
	if cfg.DrawerCloseDelay != 300*time.Millisecond {
		t.Fatalf("expected delay 300ms, got %v", cfg.DrawerCloseDelay)
	}
	if cfg.Telemetry {
		t.Fatal("expected telemetry disabled")
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "calculator.yaml")
	if err := os.WriteFile(path, []byte("theme: light\nlog_level: debug\n"), 0o600); err != nil {
		t.Fatalf("writing config file: %v", err)
	}
	t.Setenv("CALCULATOR_CONFIG", path)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("loading config: %v", err)
	}
	if cfg.Theme != presentation.ThemeLight || cfg.LogLevel != "debug" {
		t.Fatalf("expected file values, got theme %q log_level %q", cfg.Theme, cfg.LogLevel)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	t.Run("theme", func(t *testing.T) {
		t.Setenv("CALCULATOR_CONFIG", "")
		t.Setenv("CALCULATOR_THEME", "sepia")
		if _, err := Load(); !errors.Is(err, presentation.ErrUnknownTheme) {
			t.Fatalf("expected ErrUnknownTheme, got %v", err)
		}
	})

	t.Run("delay", func(t *testing.T) {
		t.Setenv("CALCULATOR_CONFIG", "")
		t.Setenv("CALCULATOR_DRAWER_CLOSE_DELAY", "0s")
		if _, err := Load(); !errors.Is(err, ErrNonPositiveDelay) {
			t.Fatalf("expected ErrNonPositiveDelay, got %v", err)
		}
	})
}

func TestLoadDotEnvMissingFileIsNotAnError(t *testing.T) {
	if err := LoadDotEnv(filepath.Join(t.TempDir(), "missing.env")); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
}
