package config_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"task-store/app/config"
	"testing"
	"time"
)

func missingEnvFile(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "missing.env")
}

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"HOST", "PORT", "LOG_LEVEL", "LOG_FORMAT", "SHUTDOWN_TIMEOUT"} {
		k := k
		if v, ok := os.LookupEnv(k); ok {
			os.Unsetenv(k)
			t.Cleanup(func() { os.Setenv(k, v) })
		}
	}

	cfg, err := config.Load(missingEnvFile(t))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port != config.DefaultPort {
		t.Errorf("expected port %d, got %d", config.DefaultPort, cfg.Port)
	}
	if cfg.Addr() != "0.0.0.0:3000" {
		t.Errorf("unexpected addr %q", cfg.Addr())
	}
	if cfg.ShutdownTimeout != 10*time.Second {
		t.Errorf("unexpected shutdown timeout %v", cfg.ShutdownTimeout)
	}
}

func TestLoadFromEnvFile(t *testing.T) {
	t.Setenv("LOG_LEVEL", "debug")
	// godotenv never overrides variables already set; register cleanup for the ones it sets.
	t.Setenv("PORT", "")
	os.Unsetenv("PORT")
	t.Setenv("HOST", "")
	os.Unsetenv("HOST")

	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte("PORT=8081\nHOST=127.0.0.1\nLOG_LEVEL=error\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Addr() != "127.0.0.1:8081" {
		t.Errorf("unexpected addr %q", cfg.Addr())
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("expected environment to win over .env, got %q", cfg.LogLevel)
	}
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		key, value string
	}{
		{"PORT", "http"},
		{"PORT", "70000"},
		{"SHUTDOWN_TIMEOUT", "soon"},
	}
	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			if _, err := config.Load(missingEnvFile(t)); err == nil {
				t.Errorf("expected error for %s=%q", tt.key, tt.value)
			}
		})
	}
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	log := config.Config{LogLevel: "warn", LogFormat: "text"}.NewLogger(&buf)

	log.Info("hidden")
	log.Warn("shown")
	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("info line logged at warn level: %s", out)
	}
	if !strings.Contains(out, "msg=shown") {
		t.Errorf("expected text output, got %s", out)
	}
}
