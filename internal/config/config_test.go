package config

import (
	"testing"
	"time"
)

func setRequiredDB(t *testing.T) {
	t.Helper()
	t.Setenv("DB_HOST", "localhost")
	t.Setenv("DB_USER", "bi")
	t.Setenv("DB_NAME", "ventes")
}

func TestLoadDefaults(t *testing.T) {
	setRequiredDB(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Port != "8080" {
		t.Errorf("Port = %q, want 8080", cfg.Port)
	}
	if cfg.Report.Timeout != 15*time.Second {
		t.Errorf("Report.Timeout = %v, want 15s", cfg.Report.Timeout)
	}
	if cfg.Report.Currency != "USD" {
		t.Errorf("Report.Currency = %q, want USD", cfg.Report.Currency)
	}
	if cfg.Report.ExportInterval != 0 {
		t.Errorf("Report.ExportInterval = %v, want disabled", cfg.Report.ExportInterval)
	}
	if cfg.Redis.Enabled() {
		t.Error("redis should be disabled without REDIS_HOST")
	}
	if cfg.RateLimit.RequestsPerWindow != 60 || cfg.RateLimit.Window != time.Minute {
		t.Errorf("unexpected rate limit %+v", cfg.RateLimit)
	}
	if len(cfg.CORS.AllowedHosts) != 2 {
		t.Errorf("AllowedHosts = %v", cfg.CORS.AllowedHosts)
	}
}

func TestLoadMissingDatabase(t *testing.T) {
	t.Setenv("DB_HOST", "")
	t.Setenv("DB_USER", "")
	t.Setenv("DB_NAME", "")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for incomplete database configuration")
	}
}

func TestLoadInvalidDuration(t *testing.T) {
	setRequiredDB(t)
	t.Setenv("REPORT_TIMEOUT", "soon")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for invalid REPORT_TIMEOUT")
	}
}

func TestLoadRedisAndHosts(t *testing.T) {
	setRequiredDB(t)
	t.Setenv("REDIS_HOST", "redis")
	t.Setenv("CORS_ALLOWED_HOSTS", " BI.example.com , ,dash.example.com")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !cfg.Redis.Enabled() {
		t.Error("redis should be enabled")
	}
	want := []string{"bi.example.com", "dash.example.com"}
	if len(cfg.CORS.AllowedHosts) != len(want) {
		t.Fatalf("AllowedHosts = %v, want %v", cfg.CORS.AllowedHosts, want)
	}
	for i := range want {
		if cfg.CORS.AllowedHosts[i] != want[i] {
			t.Errorf("AllowedHosts[%d] = %q, want %q", i, cfg.CORS.AllowedHosts[i], want[i])
		}
	}
}
