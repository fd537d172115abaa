package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaultsEnvOnly(t *testing.T) {
	cfg, err := Load("", true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.HTTPAddr != ":8080" {
		t.Fatalf("http_addr = %q", cfg.Server.HTTPAddr)
	}
	if cfg.Gamma.BaseURL != "https://gamma-api.polymarket.com" {
		t.Fatalf("base_url = %q", cfg.Gamma.BaseURL)
	}
	if cfg.Gamma.Timeout != 15*time.Second {
		t.Fatalf("timeout = %v", cfg.Gamma.Timeout)
	}
	if cfg.Pipeline.FetchLimit != 50 || cfg.Pipeline.ResultLimit != 40 {
		t.Fatalf("limits = %d/%d", cfg.Pipeline.FetchLimit, cfg.Pipeline.ResultLimit)
	}
	if cfg.Pipeline.MinProbability != 4 || cfg.Pipeline.MaxProbability != 96 {
		t.Fatalf("probability bounds = %d/%d", cfg.Pipeline.MinProbability, cfg.Pipeline.MaxProbability)
	}
	if !cfg.Pipeline.Active || cfg.Pipeline.Closed {
		t.Fatalf("active/closed = %v/%v", cfg.Pipeline.Active, cfg.Pipeline.Closed)
	}
	if cfg.Pipeline.Selection != "scan" {
		t.Fatalf("selection = %q", cfg.Pipeline.Selection)
	}
	if cfg.Pipeline.YearFixFrom != "2025" || cfg.Pipeline.YearFixTo != "2026" {
		t.Fatalf("year fix = %q->%q", cfg.Pipeline.YearFixFrom, cfg.Pipeline.YearFixTo)
	}
	if cfg.Probe.Enabled {
		t.Fatalf("probe must default off")
	}
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("MB_PIPELINE_RESULT_LIMIT", "10")
	t.Setenv("MB_GAMMA_BASE_URL", "http://localhost:9999")

	cfg, err := Load("", true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Pipeline.ResultLimit != 10 {
		t.Fatalf("result_limit = %d, want env override 10", cfg.Pipeline.ResultLimit)
	}
	if cfg.Gamma.BaseURL != "http://localhost:9999" {
		t.Fatalf("base_url = %q", cfg.Gamma.BaseURL)
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	body := `
server:
  http_addr: ":9090"
pipeline:
  result_limit: 5
  blacklist:
    - spam
    - test market
`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.HTTPAddr != ":9090" {
		t.Fatalf("http_addr = %q", cfg.Server.HTTPAddr)
	}
	if cfg.Pipeline.ResultLimit != 5 {
		t.Fatalf("result_limit = %d", cfg.Pipeline.ResultLimit)
	}
	if len(cfg.Pipeline.Blacklist) != 2 || cfg.Pipeline.Blacklist[0] != "spam" {
		t.Fatalf("blacklist = %v", cfg.Pipeline.Blacklist)
	}
	// File values that are absent still fall back to defaults.
	if cfg.Pipeline.FetchLimit != 50 {
		t.Fatalf("fetch_limit default lost: %d", cfg.Pipeline.FetchLimit)
	}
}

func TestLoadMissingFileFails(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml"), false); err == nil {
		t.Fatalf("expected error for missing config file")
	}
}
