package config

import (
	"os"
	"path/filepath"
	"testing"
)

// ── Load / Defaults ──

func TestLoadReturnsDefaults(t *testing.T) {
	envVars := []string{
		"FINSCOPE_FRED_API_KEY", "FRED_API_KEY",
		"FINSCOPE_SEC_USER_AGENT", "SEC_USER_AGENT",
	}
	for _, e := range envVars {
		os.Unsetenv(e)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.HTTP.TimeoutSec != 30 {
		t.Errorf("HTTP.TimeoutSec: got %d, want 30", cfg.HTTP.TimeoutSec)
	}
	if cfg.Output.Dir != "." {
		t.Errorf("Output.Dir: got %q, want %q", cfg.Output.Dir, ".")
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("Logging.Level: got %q, want %q", cfg.Logging.Level, "info")
	}
	if cfg.Logging.Format != "text" {
		t.Errorf("Logging.Format: got %q, want %q", cfg.Logging.Format, "text")
	}
	if cfg.FRED.APIKey != "" {
		t.Errorf("FRED.APIKey: expected empty, got %q", cfg.FRED.APIKey)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	os.Setenv("FRED_API_KEY", "env-fred-key")
	os.Setenv("SEC_USER_AGENT", "env agent test@example.com")
	defer os.Unsetenv("FRED_API_KEY")
	defer os.Unsetenv("SEC_USER_AGENT")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.FRED.APIKey != "env-fred-key" {
		t.Errorf("FRED.APIKey: got %q", cfg.FRED.APIKey)
	}
	if cfg.SEC.UserAgent != "env agent test@example.com" {
		t.Errorf("SEC.UserAgent: got %q", cfg.SEC.UserAgent)
	}
}

func TestLoadPrefixedEnvWins(t *testing.T) {
	os.Setenv("FRED_API_KEY", "bare-key")
	os.Setenv("FINSCOPE_FRED_API_KEY", "prefixed-key")
	defer os.Unsetenv("FRED_API_KEY")
	defer os.Unsetenv("FINSCOPE_FRED_API_KEY")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.FRED.APIKey != "prefixed-key" {
		t.Errorf("FRED.APIKey: got %q, want prefixed-key", cfg.FRED.APIKey)
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := []byte(`
fred:
  api_key: file-fred-key
sec:
  user_agent: "file agent file@example.com"
http:
  timeout_sec: 10
logging:
  level: debug
`)
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	os.Unsetenv("FRED_API_KEY")
	os.Unsetenv("FINSCOPE_FRED_API_KEY")
	os.Unsetenv("SEC_USER_AGENT")
	os.Unsetenv("FINSCOPE_SEC_USER_AGENT")

	cfg, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("LoadFromFile() error: %v", err)
	}
	if cfg.FRED.APIKey != "file-fred-key" {
		t.Errorf("FRED.APIKey: got %q", cfg.FRED.APIKey)
	}
	if cfg.SEC.UserAgent != "file agent file@example.com" {
		t.Errorf("SEC.UserAgent: got %q", cfg.SEC.UserAgent)
	}
	if cfg.HTTP.TimeoutSec != 10 {
		t.Errorf("HTTP.TimeoutSec: got %d, want 10", cfg.HTTP.TimeoutSec)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level: got %q", cfg.Logging.Level)
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	if _, err := LoadFromFile("/nonexistent/config.yaml"); err == nil {
		t.Error("expected error for missing file")
	}
}

// ── Key status ──

func TestCheckAPIKeys(t *testing.T) {
	os.Unsetenv("FRED_API_KEY")
	os.Unsetenv("FINSCOPE_FRED_API_KEY")
	os.Unsetenv("SEC_USER_AGENT")
	os.Unsetenv("FINSCOPE_SEC_USER_AGENT")

	cfg := &Config{}
	cfg.FRED.APIKey = "abcdefghijklmnop"

	statuses := CheckAPIKeys(cfg)
	if len(statuses) != 2 {
		t.Fatalf("expected 2 statuses, got %d", len(statuses))
	}

	fredStatus := statuses[0]
	if !fredStatus.IsSet {
		t.Error("FRED key should be set")
	}
	if fredStatus.Source != KeySourceConfig {
		t.Errorf("FRED source: got %s, want config", fredStatus.Source)
	}
	if fredStatus.Masked != "abc...nop" {
		t.Errorf("FRED masked: got %q", fredStatus.Masked)
	}

	secStatus := statuses[1]
	if secStatus.IsSet || secStatus.Source != KeySourceNone {
		t.Errorf("SEC status: %+v", secStatus)
	}
}

func TestMaskKey(t *testing.T) {
	if got := maskKey("short"); got != "***" {
		t.Errorf("maskKey(short) = %q", got)
	}
	if got := maskKey("abcdefghijkl"); got != "abc...jkl" {
		t.Errorf("maskKey = %q", got)
	}
}
