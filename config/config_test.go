package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/5g-empower/empower-enb-agent/config"
)

func TestDefaultFramerConfig(t *testing.T) {
	cfg := config.DefaultFramerConfig()
	if cfg.ListenAddress != "0.0.0.0" {
		t.Errorf("ListenAddress = %q, want 0.0.0.0", cfg.ListenAddress)
	}
	if cfg.ClientAddress != "127.0.0.1" {
		t.Errorf("ClientAddress = %q, want 127.0.0.1", cfg.ClientAddress)
	}
	if cfg.Port != 2210 {
		t.Errorf("Port = %d, want 2210", cfg.Port)
	}
	if cfg.PollDelay != 1500*time.Millisecond {
		t.Errorf("PollDelay = %v, want 1500ms", cfg.PollDelay)
	}
}

func TestLoadOverridesOnlyDefinedFields(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "framer.toml")
	content := `
port = 9999
client_address = "10.0.0.5"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port != 9999 {
		t.Errorf("Port = %d, want 9999", cfg.Port)
	}
	if cfg.ClientAddress != "10.0.0.5" {
		t.Errorf("ClientAddress = %q, want 10.0.0.5", cfg.ClientAddress)
	}
	if cfg.ListenAddress != "0.0.0.0" {
		t.Errorf("ListenAddress = %q, want unchanged default 0.0.0.0", cfg.ListenAddress)
	}
	if cfg.PollDelay != 1500*time.Millisecond {
		t.Errorf("PollDelay = %v, want unchanged default", cfg.PollDelay)
	}
}

func TestLoadPollDelayMillis(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "framer.toml")
	if err := os.WriteFile(path, []byte("poll_delay_ms = 250\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.PollDelay != 250*time.Millisecond {
		t.Errorf("PollDelay = %v, want 250ms", cfg.PollDelay)
	}
}

func TestLoadBadDuration(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "framer.toml")
	if err := os.WriteFile(path, []byte(`poll_delay = "not-a-duration"`+"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	if _, err := config.Load(path); err == nil {
		t.Fatal("expected parse error for malformed poll_delay")
	}
}
