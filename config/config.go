// Package config loads the framer's TOML configuration, mirroring the
// meta.IsDefined-guarded override pattern: only fields present in the
// file override the documented defaults.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

// FramerConfig holds the endpoint address, port, and polling delay the
// I/O framer needs (spec §4.6).
type FramerConfig struct {
	ListenAddress string
	ClientAddress string
	Port          int
	PollDelay     time.Duration
}

// DefaultFramerConfig returns the documented defaults: any-interface
// for listening, loopback for client dialing, port 2210, and a 1500 ms
// poll delay.
func DefaultFramerConfig() FramerConfig {
	return FramerConfig{
		ListenAddress: "0.0.0.0",
		ClientAddress: "127.0.0.1",
		Port:          2210,
		PollDelay:     1500 * time.Millisecond,
	}
}

type fileConfig struct {
	ListenAddress string `toml:"listen_address"`
	ClientAddress string `toml:"client_address"`
	Port          int    `toml:"port"`
	PollDelay     string `toml:"poll_delay"`
	PollDelayMS   int64  `toml:"poll_delay_ms"`
}

// Load reads path as TOML and overlays only the fields it defines onto
// DefaultFramerConfig's values.
func Load(path string) (FramerConfig, error) {
	cfg := DefaultFramerConfig()

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return FramerConfig{}, fmt.Errorf("load framer config: %w", err)
	}

	if meta.IsDefined("listen_address") {
		if v := strings.TrimSpace(raw.ListenAddress); v != "" {
			cfg.ListenAddress = v
		}
	}
	if meta.IsDefined("client_address") {
		if v := strings.TrimSpace(raw.ClientAddress); v != "" {
			cfg.ClientAddress = v
		}
	}
	if meta.IsDefined("port") {
		cfg.Port = raw.Port
	}
	if meta.IsDefined("poll_delay") {
		d, err := time.ParseDuration(strings.TrimSpace(raw.PollDelay))
		if err != nil {
			return FramerConfig{}, fmt.Errorf("parse poll_delay: %w", err)
		}
		cfg.PollDelay = d
	}
	if meta.IsDefined("poll_delay_ms") {
		cfg.PollDelay = time.Duration(raw.PollDelayMS) * time.Millisecond
	}

	return cfg, nil
}
