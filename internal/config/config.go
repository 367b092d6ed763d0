// Package config loads application configuration from environment variables.
package config

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v10"
)

// Config holds the application configuration loaded from environment variables.
// Key is the decoded AES-256 name-encryption key, populated by Load.
type Config struct {
	DataDir     string `env:"TIMECLOCK_DATA_DIR"`
	DBFile      string `env:"TIMECLOCK_DB_FILE" envDefault:"time_tracker.db"`
	ExportDir   string `env:"TIMECLOCK_EXPORT_DIR"`
	AdminSecret string `env:"TIMECLOCK_ADMIN_SECRET,required"`
	SecretKey   string `env:"TIMECLOCK_SECRET_KEY"`

	Key []byte
}

// DBPath returns the full path of the store file inside the data directory.
func (c *Config) DBPath() string {
	return filepath.Join(c.DataDir, c.DBFile)
}

// Load reads configuration from environment variables and returns a validated
// Config. TIMECLOCK_ADMIN_SECRET is required. TIMECLOCK_DATA_DIR defaults to
// <user config dir>/timeclock and is created if absent; TIMECLOCK_EXPORT_DIR
// defaults to the data directory. TIMECLOCK_SECRET_KEY, when set, must be a
// base64-encoded 32-byte key; when unset a fresh key is generated for the
// lifetime of the process and stored ciphertexts will not survive a restart.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if cfg.DataDir == "" {
		base, err := os.UserConfigDir()
		if err != nil {
			return nil, fmt.Errorf("resolve user config dir: %w", err)
		}
		cfg.DataDir = filepath.Join(base, "timeclock")
	}
	if err := os.MkdirAll(cfg.DataDir, 0o700); err != nil {
		return nil, fmt.Errorf("create data dir %s: %w", cfg.DataDir, err)
	}

	if cfg.ExportDir == "" {
		cfg.ExportDir = cfg.DataDir
	}

	if cfg.SecretKey != "" {
		key, err := base64.StdEncoding.DecodeString(cfg.SecretKey)
		if err != nil {
			return nil, fmt.Errorf("TIMECLOCK_SECRET_KEY is not valid base64: %w", err)
		}
		if len(key) != 32 {
			return nil, fmt.Errorf("TIMECLOCK_SECRET_KEY must decode to 32 bytes, got %d", len(key))
		}
		cfg.Key = key
	} else {
		cfg.Key = make([]byte, 32)
		if _, err := rand.Read(cfg.Key); err != nil {
			return nil, fmt.Errorf("generate encryption key: %w", err)
		}
		slog.Warn("TIMECLOCK_SECRET_KEY not set, using a process-lifetime key; stored name ciphertexts will be unrecoverable after restart")
	}

	return cfg, nil
}
