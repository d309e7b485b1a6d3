// Package config manages application configuration.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Config holds all application configuration.
type Config struct {
	// CredentialsDir is where the cached OAuth credential and the
	// client-secret configuration file live.
	CredentialsDir string `json:"credentials_dir"`

	// BulkUpdateDelay is the pause between successive write calls during
	// bulk-update, as a courtesy to the API's rate limits.
	BulkUpdateDelay time.Duration `json:"bulk_update_delay"`

	// UploadChunkSize is the chunk size for resumable video uploads.
	UploadChunkSize int `json:"upload_chunk_size"`
}

// DefaultConfig returns configuration with safe defaults.
func DefaultConfig() *Config {
	home, _ := os.UserHomeDir()
	return &Config{
		CredentialsDir:  filepath.Join(home, ".ytctl"),
		BulkUpdateDelay: 150 * time.Millisecond,
		UploadChunkSize: 256 * 1024,
	}
}

// Load loads configuration from environment variables, config file, and applies defaults.
// Priority: env vars > config file > defaults
func Load() (*Config, error) {
	cfg := DefaultConfig()

	// Try to load from config file
	if err := cfg.loadFromFile(); err != nil {
		// Config file is optional
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("load config file: %w", err)
		}
	}

	// Override with environment variables
	cfg.loadFromEnv()

	// Validate
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// loadFromFile attempts to load config from ytctl.json in current directory or home directory.
func (c *Config) loadFromFile() error {
	paths := []string{
		"ytctl.json",
		filepath.Join(os.Getenv("HOME"), ".config", "ytctl", "ytctl.json"),
	}

	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return err
		}

		if err := json.Unmarshal(data, c); err != nil {
			return fmt.Errorf("parse %s: %w", path, err)
		}
		return nil
	}

	return os.ErrNotExist
}

// loadFromEnv overrides config with environment variables.
func (c *Config) loadFromEnv() {
	if v := os.Getenv("YTCTL_CREDENTIALS_DIR"); v != "" {
		c.CredentialsDir = v
	}
	if v := os.Getenv("YTCTL_BULK_DELAY"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			c.BulkUpdateDelay = d
		}
	}
	if v := os.Getenv("YTCTL_UPLOAD_CHUNK_SIZE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.UploadChunkSize = n
		}
	}
}

// Validate checks configuration validity.
func (c *Config) Validate() error {
	if c.CredentialsDir == "" {
		return fmt.Errorf("credentials_dir must not be empty")
	}
	if c.BulkUpdateDelay < 0 {
		return fmt.Errorf("bulk_update_delay must be non-negative")
	}
	if c.UploadChunkSize <= 0 {
		return fmt.Errorf("upload_chunk_size must be positive")
	}
	return nil
}

// CredentialsFile returns the path of the cached OAuth credential file.
func (c *Config) CredentialsFile() string {
	return filepath.Join(c.CredentialsDir, "credentials.json")
}

// ClientSecretsFile returns the path of the pre-provisioned client-secret
// configuration file from the Google developer console.
func (c *Config) ClientSecretsFile() string {
	return filepath.Join(c.CredentialsDir, "client_secrets.json")
}
