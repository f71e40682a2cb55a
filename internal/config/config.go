// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// Config represents the CLI configuration that can be loaded from a JSON
// file and the environment. All fields are optional; missing values use
// defaults or must be provided via CLI flags.
type Config struct {
	// Provider
	ProviderToken   string `json:"provider_token,omitempty"`    // Data-collection provider API token
	ProviderBaseURL string `json:"provider_base_url,omitempty"` // Override for the provider datasets API root

	// Object storage
	S3Bucket     string `json:"s3_bucket,omitempty"`      // Delivery target bucket
	AWSAccessKey string `json:"aws_access_key,omitempty"` // Static AWS access key
	AWSSecretKey string `json:"aws_secret_key,omitempty"` // Static AWS secret key
	AWSRegion    string `json:"aws_region,omitempty"`     // Bucket region

	// Persistence
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL

	// Polling
	MaxRetries       int `json:"max_retries,omitempty"`        // Delivery poll retry ceiling
	BaseDelaySeconds int `json:"base_delay_seconds,omitempty"` // Exponential backoff base delay

	// Behavior
	Verbose bool   `json:"verbose,omitempty"`  // Print detailed outcome summaries
	LogFile string `json:"log_file,omitempty"` // JSON log destination; empty disables file logging
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// FromEnv reads configuration from environment variables. The provider and
// storage variable names match what the hosted deployments already set.
func FromEnv() Config {
	cfg := Config{
		ProviderToken:   os.Getenv("BRIGHTDATA_API_TOKEN"),
		ProviderBaseURL: os.Getenv("BRIGHTDATA_BASE_URL"),
		S3Bucket:        os.Getenv("S3_BUCKET"),
		AWSAccessKey:    os.Getenv("AWS_ACCESS_KEY"),
		AWSSecretKey:    os.Getenv("AWS_SECRET_KEY"),
		AWSRegion:       os.Getenv("AWS_REGION"),
		DatabaseURL:     os.Getenv("DATABASE_URL"),
		LogFile:         os.Getenv("JOBSCOUT_LOG_FILE"),
	}
	if v := os.Getenv("JOBSCOUT_MAX_RETRIES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.MaxRetries = n
		}
	}
	if v := os.Getenv("JOBSCOUT_BASE_DELAY_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.BaseDelaySeconds = n
		}
	}
	return cfg
}

// Validate checks that the configuration has valid values.
// Note: This doesn't check for required fields since those are handled
// by CLI flag validation after merging.
func (c *Config) Validate() error {
	if c.MaxRetries < 0 {
		return fmt.Errorf("config error: 'max_retries' must be non-negative")
	}
	if c.BaseDelaySeconds < 0 {
		return fmt.Errorf("config error: 'base_delay_seconds' must be non-negative")
	}
	return nil
}

// ValidateForProcessing checks the fields the orchestration path cannot run
// without.
func (c *Config) ValidateForProcessing() error {
	if c.ProviderToken == "" {
		return fmt.Errorf("config error: provider token is required (set BRIGHTDATA_API_TOKEN)")
	}
	if c.S3Bucket == "" {
		return fmt.Errorf("config error: S3 bucket is required (set S3_BUCKET)")
	}
	if c.DatabaseURL == "" {
		return fmt.Errorf("config error: database URL is required (set DATABASE_URL)")
	}
	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from
// defaults. This is used to layer config file values under env values.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.ProviderToken == "" {
		result.ProviderToken = defaults.ProviderToken
	}
	if result.ProviderBaseURL == "" {
		result.ProviderBaseURL = defaults.ProviderBaseURL
	}
	if result.S3Bucket == "" {
		result.S3Bucket = defaults.S3Bucket
	}
	if result.AWSAccessKey == "" {
		result.AWSAccessKey = defaults.AWSAccessKey
	}
	if result.AWSSecretKey == "" {
		result.AWSSecretKey = defaults.AWSSecretKey
	}
	if result.AWSRegion == "" {
		result.AWSRegion = defaults.AWSRegion
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}
	if result.LogFile == "" {
		result.LogFile = defaults.LogFile
	}
	if result.MaxRetries == 0 {
		result.MaxRetries = defaults.MaxRetries
	}
	if result.BaseDelaySeconds == 0 {
		result.BaseDelaySeconds = defaults.BaseDelaySeconds
	}
	if !result.Verbose {
		result.Verbose = defaults.Verbose
	}

	return result
}
