package config

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_ValidJSON(t *testing.T) {
	content := `{
		"provider_token": "tok-123",
		"s3_bucket": "jobs-bucket",
		"database_url": "postgres://localhost/jobscout",
		"max_retries": 5,
		"base_delay_seconds": 3,
		"verbose": true
	}`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "tok-123", cfg.ProviderToken)
	assert.Equal(t, "jobs-bucket", cfg.S3Bucket)
	assert.Equal(t, "postgres://localhost/jobscout", cfg.DatabaseURL)
	assert.Equal(t, 5, cfg.MaxRetries)
	assert.Equal(t, 3, cfg.BaseDelaySeconds)
	assert.True(t, cfg.Verbose)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	tmpFile := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(tmpFile, []byte(`{ invalid json }`), 0644))

	_, err := LoadConfig(tmpFile)
	assert.Error(t, err)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	_, err := LoadConfig("")
	assert.Error(t, err)
}

func TestFromEnv(t *testing.T) {
	t.Setenv("BRIGHTDATA_API_TOKEN", "env-token")
	t.Setenv("S3_BUCKET", "env-bucket")
	t.Setenv("DATABASE_URL", "postgres://env/db")
	t.Setenv("JOBSCOUT_MAX_RETRIES", "7")
	t.Setenv("JOBSCOUT_BASE_DELAY_SECONDS", "not-a-number")

	cfg := FromEnv()
	assert.Equal(t, "env-token", cfg.ProviderToken)
	assert.Equal(t, "env-bucket", cfg.S3Bucket)
	assert.Equal(t, "postgres://env/db", cfg.DatabaseURL)
	assert.Equal(t, 7, cfg.MaxRetries)
	assert.Equal(t, 0, cfg.BaseDelaySeconds)
}

func TestValidate(t *testing.T) {
	cfg := Config{MaxRetries: 10, BaseDelaySeconds: 2}
	assert.NoError(t, cfg.Validate())

	cfg = Config{MaxRetries: -1}
	assert.Error(t, cfg.Validate())

	cfg = Config{BaseDelaySeconds: -2}
	assert.Error(t, cfg.Validate())
}

func TestValidateForProcessing(t *testing.T) {
	cfg := Config{
		ProviderToken: "tok",
		S3Bucket:      "bucket",
		DatabaseURL:   "postgres://localhost/jobscout",
	}
	assert.NoError(t, cfg.ValidateForProcessing())

	missing := cfg
	missing.ProviderToken = ""
	assert.Error(t, missing.ValidateForProcessing())

	missing = cfg
	missing.S3Bucket = ""
	assert.Error(t, missing.ValidateForProcessing())

	missing = cfg
	missing.DatabaseURL = ""
	assert.Error(t, missing.ValidateForProcessing())
}

func TestMergeWithDefaults(t *testing.T) {
	cfg := Config{ProviderToken: "explicit", MaxRetries: 4}
	defaults := Config{
		ProviderToken:    "default-token",
		S3Bucket:         "default-bucket",
		MaxRetries:       10,
		BaseDelaySeconds: 2,
		Verbose:          true,
	}

	merged := cfg.MergeWithDefaults(defaults)
	assert.Equal(t, "explicit", merged.ProviderToken)
	assert.Equal(t, "default-bucket", merged.S3Bucket)
	assert.Equal(t, 4, merged.MaxRetries)
	assert.Equal(t, 2, merged.BaseDelaySeconds)
	assert.True(t, merged.Verbose)
}

func TestSetupLoggerWithWriters(t *testing.T) {
	var stderr, file bytes.Buffer
	logger := SetupLoggerWithWriters(&stderr, &file, slog.LevelInfo)

	logger.Info("snapshot delivered", "remote_job_id", "snap_1")

	assert.Contains(t, stderr.String(), "snapshot delivered")
	assert.Contains(t, file.String(), `"remote_job_id":"snap_1"`)
}

func TestSetupLogger_NoFile(t *testing.T) {
	logger, cleanup := SetupLogger("", slog.LevelInfo)
	require.NotNil(t, logger)
	assert.NoError(t, cleanup())
}
