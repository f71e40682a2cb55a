package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/karanpatel/jobscout/internal/config"
	"github.com/karanpatel/jobscout/internal/db"
	"github.com/karanpatel/jobscout/internal/provider"
	"github.com/karanpatel/jobscout/internal/snapshot"
	"github.com/karanpatel/jobscout/internal/storage"
)

// loadConfig layers the environment over an optional JSON config file.
func loadConfig(configPath string) (config.Config, error) {
	cfg := config.FromEnv()

	if configPath != "" {
		fileCfg, err := config.LoadConfig(configPath)
		if err != nil {
			return config.Config{}, err
		}
		cfg = cfg.MergeWithDefaults(*fileCfg)
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// buildService wires the orchestration service and its collaborators from
// configuration. The returned cleanup closes the database pool and the log
// file.
func buildService(ctx context.Context, cfg config.Config, logLevel slog.Level) (*snapshot.Service, func(), error) {
	logger, closeLog := config.SetupLogger(cfg.LogFile, logLevel)

	database, err := db.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		_ = closeLog()
		return nil, nil, err
	}

	reader, err := storage.NewS3Reader(ctx, cfg.S3Bucket, storage.Credentials{
		AccessKey: cfg.AWSAccessKey,
		SecretKey: cfg.AWSSecretKey,
		Region:    cfg.AWSRegion,
	})
	if err != nil {
		database.Close()
		_ = closeLog()
		return nil, nil, fmt.Errorf("failed to build storage reader: %w", err)
	}

	client := provider.New(cfg.ProviderToken, logger, &provider.Options{
		BaseURL: cfg.ProviderBaseURL,
	})

	svc := snapshot.NewService(database, client, reader,
		snapshot.StorageTarget{
			Bucket:    cfg.S3Bucket,
			AccessKey: cfg.AWSAccessKey,
			SecretKey: cfg.AWSSecretKey,
		},
		logger,
		&snapshot.Options{
			MaxRetries: cfg.MaxRetries,
			BaseDelay:  time.Duration(cfg.BaseDelaySeconds) * time.Second,
		},
	)

	cleanup := func() {
		database.Close()
		_ = closeLog()
	}
	return svc, cleanup, nil
}
