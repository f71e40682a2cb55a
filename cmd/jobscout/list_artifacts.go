package main

import (
	"encoding/json"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/karanpatel/jobscout/internal/observability"
)

var listArtifactsCmd = &cobra.Command{
	Use:   "list-artifacts",
	Short: "List a user's snapshots and their delivered artifacts",
	Long:  "List every snapshot record owned by a user and fetch each delivered artifact from object storage. Artifacts that cannot be fetched are listed without data.",
	RunE:  runListArtifacts,
}

var (
	listConfigPath string
	listUser       string
	listVerbose    bool
)

func init() {
	listArtifactsCmd.Flags().StringVarP(&listConfigPath, "config", "c", "", "Path to JSON config file")
	listArtifactsCmd.Flags().StringVarP(&listUser, "user", "u", "", "Owning user identifier (required)")
	listArtifactsCmd.Flags().BoolVarP(&listVerbose, "verbose", "v", false, "Print a boxed summary instead of JSON")

	_ = listArtifactsCmd.MarkFlagRequired("user")

	rootCmd.AddCommand(listArtifactsCmd)
}

func runListArtifacts(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(listConfigPath)
	if err != nil {
		return err
	}
	if err := cfg.ValidateForProcessing(); err != nil {
		return err
	}

	ctx := cmd.Context()
	svc, cleanup, err := buildService(ctx, cfg, slog.LevelInfo)
	if err != nil {
		return err
	}
	defer cleanup()

	artifacts, err := svc.ListDeliveredArtifacts(ctx, listUser)
	if err != nil {
		return err
	}

	if listVerbose {
		observability.NewPrinter(os.Stdout).PrintArtifacts(listUser, artifacts)
		return nil
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(artifacts)
}
