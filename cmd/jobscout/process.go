package main

import (
	"encoding/json"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/karanpatel/jobscout/internal/observability"
	"github.com/karanpatel/jobscout/internal/snapshot"
)

var processCmd = &cobra.Command{
	Use:   "process",
	Short: "Trigger and deliver job snapshots for a set of roles",
	Long:  "Process each role across LinkedIn, Glassdoor and Indeed: reuse an existing snapshot when an identical request was made before, otherwise trigger a new remote scrape job and poll until its output is delivered to object storage.",
	RunE:  runProcess,
}

var (
	processConfigPath string
	processRoles      []string
	processLocation   string
	processFilters    map[string]string
	processUser       string
	processVerbose    bool
)

func init() {
	processCmd.Flags().StringVarP(&processConfigPath, "config", "c", "", "Path to JSON config file")
	processCmd.Flags().StringSliceVarP(&processRoles, "role", "r", nil, "Job role to process (repeatable)")
	processCmd.Flags().StringVarP(&processLocation, "location", "l", "", "Search location")
	processCmd.Flags().StringToStringVarP(&processFilters, "filter", "f", nil, "Search filter as key=value (country, job_type, experience_level, remote, time_range, company)")
	processCmd.Flags().StringVarP(&processUser, "user", "u", "", "Owning user identifier (required)")
	processCmd.Flags().BoolVarP(&processVerbose, "verbose", "v", false, "Print boxed outcome summaries instead of JSON")

	_ = processCmd.MarkFlagRequired("role")
	_ = processCmd.MarkFlagRequired("user")

	rootCmd.AddCommand(processCmd)
}

func runProcess(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(processConfigPath)
	if err != nil {
		return err
	}
	if processVerbose {
		cfg.Verbose = true
	}
	if err := cfg.ValidateForProcessing(); err != nil {
		return err
	}

	level := slog.LevelInfo
	if cfg.Verbose {
		level = slog.LevelDebug
	}

	ctx := cmd.Context()
	svc, cleanup, err := buildService(ctx, cfg, level)
	if err != nil {
		return err
	}
	defer cleanup()

	results, err := svc.ProcessRoles(ctx, snapshot.ProcessRequest{
		Roles:    processRoles,
		Location: processLocation,
		Filters:  processFilters,
		UserID:   processUser,
	})
	if err != nil {
		return err
	}

	if cfg.Verbose {
		observability.NewPrinter(os.Stdout).PrintRoleOutcomes(results)
		return nil
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(results)
}
