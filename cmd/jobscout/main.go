// Package main provides the entry point for the jobscout snapshot
// orchestration CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "jobscout",
	Short: "Job posting snapshot orchestrator",
	Long:  "jobscout triggers remote scraping jobs for job roles across LinkedIn, Glassdoor and Indeed, polls their delivery into object storage, and exposes the stored results.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
