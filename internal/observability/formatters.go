// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/karanpatel/jobscout/internal/platform"
	"github.com/karanpatel/jobscout/internal/snapshot"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 72
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintRoleOutcomes outputs a per-role, per-platform processing summary.
func (p *Printer) PrintRoleOutcomes(results []snapshot.RoleOutcome) {
	for _, ro := range results {
		var sb strings.Builder

		for _, plat := range platform.All() {
			outcome, ok := ro.Results[plat.Display()]
			if !ok {
				continue
			}

			sb.WriteString(fmt.Sprintf("%-10s %s\n", plat.Display()+":", outcome.Status))
			if outcome.RemoteJobID != "" {
				sb.WriteString(fmt.Sprintf("  job:     %s\n", outcome.RemoteJobID))
			}
			if outcome.StoragePath != "" {
				sb.WriteString(fmt.Sprintf("  output:  %s\n", outcome.StoragePath))
			}
			if outcome.Error != "" {
				sb.WriteString(fmt.Sprintf("  error:   %s\n", outcome.Error))
			}
		}

		p.printBox(fmt.Sprintf("Role: %s", ro.Role), strings.TrimRight(sb.String(), "\n"))
	}
}

// PrintArtifacts outputs a summary of a user's stored artifacts.
func (p *Printer) PrintArtifacts(userID string, artifacts []snapshot.UserArtifact) {
	if len(artifacts) == 0 {
		p.printBox(fmt.Sprintf("Artifacts for %s", userID), "(none)")
		return
	}

	var sb strings.Builder
	for _, a := range artifacts {
		fetched := "missing"
		if a.ArtifactData != nil {
			fetched = fmt.Sprintf("%d bytes", len(a.ArtifactData))
		}
		sb.WriteString(fmt.Sprintf("%s / %s\n", a.Platform, a.Role))
		sb.WriteString(fmt.Sprintf("  job:     %s\n", a.RemoteJobID))
		sb.WriteString(fmt.Sprintf("  at:      %s\n", a.StorageLocation))
		sb.WriteString(fmt.Sprintf("  data:    %s\n", fetched))
	}

	p.printBox(fmt.Sprintf("Artifacts for %s", userID), strings.TrimRight(sb.String(), "\n"))
}
