// Package platform defines the supported job-board platforms and their
// provider-specific request payload shapes.
package platform

import (
	"fmt"
	"strings"
)

// Platform identifies a job board supported by the data-collection provider.
type Platform string

const (
	// LinkedIn is the LinkedIn job board
	LinkedIn Platform = "linkedin"
	// Glassdoor is the Glassdoor job board
	Glassdoor Platform = "glassdoor"
	// Indeed is the Indeed job board
	Indeed Platform = "indeed"
)

// All returns the platforms processed for every role, in canonical order.
func All() []Platform {
	return []Platform{LinkedIn, Glassdoor, Indeed}
}

// Parse converts a user-supplied platform name into a Platform.
func Parse(s string) (Platform, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "linkedin":
		return LinkedIn, nil
	case "glassdoor":
		return Glassdoor, nil
	case "indeed":
		return Indeed, nil
	default:
		return "", fmt.Errorf("unknown platform: %q", s)
	}
}

// Display returns the human-readable platform name used in records and
// aggregated results.
func (p Platform) Display() string {
	switch p {
	case LinkedIn:
		return "LinkedIn"
	case Glassdoor:
		return "Glassdoor"
	case Indeed:
		return "Indeed"
	default:
		return string(p)
	}
}

// Slug returns the lowercase platform name used in storage paths.
func (p Platform) Slug() string {
	return strings.ToLower(string(p))
}

// DatasetID returns the provider dataset identifier for the platform's
// trigger endpoint.
func (p Platform) DatasetID() string {
	switch p {
	case LinkedIn:
		return "gd_lpfll7v5hcqtkxl6l"
	case Glassdoor:
		return "gd_lpfbbndm1xnopbrcr0"
	case Indeed:
		return "gd_l7qekxkv2i7ve6hx1s"
	default:
		return ""
	}
}

// RoleSlug normalizes a job role for storage paths: lowercase with spaces
// replaced by underscores.
func RoleSlug(role string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(role)), " ", "_")
}
