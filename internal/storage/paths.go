// Package storage reads delivered snapshot artifacts from object storage.
package storage

import (
	"fmt"

	"github.com/karanpatel/jobscout/internal/platform"
)

// ObjectKey returns the deterministic object key for a delivered snapshot:
// {platform}/{role-slug}/{remoteJobID}.json
func ObjectKey(p platform.Platform, role, remoteJobID string) string {
	return fmt.Sprintf("%s/%s/%s.json", p.Slug(), platform.RoleSlug(role), remoteJobID)
}

// Directory returns the object key prefix a delivery writes under:
// {platform}/{role-slug}
func Directory(p platform.Platform, role string) string {
	return fmt.Sprintf("%s/%s", p.Slug(), platform.RoleSlug(role))
}

// URI renders the full storage locator for a delivered artifact.
func URI(bucket, key string) string {
	return fmt.Sprintf("s3://%s/%s", bucket, key)
}
