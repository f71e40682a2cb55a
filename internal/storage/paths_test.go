package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/karanpatel/jobscout/internal/platform"
)

func TestObjectKey(t *testing.T) {
	key := ObjectKey(platform.LinkedIn, "Senior Data Scientist", "snap_123")
	assert.Equal(t, "linkedin/senior_data_scientist/snap_123.json", key)

	key = ObjectKey(platform.Indeed, "DevOps Engineer", "snap_456")
	assert.Equal(t, "indeed/devops_engineer/snap_456.json", key)
}

func TestDirectory(t *testing.T) {
	assert.Equal(t, "glassdoor/data_analyst", Directory(platform.Glassdoor, "Data Analyst"))
}

func TestURI(t *testing.T) {
	uri := URI("jobs-bucket", "linkedin/data_analyst/snap_123.json")
	assert.Equal(t, "s3://jobs-bucket/linkedin/data_analyst/snap_123.json", uri)
}
