package schemas

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/karanpatel/jobscout/internal/platform"
)

func TestValidatePayload_BuiltPayloadsAreValid(t *testing.T) {
	f := platform.Filters{
		Country:         "US",
		JobType:         "Full-time",
		ExperienceLevel: "Entry level",
		Remote:          "Remote",
		TimeRange:       "Past week",
		Company:         "Acme",
	}

	for _, p := range platform.All() {
		payload := p.BuildPayload("Data Analyst", "New York", f)
		assert.NoError(t, ValidatePayload(p, payload), "platform %s", p.Display())
	}
}

func TestValidatePayload_EmptyFiltersStillValid(t *testing.T) {
	for _, p := range platform.All() {
		payload := p.BuildPayload("QA Engineer", "Berlin", platform.Filters{})
		assert.NoError(t, ValidatePayload(p, payload), "platform %s", p.Display())
	}
}

func TestValidatePayload_MissingRequiredField(t *testing.T) {
	payload := platform.Payload{"keyword": "Data Analyst"}

	err := ValidatePayload(platform.Glassdoor, payload)
	require.Error(t, err)

	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "Glassdoor", ve.Platform)
	assert.NotEmpty(t, ve.Errors)
}

func TestValidatePayload_UnknownFieldRejected(t *testing.T) {
	payload := platform.Glassdoor.BuildPayload("Data Analyst", "NY", platform.Filters{})
	payload["salary_min"] = "100000"

	err := ValidatePayload(platform.Glassdoor, payload)
	require.Error(t, err)

	var ve *ValidationError
	assert.ErrorAs(t, err, &ve)
}

func TestValidatePayload_IndeedDomainPinned(t *testing.T) {
	payload := platform.Indeed.BuildPayload("Data Analyst", "NY", platform.Filters{})
	payload["domain"] = "example.com"

	err := ValidatePayload(platform.Indeed, payload)
	require.Error(t, err)
}
