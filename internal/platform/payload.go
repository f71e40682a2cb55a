// Package platform - payload.go builds the per-platform trigger request bodies.
package platform

// Payload is the key-value request body sent to a platform's trigger
// endpoint. The three platforms have materially different field sets; the
// exact keys are wire contracts with the provider and must not be renamed.
type Payload map[string]string

// Filters holds the recognized search filters accepted from callers.
// Missing values stay empty strings; each platform picks the subset it
// supports when building its payload.
type Filters struct {
	Country         string
	JobType         string
	ExperienceLevel string
	Remote          string
	TimeRange       string
	Company         string
}

// ParseFilters extracts the recognized filter keys from a raw key-value
// map. Unrecognized keys are ignored.
func ParseFilters(raw map[string]string) Filters {
	return Filters{
		Country:         raw["country"],
		JobType:         raw["job_type"],
		ExperienceLevel: raw["experience_level"],
		Remote:          raw["remote"],
		TimeRange:       raw["time_range"],
		Company:         raw["company"],
	}
}

// BuildPayload constructs the trigger payload for the platform.
func (p Platform) BuildPayload(role, location string, f Filters) Payload {
	switch p {
	case LinkedIn:
		return Payload{
			"location":         location,
			"keyword":          role,
			"country":          f.Country,
			"time_range":       f.TimeRange,
			"job_type":         f.JobType,
			"experience_level": f.ExperienceLevel,
			"remote":           f.Remote,
			"company":          f.Company,
		}
	case Glassdoor:
		return Payload{
			"location": location,
			"keyword":  role,
			"country":  f.Country,
		}
	case Indeed:
		// Indeed keys on keyword_search/domain rather than keyword/country
		// alone; date_posted and posted_by carry the time and company
		// filters on this platform.
		return Payload{
			"location":       location,
			"keyword_search": role,
			"country":        f.Country,
			"domain":         "indeed.com",
			"date_posted":    f.TimeRange,
			"posted_by":      f.Company,
		}
	default:
		return Payload{}
	}
}

// Equal reports deep equality between two payloads. Dedup of prior remote
// jobs relies on exact structural equality, not a normalized hash.
func (p Payload) Equal(other Payload) bool {
	if len(p) != len(other) {
		return false
	}
	for k, v := range p {
		ov, ok := other[k]
		if !ok || ov != v {
			return false
		}
	}
	return true
}
