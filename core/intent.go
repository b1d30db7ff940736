package core

import "strings"

// IntentCategory is the handling strategy a query is classified into.
type IntentCategory string

const (
	// IntentJobListing marks queries asking for concrete job postings.
	IntentJobListing IntentCategory = "job_listing_request"
	// IntentAnalytical marks questions about the job market that still
	// benefit from retrieval (trends, comparisons, demand).
	IntentAnalytical IntentCategory = "analytical_question"
	// IntentGeneral marks everything else; answered conversationally.
	IntentGeneral IntentCategory = "general_question"
)

// ValidIntentCategory reports whether c is one of the known categories.
func ValidIntentCategory(c IntentCategory) bool {
	switch c {
	case IntentJobListing, IntentAnalytical, IntentGeneral:
		return true
	}
	return false
}

// temporalKeywords is the fixed vocabulary signaling that a query cares
// about recency.
var temporalKeywords = []string{
	"recent", "latest", "new", "newest", "fresh",
	"today", "yesterday", "this week", "last week",
}

// DetectTemporalKeywords scans a query case-insensitively for temporal
// keywords and returns the matches in vocabulary order. Temporal signals
// are attached to every intent regardless of which classifier produced it.
func DetectTemporalKeywords(query string) []string {
	q := strings.ToLower(query)
	var matched []string
	for _, kw := range temporalKeywords {
		if strings.Contains(q, kw) {
			matched = append(matched, kw)
		}
	}
	return matched
}

// QueryIntent is the structured interpretation of a free-text query.
// It is computed per request and never persisted.
type QueryIntent struct {
	Category         IntentCategory
	Confidence       float64 // in [0,1]
	RAGSuitable      bool
	TemporalIntent   bool
	TemporalKeywords []string
	Reasoning        string
}
