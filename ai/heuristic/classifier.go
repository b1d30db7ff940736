// Package heuristic implements deterministic, rule-based query intent
// classification. It needs no external services and never fails, which
// makes it the degradation target when the language-model classifier is
// unavailable.
package heuristic

import (
	"context"
	"strings"

	"github.com/poiesic/jobscout/core"
)

// highConfidencePhrases unambiguously signal a job-listing request.
var highConfidencePhrases = []string{
	"find jobs",
	"show me jobs",
	"i want a job",
}

// broadJobTerms weakly signal a job-listing request.
var broadJobTerms = []string{"jobs", "positions", "openings"}

// Classifier classifies queries with fixed lexical rules.
type Classifier struct{}

// NewClassifier creates a heuristic classifier.
func NewClassifier() *Classifier {
	return &Classifier{}
}

// Classify applies the rule cascade:
//
//  1. A high-confidence job-search phrase yields job_listing_request with
//     confidence 0.9, suitable for retrieval.
//  2. A broad job term yields job_listing_request with confidence 0.6,
//     suitable for retrieval only when the query has at least 3 words.
//  3. Everything else is a general question with confidence 0.3.
//
// Temporal fields are attached regardless of branch. Classify never
// returns an error.
func (c *Classifier) Classify(_ context.Context, query string) (core.QueryIntent, error) {
	q := strings.ToLower(strings.TrimSpace(query))
	words := strings.Fields(q)

	intent := core.QueryIntent{
		TemporalKeywords: core.DetectTemporalKeywords(query),
	}
	intent.TemporalIntent = len(intent.TemporalKeywords) > 0

	switch {
	case containsAny(q, highConfidencePhrases):
		intent.Category = core.IntentJobListing
		intent.Confidence = 0.9
		intent.RAGSuitable = true
		intent.Reasoning = "matched a high-confidence job-search phrase"
	case containsAny(q, broadJobTerms):
		intent.Category = core.IntentJobListing
		intent.Confidence = 0.6
		intent.RAGSuitable = len(words) >= 3
		intent.Reasoning = "mentions job terms without a clear search phrase"
	default:
		intent.Category = core.IntentGeneral
		intent.Confidence = 0.3
		intent.RAGSuitable = false
		intent.Reasoning = "no job-search signals detected"
	}

	return intent, nil
}

func containsAny(q string, terms []string) bool {
	for _, term := range terms {
		if strings.Contains(q, term) {
			return true
		}
	}
	return false
}
