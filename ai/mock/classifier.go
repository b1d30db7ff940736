package mock

import (
	"context"
	"strings"

	"github.com/poiesic/jobscout/core"
)

// MockClassifier is a test double for ai.Classifier.
// It allows custom behavior injection via function fields.
type MockClassifier struct {
	// ClassifyFunc is called by Classify if set.
	// If nil, uses default keyword-based behavior.
	ClassifyFunc func(ctx context.Context, query string) (core.QueryIntent, error)

	callCount int
}

// NewMockClassifier creates a mock classifier with default keyword behavior.
// Note: Returns concrete type to allow test assertions.
func NewMockClassifier() *MockClassifier {
	return &MockClassifier{}
}

// Classify applies simple keyword rules unless ClassifyFunc is injected.
// Queries mentioning "job" classify as job_listing_request with high
// confidence, everything else as general_question.
func (m *MockClassifier) Classify(ctx context.Context, query string) (core.QueryIntent, error) {
	m.callCount++

	if m.ClassifyFunc != nil {
		return m.ClassifyFunc(ctx, query)
	}

	intent := core.QueryIntent{
		Category:         core.IntentGeneral,
		Confidence:       0.3,
		TemporalKeywords: core.DetectTemporalKeywords(query),
	}
	intent.TemporalIntent = len(intent.TemporalKeywords) > 0

	if strings.Contains(strings.ToLower(query), "job") {
		intent.Category = core.IntentJobListing
		intent.Confidence = 0.9
		intent.RAGSuitable = true
	}
	return intent, nil
}

// CallCount returns the number of times Classify was called.
func (m *MockClassifier) CallCount() int {
	return m.callCount
}

// Reset clears the call count and injected behavior.
func (m *MockClassifier) Reset() {
	m.callCount = 0
	m.ClassifyFunc = nil
}
