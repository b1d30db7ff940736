package search

import (
	"testing"

	"github.com/poiesic/jobscout/core"
	"github.com/stretchr/testify/assert"
)

func jobListingIntent(confidence float64, ragSuitable bool) core.QueryIntent {
	return core.QueryIntent{
		Category:    core.IntentJobListing,
		Confidence:  confidence,
		RAGSuitable: ragSuitable,
	}
}

func TestDecide_TooBroadIsHardVeto(t *testing.T) {
	gate := NewGate()

	// Even a perfect intent cannot rescue a too-broad query.
	intent := jobListingIntent(0.95, true)

	for _, query := range []string{
		"jobs",
		"job",
		"work",
		"career",
		"help",
		"what",
		"how",
		"why?",
		"tell me about engineering",
		"tell me about Python jobs in Berlin",
	} {
		t.Run(query, func(t *testing.T) {
			decision := gate.Decide(query, intent)
			assert.True(t, decision.TooBroad)
			assert.False(t, decision.UseRAG)
		})
	}
}

func TestDecide_SpecificQueryRoutesToRetrieval(t *testing.T) {
	gate := NewGate()

	decision := gate.Decide(
		"Find AI jobs at biotech companies in San Francisco",
		jobListingIntent(0.9, true),
	)

	assert.False(t, decision.TooBroad)
	assert.True(t, decision.UseRAG)
	assert.GreaterOrEqual(t, decision.QualityScore, 0.6)
}

func TestDecide_GeneralQuestionFailsVote(t *testing.T) {
	gate := NewGate()

	intent := core.QueryIntent{
		Category:    core.IntentGeneral,
		Confidence:  0.3,
		RAGSuitable: false,
	}

	decision := gate.Decide("what is a linked list", intent)
	assert.False(t, decision.UseRAG)
}

func TestDecide_AnalyticalCategoryCounts(t *testing.T) {
	gate := NewGate()

	intent := core.QueryIntent{
		Category:    core.IntentAnalytical,
		Confidence:  0.85,
		RAGSuitable: true,
	}

	decision := gate.Decide("which companies are hiring Python developers in Berlin", intent)
	assert.True(t, decision.UseRAG)
}

func TestDecide_FiveFactorsReported(t *testing.T) {
	gate := NewGate()

	decision := gate.Decide("find go jobs in Berlin", jobListingIntent(0.9, true))
	assert.Len(t, decision.Factors, 5)

	names := make([]string, 0, len(decision.Factors))
	for _, f := range decision.Factors {
		names = append(names, f.Name)
	}
	assert.Contains(t, names, "retrieval_category")
	assert.Contains(t, names, "confident_classification")
	assert.Contains(t, names, "query_quality")
	assert.Contains(t, names, "not_too_broad")
	assert.Contains(t, names, "searchable_context")
}

func TestQualityScore(t *testing.T) {
	tests := []struct {
		name   string
		query  string
		intent core.QueryIntent
		want   float64
	}{
		{
			name:   "all checks pass",
			query:  "python developer jobs",
			intent: jobListingIntent(0.9, true),
			want:   1.0,
		},
		{
			name:   "no checks pass",
			query:  "x",
			intent: core.QueryIntent{Category: core.IntentGeneral, Confidence: 0.2},
			want:   0.0,
		},
		{
			name:   "half pass",
			query:  "any openings",
			intent: core.QueryIntent{Category: core.IntentJobListing, Confidence: 0.6, RAGSuitable: true},
			want:   0.5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, qualityScore(tt.query, tt.intent))
		})
	}
}

func TestHasSearchableContext(t *testing.T) {
	tests := []struct {
		query string
		want  bool
	}{
		{"Find jobs at Google", true},      // length + uppercase + preposition
		{"python developer roles", false},  // length alone is one kind of evidence
		{"Python developer roles", false},  // first-word capitalization carries no signal
		{"jobs", false},                    // nothing
		{"remote work", false},             // nothing
		{"engineer in Berlin", true},       // length + preposition + uppercase
		{"working with Kubernetes", true},  // preposition + uppercase
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			assert.Equal(t, tt.want, hasSearchableContext(tt.query))
		})
	}
}

func TestMentionsDomainVocabulary(t *testing.T) {
	tests := []struct {
		query string
		want  bool
	}{
		{"python developer roles", true},
		{"machine learning positions", true},
		{"openings in san francisco", true},
		{"go jobs", true},
		{"going home", false}, // "go" must match a whole token
		{"said hello", false}, // "ai" must match a whole token
		{"bake bread", false},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			assert.Equal(t, tt.want, mentionsDomainVocabulary(tt.query))
		})
	}
}

func TestGuidance(t *testing.T) {
	gate := NewGate()

	decision := gate.Decide("jobs", jobListingIntent(0.6, false))
	guidance := gate.Guidance(decision)

	assert.NotEmpty(t, guidance.Message)
	assert.Contains(t, guidance.Message, "too broad")
	assert.NotEmpty(t, guidance.ExampleQuery)
	assert.Len(t, guidance.Factors, 5)
}
