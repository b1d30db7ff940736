package search

import (
	"testing"

	"github.com/poiesic/jobscout/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompose(t *testing.T) {
	composer := NewComposer()

	results := []core.RetrievedJob{
		{ID: "a", Document: "doc a", SimilarityScore: 0.9},
		{ID: "b", Document: "doc b", SimilarityScore: 0.7},
	}
	expansions := &core.GraphExpansions{
		RelatedJobs:    []core.RelatedJob{{ID: "rel", Reason: core.ReasonSameCompany}},
		Summary:        core.ExpansionSummary{TotalRelated: 1, SameCompany: 1},
		GraphAvailable: true,
	}
	enhanced := &core.GraphContext{
		SkillAnalysis: []core.SkillDemand{{Skill: "Python", Demand: 12}},
	}

	response := composer.Compose("find go jobs", core.QueryIntent{Category: core.IntentJobListing}, results, expansions, enhanced)

	assert.Equal(t, "find go jobs", response.Query)
	assert.True(t, response.UsedRetrieval)
	assert.Equal(t, 2, response.TotalResults)
	assert.Len(t, response.Results, 2)
	require.NotNil(t, response.GraphExpansions)
	assert.True(t, response.GraphExpansions.GraphAvailable)
	require.NotNil(t, response.EnhancedContext)
	assert.Equal(t, "Found 2 relevant jobs for 'find go jobs'", response.Summary)
}

func TestCompose_TemporalSummary(t *testing.T) {
	composer := NewComposer()

	intent := core.QueryIntent{
		Category:         core.IntentJobListing,
		TemporalIntent:   true,
		TemporalKeywords: []string{"latest"},
	}

	response := composer.Compose("latest go jobs", intent, []core.RetrievedJob{{ID: "a"}}, nil, nil)
	assert.Equal(t, "Found 1 recent jobs", response.Summary)
}

func TestCompose_NilResults(t *testing.T) {
	composer := NewComposer()

	response := composer.Compose("find go jobs", core.QueryIntent{}, nil, nil, nil)

	assert.NotNil(t, response.Results)
	assert.Empty(t, response.Results)
	assert.Equal(t, 0, response.TotalResults)
}
