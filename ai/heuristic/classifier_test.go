package heuristic

import (
	"context"
	"testing"

	"github.com/poiesic/jobscout/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify_HighConfidencePhrases(t *testing.T) {
	classifier := NewClassifier()
	ctx := context.Background()

	for _, query := range []string{
		"find jobs in Berlin",
		"Show me jobs at Google",
		"I want a job in machine learning",
		"FIND JOBS",
	} {
		t.Run(query, func(t *testing.T) {
			intent, err := classifier.Classify(ctx, query)
			require.NoError(t, err)
			assert.Equal(t, core.IntentJobListing, intent.Category)
			assert.Equal(t, 0.9, intent.Confidence)
			assert.True(t, intent.RAGSuitable)
		})
	}
}

func TestClassify_BroadJobTerms(t *testing.T) {
	classifier := NewClassifier()
	ctx := context.Background()

	t.Run("three or more words is rag suitable", func(t *testing.T) {
		intent, err := classifier.Classify(ctx, "python developer positions")
		require.NoError(t, err)
		assert.Equal(t, core.IntentJobListing, intent.Category)
		assert.Equal(t, 0.6, intent.Confidence)
		assert.True(t, intent.RAGSuitable)
	})

	t.Run("short query is not rag suitable", func(t *testing.T) {
		intent, err := classifier.Classify(ctx, "jobs")
		require.NoError(t, err)
		assert.Equal(t, core.IntentJobListing, intent.Category)
		assert.Equal(t, 0.6, intent.Confidence)
		assert.False(t, intent.RAGSuitable)
	})

	t.Run("two words is not rag suitable", func(t *testing.T) {
		intent, err := classifier.Classify(ctx, "any openings")
		require.NoError(t, err)
		assert.False(t, intent.RAGSuitable)
	})
}

func TestClassify_GeneralQuestion(t *testing.T) {
	classifier := NewClassifier()

	intent, err := classifier.Classify(context.Background(), "what is a neural network")
	require.NoError(t, err)
	assert.Equal(t, core.IntentGeneral, intent.Category)
	assert.Equal(t, 0.3, intent.Confidence)
	assert.False(t, intent.RAGSuitable)
}

func TestClassify_TemporalSignals(t *testing.T) {
	classifier := NewClassifier()
	ctx := context.Background()

	t.Run("attached on job listing branch", func(t *testing.T) {
		intent, err := classifier.Classify(ctx, "show me the latest jobs from this week")
		require.NoError(t, err)
		assert.True(t, intent.TemporalIntent)
		assert.Contains(t, intent.TemporalKeywords, "latest")
		assert.Contains(t, intent.TemporalKeywords, "this week")
	})

	t.Run("attached on general branch", func(t *testing.T) {
		intent, err := classifier.Classify(ctx, "what happened yesterday")
		require.NoError(t, err)
		assert.Equal(t, core.IntentGeneral, intent.Category)
		assert.True(t, intent.TemporalIntent)
		assert.Equal(t, []string{"yesterday"}, intent.TemporalKeywords)
	})

	t.Run("absent without keywords", func(t *testing.T) {
		intent, err := classifier.Classify(ctx, "find jobs in Paris")
		require.NoError(t, err)
		assert.False(t, intent.TemporalIntent)
		assert.Empty(t, intent.TemporalKeywords)
	})
}
