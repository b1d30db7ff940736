package search

import (
	"context"
	"errors"
	"testing"

	aimock "github.com/poiesic/jobscout/ai/mock"
	"github.com/poiesic/jobscout/core"
	"github.com/poiesic/jobscout/graph"
	graphmock "github.com/poiesic/jobscout/graph/mock"
	"github.com/poiesic/jobscout/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHandler(t *testing.T, repo storage.JobRepository, store graph.Store) (*Handler, *aimock.MockClassifier, *aimock.MockCompleter) {
	t.Helper()

	retriever, err := NewRetriever(repo, aimock.NewMockEmbedder())
	require.NoError(t, err)

	expander, err := graph.NewExpander(store)
	require.NoError(t, err)

	classifier := aimock.NewMockClassifier()
	completer := aimock.NewMockCompleter()

	handler, err := NewHandler(classifier, completer, retriever, expander)
	require.NoError(t, err)
	return handler, classifier, completer
}

func listingIntent() core.QueryIntent {
	return core.QueryIntent{
		Category:    core.IntentJobListing,
		Confidence:  0.9,
		RAGSuitable: true,
	}
}

func TestNewHandler_Validation(t *testing.T) {
	retriever, err := NewRetriever(&stubRepository{}, aimock.NewMockEmbedder())
	require.NoError(t, err)
	expander, err := graph.NewExpander(graphmock.NewMockStore())
	require.NoError(t, err)

	_, err = NewHandler(nil, nil, retriever, expander)
	assert.ErrorIs(t, err, ErrClassifierRequired)

	_, err = NewHandler(aimock.NewMockClassifier(), nil, nil, expander)
	assert.ErrorIs(t, err, ErrRetrieverRequired)

	_, err = NewHandler(aimock.NewMockClassifier(), nil, retriever, nil)
	assert.ErrorIs(t, err, ErrExpanderRequired)
}

func TestHandle_RetrievalPath(t *testing.T) {
	repo := &stubRepository{
		matches: []core.NearestMatch{
			{Record: &core.EmbeddingRecord{JobID: "a", Document: "Go Engineer at Acme", Metadata: map[string]string{"company": "Acme"}}, Distance: 0.1},
		},
	}
	handler, classifier, _ := newTestHandler(t, repo, graphmock.NewMockStore())
	classifier.ClassifyFunc = func(_ context.Context, _ string) (core.QueryIntent, error) {
		return listingIntent(), nil
	}

	response, err := handler.Handle(context.Background(), "Find Go jobs at Acme in Berlin", 5)
	require.NoError(t, err)

	assert.True(t, response.UsedRetrieval)
	assert.Equal(t, 1, response.TotalResults)
	assert.InDelta(t, 0.9, response.Results[0].SimilarityScore, 1e-9)
	require.NotNil(t, response.GraphExpansions)
	assert.True(t, response.GraphExpansions.GraphAvailable)
	require.NotNil(t, response.EnhancedContext)
	assert.Nil(t, response.Guidance)
}

func TestHandle_GatedGeneralQuestionGetsAnswer(t *testing.T) {
	handler, classifier, completer := newTestHandler(t, &stubRepository{}, graphmock.NewMockStore())
	classifier.ClassifyFunc = func(_ context.Context, _ string) (core.QueryIntent, error) {
		return core.QueryIntent{Category: core.IntentGeneral, Confidence: 0.3}, nil
	}
	completer.CompleteFunc = func(_ context.Context, _, _ string) (string, error) {
		return "a direct answer", nil
	}

	response, err := handler.Handle(context.Background(), "what is a resume", 5)
	require.NoError(t, err)

	assert.False(t, response.UsedRetrieval)
	assert.Equal(t, "a direct answer", response.Answer)
	assert.Nil(t, response.Guidance)
	assert.Empty(t, response.Results)
}

func TestHandle_GatedGeneralQuestionDegradesToGuidance(t *testing.T) {
	handler, classifier, completer := newTestHandler(t, &stubRepository{}, graphmock.NewMockStore())
	classifier.ClassifyFunc = func(_ context.Context, _ string) (core.QueryIntent, error) {
		return core.QueryIntent{Category: core.IntentGeneral, Confidence: 0.3}, nil
	}
	completer.CompleteFunc = func(_ context.Context, _, _ string) (string, error) {
		return "", errors.New("model unavailable")
	}

	response, err := handler.Handle(context.Background(), "what is a resume", 5)
	require.NoError(t, err)

	assert.False(t, response.UsedRetrieval)
	assert.Empty(t, response.Answer)
	require.NotNil(t, response.Guidance)
	assert.Len(t, response.Guidance.Factors, 5)
}

func TestHandle_GatedListingQueryGetsGuidance(t *testing.T) {
	handler, classifier, completer := newTestHandler(t, &stubRepository{}, graphmock.NewMockStore())
	classifier.ClassifyFunc = func(_ context.Context, _ string) (core.QueryIntent, error) {
		// Broad single-word query still classified as a listing request.
		return core.QueryIntent{Category: core.IntentJobListing, Confidence: 0.6}, nil
	}

	response, err := handler.Handle(context.Background(), "jobs", 5)
	require.NoError(t, err)

	assert.False(t, response.UsedRetrieval)
	require.NotNil(t, response.Guidance)
	assert.Equal(t, 0, completer.CallCount())
}

func TestHandle_RetrievalErrorAborts(t *testing.T) {
	repo := &stubRepository{err: storage.ErrEmptyStore}
	handler, classifier, _ := newTestHandler(t, repo, graphmock.NewMockStore())
	classifier.ClassifyFunc = func(_ context.Context, _ string) (core.QueryIntent, error) {
		return listingIntent(), nil
	}

	_, err := handler.Handle(context.Background(), "Find Go jobs at Acme in Berlin", 5)
	assert.ErrorIs(t, err, core.ErrNoData)
}

func TestHandle_GraphFailureDegrades(t *testing.T) {
	repo := &stubRepository{
		matches: []core.NearestMatch{
			{Record: &core.EmbeddingRecord{JobID: "a", Document: "doc"}, Distance: 0.1},
		},
	}
	store := graphmock.NewMockStore()
	store.SessionFunc = func(_ context.Context) (graph.Session, error) {
		return nil, graph.ErrUnavailable
	}

	handler, classifier, _ := newTestHandler(t, repo, store)
	classifier.ClassifyFunc = func(_ context.Context, _ string) (core.QueryIntent, error) {
		return listingIntent(), nil
	}

	response, err := handler.Handle(context.Background(), "Find Go jobs at Acme in Berlin", 5)
	require.NoError(t, err)

	assert.True(t, response.UsedRetrieval)
	require.NotNil(t, response.GraphExpansions)
	assert.False(t, response.GraphExpansions.GraphAvailable)
	assert.Empty(t, response.GraphExpansions.RelatedJobs)
	assert.Nil(t, response.EnhancedContext)
}

// recordingMonitor captures pipeline callbacks for assertions.
type recordingMonitor struct {
	started    bool
	classified bool
	gated      bool
	retrieved  bool
	expanded   bool
	finished   bool
}

func (m *recordingMonitor) Start(_ string)                         { m.started = true }
func (m *recordingMonitor) AfterClassification(_ core.QueryIntent) { m.classified = true }
func (m *recordingMonitor) AfterGate(_ Decision)                   { m.gated = true }
func (m *recordingMonitor) AfterRetrieval(_ []core.RetrievedJob)   { m.retrieved = true }
func (m *recordingMonitor) AfterExpansion(_ *core.GraphExpansions) { m.expanded = true }
func (m *recordingMonitor) Finish(_ *core.Response)                { m.finished = true }

func TestHandleWithMonitor_CallbackSequence(t *testing.T) {
	repo := &stubRepository{
		matches: []core.NearestMatch{
			{Record: &core.EmbeddingRecord{JobID: "a", Document: "doc"}, Distance: 0.1},
		},
	}
	handler, classifier, _ := newTestHandler(t, repo, graphmock.NewMockStore())
	classifier.ClassifyFunc = func(_ context.Context, _ string) (core.QueryIntent, error) {
		return listingIntent(), nil
	}

	monitor := &recordingMonitor{}
	_, err := handler.HandleWithMonitor(context.Background(), "Find Go jobs at Acme in Berlin", 5, monitor)
	require.NoError(t, err)

	assert.True(t, monitor.started)
	assert.True(t, monitor.classified)
	assert.True(t, monitor.gated)
	assert.True(t, monitor.retrieved)
	assert.True(t, monitor.expanded)
	assert.True(t, monitor.finished)
}

func TestHandleWithMonitor_GatedSkipsRetrievalCallbacks(t *testing.T) {
	handler, classifier, _ := newTestHandler(t, &stubRepository{}, graphmock.NewMockStore())
	classifier.ClassifyFunc = func(_ context.Context, _ string) (core.QueryIntent, error) {
		return core.QueryIntent{Category: core.IntentGeneral, Confidence: 0.3}, nil
	}

	monitor := &recordingMonitor{}
	_, err := handler.HandleWithMonitor(context.Background(), "what is a resume", 5, monitor)
	require.NoError(t, err)

	assert.True(t, monitor.gated)
	assert.False(t, monitor.retrieved)
	assert.False(t, monitor.expanded)
	assert.True(t, monitor.finished)
}
