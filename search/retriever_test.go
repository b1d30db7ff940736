package search

import (
	"context"
	"errors"
	"testing"

	"github.com/poiesic/jobscout/ai/mock"
	"github.com/poiesic/jobscout/core"
	"github.com/poiesic/jobscout/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubRepository lets tests inject exact nearest-neighbor results.
type stubRepository struct {
	matches []core.NearestMatch
	err     error
}

var _ storage.JobRepository = (*stubRepository)(nil)

func (s *stubRepository) FindNearest(_ context.Context, _ []float32, limit int) ([]core.NearestMatch, error) {
	if s.err != nil {
		return nil, s.err
	}
	if len(s.matches) > limit {
		return s.matches[:limit], nil
	}
	return s.matches, nil
}

func (s *stubRepository) AddEmbeddings(_ context.Context, _ ...*core.EmbeddingRecord) error {
	return nil
}

func (s *stubRepository) GetEmbedding(_ context.Context, _ string) (*core.EmbeddingRecord, error) {
	return nil, storage.ErrNotFound
}

func (s *stubRepository) GetEmbeddings(_ context.Context, _ ...string) ([]*core.EmbeddingRecord, error) {
	return nil, nil
}

func (s *stubRepository) DeleteEmbeddings(_ context.Context, _ ...string) error {
	return nil
}

func (s *stubRepository) Count(_ context.Context) (int, error) {
	return len(s.matches), nil
}

func (s *stubRepository) JobIDs(_ context.Context) ([]string, error) {
	ids := make([]string, 0, len(s.matches))
	for _, m := range s.matches {
		ids = append(ids, m.Record.JobID)
	}
	return ids, nil
}

func (s *stubRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func (s *stubRepository) Close() error { return nil }

func TestNewRetriever_Validation(t *testing.T) {
	_, err := NewRetriever(nil, mock.NewMockEmbedder())
	assert.ErrorIs(t, err, ErrJobRepositoryRequired)

	_, err = NewRetriever(&stubRepository{}, nil)
	assert.ErrorIs(t, err, ErrEmbedderRequired)
}

func TestRetrieve_SimilarityIsOneMinusDistance(t *testing.T) {
	repo := &stubRepository{
		matches: []core.NearestMatch{
			{Record: &core.EmbeddingRecord{JobID: "a", Document: "doc a"}, Distance: 0.0},
			{Record: &core.EmbeddingRecord{JobID: "b", Document: "doc b"}, Distance: 0.25},
			{Record: &core.EmbeddingRecord{JobID: "c", Document: "doc c"}, Distance: 1.8},
		},
	}

	retriever, err := NewRetriever(repo, mock.NewMockEmbedder())
	require.NoError(t, err)

	results, err := retriever.Retrieve(context.Background(), "find go jobs", 5)
	require.NoError(t, err)
	require.Len(t, results, 3)

	assert.Equal(t, 1.0, results[0].SimilarityScore)
	assert.Equal(t, 0.75, results[1].SimilarityScore)
	// Distances above 1 produce negative scores; that is expected.
	assert.InDelta(t, -0.8, results[2].SimilarityScore, 1e-9)
}

func TestRetrieve_SyntheticIDWhenStoreReturnsNone(t *testing.T) {
	repo := &stubRepository{
		matches: []core.NearestMatch{
			{Record: &core.EmbeddingRecord{JobID: "", Document: "doc"}, Distance: 0.1},
			{Record: &core.EmbeddingRecord{JobID: "real", Document: "doc"}, Distance: 0.2},
		},
	}

	retriever, err := NewRetriever(repo, mock.NewMockEmbedder())
	require.NoError(t, err)

	results, err := retriever.Retrieve(context.Background(), "find go jobs", 5)
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "result_0", results[0].ID)
	assert.Equal(t, "real", results[1].ID)
}

func TestRetrieve_EmbedderFailureIsConfigurationError(t *testing.T) {
	embedder := mock.NewMockEmbedder()
	embedder.EmbedTextFunc = func(_ context.Context, _ string) ([]float32, error) {
		return nil, errors.New("401 unauthorized")
	}

	retriever, err := NewRetriever(&stubRepository{}, embedder)
	require.NoError(t, err)

	_, err = retriever.Retrieve(context.Background(), "find go jobs", 5)
	assert.ErrorIs(t, err, core.ErrConfiguration)
}

func TestRetrieve_EmptyStoreIsNoDataError(t *testing.T) {
	repo := &stubRepository{err: storage.ErrEmptyStore}

	retriever, err := NewRetriever(repo, mock.NewMockEmbedder())
	require.NoError(t, err)

	_, err = retriever.Retrieve(context.Background(), "find go jobs", 5)
	assert.ErrorIs(t, err, core.ErrNoData)
	assert.NotErrorIs(t, err, core.ErrService)
	assert.Contains(t, err.Error(), "ingestion")
}

func TestRetrieve_OtherFailureIsServiceError(t *testing.T) {
	repo := &stubRepository{err: errors.New("connection refused")}

	retriever, err := NewRetriever(repo, mock.NewMockEmbedder())
	require.NoError(t, err)

	_, err = retriever.Retrieve(context.Background(), "find go jobs", 5)
	assert.ErrorIs(t, err, core.ErrService)
}

func TestRetrieve_DefaultsResultCount(t *testing.T) {
	matches := make([]core.NearestMatch, 8)
	for i := range matches {
		matches[i] = core.NearestMatch{
			Record:   &core.EmbeddingRecord{JobID: "job", Document: "doc"},
			Distance: float64(i) * 0.1,
		}
	}
	repo := &stubRepository{matches: matches}

	retriever, err := NewRetriever(repo, mock.NewMockEmbedder())
	require.NoError(t, err)

	results, err := retriever.Retrieve(context.Background(), "find go jobs", 0)
	require.NoError(t, err)
	assert.Len(t, results, 5)
}
