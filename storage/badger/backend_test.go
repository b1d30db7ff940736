package badger

import (
	"context"
	"testing"

	"github.com/poiesic/jobscout/core"
	"github.com/poiesic/jobscout/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenBackend_InMemory(t *testing.T) {
	backend, err := OpenBackend("", true)
	require.NoError(t, err)
	require.NotNil(t, backend)
	defer backend.Close()

	assert.False(t, backend.IsClosed())
}

func TestOpenBackend_FileSystem(t *testing.T) {
	tmpDir := t.TempDir()
	backend, err := OpenBackend(tmpDir, false)
	require.NoError(t, err)
	require.NotNil(t, backend)
	defer backend.Close()

	assert.False(t, backend.IsClosed())
}

func TestBackendClose(t *testing.T) {
	backend, err := OpenBackend("", true)
	require.NoError(t, err)
	require.NotNil(t, backend)

	assert.False(t, backend.IsClosed())

	err = backend.Close()
	require.NoError(t, err)

	assert.True(t, backend.IsClosed())
}

func TestFindNearest_EmptyStore(t *testing.T) {
	backend, err := OpenBackend("", true)
	require.NoError(t, err)
	defer backend.Close()

	ctx := context.Background()
	vector := []float32{0.1, 0.2, 0.3}

	_, err = backend.FindNearest(ctx, vector, 10)
	assert.ErrorIs(t, err, storage.ErrEmptyStore)
}

func TestFindNearest_InvalidLimit(t *testing.T) {
	backend, err := OpenBackend("", true)
	require.NoError(t, err)
	defer backend.Close()

	_, err = backend.FindNearest(context.Background(), []float32{0.1}, 0)
	assert.ErrorIs(t, err, storage.ErrInvalidQuery)
}

func TestFindNearest_WithRecords(t *testing.T) {
	repo, _, err := NewMemoryRepository()
	require.NoError(t, err)
	defer repo.Close()

	ctx := context.Background()

	records := []*core.EmbeddingRecord{
		{
			JobID:    "job-aligned",
			Document: "Go Engineer",
			Vector:   []float32{1.0, 0.0, 0.0}, // Identical direction to query
		},
		{
			JobID:    "job-close",
			Document: "Backend Engineer",
			Vector:   []float32{0.9, 0.1, 0.0}, // Close to query
		},
		{
			JobID:    "job-orthogonal",
			Document: "Pastry Chef",
			Vector:   []float32{0.0, 0.0, 1.0}, // Orthogonal to query
		},
	}
	require.NoError(t, repo.AddEmbeddings(ctx, records...))

	matches, err := repo.FindNearest(ctx, []float32{1.0, 0.0, 0.0}, 10)
	require.NoError(t, err)
	require.Len(t, matches, 3)

	// Ordered by distance ascending
	assert.Equal(t, "job-aligned", matches[0].Record.JobID)
	assert.Equal(t, "job-close", matches[1].Record.JobID)
	assert.Equal(t, "job-orthogonal", matches[2].Record.JobID)

	assert.InDelta(t, 0.0, matches[0].Distance, 1e-6)
	assert.InDelta(t, 1.0, matches[2].Distance, 1e-6)
}

func TestFindNearest_LimitApplied(t *testing.T) {
	repo, _, err := NewMemoryRepository()
	require.NoError(t, err)
	defer repo.Close()

	ctx := context.Background()
	for _, r := range []*core.EmbeddingRecord{
		{JobID: "a", Document: "a", Vector: []float32{1, 0}},
		{JobID: "b", Document: "b", Vector: []float32{0.9, 0.1}},
		{JobID: "c", Document: "c", Vector: []float32{0, 1}},
	} {
		require.NoError(t, repo.AddEmbeddings(ctx, r))
	}

	matches, err := repo.FindNearest(ctx, []float32{1, 0}, 2)
	require.NoError(t, err)
	assert.Len(t, matches, 2)
}

func TestFindNearest_SkipsRecordsWithoutVectors(t *testing.T) {
	repo, _, err := NewMemoryRepository()
	require.NoError(t, err)
	defer repo.Close()

	ctx := context.Background()
	require.NoError(t, repo.AddEmbeddings(ctx,
		&core.EmbeddingRecord{JobID: "with-vector", Document: "doc", Vector: []float32{1, 0}},
		&core.EmbeddingRecord{JobID: "without-vector", Document: "doc"},
	))

	matches, err := repo.FindNearest(ctx, []float32{1, 0}, 10)
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, "with-vector", matches[0].Record.JobID)
}

func TestCosineDistance(t *testing.T) {
	tests := []struct {
		name string
		a, b []float32
		want float64
	}{
		{"identical unit vectors", []float32{1, 0}, []float32{1, 0}, 0.0},
		{"orthogonal vectors", []float32{1, 0}, []float32{0, 1}, 1.0},
		{"opposite vectors", []float32{1, 0}, []float32{-1, 0}, 2.0},
		{"scaled vectors same direction", []float32{1, 0}, []float32{5, 0}, 0.0},
		{"zero vector", []float32{0, 0}, []float32{1, 0}, 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, cosineDistance(tt.a, tt.b), 1e-6)
		})
	}
}
