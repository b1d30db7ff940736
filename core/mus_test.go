package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddingRecordMUS_RoundTrip(t *testing.T) {
	record := EmbeddingRecord{
		JobID:    PostingID("Senior AI Engineer", "Google", "San Francisco, CA"),
		Vector:   []float32{0.1, -0.5, 0.75, 1.0},
		Document: "Senior AI Engineer at Google (San Francisco, CA)",
		Metadata: map[string]string{
			"title":    "Senior AI Engineer",
			"company":  "Google",
			"location": "San Francisco, CA",
		},
		IngestedAt: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}

	bs := make([]byte, EmbeddingRecordMUS.Size(record))
	n := EmbeddingRecordMUS.Marshal(record, bs)
	require.Equal(t, len(bs), n, "Marshal must fill exactly Size bytes")

	decoded, m, err := EmbeddingRecordMUS.Unmarshal(bs)
	require.NoError(t, err)
	assert.Equal(t, n, m)
	assert.Equal(t, record, decoded)
}

func TestEmbeddingRecordMUS_EmptyFields(t *testing.T) {
	record := EmbeddingRecord{
		JobID:      "abc123",
		Document:   "a job",
		IngestedAt: time.UnixMicro(0).UTC(),
	}

	bs := make([]byte, EmbeddingRecordMUS.Size(record))
	EmbeddingRecordMUS.Marshal(record, bs)

	decoded, _, err := EmbeddingRecordMUS.Unmarshal(bs)
	require.NoError(t, err)
	assert.Empty(t, decoded.Vector)
	assert.Empty(t, decoded.Metadata)
	assert.Equal(t, record.JobID, decoded.JobID)
}

func TestEmbeddingRecordMUS_DeterministicBytes(t *testing.T) {
	record := EmbeddingRecord{
		JobID:    "id1",
		Document: "doc",
		Metadata: map[string]string{"b": "2", "a": "1", "c": "3"},
	}

	first := make([]byte, EmbeddingRecordMUS.Size(record))
	EmbeddingRecordMUS.Marshal(record, first)

	// Map iteration order varies; serialized form must not.
	for i := 0; i < 10; i++ {
		again := make([]byte, EmbeddingRecordMUS.Size(record))
		EmbeddingRecordMUS.Marshal(record, again)
		assert.Equal(t, first, again)
	}
}

func TestEmbeddingRecordMUS_Truncated(t *testing.T) {
	record := EmbeddingRecord{JobID: "id1", Document: "document text", Vector: []float32{1, 2, 3}}
	bs := make([]byte, EmbeddingRecordMUS.Size(record))
	EmbeddingRecordMUS.Marshal(record, bs)

	_, _, err := EmbeddingRecordMUS.Unmarshal(bs[:len(bs)/2])
	assert.Error(t, err)
}
