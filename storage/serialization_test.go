package storage

import (
	"testing"
	"time"

	"github.com/poiesic/jobscout/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarshalUnmarshalEmbeddingRecord(t *testing.T) {
	now := time.Now().UTC().Truncate(time.Microsecond)

	tests := []struct {
		name   string
		record *core.EmbeddingRecord
	}{
		{
			name: "full record",
			record: &core.EmbeddingRecord{
				JobID:    core.PostingID("Senior Go Engineer", "Acme", "Berlin"),
				Vector:   []float32{0.1, 0.2, 0.3, 0.4},
				Document: "Senior Go Engineer at Acme in Berlin",
				Metadata: map[string]string{
					"title":   "Senior Go Engineer",
					"company": "Acme",
				},
				IngestedAt: now,
			},
		},
		{
			name: "record without metadata",
			record: &core.EmbeddingRecord{
				JobID:      "abc123",
				Vector:     []float32{1.0},
				Document:   "doc",
				IngestedAt: now,
			},
		},
		{
			name: "record without vector",
			record: &core.EmbeddingRecord{
				JobID:      "abc123",
				Document:   "doc",
				Metadata:   map[string]string{"k": "v"},
				IngestedAt: now,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := MarshalEmbeddingRecord(tt.record)
			require.NotNil(t, data)
			require.NotEmpty(t, data)

			decoded, err := UnmarshalEmbeddingRecord(data)
			require.NoError(t, err)
			assert.Equal(t, tt.record.JobID, decoded.JobID)
			assert.Equal(t, tt.record.Vector, decoded.Vector)
			assert.Equal(t, tt.record.Document, decoded.Document)
			assert.Equal(t, len(tt.record.Metadata), len(decoded.Metadata))
			for k, v := range tt.record.Metadata {
				assert.Equal(t, v, decoded.Metadata[k])
			}
			assert.True(t, tt.record.IngestedAt.Equal(decoded.IngestedAt))
		})
	}
}

func TestUnmarshalEmbeddingRecord_Invalid(t *testing.T) {
	_, err := UnmarshalEmbeddingRecord([]byte{})
	assert.Error(t, err)
}
