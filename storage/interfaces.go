package storage

import (
	"context"

	"github.com/poiesic/jobscout/core"
)

// VectorSearcher provides nearest-neighbor search over stored embeddings.
type VectorSearcher interface {
	// FindNearest finds the embedding records nearest to the given vector
	// by cosine distance. Returns up to limit matches ordered by distance
	// ascending (closest first).
	// Returns ErrEmptyStore when no records have been ingested at all.
	FindNearest(ctx context.Context, vector []float32, limit int) ([]core.NearestMatch, error)
}

// TransactionManager provides transaction support.
type TransactionManager interface {
	// WithTransaction executes a function within a transaction.
	// If fn returns an error, the transaction is rolled back.
	// If fn returns nil, the transaction is committed.
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// JobRepository provides operations for managing job posting embedding
// records. Implementations must be thread-safe.
type JobRepository interface {
	VectorSearcher
	TransactionManager

	// AddEmbeddings stores embedding records, replacing any existing record
	// with the same JobID wholesale. Re-ingesting a posting is therefore
	// idempotent. Sets IngestedAt if not already set.
	AddEmbeddings(ctx context.Context, records ...*core.EmbeddingRecord) error

	// GetEmbedding retrieves a single embedding record by job ID.
	// Returns ErrNotFound if the record doesn't exist.
	GetEmbedding(ctx context.Context, jobID string) (*core.EmbeddingRecord, error)

	// GetEmbeddings retrieves multiple embedding records by their job IDs.
	// Returns only the records that exist (no error for missing records).
	GetEmbeddings(ctx context.Context, jobIDs ...string) ([]*core.EmbeddingRecord, error)

	// DeleteEmbeddings removes embedding records by their job IDs.
	// Returns ErrNotFound if any record doesn't exist.
	DeleteEmbeddings(ctx context.Context, jobIDs ...string) error

	// Count returns the number of stored embedding records.
	Count(ctx context.Context) (int, error)

	// JobIDs returns the IDs of all stored embedding records in key order.
	// Used for full-store sweeps like reembedding.
	JobIDs(ctx context.Context) ([]string, error)

	// Close closes the repository and releases resources.
	Close() error
}
