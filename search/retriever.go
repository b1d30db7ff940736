package search

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/poiesic/jobscout/ai"
	"github.com/poiesic/jobscout/core"
	"github.com/poiesic/jobscout/storage"
)

// Retriever performs similarity retrieval over the job posting index.
type Retriever struct {
	repository storage.JobRepository
	embedder   ai.Embedder
	logger     *slog.Logger
}

// NewRetriever creates a similarity retriever.
func NewRetriever(repository storage.JobRepository, embedder ai.Embedder) (*Retriever, error) {
	if repository == nil {
		return nil, ErrJobRepositoryRequired
	}
	if embedder == nil {
		return nil, ErrEmbedderRequired
	}
	return &Retriever{
		repository: repository,
		embedder:   embedder,
		logger:     slog.Default().With("component", "retriever"),
	}, nil
}

// Retrieve embeds the query, runs a nearest-neighbor search, and returns
// ranked results. The similarity score is exactly 1 - distance, so
// identical vectors score 1.0 and very dissimilar ones can go negative.
//
// Error taxonomy:
//   - embedding provider failure wraps core.ErrConfiguration
//   - empty index wraps core.ErrNoData (caller should suggest ingestion)
//   - anything else wraps core.ErrService
func (r *Retriever) Retrieve(ctx context.Context, query string, nResults int) ([]core.RetrievedJob, error) {
	if nResults <= 0 {
		nResults = 5
	}

	vector, err := r.embedder.EmbedText(ctx, query)
	if err != nil {
		r.logger.Error("embedding provider failed", "err", err)
		return nil, fmt.Errorf("%w: embedding provider: %v", core.ErrConfiguration, err)
	}

	matches, err := r.repository.FindNearest(ctx, vector, nResults)
	if err != nil {
		if errors.Is(err, storage.ErrEmptyStore) {
			return nil, fmt.Errorf("%w: run ingestion first", core.ErrNoData)
		}
		r.logger.Error("vector index query failed", "err", err)
		return nil, fmt.Errorf("%w: vector index: %v", core.ErrService, err)
	}

	results := make([]core.RetrievedJob, 0, len(matches))
	for i, match := range matches {
		id := match.Record.JobID
		if id == "" {
			id = fmt.Sprintf("result_%d", i)
		}
		results = append(results, core.RetrievedJob{
			ID:              id,
			Document:        match.Record.Document,
			SimilarityScore: 1 - match.Distance,
			Metadata:        match.Record.Metadata,
		})
	}

	r.logger.Debug("retrieved jobs", "query", query, "count", len(results))
	return results, nil
}
