package ingestion

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/poiesic/jobscout/ai"
	"github.com/poiesic/jobscout/core"
	"github.com/poiesic/jobscout/storage"
)

// embeddingProcessor embeds posting documents and stores the records.
type embeddingProcessor struct {
	jobRepository storage.JobRepository
	embedder      ai.Embedder
	logger        *slog.Logger
}

var _ processor = (*embeddingProcessor)(nil)

// newEmbeddingProcessor creates a new embedding processor.
func newEmbeddingProcessor(jobRepository storage.JobRepository, embedder ai.Embedder, logger *slog.Logger) (processor, error) {
	if jobRepository == nil {
		return nil, fmt.Errorf("job repository required")
	}
	if embedder == nil {
		return nil, fmt.Errorf("embedder required")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &embeddingProcessor{
		jobRepository: jobRepository,
		embedder:      embedder,
		logger:        logger.With("processor", "embeddings"),
	}, nil
}

// process embeds the postings' documents and replaces their stored records.
func (ep *embeddingProcessor) process(ctx context.Context, postings ...*core.JobPosting) error {
	if len(postings) == 0 {
		return nil
	}

	ep.logger.Info("processing postings for embeddings", "postings", len(postings))

	texts := make([]string, len(postings))
	for i, posting := range postings {
		texts[i] = posting.Document()
	}

	ep.logger.Debug("generating embeddings for posting documents", "documents", len(texts))
	embeddings, err := ep.embedder.EmbedTexts(ctx, texts)
	if err != nil {
		ep.logger.Error("error generating embeddings", "err", err)
		return err
	}

	if len(embeddings) != len(postings) {
		return fmt.Errorf("embedding result mismatch. expected %d, received %d", len(postings), len(embeddings))
	}

	now := time.Now().UTC()
	records := make([]*core.EmbeddingRecord, len(postings))
	for i, posting := range postings {
		records[i] = &core.EmbeddingRecord{
			JobID:      posting.ID,
			Vector:     embeddings[i],
			Document:   texts[i],
			Metadata:   posting.Metadata(),
			IngestedAt: now,
		}
	}

	return ep.jobRepository.AddEmbeddings(ctx, records...)
}
