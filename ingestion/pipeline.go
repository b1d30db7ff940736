package ingestion

import (
	"context"
	"log/slog"
	"runtime"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"
	"github.com/poiesic/jobscout/ai"
	"github.com/poiesic/jobscout/core"
	"github.com/poiesic/jobscout/graph"
	"github.com/poiesic/jobscout/storage"
)

// Pipeline orchestrates the ingestion of job postings. It manages concurrent
// embedding generation and graph mirroring on separate worker pools.
type Pipeline struct {
	jobRepository storage.JobRepository
	embeddingPool *ants.Pool
	graphPool     *ants.Pool
	embeddingProc processor
	graphProc     processor
	pending       sync.WaitGroup
	logger        *slog.Logger
}

// Option configures a Pipeline.
type Option func(*Pipeline) error

// WithPoolSize sets the worker pool size for concurrent processing.
// Default is runtime.NumCPU() / 2, with a minimum of 1.
func WithPoolSize(size int) Option {
	return func(p *Pipeline) error {
		if size < 1 {
			size = 1
		}

		if p.embeddingPool != nil {
			p.embeddingPool.Release()
		}
		if p.graphPool != nil {
			p.graphPool.Release()
		}

		embeddingPool, err := ants.NewPool(size)
		if err != nil {
			return err
		}

		graphPool, err := ants.NewPool(size)
		if err != nil {
			embeddingPool.Release()
			return err
		}

		p.embeddingPool = embeddingPool
		p.graphPool = graphPool
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) error {
		if logger == nil {
			logger = slog.Default()
		}
		p.logger = logger
		return nil
	}
}

// NewPipeline creates a new ingestion pipeline. The graph store is optional:
// when nil, postings are embedded and stored but not mirrored into the graph.
func NewPipeline(
	jobRepository storage.JobRepository,
	store graph.Store,
	provider ai.Provider,
	opts ...Option,
) (*Pipeline, error) {
	if jobRepository == nil {
		return nil, ErrJobRepositoryRequired
	}
	if provider == nil {
		return nil, ErrAIProviderRequired
	}

	logger := slog.Default()

	poolSize := runtime.NumCPU() / 2
	if poolSize < 1 {
		poolSize = 1
	}

	embeddingPool, err := ants.NewPool(poolSize)
	if err != nil {
		return nil, err
	}

	graphPool, err := ants.NewPool(poolSize)
	if err != nil {
		embeddingPool.Release()
		return nil, err
	}

	p := &Pipeline{
		jobRepository: jobRepository,
		embeddingPool: embeddingPool,
		graphPool:     graphPool,
		logger:        logger,
	}

	for _, opt := range opts {
		if optErr := opt(p); optErr != nil {
			p.Release()
			return nil, optErr
		}
	}

	// Create processors after options are applied (so they get final config)
	embeddingProc, err := newEmbeddingProcessor(jobRepository, provider.Embedder(), p.logger)
	if err != nil {
		p.Release()
		return nil, err
	}
	p.embeddingProc = embeddingProc

	if store != nil {
		graphProc, err := newGraphProcessor(store, p.logger)
		if err != nil {
			p.Release()
			return nil, err
		}
		p.graphProc = graphProc
	}

	return p, nil
}

// IngestOptions holds optional parameters for ingestion.
type IngestOptions struct {
	Source     string    // Applied to postings with no source of their own
	PostedDate time.Time // Applied to postings with a zero posted date
}

// Ingest validates postings, assigns content-hash IDs where missing, and
// submits them for asynchronous embedding and graph mirroring. Returns the
// IDs of the accepted postings. Errors during async processing are logged
// but do not fail the ingestion.
func (p *Pipeline) Ingest(ctx context.Context, postings []*core.JobPosting, opts *IngestOptions) ([]string, error) {
	if opts == nil {
		opts = &IngestOptions{}
	}

	accepted := make([]*core.JobPosting, 0, len(postings))
	for _, posting := range postings {
		if err := core.ValidateJobPosting(posting); err != nil {
			return nil, err
		}
		if posting.ID == "" {
			posting.ID = core.PostingID(posting.Title, posting.Company, posting.Location)
		}
		if posting.Source == "" {
			posting.Source = opts.Source
		}
		if posting.PostedDate.IsZero() {
			posting.PostedDate = opts.PostedDate
		}
		accepted = append(accepted, posting)
	}

	if len(accepted) == 0 {
		return nil, nil
	}

	ids := make([]string, len(accepted))
	for i, posting := range accepted {
		ids[i] = posting.ID
	}

	p.pending.Add(1)
	if err := p.embeddingPool.Submit(func() {
		defer p.pending.Done()
		if err := p.embeddingProc.process(context.Background(), accepted...); err != nil {
			p.logger.Error("error processing embeddings", "err", err)
		}
	}); err != nil {
		p.pending.Done()
		return nil, err
	}

	if p.graphProc != nil {
		p.pending.Add(1)
		if err := p.graphPool.Submit(func() {
			defer p.pending.Done()
			if err := p.graphProc.process(context.Background(), accepted...); err != nil {
				p.logger.Error("error mirroring postings into graph", "err", err)
			}
		}); err != nil {
			p.pending.Done()
			return nil, err
		}
	}

	return ids, nil
}

// Wait blocks until all submitted processing has finished. Callers that
// ingest and then exit (seeders, CLI commands) should Wait before Release.
func (p *Pipeline) Wait() {
	p.pending.Wait()
}

// Release releases resources including worker pools.
// The pipeline should not be used after calling Release.
func (p *Pipeline) Release() {
	if p.embeddingPool != nil {
		p.embeddingPool.Release()
	}
	if p.graphPool != nil {
		p.graphPool.Release()
	}
}
