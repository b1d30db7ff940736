package ingestion

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/poiesic/jobscout/core"
	"github.com/poiesic/jobscout/graph"
)

// graphProcessor mirrors postings into the graph store. Every Job node in the
// graph originates from an ingested posting, so search-time expansion always
// resolves back to a stored embedding record.
type graphProcessor struct {
	store  graph.Store
	logger *slog.Logger
}

var _ processor = (*graphProcessor)(nil)

// newGraphProcessor creates a new graph mirror processor.
func newGraphProcessor(store graph.Store, logger *slog.Logger) (processor, error) {
	if store == nil {
		return nil, fmt.Errorf("graph store required")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &graphProcessor{
		store:  store,
		logger: logger.With("processor", "graph"),
	}, nil
}

func (gp *graphProcessor) process(ctx context.Context, postings ...*core.JobPosting) error {
	if len(postings) == 0 {
		return nil
	}

	gp.logger.Info("mirroring postings into graph", "postings", len(postings))
	return gp.store.UpsertPostings(ctx, postings...)
}
