package graph

import (
	"context"

	"github.com/poiesic/jobscout/core"
)

// UnavailableStore is the Store used when no graph database is configured.
// Sessions always fail with ErrUnavailable, which consumers treat as
// permanent degraded mode. Write operations fail the same way.
type UnavailableStore struct{}

var _ Store = (*UnavailableStore)(nil)

// NewUnavailableStore creates a store with no backing graph.
func NewUnavailableStore() *UnavailableStore {
	return &UnavailableStore{}
}

func (s *UnavailableStore) Session(_ context.Context) (Session, error) {
	return nil, ErrUnavailable
}

func (s *UnavailableStore) UpsertPostings(_ context.Context, _ ...*core.JobPosting) error {
	return ErrUnavailable
}

func (s *UnavailableStore) DeleteJobs(_ context.Context, _ ...string) error {
	return ErrUnavailable
}

func (s *UnavailableStore) Close(_ context.Context) error {
	return nil
}
