// Package mock provides test doubles for the graph layer.
//
// MockStore and MockSession allow behavior injection via function fields,
// matching the style of the ai/mock package. The zero-value defaults
// return empty results, which is also the degraded-mode shape consumers
// must tolerate.
package mock

import (
	"context"

	"github.com/poiesic/jobscout/core"
	"github.com/poiesic/jobscout/graph"
)

// MockStore is a test double for graph.Store.
type MockStore struct {
	// SessionFunc is called by Session if set. If nil, returns a default
	// MockSession.
	SessionFunc func(ctx context.Context) (graph.Session, error)

	// UpsertPostingsFunc is called by UpsertPostings if set.
	UpsertPostingsFunc func(ctx context.Context, postings ...*core.JobPosting) error

	// DeleteJobsFunc is called by DeleteJobs if set.
	DeleteJobsFunc func(ctx context.Context, jobIDs ...string) error

	sessionCalls int
	upsertCalls  int
}

var _ graph.Store = (*MockStore)(nil)

// NewMockStore creates a mock store whose sessions return empty results.
// Note: Returns concrete type to allow test assertions.
func NewMockStore() *MockStore {
	return &MockStore{}
}

// Session returns a MockSession or delegates to SessionFunc.
func (s *MockStore) Session(ctx context.Context) (graph.Session, error) {
	s.sessionCalls++
	if s.SessionFunc != nil {
		return s.SessionFunc(ctx)
	}
	return NewMockSession(), nil
}

// UpsertPostings delegates to UpsertPostingsFunc or succeeds silently.
func (s *MockStore) UpsertPostings(ctx context.Context, postings ...*core.JobPosting) error {
	s.upsertCalls++
	if s.UpsertPostingsFunc != nil {
		return s.UpsertPostingsFunc(ctx, postings...)
	}
	return nil
}

// DeleteJobs delegates to DeleteJobsFunc or succeeds silently.
func (s *MockStore) DeleteJobs(ctx context.Context, jobIDs ...string) error {
	if s.DeleteJobsFunc != nil {
		return s.DeleteJobsFunc(ctx, jobIDs...)
	}
	return nil
}

// Close is a no-op for mock store.
func (s *MockStore) Close(ctx context.Context) error {
	return nil
}

// SessionCalls returns how many times Session was called.
func (s *MockStore) SessionCalls() int {
	return s.sessionCalls
}

// UpsertCalls returns how many times UpsertPostings was called.
func (s *MockStore) UpsertCalls() int {
	return s.upsertCalls
}

// MockSession is a test double for graph.Session. Each facet method
// delegates to its function field when set and returns empty results
// otherwise.
type MockSession struct {
	CompanyInsightsFunc  func(ctx context.Context, companies []string) ([]core.CompanyInsight, error)
	SkillDemandFunc      func(ctx context.Context, limit int) ([]core.SkillDemand, error)
	LocationInsightsFunc func(ctx context.Context, limit int) ([]core.LocationInsight, error)
	CareerPathsFunc      func(ctx context.Context, limit int) ([]core.CareerPath, error)
	MarketTrendsFunc     func(ctx context.Context) (*core.MarketTrends, error)
	RelatedByCompanyFunc func(ctx context.Context, jobID string, limit int) ([]core.RelatedJob, error)
	RelatedBySkillFunc   func(ctx context.Context, jobID string, limit int) ([]core.RelatedJob, error)

	closed bool
}

var _ graph.Session = (*MockSession)(nil)

// NewMockSession creates a mock session returning empty results.
// Note: Returns concrete type to allow test assertions.
func NewMockSession() *MockSession {
	return &MockSession{}
}

func (s *MockSession) CompanyInsights(ctx context.Context, companies []string) ([]core.CompanyInsight, error) {
	if s.CompanyInsightsFunc != nil {
		return s.CompanyInsightsFunc(ctx, companies)
	}
	return []core.CompanyInsight{}, nil
}

func (s *MockSession) SkillDemand(ctx context.Context, limit int) ([]core.SkillDemand, error) {
	if s.SkillDemandFunc != nil {
		return s.SkillDemandFunc(ctx, limit)
	}
	return []core.SkillDemand{}, nil
}

func (s *MockSession) LocationInsights(ctx context.Context, limit int) ([]core.LocationInsight, error) {
	if s.LocationInsightsFunc != nil {
		return s.LocationInsightsFunc(ctx, limit)
	}
	return []core.LocationInsight{}, nil
}

func (s *MockSession) CareerPaths(ctx context.Context, limit int) ([]core.CareerPath, error) {
	if s.CareerPathsFunc != nil {
		return s.CareerPathsFunc(ctx, limit)
	}
	return []core.CareerPath{}, nil
}

func (s *MockSession) MarketTrends(ctx context.Context) (*core.MarketTrends, error) {
	if s.MarketTrendsFunc != nil {
		return s.MarketTrendsFunc(ctx)
	}
	return &core.MarketTrends{}, nil
}

func (s *MockSession) RelatedByCompany(ctx context.Context, jobID string, limit int) ([]core.RelatedJob, error) {
	if s.RelatedByCompanyFunc != nil {
		return s.RelatedByCompanyFunc(ctx, jobID, limit)
	}
	return []core.RelatedJob{}, nil
}

func (s *MockSession) RelatedBySkill(ctx context.Context, jobID string, limit int) ([]core.RelatedJob, error) {
	if s.RelatedBySkillFunc != nil {
		return s.RelatedBySkillFunc(ctx, jobID, limit)
	}
	return []core.RelatedJob{}, nil
}

// Close marks the session closed.
func (s *MockSession) Close(ctx context.Context) error {
	s.closed = true
	return nil
}

// Closed reports whether Close was called.
func (s *MockSession) Closed() bool {
	return s.closed
}
