package graph

import (
	"context"

	"github.com/poiesic/jobscout/core"
)

// Session executes read queries against one consistent graph snapshot.
// Obtain from Store.Session and close when the request is done.
type Session interface {
	// CompanyInsights returns hiring patterns for the named companies:
	// total job count, distinct non-empty locations, and a count of
	// remote-labeled locations. Ordered by job count descending.
	CompanyInsights(ctx context.Context, companies []string) ([]core.CompanyInsight, error)

	// SkillDemand counts jobs requiring each skill across the whole graph.
	// Returns up to limit skills by descending demand.
	SkillDemand(ctx context.Context, limit int) ([]core.SkillDemand, error)

	// LocationInsights counts jobs per non-empty location across the whole
	// graph. Returns up to limit locations by descending count.
	LocationInsights(ctx context.Context, limit int) ([]core.LocationInsight, error)

	// CareerPaths finds skills bridging junior-titled jobs to senior-titled
	// jobs, ranked by the number of such pairs. Returns up to limit skills.
	CareerPaths(ctx context.Context, limit int) ([]core.CareerPath, error)

	// MarketTrends summarizes companies with at least two open jobs:
	// how many there are, their average job count rounded to one decimal,
	// and the single largest job count.
	MarketTrends(ctx context.Context) (*core.MarketTrends, error)

	// RelatedByCompany finds up to limit other jobs at the same company as
	// the given job. Never returns the originating job itself.
	RelatedByCompany(ctx context.Context, jobID string, limit int) ([]core.RelatedJob, error)

	// RelatedBySkill finds up to limit other jobs sharing at least one
	// required skill with the given job. Never returns the originating job.
	RelatedBySkill(ctx context.Context, jobID string, limit int) ([]core.RelatedJob, error)

	// Close releases the session.
	Close(ctx context.Context) error
}

// Store is the graph database handle, opened once per process.
type Store interface {
	// Session opens a read session. An error here signals the store is
	// unreachable and callers should enter degraded mode.
	Session(ctx context.Context) (Session, error)

	// UpsertPostings mirrors job postings into the graph as
	// Company-[:HAS_JOB]->Job-[:REQUIRES]->Skill structure. Existing nodes
	// are merged, so re-syncing a posting is idempotent.
	UpsertPostings(ctx context.Context, postings ...*core.JobPosting) error

	// DeleteJobs removes job nodes (and their relationships) by ID.
	DeleteJobs(ctx context.Context, jobIDs ...string) error

	// Close closes the store.
	Close(ctx context.Context) error
}
