package search

import (
	"fmt"

	"github.com/poiesic/jobscout/core"
)

// Composer merges retrieval results and graph context into one response.
type Composer struct{}

// NewComposer creates a result composer.
func NewComposer() *Composer {
	return &Composer{}
}

// Compose assembles the final response for a retrieval-backed answer.
// The enhanced context may be nil when the expander runs in basic mode or
// the graph was unreachable.
func (c *Composer) Compose(
	query string,
	intent core.QueryIntent,
	results []core.RetrievedJob,
	expansions *core.GraphExpansions,
	enhanced *core.GraphContext,
) *core.Response {
	if results == nil {
		results = []core.RetrievedJob{}
	}

	return &core.Response{
		Query:           query,
		Summary:         c.summarize(query, intent, len(results)),
		Intent:          intent,
		UsedRetrieval:   true,
		Results:         results,
		TotalResults:    len(results),
		GraphExpansions: expansions,
		EnhancedContext: enhanced,
	}
}

// summarize renders the one-line result summary. Temporal queries get the
// "recent jobs" phrasing.
func (c *Composer) summarize(query string, intent core.QueryIntent, count int) string {
	if intent.TemporalIntent {
		return fmt.Sprintf("Found %d recent jobs", count)
	}
	return fmt.Sprintf("Found %d relevant jobs for '%s'", count, query)
}
