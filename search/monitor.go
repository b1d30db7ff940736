package search

import "github.com/poiesic/jobscout/core"

// RetrievalMonitor provides hooks to observe the request pipeline.
// Implement this interface to track intermediate steps during handling.
type RetrievalMonitor interface {
	Start(query string)
	AfterClassification(intent core.QueryIntent)
	AfterGate(decision Decision)
	AfterRetrieval(results []core.RetrievedJob)
	AfterExpansion(expansions *core.GraphExpansions)
	Finish(response *core.Response)
}

// noopMonitor is a no-op implementation of RetrievalMonitor
type noopMonitor struct{}

var _ RetrievalMonitor = (*noopMonitor)(nil)

func (n *noopMonitor) Start(_ string)                         {}
func (n *noopMonitor) AfterClassification(_ core.QueryIntent) {}
func (n *noopMonitor) AfterGate(_ Decision)                   {}
func (n *noopMonitor) AfterRetrieval(_ []core.RetrievedJob)   {}
func (n *noopMonitor) AfterExpansion(_ *core.GraphExpansions) {}
func (n *noopMonitor) Finish(_ *core.Response)                {}
