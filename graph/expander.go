// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package graph

import (
	"context"
	"log/slog"
	"strings"

	"github.com/poiesic/jobscout/core"
)

// Per-seed expansion limits and facet sizes.
const (
	maxSameCompanyPerSeed = 2
	maxSharedSkillPerSeed = 3
	skillDemandLimit      = 10
	locationLimit         = 10
	careerPathLimit       = 5
)

// Mode selects how much graph analysis the Expander performs.
type Mode int

const (
	// ModeBasic expands retrieved jobs through same-company links only.
	ModeBasic Mode = iota
	// ModeEnhanced adds shared-skill expansion and the full multi-facet
	// market analysis. This is the default.
	ModeEnhanced
)

// Option is a functional option for configuring an Expander.
type Option func(*Expander)

// WithMode sets the expansion mode.
func WithMode(mode Mode) Option {
	return func(e *Expander) {
		e.mode = mode
	}
}

// Expander enriches similarity-retrieval results with context read from
// the job graph. All graph failures degrade: the expander never returns
// an error to its caller.
type Expander struct {
	store  Store
	mode   Mode
	logger *slog.Logger
}

// NewExpander creates an expander over the given store.
func NewExpander(store Store, opts ...Option) (*Expander, error) {
	if store == nil {
		return nil, ErrNoStore
	}

	e := &Expander{
		store:  store,
		mode:   ModeEnhanced,
		logger: slog.Default().With("component", "graph-expander"),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// ExpandRelated finds jobs related to each retrieved hit: up to 2 at the
// same company and, in enhanced mode, up to 3 sharing a required skill.
// The originating job never appears in its own expansion. When the store
// is unreachable the result carries empty lists and GraphAvailable=false.
func (e *Expander) ExpandRelated(ctx context.Context, jobs []core.RetrievedJob) *core.GraphExpansions {
	expansions := &core.GraphExpansions{
		RelatedJobs:    []core.RelatedJob{},
		GraphAvailable: true,
	}

	session, err := e.store.Session(ctx)
	if err != nil {
		e.logger.Warn("graph store unreachable, skipping expansion", "err", err)
		expansions.GraphAvailable = false
		return expansions
	}
	defer session.Close(ctx)

	for _, job := range jobs {
		seen := make(map[string]bool)

		byCompany, err := session.RelatedByCompany(ctx, job.ID, maxSameCompanyPerSeed)
		if err != nil {
			e.logger.Warn("same-company expansion failed", "job_id", job.ID, "err", err)
		}
		for _, related := range byCompany {
			if related.ID == job.ID || seen[related.ID] {
				continue
			}
			seen[related.ID] = true
			related.SourceID = job.ID
			related.Reason = core.ReasonSameCompany
			expansions.RelatedJobs = append(expansions.RelatedJobs, related)
			expansions.Summary.SameCompany++
		}

		if e.mode != ModeEnhanced {
			continue
		}

		bySkill, err := session.RelatedBySkill(ctx, job.ID, maxSharedSkillPerSeed)
		if err != nil {
			e.logger.Warn("shared-skill expansion failed", "job_id", job.ID, "err", err)
		}
		for _, related := range bySkill {
			if related.ID == job.ID || seen[related.ID] {
				continue
			}
			seen[related.ID] = true
			related.SourceID = job.ID
			related.Reason = core.ReasonSharedSkills
			expansions.RelatedJobs = append(expansions.RelatedJobs, related)
			expansions.Summary.SharedSkills++
		}
	}

	expansions.Summary.TotalRelated = len(expansions.RelatedJobs)
	return expansions
}

// Expand runs the multi-facet market analysis for the query and retrieved
// jobs. Returns nil in basic mode or when the store is unreachable; the
// second return reports store availability. Facets that fail individually
// come back empty without affecting the others.
func (e *Expander) Expand(ctx context.Context, query string, jobs []core.RetrievedJob) (*core.GraphContext, bool) {
	if e.mode != ModeEnhanced {
		return nil, true
	}

	session, err := e.store.Session(ctx)
	if err != nil {
		e.logger.Warn("graph store unreachable, skipping market analysis", "err", err)
		return nil, false
	}
	defer session.Close(ctx)

	gc := &core.GraphContext{
		CompanyInsights:  []core.CompanyInsight{},
		SkillAnalysis:    []core.SkillDemand{},
		LocationInsights: []core.LocationInsight{},
		CareerPaths:      []core.CareerPath{},
		QueryAnalysis:    AnalyzeQuery(query),
	}

	if companies := distinctCompanies(jobs); len(companies) > 0 {
		insights, err := session.CompanyInsights(ctx, companies)
		if err != nil {
			e.logger.Warn("company insights failed", "err", err)
		} else {
			gc.CompanyInsights = insights
		}
	}

	demand, err := session.SkillDemand(ctx, skillDemandLimit)
	if err != nil {
		e.logger.Warn("skill demand failed", "err", err)
	} else {
		gc.SkillAnalysis = demand
	}

	if gc.QueryAnalysis.HasLocationIntent {
		locations, err := session.LocationInsights(ctx, locationLimit)
		if err != nil {
			e.logger.Warn("location insights failed", "err", err)
		} else {
			gc.LocationInsights = locations
		}
	}

	if gc.QueryAnalysis.HasCareerIntent {
		paths, err := session.CareerPaths(ctx, careerPathLimit)
		if err != nil {
			e.logger.Warn("career paths failed", "err", err)
		} else {
			gc.CareerPaths = paths
		}
	}

	trends, err := session.MarketTrends(ctx)
	if err != nil {
		e.logger.Warn("market trends failed", "err", err)
	} else {
		gc.MarketTrends = trends
	}

	return gc, true
}

// distinctCompanies collects company names from result metadata, first
// occurrence order, empty names dropped.
func distinctCompanies(jobs []core.RetrievedJob) []string {
	var companies []string
	seen := make(map[string]bool)
	for _, job := range jobs {
		company := strings.TrimSpace(job.Metadata["company"])
		if company == "" || seen[company] {
			continue
		}
		seen[company] = true
		companies = append(companies, company)
	}
	return companies
}
