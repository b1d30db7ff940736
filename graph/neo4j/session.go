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


package neo4j

import (
	"context"
	"log/slog"
	"math"
	"strings"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"github.com/poiesic/jobscout/core"
	"github.com/poiesic/jobscout/graph"
)

// readSession implements graph.Session over one driver session.
type readSession struct {
	session neo4j.SessionWithContext
	logger  *slog.Logger
}

var _ graph.Session = (*readSession)(nil)

func (s *readSession) Close(ctx context.Context) error {
	return s.session.Close(ctx)
}

// CompanyInsights returns job count, distinct non-empty locations, and a
// remote-location count for each named company, ordered by job count
// descending.
func (s *readSession) CompanyInsights(ctx context.Context, companies []string) ([]core.CompanyInsight, error) {
	result, err := s.session.ExecuteRead(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		res, err := tx.Run(ctx, `
MATCH (c:Company)-[:HAS_JOB]->(j:Job)
WHERE c.name IN $names
RETURN c.name AS company,
       count(j) AS job_count,
       [loc IN collect(DISTINCT j.location) WHERE loc <> ''] AS locations
ORDER BY job_count DESC
`, map[string]any{"names": companies})
		if err != nil {
			return nil, err
		}

		var insights []core.CompanyInsight
		for res.Next(ctx) {
			rec := res.Record()
			insight := core.CompanyInsight{
				Company:   asString(rec.Values[0]),
				JobCount:  int(asInt64(rec.Values[1])),
				Locations: asStringList(rec.Values[2]),
			}
			for _, loc := range insight.Locations {
				if strings.Contains(strings.ToLower(loc), "remote") {
					insight.RemoteCount++
				}
			}
			insights = append(insights, insight)
		}
		return insights, res.Err()
	})
	if err != nil {
		return nil, err
	}
	return result.([]core.CompanyInsight), nil
}

// SkillDemand counts jobs requiring each skill across the whole graph.
func (s *readSession) SkillDemand(ctx context.Context, limit int) ([]core.SkillDemand, error) {
	result, err := s.session.ExecuteRead(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		res, err := tx.Run(ctx, `
MATCH (j:Job)-[:REQUIRES]->(s:Skill)
RETURN s.name AS skill, count(j) AS demand
ORDER BY demand DESC
LIMIT $limit
`, map[string]any{"limit": limit})
		if err != nil {
			return nil, err
		}

		var demand []core.SkillDemand
		for res.Next(ctx) {
			rec := res.Record()
			demand = append(demand, core.SkillDemand{
				Skill:  asString(rec.Values[0]),
				Demand: int(asInt64(rec.Values[1])),
			})
		}
		return demand, res.Err()
	})
	if err != nil {
		return nil, err
	}
	return result.([]core.SkillDemand), nil
}

// LocationInsights counts jobs per non-empty location across the graph.
func (s *readSession) LocationInsights(ctx context.Context, limit int) ([]core.LocationInsight, error) {
	result, err := s.session.ExecuteRead(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		res, err := tx.Run(ctx, `
MATCH (j:Job)
WHERE j.location <> ''
RETURN j.location AS location, count(j) AS job_count
ORDER BY job_count DESC
LIMIT $limit
`, map[string]any{"limit": limit})
		if err != nil {
			return nil, err
		}

		var insights []core.LocationInsight
		for res.Next(ctx) {
			rec := res.Record()
			insights = append(insights, core.LocationInsight{
				Location: asString(rec.Values[0]),
				JobCount: int(asInt64(rec.Values[1])),
			})
		}
		return insights, res.Err()
	})
	if err != nil {
		return nil, err
	}
	return result.([]core.LocationInsight), nil
}

// CareerPaths finds skills bridging junior-titled jobs to senior-titled
// jobs, ranked by the number of bridging pairs.
func (s *readSession) CareerPaths(ctx context.Context, limit int) ([]core.CareerPath, error) {
	result, err := s.session.ExecuteRead(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		res, err := tx.Run(ctx, `
MATCH (junior:Job)-[:REQUIRES]->(s:Skill)<-[:REQUIRES]-(senior:Job)
WHERE (junior.title CONTAINS 'Junior' OR junior.title CONTAINS 'Entry')
  AND (senior.title CONTAINS 'Senior' OR senior.title CONTAINS 'Lead')
RETURN s.name AS skill, count(*) AS strength
ORDER BY strength DESC
LIMIT $limit
`, map[string]any{"limit": limit})
		if err != nil {
			return nil, err
		}

		var paths []core.CareerPath
		for res.Next(ctx) {
			rec := res.Record()
			paths = append(paths, core.CareerPath{
				Skill:              asString(rec.Values[0]),
				ConnectionStrength: int(asInt64(rec.Values[1])),
			})
		}
		return paths, res.Err()
	})
	if err != nil {
		return nil, err
	}
	return result.([]core.CareerPath), nil
}

// MarketTrends summarizes companies with at least two open jobs.
func (s *readSession) MarketTrends(ctx context.Context) (*core.MarketTrends, error) {
	result, err := s.session.ExecuteRead(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		res, err := tx.Run(ctx, `
MATCH (c:Company)-[:HAS_JOB]->(j:Job)
WITH c, count(j) AS job_count
WHERE job_count >= 2
RETURN count(c) AS active_companies,
       avg(job_count) AS avg_jobs,
       max(job_count) AS max_jobs
`, nil)
		if err != nil {
			return nil, err
		}

		trends := &core.MarketTrends{}
		if res.Next(ctx) {
			rec := res.Record()
			trends.ActiveCompanies = int(asInt64(rec.Values[0]))
			trends.AvgJobsPerCompany = roundToOneDecimal(asFloat64(rec.Values[1]))
			trends.MaxJobsSingleCompany = int(asInt64(rec.Values[2]))
		}
		return trends, res.Err()
	})
	if err != nil {
		return nil, err
	}
	return result.(*core.MarketTrends), nil
}

// RelatedByCompany finds other jobs at the same company as jobID.
func (s *readSession) RelatedByCompany(ctx context.Context, jobID string, limit int) ([]core.RelatedJob, error) {
	return s.relatedJobs(ctx, `
MATCH (j1:Job {id: $id})<-[:HAS_JOB]-(c:Company)-[:HAS_JOB]->(j2:Job)
WHERE j1 <> j2
RETURN j2.id AS id, j2.title AS title, j2.location AS location, c.name AS company
LIMIT $limit
`, jobID, limit)
}

// RelatedBySkill finds other jobs requiring at least one common skill.
func (s *readSession) RelatedBySkill(ctx context.Context, jobID string, limit int) ([]core.RelatedJob, error) {
	return s.relatedJobs(ctx, `
MATCH (j1:Job {id: $id})-[:REQUIRES]->(s:Skill)<-[:REQUIRES]-(j2:Job)<-[:HAS_JOB]-(c:Company)
WHERE j1 <> j2
RETURN DISTINCT j2.id AS id, j2.title AS title, j2.location AS location, c.name AS company
LIMIT $limit
`, jobID, limit)
}

func (s *readSession) relatedJobs(ctx context.Context, query, jobID string, limit int) ([]core.RelatedJob, error) {
	result, err := s.session.ExecuteRead(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		res, err := tx.Run(ctx, query, map[string]any{"id": jobID, "limit": limit})
		if err != nil {
			return nil, err
		}

		var related []core.RelatedJob
		for res.Next(ctx) {
			rec := res.Record()
			related = append(related, core.RelatedJob{
				ID:       asString(rec.Values[0]),
				Title:    asString(rec.Values[1]),
				Location: asString(rec.Values[2]),
				Company:  asString(rec.Values[3]),
			})
		}
		return related, res.Err()
	})
	if err != nil {
		return nil, err
	}
	return result.([]core.RelatedJob), nil
}

// roundToOneDecimal rounds half away from zero to one decimal place.
func roundToOneDecimal(v float64) float64 {
	return math.Round(v*10) / 10
}

// Record value coercion helpers. The driver returns any-typed values;
// missing properties come back as nil.

func asString(v any) string {
	s, _ := v.(string)
	return s
}

func asInt64(v any) int64 {
	n, _ := v.(int64)
	return n
}

func asFloat64(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case int64:
		return float64(n)
	}
	return 0
}

func asStringList(v any) []string {
	items, ok := v.([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
