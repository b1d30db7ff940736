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


// Package neo4j implements graph.Store backed by the Neo4j Go driver.
//
// The schema mirrors job postings as Company-[:HAS_JOB]->Job-[:REQUIRES]->Skill.
// Company names are stored trimmed but otherwise verbatim; skill names are
// canonicalized to title case at the write path so read queries can rely on
// a single node per skill.
package neo4j

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"github.com/poiesic/jobscout/core"
	"github.com/poiesic/jobscout/graph"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Config holds connection settings for the graph store.
type Config struct {
	// URI is the bolt/neo4j connection URI, e.g. "neo4j://localhost:7687".
	URI string

	// User and Password authenticate against the database.
	User     string
	Password string

	// Database selects the target database. Empty uses the server default.
	Database string

	// ConnectTimeout bounds socket connection and connectivity checks.
	// Defaults to 10 seconds.
	ConnectTimeout time.Duration

	// MaxPoolSize bounds the driver connection pool. Defaults to 50.
	MaxPoolSize int
}

// Validate checks required fields and applies defaults.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.URI) == "" {
		return fmt.Errorf("graph config: URI is required")
	}
	if c.User == "" {
		c.User = "neo4j"
	}
	if c.ConnectTimeout <= 0 {
		c.ConnectTimeout = 10 * time.Second
	}
	if c.MaxPoolSize <= 0 {
		c.MaxPoolSize = 50
	}
	return nil
}

// Store implements graph.Store using the Neo4j driver.
type Store struct {
	driver   neo4j.DriverWithContext
	database string
	logger   *slog.Logger
}

var _ graph.Store = (*Store)(nil)

var titleCaser = cases.Title(language.English)

// NewStore connects to the graph database and verifies connectivity.
// Schema constraints and indexes are created best-effort on open.
//
// Returns graph.Store interface to enforce abstraction.
func NewStore(ctx context.Context, config *Config) (graph.Store, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	auth := neo4j.BasicAuth(config.User, config.Password, "")
	driver, err := neo4j.NewDriverWithContext(config.URI, auth, func(cfg *neo4j.Config) {
		cfg.MaxConnectionPoolSize = config.MaxPoolSize
		cfg.SocketConnectTimeout = config.ConnectTimeout
	})
	if err != nil {
		return nil, fmt.Errorf("graph: init driver: %w", err)
	}

	verifyCtx, cancel := context.WithTimeout(ctx, config.ConnectTimeout)
	defer cancel()
	if err := driver.VerifyConnectivity(verifyCtx); err != nil {
		_ = driver.Close(ctx)
		return nil, fmt.Errorf("graph: verify connectivity: %w", err)
	}

	store := &Store{
		driver:   driver,
		database: config.Database,
		logger:   slog.Default().With("component", "neo4j-store"),
	}
	store.ensureSchema(ctx)
	return store, nil
}

// Session opens a read session against one consistent snapshot.
func (s *Store) Session(ctx context.Context) (graph.Session, error) {
	if s.driver == nil {
		return nil, graph.ErrUnavailable
	}
	session := s.driver.NewSession(ctx, neo4j.SessionConfig{
		AccessMode:   neo4j.AccessModeRead,
		DatabaseName: s.database,
	})
	return &readSession{session: session, logger: s.logger}, nil
}

// Close closes the driver.
func (s *Store) Close(ctx context.Context) error {
	if s.driver == nil {
		return nil
	}
	err := s.driver.Close(ctx)
	s.driver = nil
	return err
}

// ensureSchema creates uniqueness constraints and indexes. Best-effort;
// restricted users may lack the privilege.
func (s *Store) ensureSchema(ctx context.Context) {
	session := s.driver.NewSession(ctx, neo4j.SessionConfig{
		AccessMode:   neo4j.AccessModeWrite,
		DatabaseName: s.database,
	})
	defer session.Close(ctx)

	statements := []string{
		`CREATE CONSTRAINT job_id_unique IF NOT EXISTS FOR (j:Job) REQUIRE j.id IS UNIQUE`,
		`CREATE CONSTRAINT company_name_unique IF NOT EXISTS FOR (c:Company) REQUIRE c.name IS UNIQUE`,
		`CREATE CONSTRAINT skill_name_unique IF NOT EXISTS FOR (s:Skill) REQUIRE s.name IS UNIQUE`,
		`CREATE INDEX job_title_idx IF NOT EXISTS FOR (j:Job) ON (j.title)`,
		`CREATE INDEX job_location_idx IF NOT EXISTS FOR (j:Job) ON (j.location)`,
	}
	for _, stmt := range statements {
		res, err := session.Run(ctx, stmt, nil)
		if err != nil {
			s.logger.Warn("schema init failed (continuing)", "err", err)
			continue
		}
		_, _ = res.Consume(ctx)
	}
}

// UpsertPostings mirrors postings into the graph. Nodes are merged by
// identity (job id, company name, skill name) so re-syncing is idempotent.
func (s *Store) UpsertPostings(ctx context.Context, postings ...*core.JobPosting) error {
	if s.driver == nil {
		return graph.ErrUnavailable
	}

	now := time.Now().UTC().Format(time.RFC3339Nano)

	jobs := make([]map[string]any, 0, len(postings))
	for _, p := range postings {
		if p == nil {
			continue
		}
		if err := core.ValidateJobPosting(p); err != nil {
			return err
		}
		id := p.ID
		if id == "" {
			id = core.PostingID(p.Title, p.Company, p.Location)
		}

		skills := make([]string, 0, len(p.TechStack))
		for _, skill := range p.TechStack {
			skill = strings.TrimSpace(skill)
			if skill == "" {
				continue
			}
			skills = append(skills, titleCaser.String(skill))
		}

		jobs = append(jobs, map[string]any{
			"id":              id,
			"title":           p.Title,
			"company":         strings.TrimSpace(p.Company),
			"location":        p.Location,
			"remote":          p.Remote,
			"employment_type": p.EmploymentType,
			"salary_range":    p.SalaryRange,
			"posted_date":     p.PostedDate,
			"source":          p.Source,
			"skills":          skills,
			"synced_at":       now,
		})
	}
	if len(jobs) == 0 {
		return nil
	}

	session := s.driver.NewSession(ctx, neo4j.SessionConfig{
		AccessMode:   neo4j.AccessModeWrite,
		DatabaseName: s.database,
	})
	defer session.Close(ctx)

	_, err := session.ExecuteWrite(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		res, err := tx.Run(ctx, `
UNWIND $jobs AS job
MERGE (c:Company {name: job.company})
MERGE (j:Job {id: job.id})
SET j.title = job.title,
    j.location = job.location,
    j.remote = job.remote,
    j.employment_type = job.employment_type,
    j.salary_range = job.salary_range,
    j.posted_date = job.posted_date,
    j.source = job.source,
    j.synced_at = job.synced_at
MERGE (c)-[:HAS_JOB]->(j)
WITH j, job
UNWIND job.skills AS skill
MERGE (s:Skill {name: skill})
MERGE (j)-[:REQUIRES]->(s)
`, map[string]any{"jobs": jobs})
		if err != nil {
			return nil, err
		}
		if _, err := res.Consume(ctx); err != nil {
			return nil, err
		}
		return nil, nil
	})
	if err != nil {
		return fmt.Errorf("graph: upsert postings: %w", err)
	}

	s.logger.Debug("synced postings to graph", "count", len(jobs))
	return nil
}

// DeleteJobs removes job nodes and their relationships by ID.
func (s *Store) DeleteJobs(ctx context.Context, jobIDs ...string) error {
	if s.driver == nil {
		return graph.ErrUnavailable
	}
	if len(jobIDs) == 0 {
		return nil
	}

	session := s.driver.NewSession(ctx, neo4j.SessionConfig{
		AccessMode:   neo4j.AccessModeWrite,
		DatabaseName: s.database,
	})
	defer session.Close(ctx)

	_, err := session.ExecuteWrite(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		res, err := tx.Run(ctx, `
MATCH (j:Job)
WHERE j.id IN $ids
DETACH DELETE j
`, map[string]any{"ids": jobIDs})
		if err != nil {
			return nil, err
		}
		if _, err := res.Consume(ctx); err != nil {
			return nil, err
		}
		return nil, nil
	})
	if err != nil {
		return fmt.Errorf("graph: delete jobs: %w", err)
	}
	return nil
}
