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


// Package graph provides the knowledge-graph layer for jobscout.
//
// The graph holds Company, Job, and Skill nodes connected by HAS_JOB and
// REQUIRES relationships. This package defines the Store and Session
// abstractions over that schema plus the Expander, which enriches
// similarity-retrieval results with market analysis read from the graph.
//
// # Degradation
//
// The graph is an enrichment layer, never a hard dependency. When the
// store is unreachable the Expander returns empty results with the
// availability flag cleared; individual facet failures degrade that facet
// alone. Callers never see a graph error.
//
// # Sessions
//
// All read facets for one request run inside a single Session so the
// multi-facet analysis observes one consistent snapshot:
//
//	session, err := store.Session(ctx)
//	if err != nil { /* degraded mode */ }
//	defer session.Close(ctx)
//	insights, _ := session.CompanyInsights(ctx, companies)
//
// # Implementations
//
//   - graph/neo4j: production Store backed by the Neo4j Go driver
//   - graph/mock: test doubles with injectable behavior
package graph
