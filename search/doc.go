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


// Package search provides the query-handling core of jobscout.
//
// The Handler type implements a multi-stage pipeline that combines:
//   - Intent classification (language model with heuristic fallback)
//   - A deterministic retrieval gate that votes on query quality
//   - Similarity retrieval over the job posting vector index
//   - Graph expansion for related jobs and market analysis
//
// Queries the gate rejects never touch the vector index: general
// questions fall through to a conversational answer and everything else
// receives structured guidance explaining the decision.
package search
