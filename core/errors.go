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


package core

import "errors"

// Failure taxonomy for the retrieval path. Graph-path failures are not
// represented here: they degrade to empty graph context instead of erroring.
var (
	// ErrConfiguration indicates missing or invalid collaborator
	// configuration (embedding credentials, hosts). Fatal for the call,
	// never retried.
	ErrConfiguration = errors.New("configuration error")

	// ErrNoData indicates the embedding store holds no job postings.
	// Surfaced distinctly so callers can suggest running ingestion.
	ErrNoData = errors.New("no job postings ingested")

	// ErrService indicates any other downstream failure: connection
	// refused, timeout, malformed response.
	ErrService = errors.New("service error")
)

// Domain validation errors
var (
	// ErrInvalidPosting indicates a JobPosting failed validation.
	ErrInvalidPosting = errors.New("invalid job posting")

	// ErrEmptyTitle indicates the posting Title field is empty.
	ErrEmptyTitle = errors.New("title cannot be empty")

	// ErrEmptyCompany indicates the posting Company field is empty.
	ErrEmptyCompany = errors.New("company cannot be empty")

	// ErrInvalidRecord indicates an EmbeddingRecord failed validation.
	ErrInvalidRecord = errors.New("invalid embedding record")

	// ErrEmptyJobID indicates the record JobID field is empty.
	ErrEmptyJobID = errors.New("job id cannot be empty")

	// ErrEmptyDocument indicates the record Document field is empty.
	ErrEmptyDocument = errors.New("document cannot be empty")
)
