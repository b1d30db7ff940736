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

import "fmt"

// ValidateJobPosting validates a JobPosting according to domain rules.
//
// Validation rules:
//   - Title must not be empty
//   - Company must not be empty
//
// NOT validated:
//   - ID (derived from content when empty; see PostingID)
//   - Location, salary, tech stack (scrapers frequently miss them)
func ValidateJobPosting(posting *JobPosting) error {
	if posting == nil {
		return fmt.Errorf("%w: posting is nil", ErrInvalidPosting)
	}

	if posting.Title == "" {
		return fmt.Errorf("%w: %w", ErrInvalidPosting, ErrEmptyTitle)
	}

	if posting.Company == "" {
		return fmt.Errorf("%w: %w", ErrInvalidPosting, ErrEmptyCompany)
	}

	return nil
}

// ValidateEmbeddingRecord validates an EmbeddingRecord according to domain
// rules.
//
// Validation rules:
//   - JobID must not be empty
//   - Document must not be empty
//
// NOT validated:
//   - Vector (can be empty until the embedding processor runs)
//   - Metadata (optional)
func ValidateEmbeddingRecord(record *EmbeddingRecord) error {
	if record == nil {
		return fmt.Errorf("%w: record is nil", ErrInvalidRecord)
	}

	if record.JobID == "" {
		return fmt.Errorf("%w: %w", ErrInvalidRecord, ErrEmptyJobID)
	}

	if record.Document == "" {
		return fmt.Errorf("%w: %w", ErrInvalidRecord, ErrEmptyDocument)
	}

	return nil
}
