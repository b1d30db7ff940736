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


package badger

import (
	"context"
	"errors"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/poiesic/jobscout/core"
	"github.com/poiesic/jobscout/storage"
)

// JobRepository implements storage.JobRepository for BadgerDB.
// Job IDs are content-based (hash of title, company, location), so
// re-ingesting the same posting overwrites the existing record.
type JobRepository struct {
	backend *Backend
}

var _ storage.JobRepository = (*JobRepository)(nil)

// NewJobRepository opens a BadgerDB database at the given path and returns
// a job repository backed by it.
//
// Returns storage.JobRepository interface to enforce abstraction.
// The repository owns the backend: Close() closes the database.
func NewJobRepository(filePath string) (storage.JobRepository, error) {
	backend, err := OpenBackend(filePath, false)
	if err != nil {
		return nil, err
	}
	return &JobRepository{backend: backend}, nil
}

// newJobRepository wraps an existing backend. Used by testing helpers and
// the service layer which manage the backend lifecycle themselves.
func newJobRepository(backend *Backend) *JobRepository {
	return &JobRepository{backend: backend}
}

// Close closes the underlying database.
func (r *JobRepository) Close() error {
	if r.backend.IsClosed() {
		return nil
	}
	return r.backend.Close()
}

// FindNearest delegates to the backend.
func (r *JobRepository) FindNearest(ctx context.Context, vector []float32, limit int) ([]core.NearestMatch, error) {
	return r.backend.FindNearest(ctx, vector, limit)
}

// WithTransaction delegates to the backend.
func (r *JobRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return r.backend.WithTransaction(ctx, fn)
}

// AddEmbeddings stores embedding records, replacing existing records with
// the same job ID wholesale.
func (r *JobRepository) AddEmbeddings(ctx context.Context, records ...*core.EmbeddingRecord) error {
	return r.backend.WithTx(func(tx *badger.Txn) error {
		for _, record := range records {
			if err := core.ValidateEmbeddingRecord(record); err != nil {
				return err
			}
			if record.IngestedAt.IsZero() {
				record.IngestedAt = time.Now().UTC()
			}

			key := makeJobRecordKey(record.JobID)
			value := storage.MarshalEmbeddingRecord(record)
			if err := tx.Set(key, value); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)
}

// GetEmbedding retrieves a single embedding record by job ID.
func (r *JobRepository) GetEmbedding(ctx context.Context, jobID string) (*core.EmbeddingRecord, error) {
	var record *core.EmbeddingRecord

	err := r.backend.WithTx(func(tx *badger.Txn) error {
		var err error
		record, err = r.readEmbeddingRecord(tx, makeJobRecordKey(jobID))
		if err != nil {
			return err
		}
		if record == nil {
			return storage.ErrNotFound
		}
		return nil
	}, false)

	if err != nil {
		return nil, err
	}
	return record, nil
}

// GetEmbeddings retrieves multiple embedding records by their job IDs.
// Missing records are skipped without error.
func (r *JobRepository) GetEmbeddings(ctx context.Context, jobIDs ...string) ([]*core.EmbeddingRecord, error) {
	records := make([]*core.EmbeddingRecord, 0, len(jobIDs))

	err := r.backend.WithTx(func(tx *badger.Txn) error {
		for _, jobID := range jobIDs {
			record, err := r.readEmbeddingRecord(tx, makeJobRecordKey(jobID))
			if err != nil {
				return err
			}
			if record != nil {
				records = append(records, record)
			}
		}
		return nil
	}, false)

	if err != nil {
		return nil, err
	}
	return records, nil
}

// DeleteEmbeddings removes embedding records by their job IDs.
func (r *JobRepository) DeleteEmbeddings(ctx context.Context, jobIDs ...string) error {
	return r.backend.WithTx(func(tx *badger.Txn) error {
		for _, jobID := range jobIDs {
			key := makeJobRecordKey(jobID)

			// Verify existence before deleting
			_, err := tx.Get(key)
			if err != nil {
				if errors.Is(err, badger.ErrKeyNotFound) {
					return storage.ErrNotFound
				}
				return err
			}

			if err := tx.Delete(key); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)
}

// Count returns the number of stored embedding records.
func (r *JobRepository) Count(ctx context.Context) (int, error) {
	count := 0

	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(jobRecordPrefix)
		opts.PrefetchValues = false
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			count++
		}
		return nil
	}, false)

	if err != nil {
		return 0, err
	}
	return count, nil
}

// JobIDs returns the IDs of all stored embedding records in key order.
func (r *JobRepository) JobIDs(ctx context.Context) ([]string, error) {
	ids := []string{}

	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(jobRecordPrefix)
		opts.PrefetchValues = false
		iter := tx.NewIterator(opts)
		defer iter.Close()

		keyPrefixLen := len(jobRecordPrefix) + 1 // prefix plus separator
		for iter.Rewind(); iter.Valid(); iter.Next() {
			key := iter.Item().Key()
			if len(key) <= keyPrefixLen {
				continue
			}
			ids = append(ids, string(key[keyPrefixLen:]))
		}
		return nil
	}, false)

	if err != nil {
		return nil, err
	}
	return ids, nil
}

// readEmbeddingRecord reads a record by key within a transaction.
// Returns nil (no error) when the key doesn't exist.
func (r *JobRepository) readEmbeddingRecord(tx *badger.Txn, key []byte) (*core.EmbeddingRecord, error) {
	item, err := tx.Get(key)
	if err != nil {
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil, nil
		}
		return nil, err
	}

	var record *core.EmbeddingRecord
	err = item.Value(func(val []byte) error {
		var err error
		record, err = storage.UnmarshalEmbeddingRecord(val)
		return err
	})
	if err != nil {
		return nil, err
	}
	return record, nil
}
