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


package jobscout

import (
	"context"
	"io"
	"log/slog"

	"github.com/poiesic/jobscout/ai"
	"github.com/poiesic/jobscout/ai/heuristic"
	"github.com/poiesic/jobscout/ai/openai"
	"github.com/poiesic/jobscout/graph"
	graphneo4j "github.com/poiesic/jobscout/graph/neo4j"
	"github.com/poiesic/jobscout/ingestion"
	"github.com/poiesic/jobscout/reembed"
	"github.com/poiesic/jobscout/search"
	"github.com/poiesic/jobscout/storage"
	"github.com/poiesic/jobscout/storage/badger"
)

// Service owns the process-wide dependencies: the embedding store, the AI
// provider, and optionally the graph store. It hands them to the pipeline
// and handler constructors; closing the service closes everything it opened.
type Service struct {
	jobRepo    storage.JobRepository
	graphStore graph.Store
	provider   ai.Provider
	logger     *slog.Logger
}

// ServiceOption configures a Service.
type ServiceOption func(*serviceOptions)

type serviceOptions struct {
	aiConfig    *ai.Config
	graphConfig *graphneo4j.Config
}

// WithAIConfig sets the AI provider configuration.
// Default is ai.DefaultConfig().
func WithAIConfig(config *ai.Config) ServiceOption {
	return func(o *serviceOptions) {
		o.aiConfig = config
	}
}

// WithGraphConfig enables the Neo4j graph store. Without it the service runs
// in degraded graph mode: retrieval works, expansion returns empty results.
func WithGraphConfig(config *graphneo4j.Config) ServiceOption {
	return func(o *serviceOptions) {
		o.graphConfig = config
	}
}

// NewService opens the embedding store at filePath and connects the
// configured providers.
func NewService(ctx context.Context, filePath string, opts ...ServiceOption) (*Service, error) {
	options := &serviceOptions{
		aiConfig: ai.DefaultConfig(),
	}
	for _, opt := range opts {
		opt(options)
	}

	jobRepo, err := badger.NewJobRepository(filePath)
	if err != nil {
		return nil, err
	}

	provider, err := openai.NewProvider(options.aiConfig)
	if err != nil {
		jobRepo.Close()
		return nil, err
	}

	var store graph.Store = graph.NewUnavailableStore()
	if options.graphConfig != nil {
		store, err = graphneo4j.NewStore(ctx, options.graphConfig)
		if err != nil {
			provider.Close()
			jobRepo.Close()
			return nil, err
		}
	}

	return &Service{
		jobRepo:    jobRepo,
		graphStore: store,
		provider:   provider,
		logger:     slog.Default(),
	}, nil
}

// Close releases all resources the service opened.
func (s *Service) Close(ctx context.Context) error {
	if err := s.provider.Close(); err != nil {
		s.logger.Error("error closing AI provider", "err", err)
	}

	if err := s.graphStore.Close(ctx); err != nil {
		s.logger.Error("error closing graph store", "err", err)
	}

	if err := s.jobRepo.Close(); err != nil {
		s.logger.Error("error closing job repository", "err", err)
		return err
	}
	return nil
}

// JobRepository exposes the embedding store.
func (s *Service) JobRepository() storage.JobRepository {
	return s.jobRepo
}

// GraphStore exposes the graph store. It is never nil; without graph
// configuration it is permanently unavailable.
func (s *Service) GraphStore() graph.Store {
	return s.graphStore
}

// GraphEnabled reports whether a real graph store is configured.
func (s *Service) GraphEnabled() bool {
	_, unavailable := s.graphStore.(*graph.UnavailableStore)
	return !unavailable
}

// NewIngestionPipeline creates a pipeline over the service's stores. The
// graph mirror is skipped when no graph store is configured.
func (s *Service) NewIngestionPipeline(opts ...ingestion.Option) (*ingestion.Pipeline, error) {
	var store graph.Store
	if s.GraphEnabled() {
		store = s.graphStore
	}
	return ingestion.NewPipeline(s.jobRepo, store, s.provider, opts...)
}

// NewHandler creates the query handler: a model classifier with heuristic
// fallback, the similarity retriever, and the graph expander.
func (s *Service) NewHandler(opts ...search.HandlerOption) (*search.Handler, error) {
	classifier, err := ai.NewFallbackClassifier(s.provider.Classifier(), heuristic.NewClassifier())
	if err != nil {
		return nil, err
	}

	retriever, err := search.NewRetriever(s.jobRepo, s.provider.Embedder())
	if err != nil {
		return nil, err
	}

	expander, err := graph.NewExpander(s.graphStore)
	if err != nil {
		return nil, err
	}

	return search.NewHandler(classifier, s.provider.Completer(), retriever, expander, opts...)
}

// NewReembedder creates a reembedder over the service's store using the
// currently configured embedding model.
func (s *Service) NewReembedder(config *reembed.Config, progress io.Writer) *reembed.Reembedder {
	return reembed.NewReembedder(s.jobRepo, s.provider.Embedder(), config, progress)
}
