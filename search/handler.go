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


package search

import (
	"context"
	"log/slog"

	"github.com/poiesic/jobscout/ai"
	"github.com/poiesic/jobscout/core"
	"github.com/poiesic/jobscout/graph"
)

// DefaultResultCount is used when the caller passes a non-positive limit.
const DefaultResultCount = 5

// completionPrompt frames answers for queries that skip retrieval.
const completionPrompt = `You are a helpful job-search assistant. The user's question does not require
searching the job postings database, so answer it directly and concisely.
If the question is about careers or job hunting, give practical advice. If it
is unrelated to jobs, answer briefly and offer to help with job searching.`

// Handler is the request orchestrator: it classifies the query, gates it,
// and either retrieves and enriches job postings or falls back to a
// conversational answer or structured guidance.
type Handler struct {
	classifier ai.Classifier
	completer  ai.Completer
	gate       *Gate
	retriever  *Retriever
	expander   *graph.Expander
	composer   *Composer
	logger     *slog.Logger
}

// HandlerOption configures a Handler.
type HandlerOption func(*Handler) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) HandlerOption {
	return func(h *Handler) error {
		if logger == nil {
			logger = slog.Default()
		}
		h.logger = logger
		return nil
	}
}

// NewHandler creates a request handler. The completer may be nil, in which
// case gated general questions receive guidance instead of an answer.
func NewHandler(
	classifier ai.Classifier,
	completer ai.Completer,
	retriever *Retriever,
	expander *graph.Expander,
	opts ...HandlerOption,
) (*Handler, error) {
	if classifier == nil {
		return nil, ErrClassifierRequired
	}
	if retriever == nil {
		return nil, ErrRetrieverRequired
	}
	if expander == nil {
		return nil, ErrExpanderRequired
	}

	h := &Handler{
		classifier: classifier,
		completer:  completer,
		gate:       NewGate(),
		retriever:  retriever,
		expander:   expander,
		composer:   NewComposer(),
		logger:     slog.Default(),
	}

	// Apply options
	for _, opt := range opts {
		if err := opt(h); err != nil {
			return nil, err
		}
	}

	return h, nil
}

// Handle processes one query end to end.
func (h *Handler) Handle(ctx context.Context, query string, nResults int) (*core.Response, error) {
	return h.HandleWithMonitor(ctx, query, nResults, nil)
}

// HandleWithMonitor processes one query end to end with monitoring.
// The monitor receives callbacks at each stage of the pipeline.
//
// Retrieval-path errors (embedding provider, vector index) abort the call;
// graph-path failures only reduce the richness of the response.
func (h *Handler) HandleWithMonitor(ctx context.Context, query string, nResults int, monitor RetrievalMonitor) (*core.Response, error) {
	if monitor == nil {
		monitor = &noopMonitor{}
	}
	if nResults <= 0 {
		nResults = DefaultResultCount
	}

	monitor.Start(query)

	// 1. Classify intent. The classifier stack degrades internally and
	// never fails the request.
	intent, err := h.classifier.Classify(ctx, query)
	if err != nil {
		h.logger.Error("classification failed", "query", query, "err", err)
		return nil, err
	}
	monitor.AfterClassification(intent)

	// 2. Gate the query.
	decision := h.gate.Decide(query, intent)
	monitor.AfterGate(decision)

	if !decision.UseRAG {
		response := h.respondWithoutRetrieval(ctx, query, intent, decision)
		monitor.Finish(response)
		return response, nil
	}

	// 3. Retrieve similar postings.
	results, err := h.retriever.Retrieve(ctx, query, nResults)
	if err != nil {
		return nil, err
	}
	monitor.AfterRetrieval(results)

	// 4. Expand through the graph. Failures degrade, never abort.
	expansions := h.expander.ExpandRelated(ctx, results)
	monitor.AfterExpansion(expansions)

	enhanced, available := h.expander.Expand(ctx, query, results)
	if !available {
		expansions.GraphAvailable = false
	}

	// 5. Compose the response.
	response := h.composer.Compose(query, intent, results, expansions, enhanced)
	monitor.Finish(response)
	return response, nil
}

// respondWithoutRetrieval handles gated queries: general questions go to
// the language model, everything else gets structured guidance.
func (h *Handler) respondWithoutRetrieval(ctx context.Context, query string, intent core.QueryIntent, decision Decision) *core.Response {
	response := &core.Response{
		Query:         query,
		Intent:        intent,
		UsedRetrieval: false,
		Results:       []core.RetrievedJob{},
	}

	if intent.Category == core.IntentGeneral && h.completer != nil {
		answer, err := h.completer.Complete(ctx, completionPrompt, query)
		if err == nil {
			response.Answer = answer
			response.Summary = "Answered without searching job postings"
			return response
		}
		h.logger.Warn("completion failed, returning guidance", "err", err)
	}

	response.Guidance = h.gate.Guidance(decision)
	response.Summary = "Query needs refinement before searching job postings"
	return response
}
