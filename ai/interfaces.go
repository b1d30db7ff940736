package ai

import (
	"context"

	"github.com/poiesic/jobscout/core"
)

// Embedder generates vector embeddings from text for semantic similarity search.
// Implementations must be thread-safe for concurrent use.
type Embedder interface {
	// EmbedText generates a vector embedding for a single text string.
	// Returns an error if the embedding generation fails.
	EmbedText(ctx context.Context, text string) ([]float32, error)

	// EmbedTexts generates vector embeddings for multiple text strings in a
	// batch. The returned slice contains embeddings in the same order as the
	// input texts. Returns an error if any embedding generation fails.
	EmbedTexts(ctx context.Context, texts []string) ([][]float32, error)
}

// Classifier turns a free-text query into a structured QueryIntent.
// Implementations must be thread-safe for concurrent use.
type Classifier interface {
	// Classify analyzes the query and returns its intent: category,
	// confidence, retrieval suitability, and temporal signals.
	Classify(ctx context.Context, query string) (core.QueryIntent, error)
}

// Completer produces a conversational answer from a general-purpose
// language model. Used as the fallback for queries that retrieval cannot
// serve. Implementations must be thread-safe for concurrent use.
type Completer interface {
	// Complete sends the system prompt and user text to the model and
	// returns its text response.
	Complete(ctx context.Context, systemPrompt, userText string) (string, error)
}

// Provider aggregates AI services for convenient initialization and
// lifecycle management. A provider creates and manages Embedder,
// Classifier, and Completer instances, ensuring they share configuration
// and resources appropriately.
type Provider interface {
	// Embedder returns the text embedding service.
	Embedder() Embedder

	// Classifier returns the query intent classification service.
	Classifier() Classifier

	// Completer returns the general-purpose completion service.
	Completer() Completer

	// Close releases resources held by the provider and its services.
	// After Close is called, the provider and its services should not be used.
	Close() error
}
