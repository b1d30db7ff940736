package ai

import (
	"context"
	"errors"
	"log/slog"

	"github.com/poiesic/jobscout/core"
)

// ErrNoClassifier is returned by NewFallbackClassifier when no fallback is provided.
var ErrNoClassifier = errors.New("fallback classifier required")

// FallbackClassifier selects between two classification strategies by
// availability: it asks the primary (typically a language model) first and
// silently degrades to the fallback (typically the deterministic heuristic)
// on any error. The fallback is expected to be infallible.
type FallbackClassifier struct {
	primary  Classifier
	fallback Classifier
	logger   *slog.Logger
}

var _ Classifier = (*FallbackClassifier)(nil)

// NewFallbackClassifier creates a classifier that tries primary first and
// degrades to fallback on any primary error. The primary may be nil, in
// which case the fallback is always used; the fallback is required.
func NewFallbackClassifier(primary, fallback Classifier) (*FallbackClassifier, error) {
	if fallback == nil {
		return nil, ErrNoClassifier
	}
	return &FallbackClassifier{
		primary:  primary,
		fallback: fallback,
		logger:   slog.Default().With("component", "fallback-classifier"),
	}, nil
}

// Classify returns the primary strategy's intent when it succeeds and the
// fallback's otherwise. Primary failures are logged, never surfaced:
// classification must not fail a request.
func (c *FallbackClassifier) Classify(ctx context.Context, query string) (core.QueryIntent, error) {
	if c.primary != nil {
		intent, err := c.primary.Classify(ctx, query)
		if err == nil {
			return intent, nil
		}
		c.logger.Warn("primary classifier failed, using heuristic fallback", "err", err)
	}
	return c.fallback.Classify(ctx, query)
}
