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

package openai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/poiesic/jobscout/ai"
	"github.com/poiesic/jobscout/core"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

// Classifier implements ai.Classifier using OpenAI-compatible chat APIs.
// It asks the model for a structured JSON verdict on query intent.
type Classifier struct {
	client llms.Model
	logger *slog.Logger
}

// intentVerdict matches the JSON structure the model is prompted to emit.
type intentVerdict struct {
	Category    string  `json:"category"`
	Confidence  float64 `json:"confidence"`
	RAGSuitable bool    `json:"rag_suitable"`
	Reasoning   string  `json:"reasoning"`
}

// newClassifier is an internal constructor that returns the concrete type.
// Used by Provider to manage the instance.
func newClassifier(config *ai.Config) (*Classifier, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	client, err := openai.New(
		openai.WithBaseURL(config.ChatHost),
		openai.WithToken(config.Token),
		openai.WithModel(config.ChatModel),
	)
	if err != nil {
		return nil, err
	}

	return &Classifier{
		client: client,
		logger: slog.Default().With("component", "openai-classifier"),
	}, nil
}

// NewClassifier creates a new LLM-backed intent classifier using the
// provided configuration.
//
// Returns ai.Classifier interface to enforce abstraction.
func NewClassifier(config *ai.Config) (ai.Classifier, error) {
	return newClassifier(config)
}

// Classify asks the model to categorize the query and validates the
// structured answer. Temporal fields are always derived lexically from the
// query itself rather than trusted from the model.
func (c *Classifier) Classify(ctx context.Context, query string) (core.QueryIntent, error) {
	content := []llms.MessageContent{
		{
			Role: llms.ChatMessageTypeSystem,
			Parts: []llms.ContentPart{
				llms.TextPart(classificationSystemPrompt),
			},
		},
		{
			Role: llms.ChatMessageTypeHuman,
			Parts: []llms.ContentPart{
				llms.TextPart(query),
			},
		},
	}

	// Try up to 3 times in case of malformed JSON
	var verdict intentVerdict
	var lastErr error
	for attempt := 0; attempt < 3; attempt++ {
		response, err := c.client.GenerateContent(ctx, content, llms.WithTemperature(0.0), llms.WithJSONMode())
		if err != nil {
			c.logger.Error("failed to generate content", "attempt", attempt+1, "err", err)
			return core.QueryIntent{}, err
		}

		if len(response.Choices) < 1 {
			lastErr = errors.New("no choices returned from model")
			c.logger.Warn("no choices returned from model", "attempt", attempt+1)
			continue
		}

		choice := response.Choices[0]

		// Strip markdown code fences if present
		responseText := strings.TrimSpace(choice.Content)
		responseText = strings.TrimPrefix(responseText, "```json")
		responseText = strings.TrimPrefix(responseText, "```")
		responseText = strings.TrimSuffix(responseText, "```")
		responseText = strings.TrimSpace(responseText)

		// Try to repair common JSON issues
		responseText = repairJSON(responseText)

		if err := json.Unmarshal([]byte(responseText), &verdict); err != nil {
			lastErr = err
			c.logger.Warn("error parsing classifier response",
				"attempt", attempt+1,
				"response", responseText,
				"err", err)
			continue
		}

		if !core.ValidIntentCategory(core.IntentCategory(verdict.Category)) {
			lastErr = fmt.Errorf("unknown intent category %q", verdict.Category)
			c.logger.Warn("classifier returned unknown category",
				"attempt", attempt+1,
				"category", verdict.Category)
			continue
		}

		// Success
		lastErr = nil
		break
	}

	if lastErr != nil {
		c.logger.Error("failed to parse classifier response after retries", "err", lastErr)
		return core.QueryIntent{}, lastErr
	}

	intent := core.QueryIntent{
		Category:         core.IntentCategory(verdict.Category),
		Confidence:       clampConfidence(verdict.Confidence),
		RAGSuitable:      verdict.RAGSuitable,
		Reasoning:        verdict.Reasoning,
		TemporalKeywords: core.DetectTemporalKeywords(query),
	}
	intent.TemporalIntent = len(intent.TemporalKeywords) > 0

	c.logger.Debug("classified query",
		"category", intent.Category,
		"confidence", intent.Confidence,
		"rag_suitable", intent.RAGSuitable)

	return intent, nil
}

// clampConfidence bounds model-reported confidence to [0, 1].
func clampConfidence(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
