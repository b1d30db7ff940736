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


// Package ai provides abstractions for AI services used in jobscout.
//
// This package defines interfaces for AI operations: text embeddings, query
// intent classification, and general-purpose completions. It follows the
// dependency inversion principle, allowing the retrieval core to depend on
// abstractions rather than concrete implementations.
//
// # Design Principles
//
// The package is designed around four key interfaces:
//
//   - Embedder: Generates vector embeddings from text
//   - Classifier: Turns a free-text query into a structured intent
//   - Completer: Produces conversational answers for gated queries
//   - Provider: Aggregates AI services for convenient initialization
//
// # Implementation Packages
//
// The ai package includes three implementation sub-packages:
//
//   - ai/openai: Production implementation using OpenAI-compatible APIs
//   - ai/heuristic: Deterministic rule-based classifier, no external services
//   - ai/mock: Test doubles for unit testing without external dependencies
//
// # Classifier Strategies
//
// Intent classification is a polymorphic capability with two concrete
// strategies selected by availability. The production path asks a language
// model for a structured JSON answer; when that call is unavailable or
// fails, FallbackClassifier silently degrades to the deterministic
// heuristic rules. No error is surfaced to the caller either way:
//
//	classifier := ai.NewFallbackClassifier(llmClassifier, heuristic.NewClassifier())
//	intent, _ := classifier.Classify(ctx, "find machine learning jobs in Berlin")
//
// # Constructor Return Type Pattern
//
// Public constructors (openai.NewProvider, openai.NewEmbedder, etc.) return
// INTERFACE types to enforce abstraction and prevent accidental coupling to
// concrete implementations. Test utility constructors (mock.NewMockEmbedder,
// mock.NewMockClassifier) return CONCRETE types to enable test assertions
// and behavior injection via the mocks' public fields.
package ai
