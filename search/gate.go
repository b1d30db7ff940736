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
	"strings"
	"unicode"

	"github.com/poiesic/jobscout/core"
)

// Quality and voting thresholds for the retrieval decision.
const (
	qualityPassThreshold  = 0.6
	confidenceThreshold   = 0.7
	factorMajority        = 3
	minSearchableEvidence = 2
)

// Bare question words that signal a query with no searchable substance.
var bareQuestionWords = map[string]bool{
	"what": true, "how": true, "why": true, "where": true, "when": true, "who": true,
}

// Single broad nouns too generic to retrieve against.
var broadNouns = map[string]bool{
	"jobs": true, "job": true, "work": true, "career": true, "help": true,
}

// Prepositions counted as searchable-context evidence.
var contextPrepositions = map[string]bool{
	"in": true, "at": true, "for": true, "with": true, "using": true,
}

// domainVocabulary covers roles, technologies, industries, and places a
// job query would plausibly mention.
var domainVocabulary = []string{
	// roles
	"engineer", "developer", "scientist", "analyst", "manager", "designer", "architect",
	// technologies
	"python", "java", "javascript", "go", "react", "aws", "machine learning", "ai", "data",
	// industries
	"fintech", "biotech", "healthcare", "startup",
	// places
	"san francisco", "new york", "seattle", "austin", "remote", "london", "berlin",
}

// Decision is the retrieval gate's verdict on one query.
type Decision struct {
	UseRAG       bool
	TooBroad     bool
	QualityScore float64
	Factors      []core.DecisionFactor
}

// Gate decides whether a classified query is worth running through
// retrieval. Deterministic and side-effect free.
type Gate struct{}

// NewGate creates a retrieval gate.
func NewGate() *Gate {
	return &Gate{}
}

// Decide evaluates five factors and votes. A too-broad query vetoes
// retrieval outright; otherwise retrieval runs when at least three
// factors pass.
func (g *Gate) Decide(query string, intent core.QueryIntent) Decision {
	tooBroad := isTooBroad(query)
	quality := qualityScore(query, intent)

	factors := []core.DecisionFactor{
		{
			Name:   "retrieval_category",
			Passed: intent.Category == core.IntentJobListing || intent.Category == core.IntentAnalytical,
		},
		{
			Name:   "confident_classification",
			Passed: intent.Confidence >= confidenceThreshold,
		},
		{
			Name:   "query_quality",
			Passed: quality >= qualityPassThreshold,
		},
		{
			Name:   "not_too_broad",
			Passed: !tooBroad,
		},
		{
			Name:   "searchable_context",
			Passed: hasSearchableContext(query),
		},
	}

	passed := 0
	for _, f := range factors {
		if f.Passed {
			passed++
		}
	}

	return Decision{
		UseRAG:       !tooBroad && passed >= factorMajority,
		TooBroad:     tooBroad,
		QualityScore: quality,
		Factors:      factors,
	}
}

// Guidance renders a decision into advice the caller can show the user.
func (g *Gate) Guidance(decision Decision) *core.Guidance {
	message := "This query is too vague to search job postings effectively. " +
		"Try naming a role, technology, company, or location."
	if decision.TooBroad {
		message = "This query is too broad to search job postings effectively. " +
			"Try naming a role, technology, company, or location."
	}
	return &core.Guidance{
		Message:      message,
		ExampleQuery: "Find Python developer jobs in San Francisco",
		Factors:      decision.Factors,
	}
}

// qualityScore is the mean of four boolean checks: length, domain
// vocabulary, classification confidence, and retrieval suitability.
func qualityScore(query string, intent core.QueryIntent) float64 {
	checks := []bool{
		len(strings.Fields(query)) >= 2,
		mentionsDomainVocabulary(query),
		intent.Confidence >= confidenceThreshold,
		intent.RAGSuitable,
	}

	passed := 0
	for _, check := range checks {
		if check {
			passed++
		}
	}
	return float64(passed) / float64(len(checks))
}

// isTooBroad matches queries with no searchable substance: a bare
// question word, a single broad noun, or a "tell me about" opener.
func isTooBroad(query string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	q = strings.TrimRight(q, "?!. ")

	if bareQuestionWords[q] || broadNouns[q] {
		return true
	}
	return strings.HasPrefix(q, "tell me about")
}

// hasSearchableContext requires at least two kinds of evidence that the
// query carries enough shape to search: length, a proper-noun-looking
// token, or a scoping preposition.
func hasSearchableContext(query string) bool {
	words := strings.Fields(query)

	evidence := 0
	if len(words) >= 3 {
		evidence++
	}
	if containsUppercaseToken(words) {
		evidence++
	}
	if containsPreposition(words) {
		evidence++
	}
	return evidence >= minSearchableEvidence
}

// containsUppercaseToken reports whether any word after the first starts
// with an uppercase letter. The first word is excluded because sentence
// capitalization carries no signal.
func containsUppercaseToken(words []string) bool {
	for i, word := range words {
		if i == 0 {
			continue
		}
		for _, r := range word {
			if unicode.IsUpper(r) {
				return true
			}
			break
		}
	}
	return false
}

func containsPreposition(words []string) bool {
	for _, word := range words {
		if contextPrepositions[strings.ToLower(word)] {
			return true
		}
	}
	return false
}

// mentionsDomainVocabulary checks the query against role, technology,
// industry, and place terms. Single-word terms match whole tokens only
// so short terms like "go" and "ai" don't fire inside other words.
func mentionsDomainVocabulary(query string) bool {
	q := strings.ToLower(query)
	tokens := make(map[string]bool)
	for _, word := range strings.Fields(q) {
		tokens[strings.Trim(word, ".,!?;:'\"()")] = true
	}

	for _, term := range domainVocabulary {
		if strings.Contains(term, " ") {
			if strings.Contains(q, term) {
				return true
			}
			continue
		}
		if tokens[term] {
			return true
		}
	}
	return false
}
