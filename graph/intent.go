package graph

import (
	"strings"

	"github.com/poiesic/jobscout/core"
)

// Keyword sets for the graph-purpose lexical read of a query. This is
// independent of the primary intent classification: it only decides which
// analysis facets are worth computing.
var (
	locationKeywords = []string{
		"location", "remote", "where",
		"san francisco", "new york", "seattle", "austin", "london", "berlin",
	}
	careerKeywords = []string{
		"senior", "junior", "career", "progression", "advancement", "level", "experience",
	}
	skillKeywords = []string{
		"python", "javascript", "machine learning", "ai", "skills", "technology", "programming",
	}
)

// AnalyzeQuery scans the query for location, career, and skill signals.
// Matching is case-insensitive substring matching; MatchedKeywords holds
// the union of hits across all three sets.
func AnalyzeQuery(query string) core.QueryAnalysis {
	q := strings.ToLower(query)

	analysis := core.QueryAnalysis{
		MatchedKeywords: []string{},
	}

	for _, kw := range locationKeywords {
		if strings.Contains(q, kw) {
			analysis.HasLocationIntent = true
			analysis.MatchedKeywords = append(analysis.MatchedKeywords, kw)
		}
	}
	for _, kw := range careerKeywords {
		if strings.Contains(q, kw) {
			analysis.HasCareerIntent = true
			analysis.MatchedKeywords = append(analysis.MatchedKeywords, kw)
		}
	}
	for _, kw := range skillKeywords {
		if strings.Contains(q, kw) {
			analysis.HasSkillIntent = true
			analysis.MatchedKeywords = append(analysis.MatchedKeywords, kw)
		}
	}

	return analysis
}
