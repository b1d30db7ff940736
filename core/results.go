package core

// RetrievedJob is one ranked hit from the similarity retriever.
// SimilarityScore is exactly 1 - distance from the vector index, so 1.0
// means identical and values below zero are possible for very dissimilar
// vectors.
type RetrievedJob struct {
	ID              string
	Document        string
	SimilarityScore float64
	Metadata        map[string]string
}

// RelationReason tags why a related job was surfaced by graph expansion.
type RelationReason string

const (
	// ReasonSameCompany marks jobs at the same company as a retrieved hit.
	ReasonSameCompany RelationReason = "same_company"
	// ReasonSharedSkills marks jobs requiring at least one common skill.
	ReasonSharedSkills RelationReason = "shared_skills"
)

// RelatedJob is a job surfaced by expanding a retrieved hit through the
// company/skill graph.
type RelatedJob struct {
	ID       string
	Title    string
	Location string
	Company  string
	SourceID string // the retrieved job this expansion started from
	Reason   RelationReason
}

// ExpansionSummary aggregates related-job counts by reason.
type ExpansionSummary struct {
	TotalRelated int
	SameCompany  int
	SharedSkills int
}

// GraphExpansions bundles related jobs with their summary. GraphAvailable
// is false when the graph store was unreachable; the lists are then empty
// but never nil.
type GraphExpansions struct {
	RelatedJobs    []RelatedJob
	Summary        ExpansionSummary
	GraphAvailable bool
}

// CompanyInsight describes one company's hiring pattern among the
// retrieved results.
type CompanyInsight struct {
	Company     string
	JobCount    int
	Locations   []string
	RemoteCount int
}

// SkillDemand counts how many jobs across the whole graph require a skill.
type SkillDemand struct {
	Skill  string
	Demand int
}

// LocationInsight counts jobs per location across the whole graph.
type LocationInsight struct {
	Location string
	JobCount int
}

// CareerPath names a skill bridging junior-level jobs to senior-level
// jobs, ranked by how many such pairs it connects.
type CareerPath struct {
	Skill              string
	ConnectionStrength int
}

// MarketTrends summarizes hiring volume among companies with at least two
// open jobs. AvgJobsPerCompany is rounded to one decimal place.
type MarketTrends struct {
	ActiveCompanies      int
	AvgJobsPerCompany    float64
	MaxJobsSingleCompany int
}

// QueryAnalysis holds the graph-purpose lexical read of the query,
// independent of the primary intent classification.
type QueryAnalysis struct {
	HasLocationIntent bool
	HasCareerIntent   bool
	HasSkillIntent    bool
	MatchedKeywords   []string
}

// GraphContext is the multi-facet market analysis assembled by the graph
// expander. Facets degrade independently: an unreachable graph store
// yields empty slices and zero values, never an error.
type GraphContext struct {
	CompanyInsights  []CompanyInsight
	SkillAnalysis    []SkillDemand
	LocationInsights []LocationInsight
	CareerPaths      []CareerPath
	MarketTrends     *MarketTrends
	QueryAnalysis    QueryAnalysis
}

// DecisionFactor is one boolean input to the retrieval gate's vote.
type DecisionFactor struct {
	Name   string
	Passed bool
}

// Guidance explains why retrieval was skipped and how to rephrase.
type Guidance struct {
	Message      string
	ExampleQuery string
	Factors      []DecisionFactor
}

// Response is the single result object handed back to callers of
// Handle: either ranked retrieval results enriched with graph context,
// or guidance/an answer when the gate decided against retrieval.
type Response struct {
	Query           string
	Summary         string
	Intent          QueryIntent
	UsedRetrieval   bool
	Results         []RetrievedJob
	TotalResults    int
	GraphExpansions *GraphExpansions
	EnhancedContext *GraphContext
	Guidance        *Guidance
	Answer          string // conversational fallback for general questions
}
