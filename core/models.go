package core

import (
	"encoding/hex"
	"strings"
	"time"

	"github.com/go-crypt/x/blake2b"
)

// PostingID generates a deterministic identifier for a job posting from its
// title, company, and location using BLAKE2b hashing. Identical postings
// produce identical IDs, so re-scraping the same listing never duplicates it.
func PostingID(title, company, location string) string {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(title))
	h.Write([]byte{'|'})
	h.Write([]byte(company))
	h.Write([]byte{'|'})
	h.Write([]byte(location))
	return hex.EncodeToString(h.Sum(nil))
}

// JobPosting is a single scraped job listing. Postings are immutable once
// created by ingestion; the embedding store owns the persisted form.
type JobPosting struct {
	ID              string
	Title           string
	Company         string
	Location        string
	Description     string
	TechStack       []string
	SalaryRange     string
	EmploymentType  string
	Remote          bool
	ExperienceLevel string
	PostedDate      time.Time
	Source          string
	ApplyLink       string
}

// Document renders the posting as the text that gets embedded and returned
// with retrieval results.
func (p *JobPosting) Document() string {
	var b strings.Builder
	b.WriteString(p.Title)
	b.WriteString(" at ")
	b.WriteString(p.Company)
	if p.Location != "" {
		b.WriteString(" (")
		b.WriteString(p.Location)
		b.WriteString(")")
	}
	if p.Description != "" {
		b.WriteString(". ")
		b.WriteString(p.Description)
	}
	if len(p.TechStack) > 0 {
		b.WriteString(" Tech stack: ")
		b.WriteString(strings.Join(p.TechStack, ", "))
		b.WriteString(".")
	}
	return b.String()
}

// Metadata returns the flat metadata mapping stored alongside the embedding.
func (p *JobPosting) Metadata() map[string]string {
	m := map[string]string{
		"title":    p.Title,
		"company":  p.Company,
		"location": p.Location,
	}
	if p.SalaryRange != "" {
		m["salary_range"] = p.SalaryRange
	}
	if p.EmploymentType != "" {
		m["employment_type"] = p.EmploymentType
	}
	if p.ExperienceLevel != "" {
		m["experience_level"] = p.ExperienceLevel
	}
	if p.Remote {
		m["remote"] = "true"
	}
	if p.Source != "" {
		m["source"] = p.Source
	}
	if p.ApplyLink != "" {
		m["apply_link"] = p.ApplyLink
	}
	if !p.PostedDate.IsZero() {
		m["posted_date"] = p.PostedDate.UTC().Format(time.RFC3339)
	}
	return m
}

// EmbeddingRecord is the persisted one-to-one companion of a JobPosting:
// its dense vector, document text, and metadata. Records are never mutated
// in place, only replaced wholesale on re-ingestion.
type EmbeddingRecord struct {
	JobID      string
	Vector     []float32
	Document   string
	Metadata   map[string]string
	IngestedAt time.Time
}

// NearestMatch is a single hit from the embedding store's nearest-neighbor
// scan. Distance is the raw index metric (cosine distance); callers derive
// similarity as 1 - Distance.
type NearestMatch struct {
	Record   *EmbeddingRecord
	Distance float64
}
