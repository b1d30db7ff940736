package core

import (
	"strings"
	"testing"
)

func TestPostingID(t *testing.T) {
	tests := []struct {
		name     string
		title    string
		company  string
		location string
	}{
		{
			name:     "basic posting",
			title:    "Senior AI Engineer",
			company:  "Google",
			location: "San Francisco, CA",
		},
		{
			name:     "empty fields",
			title:    "",
			company:  "",
			location: "",
		},
		{
			name:     "unicode",
			title:    "Développeur IA",
			company:  "Société Générale",
			location: "Paris",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id1 := PostingID(tt.title, tt.company, tt.location)
			id2 := PostingID(tt.title, tt.company, tt.location)

			if id1 != id2 {
				t.Errorf("PostingID() produced different IDs for same posting: %s vs %s", id1, id2)
			}
			if len(id1) != 16 {
				t.Errorf("PostingID() length = %d, want 16 hex chars", len(id1))
			}
		})
	}
}

func TestPostingID_Different(t *testing.T) {
	id1 := PostingID("Engineer", "Google", "SF")
	id2 := PostingID("Engineer", "Microsoft", "SF")

	if id1 == id2 {
		t.Errorf("PostingID() produced same ID for different companies")
	}
}

func TestPostingID_FieldBoundaries(t *testing.T) {
	// "ab"+"c" must not collide with "a"+"bc"
	id1 := PostingID("ab", "c", "loc")
	id2 := PostingID("a", "bc", "loc")

	if id1 == id2 {
		t.Errorf("PostingID() collided across field boundaries")
	}
}

func TestJobPosting_Document(t *testing.T) {
	posting := &JobPosting{
		Title:       "ML Engineer",
		Company:     "OpenAI",
		Location:    "Remote",
		Description: "Build training pipelines.",
		TechStack:   []string{"Python", "PyTorch"},
	}

	doc := posting.Document()
	for _, want := range []string{"ML Engineer", "OpenAI", "Remote", "Build training pipelines.", "Python, PyTorch"} {
		if !strings.Contains(doc, want) {
			t.Errorf("Document() missing %q in %q", want, doc)
		}
	}
}

func TestJobPosting_Document_Minimal(t *testing.T) {
	posting := &JobPosting{Title: "Engineer", Company: "Acme"}

	if got, want := posting.Document(), "Engineer at Acme"; got != want {
		t.Errorf("Document() = %q, want %q", got, want)
	}
}

func TestJobPosting_Metadata(t *testing.T) {
	posting := &JobPosting{
		Title:           "Data Scientist",
		Company:         "Acme",
		Location:        "Berlin",
		Remote:          true,
		ExperienceLevel: "Senior",
	}

	m := posting.Metadata()
	if m["title"] != "Data Scientist" || m["company"] != "Acme" || m["location"] != "Berlin" {
		t.Errorf("Metadata() core fields wrong: %v", m)
	}
	if m["remote"] != "true" {
		t.Errorf("Metadata() remote = %q, want true", m["remote"])
	}
	if m["experience_level"] != "Senior" {
		t.Errorf("Metadata() experience_level = %q", m["experience_level"])
	}
	if _, ok := m["salary_range"]; ok {
		t.Errorf("Metadata() contains empty salary_range")
	}
}

func TestValidIntentCategory(t *testing.T) {
	for _, c := range []IntentCategory{IntentJobListing, IntentAnalytical, IntentGeneral} {
		if !ValidIntentCategory(c) {
			t.Errorf("ValidIntentCategory(%q) = false", c)
		}
	}
	if ValidIntentCategory("chit_chat") {
		t.Errorf("ValidIntentCategory accepted unknown category")
	}
}
