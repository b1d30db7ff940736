package main

import (
	"context"
	"encoding/json"
	"flag"
	"log/slog"
	"os"

	"github.com/poiesic/jobscout"
	"github.com/poiesic/jobscout/core"
	"github.com/poiesic/jobscout/ingestion"
)

// Demo postings: a handful of companies with overlapping tech stacks and
// junior/senior pairs, enough structure for the graph facets to surface
// something interesting.
var postings = []*core.JobPosting{
	{Title: "Senior Go Engineer", Company: "Acme Robotics", Location: "San Francisco", Description: "Build control-plane services for warehouse robots.", TechStack: []string{"Go", "Kubernetes", "PostgreSQL"}, ExperienceLevel: "Senior"},
	{Title: "Junior Go Engineer", Company: "Acme Robotics", Location: "San Francisco", Description: "Learn backend development on the robot fleet APIs.", TechStack: []string{"Go", "PostgreSQL"}, ExperienceLevel: "Junior"},
	{Title: "Machine Learning Engineer", Company: "Acme Robotics", Location: "Remote", Description: "Train perception models for pick-and-place robots.", TechStack: []string{"Python", "PyTorch", "Kubernetes"}, Remote: true},
	{Title: "Senior Data Engineer", Company: "Globex Analytics", Location: "New York", Description: "Own the streaming ingestion platform.", TechStack: []string{"Python", "Kafka", "PostgreSQL"}, ExperienceLevel: "Senior"},
	{Title: "Junior Data Engineer", Company: "Globex Analytics", Location: "New York", Description: "Build and monitor batch pipelines.", TechStack: []string{"Python", "PostgreSQL"}, ExperienceLevel: "Junior"},
	{Title: "Data Scientist", Company: "Globex Analytics", Location: "Remote", Description: "Model customer churn and revenue forecasts.", TechStack: []string{"Python", "Machine Learning"}, Remote: true},
	{Title: "Senior Frontend Developer", Company: "Initech", Location: "Austin", Description: "Lead the design-system rewrite.", TechStack: []string{"JavaScript", "React", "TypeScript"}, ExperienceLevel: "Senior"},
	{Title: "Entry Level Frontend Developer", Company: "Initech", Location: "Austin", Description: "Ship UI components with the platform team.", TechStack: []string{"JavaScript", "React"}, ExperienceLevel: "Entry"},
	{Title: "Backend Developer", Company: "Initech", Location: "Austin", Description: "Maintain the billing and reporting services.", TechStack: []string{"Java", "PostgreSQL", "AWS"}},
	{Title: "Senior Platform Engineer", Company: "Hooli Cloud", Location: "Seattle", Description: "Run the multi-region compute platform.", TechStack: []string{"Go", "Kubernetes", "AWS"}, ExperienceLevel: "Senior"},
	{Title: "Site Reliability Engineer", Company: "Hooli Cloud", Location: "Seattle", Description: "Keep the storage fleet healthy.", TechStack: []string{"Go", "AWS", "Terraform"}},
	{Title: "Junior DevOps Engineer", Company: "Hooli Cloud", Location: "Remote", Description: "Automate deployment pipelines.", TechStack: []string{"Terraform", "Kubernetes"}, ExperienceLevel: "Junior", Remote: true},
	{Title: "Lead AI Engineer", Company: "Vehement Biotech", Location: "Boston", Description: "Apply language models to drug discovery literature.", TechStack: []string{"Python", "Machine Learning", "AI"}, ExperienceLevel: "Lead"},
	{Title: "Junior Python Developer", Company: "Vehement Biotech", Location: "Boston", Description: "Support the lab automation toolchain.", TechStack: []string{"Python"}, ExperienceLevel: "Junior"},
	{Title: "Fullstack Engineer", Company: "Massive Dynamic", Location: "London", Description: "Build the customer portal end to end.", TechStack: []string{"TypeScript", "React", "Go"}},
	{Title: "Senior Security Engineer", Company: "Massive Dynamic", Location: "London", Description: "Harden the identity platform.", TechStack: []string{"Go", "AWS"}, ExperienceLevel: "Senior"},
	{Title: "Mobile Developer", Company: "Soylent Labs", Location: "Berlin", Description: "Own the Android ordering app.", TechStack: []string{"Kotlin", "Java"}},
	{Title: "Senior Machine Learning Engineer", Company: "Soylent Labs", Location: "Berlin", Description: "Personalize meal recommendations.", TechStack: []string{"Python", "Machine Learning", "Kafka"}, ExperienceLevel: "Senior"},
}

var (
	seedFileName = flag.String("src", "", "JSON file of postings to seed instead of the built-in set")
	dbPath       = flag.String("db", "./jobs_db", "path to BadgerDB database directory")
)

func init() {
	handler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	slog.SetDefault(slog.New(handler))
	flag.Parse()
}

func postingsFromFile(filename string) ([]*core.JobPosting, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	var loaded []*core.JobPosting
	if err := json.Unmarshal(data, &loaded); err != nil {
		return nil, err
	}
	return loaded, nil
}

func main() {
	ctx := context.Background()

	svc, err := jobscout.NewService(ctx, *dbPath)
	if err != nil {
		panic(err)
	}
	defer svc.Close(ctx)

	pipeline, err := svc.NewIngestionPipeline()
	if err != nil {
		panic(err)
	}
	defer pipeline.Release()

	seed := postings
	if *seedFileName != "" {
		seed, err = postingsFromFile(*seedFileName)
		if err != nil {
			panic(err)
		}
	}

	ids, err := pipeline.Ingest(ctx, seed, &ingestion.IngestOptions{Source: "seeder"})
	if err != nil {
		panic(err)
	}

	pipeline.Wait()
	slog.Info("seeded postings", "count", len(ids))
}
