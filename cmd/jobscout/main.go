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


package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/poiesic/jobscout"
	"github.com/poiesic/jobscout/ai"
	"github.com/poiesic/jobscout/ai/openai"
	"github.com/poiesic/jobscout/core"
	graphneo4j "github.com/poiesic/jobscout/graph/neo4j"
	"github.com/poiesic/jobscout/ingestion"
	"github.com/poiesic/jobscout/reembed"
	"github.com/poiesic/jobscout/storage/badger"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "jobscout",
		Usage: "Retrieval-augmented job search assistant",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:      "search",
				Usage:     "Answer a job search query",
				ArgsUsage: "<query>",
				Action:    searchCommand,
				Flags: append(serviceFlags(),
					&cli.IntFlag{
						Name:    "results",
						Aliases: []string{"n"},
						Usage:   "Number of results to retrieve",
						Value:   5,
					},
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Print the full response as JSON",
					},
				),
			},
			{
				Name:   "ingest",
				Usage:  "Ingest job postings from a JSON file",
				Action: ingestCommand,
				Flags: append(serviceFlags(),
					&cli.StringFlag{
						Name:     "file",
						Aliases:  []string{"f"},
						Usage:    "Path to a JSON file holding an array of postings",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "source",
						Usage: "Source label applied to postings without one",
						Value: "import",
					},
				),
			},
			{
				Name:   "reembed",
				Usage:  "Reembed all stored postings with new embeddings",
				Action: reembedCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "db",
						Aliases:  []string{"d"},
						Usage:    "Path to BadgerDB database directory",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "embedding-host",
						Usage: "Embedding service host URL",
						Value: "http://localhost:11434/v1",
					},
					&cli.StringFlag{
						Name:     "embedding-model",
						Usage:    "Embedding model name",
						Required: true,
					},
					&cli.IntFlag{
						Name:  "batch-size",
						Usage: "Number of records to process in each batch",
						Value: 100,
					},
					&cli.IntFlag{
						Name:  "report-interval",
						Usage: "Report progress every N records",
						Value: 100,
					},
					&cli.IntFlag{
						Name:  "max-retries",
						Usage: "Maximum retry attempts for failed operations",
						Value: 3,
					},
					&cli.DurationFlag{
						Name:  "retry-delay",
						Usage: "Base delay for exponential backoff",
						Value: 1 * time.Second,
					},
				},
			},
			{
				Name:   "info",
				Usage:  "Show store statistics",
				Action: infoCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "db",
						Aliases:  []string{"d"},
						Usage:    "Path to BadgerDB database directory",
						Required: true,
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

// serviceFlags are shared by commands that build a full Service.
func serviceFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:     "db",
			Aliases:  []string{"d"},
			Usage:    "Path to BadgerDB database directory",
			Required: true,
		},
		&cli.StringFlag{
			Name:  "ai-host",
			Usage: "OpenAI-compatible service host URL (embedding and chat)",
			Value: "http://localhost:11434/v1",
		},
		&cli.StringFlag{
			Name:    "ai-token",
			Usage:   "API token for the AI service",
			EnvVars: []string{"JOBSCOUT_AI_TOKEN"},
		},
		&cli.StringFlag{
			Name:  "embedding-model",
			Usage: "Embedding model name",
			Value: "text-embedding-3-small",
		},
		&cli.StringFlag{
			Name:  "chat-model",
			Usage: "Chat model for classification and answers",
			Value: "gpt-4o-mini",
		},
		&cli.StringFlag{
			Name:    "graph-uri",
			Usage:   "Neo4j connection URI; empty disables graph features",
			EnvVars: []string{"JOBSCOUT_GRAPH_URI"},
		},
		&cli.StringFlag{
			Name:    "graph-user",
			Usage:   "Neo4j user",
			Value:   "neo4j",
			EnvVars: []string{"JOBSCOUT_GRAPH_USER"},
		},
		&cli.StringFlag{
			Name:    "graph-password",
			Usage:   "Neo4j password",
			EnvVars: []string{"JOBSCOUT_GRAPH_PASSWORD"},
		},
		&cli.StringFlag{
			Name:    "graph-database",
			Usage:   "Neo4j database name (empty uses server default)",
			EnvVars: []string{"JOBSCOUT_GRAPH_DATABASE"},
		},
	}
}

func newService(ctx context.Context, c *cli.Context) (*jobscout.Service, error) {
	aiConfig := ai.NewConfig(
		ai.WithHost(c.String("ai-host")),
		ai.WithToken(c.String("ai-token")),
		ai.WithEmbeddingModel(c.String("embedding-model")),
		ai.WithChatModel(c.String("chat-model")),
	)

	opts := []jobscout.ServiceOption{jobscout.WithAIConfig(aiConfig)}

	if uri := c.String("graph-uri"); uri != "" {
		opts = append(opts, jobscout.WithGraphConfig(&graphneo4j.Config{
			URI:      uri,
			User:     c.String("graph-user"),
			Password: c.String("graph-password"),
			Database: c.String("graph-database"),
		}))
	}

	return jobscout.NewService(ctx, c.String("db"), opts...)
}

func searchCommand(c *cli.Context) error {
	query := strings.TrimSpace(strings.Join(c.Args().Slice(), " "))
	if query == "" {
		return fmt.Errorf("query is required")
	}

	ctx := context.Background()
	svc, err := newService(ctx, c)
	if err != nil {
		return fmt.Errorf("failed to open service: %w", err)
	}
	defer svc.Close(ctx)

	handler, err := svc.NewHandler()
	if err != nil {
		return fmt.Errorf("failed to create handler: %w", err)
	}

	response, err := handler.Handle(ctx, query, c.Int("results"))
	if err != nil {
		return err
	}

	if c.Bool("json") {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(response)
	}

	printResponse(response)
	return nil
}

func printResponse(response *core.Response) {
	fmt.Println(response.Summary)

	if response.Answer != "" {
		fmt.Println()
		fmt.Println(response.Answer)
		return
	}

	if response.Guidance != nil {
		fmt.Println()
		fmt.Println(response.Guidance.Message)
		fmt.Printf("Try: %s\n", response.Guidance.ExampleQuery)
		for _, factor := range response.Guidance.Factors {
			mark := "fail"
			if factor.Passed {
				mark = "pass"
			}
			fmt.Printf("  [%s] %s\n", mark, factor.Name)
		}
		return
	}

	for i, result := range response.Results {
		fmt.Printf("\n%d. [%.3f] %s\n", i+1, result.SimilarityScore, result.Document)
	}

	if response.GraphExpansions != nil && response.GraphExpansions.GraphAvailable {
		summary := response.GraphExpansions.Summary
		fmt.Printf("\nRelated jobs: %d (%d same company, %d shared skills)\n",
			summary.TotalRelated, summary.SameCompany, summary.SharedSkills)
		for _, related := range response.GraphExpansions.RelatedJobs {
			fmt.Printf("  - %s at %s (%s)\n", related.Title, related.Company, related.Reason)
		}
	}
}

func ingestCommand(c *cli.Context) error {
	ctx := context.Background()

	data, err := os.ReadFile(c.String("file"))
	if err != nil {
		return fmt.Errorf("failed to read postings file: %w", err)
	}

	var postings []*core.JobPosting
	if err := json.Unmarshal(data, &postings); err != nil {
		return fmt.Errorf("failed to parse postings file: %w", err)
	}
	if len(postings) == 0 {
		return fmt.Errorf("postings file is empty")
	}

	svc, err := newService(ctx, c)
	if err != nil {
		return fmt.Errorf("failed to open service: %w", err)
	}
	defer svc.Close(ctx)

	pipeline, err := svc.NewIngestionPipeline()
	if err != nil {
		return fmt.Errorf("failed to create pipeline: %w", err)
	}
	defer pipeline.Release()

	ids, err := pipeline.Ingest(ctx, postings, &ingestion.IngestOptions{
		Source:     c.String("source"),
		PostedDate: time.Now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("ingestion failed: %w", err)
	}

	pipeline.Wait()

	fmt.Fprintf(os.Stderr, "Ingested %d postings (graph mirror: %v)\n", len(ids), svc.GraphEnabled())
	return nil
}

func reembedCommand(c *cli.Context) error {
	ctx := context.Background()

	repo, err := badger.NewJobRepository(c.String("db"))
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer repo.Close()

	aiConfig := ai.NewConfig(
		ai.WithEmbeddingHost(c.String("embedding-host")),
		ai.WithEmbeddingModel(c.String("embedding-model")),
	)
	if err := aiConfig.Validate(); err != nil {
		return fmt.Errorf("invalid AI configuration: %w", err)
	}

	embedder, err := openai.NewEmbedder(aiConfig)
	if err != nil {
		return fmt.Errorf("failed to create embedder: %w", err)
	}

	reembedConfig := &reembed.Config{
		BatchSize:      c.Int("batch-size"),
		ReportInterval: c.Int("report-interval"),
		MaxRetries:     c.Int("max-retries"),
		RetryDelay:     c.Duration("retry-delay"),
	}
	if reembedConfig.BatchSize <= 0 {
		return fmt.Errorf("batch-size must be greater than 0")
	}
	if reembedConfig.ReportInterval <= 0 {
		return fmt.Errorf("report-interval must be greater than 0")
	}
	if reembedConfig.MaxRetries <= 0 {
		return fmt.Errorf("max-retries must be greater than 0")
	}

	reembedder := reembed.NewReembedder(repo, embedder, reembedConfig, os.Stderr)

	fmt.Fprintf(os.Stderr, "Database: %s\n", c.String("db"))
	fmt.Fprintf(os.Stderr, "Embedding host: %s\n", c.String("embedding-host"))
	fmt.Fprintf(os.Stderr, "Embedding model: %s\n", c.String("embedding-model"))
	fmt.Fprintln(os.Stderr)

	if err := reembedder.Run(ctx); err != nil {
		return fmt.Errorf("reembedding failed: %w", err)
	}

	return nil
}

func infoCommand(c *cli.Context) error {
	ctx := context.Background()

	repo, err := badger.NewJobRepository(c.String("db"))
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer repo.Close()

	count, err := repo.Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to count records: %w", err)
	}

	fmt.Printf("Database: %s\n", c.String("db"))
	fmt.Printf("Embedding records: %d\n", count)
	return nil
}

func setupLogger(c *cli.Context) error {
	levelStr := strings.ToLower(c.String("log-level"))

	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}
