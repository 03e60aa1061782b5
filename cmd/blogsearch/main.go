// Copyright 2025 Anshita Saini
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

	"github.com/urfave/cli/v2"

	"github.com/anshita195/blogsearch"
	"github.com/anshita195/blogsearch/ai"
	"github.com/anshita195/blogsearch/classifier"
	"github.com/anshita195/blogsearch/config"
	"github.com/anshita195/blogsearch/ingestion"
	"github.com/anshita195/blogsearch/search"
)

func main() {
	app := &cli.App{
		Name:  "blogsearch",
		Usage: "Search engine for personal blogs",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to YAML configuration file",
				Value:   "blogsearch.yaml",
			},
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
				Name:   "ingest",
				Usage:  "Classify crawled pages and store the accepted ones",
				Action: ingestCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "pages",
						Aliases:  []string{"p"},
						Usage:    "Path to a JSON file with crawled pages",
						Required: true,
					},
					&cli.BoolFlag{
						Name:  "no-rebuild",
						Usage: "Skip the index rebuild after ingestion",
					},
				},
			},
			{
				Name:   "rebuild",
				Usage:  "Rebuild the index snapshot from the document store",
				Action: rebuildCommand,
			},
			{
				Name:   "reclassify",
				Usage:  "Rerun the classifier over all stored documents",
				Action: reclassifyCommand,
			},
			{
				Name:      "search",
				Usage:     "Search the indexed corpus",
				ArgsUsage: "QUERY...",
				Action:    searchCommand,
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:    "semantic",
						Aliases: []string{"s"},
						Usage:   "Fuse embedding similarity into the ranking",
					},
					&cli.IntFlag{
						Name:    "limit",
						Aliases: []string{"n"},
						Usage:   "Maximum number of results",
						Value:   search.DefaultLimit,
					},
					&cli.StringFlag{
						Name:  "domain",
						Usage: "Restrict results to one domain",
					},
				},
			},
			{
				Name:   "stats",
				Usage:  "Print engine statistics",
				Action: statsCommand,
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:  "popular",
						Usage: "Number of popular queries to show",
						Value: 10,
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

// newEngine builds an engine from the configuration file. The caller must
// close it.
func newEngine(c *cli.Context) (*blogsearch.Engine, error) {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return nil, fmt.Errorf("loading configuration: %w", err)
	}

	aiConfig := ai.NewConfig(
		ai.WithHost(cfg.Embedding.Host),
		ai.WithModel(cfg.Embedding.Model),
		ai.WithDimension(cfg.Embedding.Dimension),
	)
	if err := aiConfig.Validate(); err != nil {
		return nil, fmt.Errorf("invalid embedding configuration: %w", err)
	}

	opts := []blogsearch.EngineOption{
		blogsearch.WithAIConfig(aiConfig),
		blogsearch.WithCacheSize(cfg.Search.CacheSize),
		blogsearch.WithSearchWeights(cfg.Search.LexicalWeight, cfg.Search.SemanticWeight),
		blogsearch.WithEnsembleOptions(
			classifier.WithWeights(classifier.Weights{
				Embedding:  cfg.Classifier.EmbeddingWeight,
				Structural: cfg.Classifier.StructuralWeight,
				Lexical:    cfg.Classifier.LexicalWeight,
			}),
			classifier.WithThresholds(cfg.Classifier.AcceptThreshold, cfg.Classifier.RejectThreshold),
		),
	}
	if cfg.Classifier.PoolSize > 0 {
		opts = append(opts, blogsearch.WithPoolSize(cfg.Classifier.PoolSize))
	}

	return blogsearch.NewEngine(cfg.Storage.Path, opts...)
}

func ingestCommand(c *cli.Context) error {
	ctx := context.Background()

	data, err := os.ReadFile(c.String("pages"))
	if err != nil {
		return fmt.Errorf("reading pages file: %w", err)
	}

	var pages []*ingestion.RawPage
	if err := json.Unmarshal(data, &pages); err != nil {
		return fmt.Errorf("parsing pages file: %w", err)
	}
	if len(pages) == 0 {
		return fmt.Errorf("pages file contains no pages")
	}

	engine, err := newEngine(c)
	if err != nil {
		return err
	}
	defer engine.Close()

	result, err := engine.Ingest(ctx, pages)
	if err != nil {
		return fmt.Errorf("ingestion failed: %w", err)
	}

	fmt.Printf("Pages:     %d\n", len(pages))
	fmt.Printf("Accepted:  %d\n", result.Accepted)
	fmt.Printf("Rejected:  %d\n", result.Rejected)
	fmt.Printf("Undecided: %d\n", result.Undecided)
	fmt.Printf("Failed:    %d\n", result.Failed)

	if c.Bool("no-rebuild") {
		return nil
	}
	if err := engine.Rebuild(ctx); err != nil {
		return fmt.Errorf("index rebuild failed: %w", err)
	}
	fmt.Println("Index rebuilt.")
	return nil
}

func rebuildCommand(c *cli.Context) error {
	engine, err := newEngine(c)
	if err != nil {
		return err
	}
	defer engine.Close()

	if err := engine.Rebuild(context.Background()); err != nil {
		return fmt.Errorf("index rebuild failed: %w", err)
	}
	fmt.Println("Index rebuilt.")
	return nil
}

func reclassifyCommand(c *cli.Context) error {
	engine, err := newEngine(c)
	if err != nil {
		return err
	}
	defer engine.Close()

	result, err := engine.Reclassify(context.Background())
	if err != nil {
		return fmt.Errorf("reclassification failed: %w", err)
	}

	fmt.Printf("Kept:      %d\n", result.Accepted)
	fmt.Printf("Rejected:  %d\n", result.Rejected)
	fmt.Printf("Undecided: %d\n", result.Undecided)
	fmt.Printf("Failed:    %d\n", result.Failed)
	return nil
}

func searchCommand(c *cli.Context) error {
	query := strings.Join(c.Args().Slice(), " ")
	if strings.TrimSpace(query) == "" {
		return fmt.Errorf("query is required")
	}

	engine, err := newEngine(c)
	if err != nil {
		return err
	}
	defer engine.Close()

	response, err := engine.Search(context.Background(), &search.Request{
		Query:    query,
		Semantic: c.Bool("semantic"),
		Limit:    c.Int("limit"),
		Domain:   c.String("domain"),
	})
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	fmt.Printf("Found %d hits\n", response.TotalResults)
	for i, hit := range response.Results {
		fmt.Printf("%d: %s\n   %s [score %.3f, confidence %.2f]\n",
			i+1, hit.Doc.Title, hit.Doc.URL, hit.Score, hit.Confidence)
	}
	if response.SemanticUsed {
		fmt.Println("(semantic ranking used)")
	}
	return nil
}

func statsCommand(c *cli.Context) error {
	engine, err := newEngine(c)
	if err != nil {
		return err
	}
	defer engine.Close()

	stats, err := engine.Stats(context.Background(), c.Int("popular"))
	if err != nil {
		return fmt.Errorf("collecting stats failed: %w", err)
	}

	fmt.Printf("Documents:          %d\n", stats.Documents)
	fmt.Printf("Snapshot:           %d\n", stats.SnapshotID)
	fmt.Printf("Total searches:     %d\n", stats.Search.TotalSearches)
	fmt.Printf("Failed searches:    %d\n", stats.Search.FailedSearches)
	fmt.Printf("Cache hit ratio:    %.2f\n", stats.Search.CacheHitRatio)
	fmt.Printf("Semantic fallbacks: %d\n", stats.Search.SemanticFallbacks)
	if !stats.Search.LastRebuild.IsZero() {
		fmt.Printf("Last rebuild:       %s\n", stats.Search.LastRebuild.Format("2006-01-02 15:04:05"))
	}

	if len(stats.Domains) > 0 {
		fmt.Println("\nDomains:")
		for domain, n := range stats.Domains {
			fmt.Printf("  %-40s %d\n", domain, n)
		}
	}

	if len(stats.Search.PopularQueries) > 0 {
		fmt.Println("\nPopular queries:")
		for _, q := range stats.Search.PopularQueries {
			fmt.Printf("  %-40s %d\n", q.Query, q.Count)
		}
	}
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
