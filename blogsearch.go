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


// Package blogsearch is a search engine for personal blogs. It classifies
// crawled pages to keep only personal writing, indexes the accepted corpus
// into immutable snapshots, and answers hybrid lexical/semantic queries.
package blogsearch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/anshita195/blogsearch/ai"
	"github.com/anshita195/blogsearch/ai/openai"
	"github.com/anshita195/blogsearch/classifier"
	"github.com/anshita195/blogsearch/index"
	"github.com/anshita195/blogsearch/ingestion"
	"github.com/anshita195/blogsearch/search"
	"github.com/anshita195/blogsearch/storage"
	"github.com/anshita195/blogsearch/storage/badger"
)

// Engine ties the whole system together: storage, classifier, index, and
// search. It is the main entry point for library consumers.
type Engine struct {
	backend   *badger.Backend
	documents storage.DocumentRepository
	verdicts  storage.VerdictRepository
	snapshots storage.SnapshotStore
	embedder  ai.Embedder
	pipeline  *ingestion.Pipeline
	searcher  *search.Engine
	logger    *slog.Logger
}

// EngineOption configures an Engine.
type EngineOption func(*engineOptions)

type engineOptions struct {
	aiConfig        *ai.Config
	embedder        ai.Embedder
	centroids       *classifier.Centroids
	ensembleOptions []classifier.Option
	poolSize        int
	cacheSize       int
	lexicalWeight   float64
	semanticWeight  float64
	inMemory        bool
}

// WithAIConfig sets the embedding service configuration.
// Default is ai.DefaultConfig().
func WithAIConfig(config *ai.Config) EngineOption {
	return func(o *engineOptions) {
		if config != nil {
			o.aiConfig = config
		}
	}
}

// WithEmbedder injects an embedder, bypassing the OpenAI-compatible client.
// Intended for tests and custom embedding backends.
func WithEmbedder(embedder ai.Embedder) EngineOption {
	return func(o *engineOptions) {
		o.embedder = embedder
	}
}

// WithCentroids supplies precomputed classification centroids, skipping the
// exemplar embedding calls at startup.
func WithCentroids(centroids *classifier.Centroids) EngineOption {
	return func(o *engineOptions) {
		o.centroids = centroids
	}
}

// WithEnsembleOptions passes options through to the classifier ensemble,
// such as classifier.WithWeights or classifier.WithThresholds.
func WithEnsembleOptions(opts ...classifier.Option) EngineOption {
	return func(o *engineOptions) {
		o.ensembleOptions = append(o.ensembleOptions, opts...)
	}
}

// WithPoolSize sets the ingestion worker pool size.
func WithPoolSize(size int) EngineOption {
	return func(o *engineOptions) {
		o.poolSize = size
	}
}

// WithCacheSize sets the search result cache capacity.
func WithCacheSize(size int) EngineOption {
	return func(o *engineOptions) {
		o.cacheSize = size
	}
}

// WithSearchWeights sets the lexical and semantic fusion weights for hybrid
// search.
func WithSearchWeights(lexical, semantic float64) EngineOption {
	return func(o *engineOptions) {
		o.lexicalWeight = lexical
		o.semanticWeight = semantic
	}
}

// WithInMemory opens the storage backend in memory, discarding all data on
// Close. Intended for tests.
func WithInMemory() EngineOption {
	return func(o *engineOptions) {
		o.inMemory = true
	}
}

// NewEngine opens or creates an engine at the given storage path. If a
// snapshot was persisted by a previous run it is restored, so searches work
// immediately; otherwise the engine starts empty until the first Rebuild.
func NewEngine(filePath string, opts ...EngineOption) (*Engine, error) {
	options := &engineOptions{
		aiConfig:       ai.DefaultConfig(),
		cacheSize:      search.DefaultCacheSize,
		lexicalWeight:  search.DefaultLexicalWeight,
		semanticWeight: search.DefaultSemanticWeight,
	}
	for _, opt := range opts {
		opt(options)
	}

	backend, err := badger.OpenBackend(filePath, options.inMemory)
	if err != nil {
		return nil, err
	}

	documents, err := badger.NewDocumentRepository(backend)
	if err != nil {
		backend.Close()
		return nil, err
	}

	verdicts, err := badger.NewVerdictRepository(backend)
	if err != nil {
		documents.Close()
		backend.Close()
		return nil, err
	}

	snapshots, err := badger.NewSnapshotStore(backend)
	if err != nil {
		verdicts.Close()
		documents.Close()
		backend.Close()
		return nil, err
	}

	e := &Engine{
		backend:   backend,
		documents: documents,
		verdicts:  verdicts,
		snapshots: snapshots,
		logger:    slog.Default(),
	}

	e.embedder = options.embedder
	if e.embedder == nil {
		embedder, err := openai.NewEmbedder(options.aiConfig)
		if err != nil {
			e.closeStorage()
			return nil, err
		}
		e.embedder = embedder
	}

	centroids := options.centroids
	if centroids == nil {
		centroids, err = classifier.ComputeCentroids(context.Background(), e.embedder,
			classifier.DefaultPersonalExemplars(), classifier.DefaultCorporateExemplars())
		if err != nil {
			e.closeStorage()
			return nil, fmt.Errorf("computing classification centroids: %w", err)
		}
	}

	embedding, err := classifier.NewEmbeddingStage(centroids)
	if err != nil {
		e.closeStorage()
		return nil, err
	}
	lexical, err := classifier.NewLexicalStage(
		classifier.DefaultPersonalVocabulary(), classifier.DefaultCorporateVocabulary())
	if err != nil {
		e.closeStorage()
		return nil, err
	}
	ensemble, err := classifier.NewEnsemble(
		embedding, classifier.NewStructuralStage(), lexical, options.ensembleOptions...)
	if err != nil {
		e.closeStorage()
		return nil, err
	}
	extractor, err := classifier.NewExtractor(e.embedder)
	if err != nil {
		e.closeStorage()
		return nil, err
	}

	var pipelineOpts []ingestion.Option
	if options.poolSize > 0 {
		pipelineOpts = append(pipelineOpts, ingestion.WithPoolSize(options.poolSize))
	}
	pipeline, err := ingestion.NewPipeline(documents, verdicts, extractor, ensemble, pipelineOpts...)
	if err != nil {
		e.closeStorage()
		return nil, err
	}
	e.pipeline = pipeline

	e.searcher = search.NewEngine(
		search.WithEmbedder(e.embedder),
		search.WithCacheSize(options.cacheSize),
		search.WithFusionWeights(options.lexicalWeight, options.semanticWeight),
	)

	if err := e.restoreSnapshot(context.Background()); err != nil {
		e.pipeline.Release()
		e.closeStorage()
		return nil, err
	}

	return e, nil
}

// restoreSnapshot reloads the persisted index snapshot, if any. A missing
// snapshot is normal for a fresh store; a snapshot that does not match the
// document store is an error, since serving from it would return wrong
// results.
func (e *Engine) restoreSnapshot(ctx context.Context) error {
	record, err := e.snapshots.LoadSnapshot(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			e.logger.Info("no persisted snapshot, starting with empty index")
			return nil
		}
		return err
	}

	docs, err := e.documents.GetDocuments(ctx, record.DocIds...)
	if err != nil {
		return err
	}

	snapshot, err := index.FromRecord(record, docs)
	if err != nil {
		return fmt.Errorf("restoring persisted snapshot: %w", err)
	}
	e.searcher.Install(snapshot)
	return nil
}

// Ingest classifies a batch of crawled pages and stores the accepted ones.
// Call Rebuild afterwards to make them searchable.
func (e *Engine) Ingest(ctx context.Context, pages []*ingestion.RawPage) (*ingestion.BatchResult, error) {
	return e.pipeline.Ingest(ctx, pages)
}

// Reclassify reruns the classifier over the stored corpus and rebuilds the
// index so dropped documents disappear from results.
func (e *Engine) Reclassify(ctx context.Context) (*ingestion.BatchResult, error) {
	result, err := e.pipeline.Reclassify(ctx)
	if err != nil {
		return nil, err
	}
	if err := e.Rebuild(ctx); err != nil {
		return nil, err
	}
	return result, nil
}

// Rebuild constructs a fresh index snapshot from the document store,
// persists it, and swaps it in atomically. Queries running concurrently
// keep their current snapshot until the swap completes.
//
// Rebuilding over an empty document store is refused with
// index.ErrEmptyCorpus and the current snapshot stays installed. The
// persisted record is removed in that case, since it references documents
// that no longer exist; the next open starts with an empty index instead of
// failing the corruption check.
func (e *Engine) Rebuild(ctx context.Context) error {
	docs, err := e.documents.AllDocuments(ctx)
	if err != nil {
		return err
	}

	snapshot, err := index.Build(docs)
	if err != nil {
		if errors.Is(err, index.ErrEmptyCorpus) {
			if delErr := e.snapshots.DeleteSnapshot(ctx); delErr != nil {
				e.logger.Error("error deleting stale snapshot record", "err", delErr)
			}
		}
		return err
	}

	if err := e.snapshots.SaveSnapshot(ctx, snapshot.ToRecord()); err != nil {
		return err
	}
	e.searcher.Install(snapshot)
	return nil
}

// Search answers a query against the current snapshot.
func (e *Engine) Search(ctx context.Context, req *search.Request) (*search.Response, error) {
	return e.searcher.Search(ctx, req)
}

// EngineStats combines search counters with corpus-level numbers.
type EngineStats struct {
	Search     search.Stats
	Documents  int
	Domains    map[string]int
	SnapshotID uint64
}

// Stats reports engine counters, the stored document count, and per-domain
// corpus sizes. popularLimit bounds the popular-query list.
func (e *Engine) Stats(ctx context.Context, popularLimit int) (*EngineStats, error) {
	count, err := e.documents.CountDocuments(ctx)
	if err != nil {
		return nil, err
	}

	stats := &EngineStats{
		Search:    e.searcher.Stats(popularLimit),
		Documents: count,
	}
	if snapshot := e.searcher.Snapshot(); snapshot != nil {
		stats.SnapshotID = snapshot.Id()
		stats.Domains = snapshot.Domains()
	}
	return stats, nil
}

// DocumentRepository exposes the underlying document store.
func (e *Engine) DocumentRepository() storage.DocumentRepository {
	return e.documents
}

// VerdictRepository exposes the underlying verdict store.
func (e *Engine) VerdictRepository() storage.VerdictRepository {
	return e.verdicts
}

// Close releases the ingestion pool and closes storage.
func (e *Engine) Close() error {
	e.pipeline.Release()
	return e.closeStorage()
}

func (e *Engine) closeStorage() error {
	if err := e.snapshots.Close(); err != nil {
		e.logger.Error("error closing snapshot store", "err", err)
		return err
	}
	if err := e.verdicts.Close(); err != nil {
		e.logger.Error("error closing verdict repository", "err", err)
		return err
	}
	if err := e.documents.Close(); err != nil {
		e.logger.Error("error closing document repository", "err", err)
		return err
	}
	if err := e.backend.Close(); err != nil {
		e.logger.Error("error closing backend storage", "err", err)
		return err
	}
	return nil
}
