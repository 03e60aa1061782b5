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


package blogsearch

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anshita195/blogsearch/ai/mock"
	"github.com/anshita195/blogsearch/core"
	"github.com/anshita195/blogsearch/index"
	"github.com/anshita195/blogsearch/ingestion"
	"github.com/anshita195/blogsearch/search"
)

const (
	personalPost = "I finally fixed my homelab server this weekend. " +
		"Honestly, I learned so much from my mistakes and I wrote about my journey here. " +
		"My next post covers the monitoring setup I built."
	marketingPage = "Buy now and get started with our pricing plans. " +
		"Request a demo or start your free trial today. Our enterprise solutions help customers scale."
)

func newTestEngine(t *testing.T, opts ...EngineOption) *Engine {
	t.Helper()

	opts = append([]EngineOption{
		WithInMemory(),
		WithEmbedder(mock.NewEmbedder()),
	}, opts...)

	engine, err := NewEngine("", opts...)
	require.NoError(t, err)
	t.Cleanup(func() { engine.Close() })
	return engine
}

func TestEngine_IngestAndSearch(t *testing.T) {
	engine := newTestEngine(t)
	ctx := context.Background()

	result, err := engine.Ingest(ctx, []*ingestion.RawPage{
		{URL: "https://alice.dev/homelab", Title: "My homelab journey", Content: personalPost},
		{URL: "https://acme.com/product", Title: "Acme Platform", Content: marketingPage},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, result.Accepted)
	assert.Equal(t, 1, result.Rejected)

	require.NoError(t, engine.Rebuild(ctx))

	response, err := engine.Search(ctx, &search.Request{Query: "homelab server", Limit: 10})
	require.NoError(t, err)
	require.Len(t, response.Results, 1)
	assert.Equal(t, "https://alice.dev/homelab", response.Results[0].Doc.URL)

	// The rejected marketing page is not searchable.
	response, err = engine.Search(ctx, &search.Request{Query: "pricing", Limit: 10})
	require.NoError(t, err)
	assert.Empty(t, response.Results)
}

func TestEngine_SearchBeforeFirstRebuild(t *testing.T) {
	engine := newTestEngine(t)

	response, err := engine.Search(context.Background(), &search.Request{Query: "anything", Limit: 10})
	require.NoError(t, err)
	assert.Empty(t, response.Results)
}

func TestEngine_SnapshotSurvivesRestart(t *testing.T) {
	dir := t.TempDir()
	embedder := mock.NewEmbedder()
	ctx := context.Background()

	engine, err := NewEngine(dir, WithEmbedder(embedder))
	require.NoError(t, err)

	_, err = engine.Ingest(ctx, []*ingestion.RawPage{
		{URL: "https://alice.dev/homelab", Title: "My homelab journey", Content: personalPost},
	})
	require.NoError(t, err)
	require.NoError(t, engine.Rebuild(ctx))
	require.NoError(t, engine.Close())

	// A fresh engine restores the persisted snapshot and serves queries
	// without a rebuild.
	reopened, err := NewEngine(dir, WithEmbedder(embedder))
	require.NoError(t, err)
	defer reopened.Close()

	response, err := reopened.Search(ctx, &search.Request{Query: "homelab", Limit: 10})
	require.NoError(t, err)
	require.Len(t, response.Results, 1)
	assert.Equal(t, "https://alice.dev/homelab", response.Results[0].Doc.URL)
}

func TestEngine_RebuildIsIdempotent(t *testing.T) {
	engine := newTestEngine(t)
	ctx := context.Background()

	_, err := engine.Ingest(ctx, []*ingestion.RawPage{
		{URL: "https://alice.dev/homelab", Title: "My homelab journey", Content: personalPost},
	})
	require.NoError(t, err)

	require.NoError(t, engine.Rebuild(ctx))
	stats, err := engine.Stats(ctx, 10)
	require.NoError(t, err)
	firstID := stats.SnapshotID

	require.NoError(t, engine.Rebuild(ctx))
	stats, err = engine.Stats(ctx, 10)
	require.NoError(t, err)
	assert.Equal(t, firstID, stats.SnapshotID)
}

func TestEngine_RebuildRefusedOnEmptyCorpus(t *testing.T) {
	dir := t.TempDir()
	embedder := mock.NewEmbedder()
	ctx := context.Background()

	engine, err := NewEngine(dir, WithEmbedder(embedder))
	require.NoError(t, err)

	_, err = engine.Ingest(ctx, []*ingestion.RawPage{
		{URL: "https://alice.dev/homelab", Title: "My homelab journey", Content: personalPost},
	})
	require.NoError(t, err)
	require.NoError(t, engine.Rebuild(ctx))

	// Empty the store. The rebuild is refused and the live snapshot keeps
	// serving.
	id := core.IDFromURL("https://alice.dev/homelab")
	require.NoError(t, engine.DocumentRepository().DeleteDocuments(ctx, id))

	err = engine.Rebuild(ctx)
	assert.ErrorIs(t, err, index.ErrEmptyCorpus)

	response, err := engine.Search(ctx, &search.Request{Query: "homelab", Limit: 10})
	require.NoError(t, err)
	assert.Len(t, response.Results, 1)

	require.NoError(t, engine.Close())

	// The stale snapshot record was dropped with the corpus, so reopening
	// starts with an empty index instead of failing the consistency check.
	reopened, err := NewEngine(dir, WithEmbedder(embedder))
	require.NoError(t, err)
	defer reopened.Close()

	response, err = reopened.Search(ctx, &search.Request{Query: "homelab", Limit: 10})
	require.NoError(t, err)
	assert.Empty(t, response.Results)
}

func TestEngine_Reclassify(t *testing.T) {
	engine := newTestEngine(t)
	ctx := context.Background()

	_, err := engine.Ingest(ctx, []*ingestion.RawPage{
		{URL: "https://alice.dev/homelab", Title: "My homelab journey", Content: personalPost},
	})
	require.NoError(t, err)
	require.NoError(t, engine.Rebuild(ctx))

	result, err := engine.Reclassify(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Accepted)

	// The document is still searchable after reclassification.
	response, err := engine.Search(ctx, &search.Request{Query: "homelab", Limit: 10})
	require.NoError(t, err)
	assert.Len(t, response.Results, 1)
}

func TestEngine_Stats(t *testing.T) {
	engine := newTestEngine(t)
	ctx := context.Background()

	_, err := engine.Ingest(ctx, []*ingestion.RawPage{
		{URL: "https://alice.dev/homelab", Title: "My homelab journey", Content: personalPost},
	})
	require.NoError(t, err)
	require.NoError(t, engine.Rebuild(ctx))

	_, err = engine.Search(ctx, &search.Request{Query: "homelab", Limit: 10})
	require.NoError(t, err)

	stats, err := engine.Stats(ctx, 10)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Documents)
	assert.Equal(t, map[string]int{"alice.dev": 1}, stats.Domains)
	assert.NotZero(t, stats.SnapshotID)
	assert.Equal(t, uint64(1), stats.Search.TotalSearches)
}
