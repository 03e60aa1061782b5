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


package search

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anshita195/blogsearch/ai/mock"
	"github.com/anshita195/blogsearch/core"
	"github.com/anshita195/blogsearch/index"
)

func testDoc(url, title, content string, confidence float64) *core.Document {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	return &core.Document{
		Id:         core.IDFromURL(url),
		URL:        url,
		Domain:     core.DomainFromURL(url),
		Title:      title,
		Content:    content,
		Confidence: confidence,
		Label:      core.LabelPersonal,
		FetchedAt:  now,
		UpdatedAt:  now,
	}
}

func buildSnapshot(t *testing.T, docs ...*core.Document) *index.Snapshot {
	t.Helper()
	snapshot, err := index.Build(docs)
	require.NoError(t, err)
	return snapshot
}

func TestSearch_Validation(t *testing.T) {
	engine := NewEngine()
	ctx := context.Background()

	t.Run("empty query", func(t *testing.T) {
		_, err := engine.Search(ctx, &Request{Query: "   "})
		assert.ErrorIs(t, err, ErrInvalidQuery)
	})

	t.Run("negative limit", func(t *testing.T) {
		_, err := engine.Search(ctx, &Request{Query: "python", Limit: -1})
		assert.ErrorIs(t, err, ErrInvalidLimit)
	})

	t.Run("zero limit", func(t *testing.T) {
		_, err := engine.Search(ctx, &Request{Query: "python", Limit: 0})
		assert.ErrorIs(t, err, ErrInvalidLimit)
	})
}

func TestSearch_NoSnapshot(t *testing.T) {
	engine := NewEngine()

	response, err := engine.Search(context.Background(), &Request{Query: "python", Limit: 10})
	require.NoError(t, err)
	assert.Empty(t, response.Results)
	assert.Zero(t, response.TotalResults)
}

func TestSearch_ConjunctiveMatching(t *testing.T) {
	engine := NewEngine()
	engine.Install(buildSnapshot(t,
		testDoc("https://alice.dev/a", "Python tips", "Writing python scripts for automation", 0.9),
		testDoc("https://bob.example.com/b", "Automation", "Automation without that language", 0.8),
		testDoc("https://carol.net/c", "Python", "Only python here", 0.8),
	))

	// Both terms must match.
	response, err := engine.Search(context.Background(), &Request{Query: "python automation", Limit: 10})
	require.NoError(t, err)
	require.Len(t, response.Results, 1)
	assert.Equal(t, "https://alice.dev/a", response.Results[0].Doc.URL)

	// A term matching nothing yields no results.
	response, err = engine.Search(context.Background(), &Request{Query: "python kubernetes", Limit: 10})
	require.NoError(t, err)
	assert.Empty(t, response.Results)
}

func TestSearch_StopWordOnlyQuery(t *testing.T) {
	engine := NewEngine()
	engine.Install(buildSnapshot(t,
		testDoc("https://alice.dev/a", "Python", "python content", 0.9),
	))

	response, err := engine.Search(context.Background(), &Request{Query: "the and of", Limit: 10})
	require.NoError(t, err)
	assert.Empty(t, response.Results)
}

func TestSearch_TermFrequencyRanking(t *testing.T) {
	engine := NewEngine()
	engine.Install(buildSnapshot(t,
		testDoc("https://alice.dev/dense", "Python python", "python python python everywhere", 0.8),
		testDoc("https://bob.example.com/sparse", "Notes", "one mention of python in a much longer document about other topics entirely", 0.8),
	))

	response, err := engine.Search(context.Background(), &Request{Query: "python", Limit: 10})
	require.NoError(t, err)
	require.Len(t, response.Results, 2)
	assert.Equal(t, "https://alice.dev/dense", response.Results[0].Doc.URL)
	assert.Greater(t, response.Results[0].Score, response.Results[1].Score)
}

func TestSearch_TieBreaksAreDeterministic(t *testing.T) {
	// Identical content, different confidence: higher confidence first.
	engine := NewEngine()
	engine.Install(buildSnapshot(t,
		testDoc("https://alice.dev/a", "Python", "python notes", 0.72),
		testDoc("https://bob.example.com/b", "Python", "python notes", 0.95),
	))

	for i := 0; i < 5; i++ {
		response, err := engine.Search(context.Background(), &Request{Query: "python", Limit: 10})
		require.NoError(t, err)
		require.Len(t, response.Results, 2)
		assert.Equal(t, "https://bob.example.com/b", response.Results[0].Doc.URL)
		assert.Equal(t, "https://alice.dev/a", response.Results[1].Doc.URL)
	}
}

func TestSearch_DomainFilter(t *testing.T) {
	engine := NewEngine()
	engine.Install(buildSnapshot(t,
		testDoc("https://alice.dev/a", "Python", "python content", 0.9),
		testDoc("https://bob.example.com/b", "Python", "python content", 0.9),
	))

	response, err := engine.Search(context.Background(), &Request{Query: "python", Limit: 10, Domain: "alice.dev"})
	require.NoError(t, err)
	require.Len(t, response.Results, 1)
	assert.Equal(t, "alice.dev", response.Results[0].Doc.Domain)

	response, err = engine.Search(context.Background(), &Request{Query: "python", Limit: 10, Domain: "unknown.dev"})
	require.NoError(t, err)
	assert.Empty(t, response.Results)
}

func TestSearch_LimitAndTotal(t *testing.T) {
	docs := []*core.Document{
		testDoc("https://alice.dev/a", "Python", "python alpha", 0.9),
		testDoc("https://bob.example.com/b", "Python", "python beta", 0.8),
		testDoc("https://carol.net/c", "Python", "python gamma", 0.7),
	}
	engine := NewEngine()
	engine.Install(buildSnapshot(t, docs...))

	response, err := engine.Search(context.Background(), &Request{Query: "python", Limit: 2})
	require.NoError(t, err)
	assert.Len(t, response.Results, 2)
	assert.Equal(t, 3, response.TotalResults)
}

func TestSearch_SemanticFusion(t *testing.T) {
	embedder := mock.NewEmbedder()
	engine := NewEngine(WithEmbedder(embedder))

	docA := testDoc("https://alice.dev/a", "Python", "python content here", 0.9)
	docA.Vector = mock.DeterministicVector("a", 8)
	docB := testDoc("https://bob.example.com/b", "Other", "nothing relevant lexically", 0.9)
	docB.Vector = mock.DeterministicVector("b", 8)
	engine.Install(buildSnapshot(t, docA, docB))

	embedder.EmbedTextFunc = func(ctx context.Context, text string) ([]float32, error) {
		return mock.DeterministicVector("b", 8), nil
	}

	response, err := engine.Search(context.Background(), &Request{Query: "python", Semantic: true, Limit: 10})
	require.NoError(t, err)
	assert.True(t, response.SemanticUsed)

	// The pool widened past the single lexical hit, so the semantically
	// identical document surfaces too.
	require.Len(t, response.Results, 2)
}

func TestSearch_SemanticOnlyWhenNoLexicalHits(t *testing.T) {
	embedder := mock.NewEmbedder()
	engine := NewEngine(WithEmbedder(embedder))

	doc := testDoc("https://alice.dev/a", "Homelab", "self hosting adventures", 0.9)
	doc.Vector = mock.DeterministicVector("homelab", 8)
	engine.Install(buildSnapshot(t, doc))

	embedder.EmbedTextFunc = func(ctx context.Context, text string) ([]float32, error) {
		return mock.DeterministicVector("homelab", 8), nil
	}

	response, err := engine.Search(context.Background(), &Request{Query: "servers", Semantic: true, Limit: 10})
	require.NoError(t, err)
	assert.True(t, response.SemanticUsed)
	require.Len(t, response.Results, 1)
	assert.InDelta(t, 1.0, response.Results[0].Score, 1e-6)
}

func TestSearch_SemanticFallbackOnEmbedderError(t *testing.T) {
	embedder := mock.NewEmbedder()
	embedder.EmbedTextFunc = func(ctx context.Context, text string) ([]float32, error) {
		return nil, errors.New("embedding service down")
	}
	engine := NewEngine(WithEmbedder(embedder))
	engine.Install(buildSnapshot(t,
		testDoc("https://alice.dev/a", "Python", "python content", 0.9),
	))

	response, err := engine.Search(context.Background(), &Request{Query: "python", Semantic: true, Limit: 10})
	require.NoError(t, err)
	assert.False(t, response.SemanticUsed)
	require.Len(t, response.Results, 1)

	stats := engine.Stats(10)
	assert.Equal(t, uint64(1), stats.SemanticFallbacks)
}

func TestSearch_SemanticIgnoredWithoutEmbedder(t *testing.T) {
	engine := NewEngine()
	engine.Install(buildSnapshot(t,
		testDoc("https://alice.dev/a", "Python", "python content", 0.9),
	))

	response, err := engine.Search(context.Background(), &Request{Query: "python", Semantic: true, Limit: 10})
	require.NoError(t, err)
	assert.False(t, response.SemanticUsed)
	require.Len(t, response.Results, 1)
}

func TestSearch_CachesBySnapshotIdentity(t *testing.T) {
	docA := testDoc("https://alice.dev/a", "Python", "python content", 0.9)
	engine := NewEngine()
	engine.Install(buildSnapshot(t, docA))

	ctx := context.Background()
	req := &Request{Query: "python", Limit: 10}

	first, err := engine.Search(ctx, req)
	require.NoError(t, err)
	second, err := engine.Search(ctx, req)
	require.NoError(t, err)
	assert.Same(t, first, second)

	stats := engine.Stats(10)
	assert.Equal(t, uint64(1), stats.CacheHits)
	assert.Equal(t, uint64(1), stats.CacheMisses)

	// A changed corpus installs a snapshot with a new identity; the cached
	// entry must not be served.
	docB := testDoc("https://bob.example.com/b", "Python", "python content too", 0.8)
	engine.Install(buildSnapshot(t, docA, docB))

	third, err := engine.Search(ctx, req)
	require.NoError(t, err)
	assert.Len(t, third.Results, 2)

	// Reinstalling an identical corpus keeps the cache warm.
	engine.Install(buildSnapshot(t, docA, docB))
	fourth, err := engine.Search(ctx, req)
	require.NoError(t, err)
	assert.Same(t, third, fourth)
}

func TestMetrics_PopularQueries(t *testing.T) {
	engine := NewEngine()
	engine.Install(buildSnapshot(t,
		testDoc("https://alice.dev/a", "Python", "python content", 0.9),
	))

	ctx := context.Background()
	for i := 0; i < 3; i++ {
		_, err := engine.Search(ctx, &Request{Query: "python", Limit: 10})
		require.NoError(t, err)
	}
	_, err := engine.Search(ctx, &Request{Query: "homelab", Limit: 10})
	require.NoError(t, err)

	stats := engine.Stats(10)
	assert.Equal(t, uint64(4), stats.TotalSearches)
	require.NotEmpty(t, stats.PopularQueries)
	assert.Equal(t, "python", stats.PopularQueries[0].Query)
	assert.Equal(t, uint64(3), stats.PopularQueries[0].Count)
	assert.Positive(t, stats.CacheHitRatio)
}
