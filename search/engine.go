package search

import (
	"context"
	"log/slog"
	"math"
	"slices"
	"strings"
	"sync/atomic"

	"github.com/anshita195/blogsearch/ai"
	"github.com/anshita195/blogsearch/core"
	"github.com/anshita195/blogsearch/index"
)

const (
	// DefaultLimit is the standard result page size for callers that expose
	// a limit knob, such as the CLI.
	DefaultLimit = 10

	// Fusion weights for hybrid scoring.
	DefaultLexicalWeight  = 0.6
	DefaultSemanticWeight = 0.4
)

// Request describes one search. Query is the raw user query; Semantic asks
// for hybrid lexical+vector scoring; Domain optionally restricts results to
// one canonical domain.
type Request struct {
	Query    string
	Semantic bool
	Limit    int
	Domain   string
}

// Response is a ranked result page. TotalResults counts all matches before
// the limit was applied. SemanticUsed reports whether vector scoring
// actually contributed; it is false when the engine fell back to pure
// lexical scoring because embedding the query failed.
type Response struct {
	Results      []*core.SearchResult
	TotalResults int
	SemanticUsed bool
}

// Engine answers queries against the current index snapshot. Snapshots are
// swapped atomically by Install; in-flight queries keep reading the snapshot
// they started with.
type Engine struct {
	current        atomic.Pointer[index.Snapshot]
	embedder       ai.Embedder
	cache          *ResultCache
	metrics        *Metrics
	lexicalWeight  float64
	semanticWeight float64
	logger         *slog.Logger
}

// EngineOption configures an Engine.
type EngineOption func(*Engine)

// WithEmbedder enables semantic scoring. Without an embedder, requests with
// Semantic set are answered lexically.
func WithEmbedder(embedder ai.Embedder) EngineOption {
	return func(e *Engine) {
		e.embedder = embedder
	}
}

// WithCacheSize sets the result cache capacity. Default is DefaultCacheSize.
func WithCacheSize(size int) EngineOption {
	return func(e *Engine) {
		e.cache = NewResultCache(size)
	}
}

// WithFusionWeights sets the lexical and semantic fusion weights.
// Defaults are DefaultLexicalWeight and DefaultSemanticWeight.
func WithFusionWeights(lexical, semantic float64) EngineOption {
	return func(e *Engine) {
		if lexical > 0 && semantic >= 0 {
			e.lexicalWeight = lexical
			e.semanticWeight = semantic
		}
	}
}

// WithEngineLogger sets a custom logger. Default is slog.Default().
func WithEngineLogger(logger *slog.Logger) EngineOption {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// NewEngine creates a search engine with no snapshot installed. Queries
// before the first Install return empty responses.
func NewEngine(opts ...EngineOption) *Engine {
	e := &Engine{
		cache:          NewResultCache(DefaultCacheSize),
		metrics:        NewMetrics(),
		lexicalWeight:  DefaultLexicalWeight,
		semanticWeight: DefaultSemanticWeight,
		logger:         slog.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Install atomically swaps in a new snapshot. Cached responses from older
// snapshots stay in the cache but fail their identity check on lookup; a
// rebuild over an unchanged corpus produces the same snapshot identity, so
// the cache stays warm across no-op rebuilds.
func (e *Engine) Install(snapshot *index.Snapshot) {
	e.current.Store(snapshot)
	if snapshot != nil {
		e.metrics.recordRebuild(snapshot.BuiltAt())
		e.logger.Info("snapshot installed",
			"id", snapshot.Id(), "docs", snapshot.DocCount(), "terms", snapshot.TermCount())
	}
}

// Snapshot returns the currently installed snapshot, or nil.
func (e *Engine) Snapshot() *index.Snapshot {
	return e.current.Load()
}

// Stats returns the engine counters with up to limit popular queries.
func (e *Engine) Stats(limit int) Stats {
	return e.metrics.Stats(limit)
}

// Search answers one query. All query terms must match a document for it to
// be a lexical hit (AND semantics); with Semantic set and an embedder
// configured, vector similarity is fused into the final score.
func (e *Engine) Search(ctx context.Context, req *Request) (*Response, error) {
	if strings.TrimSpace(req.Query) == "" {
		e.metrics.recordSearch("", true)
		return nil, ErrInvalidQuery
	}
	if req.Limit <= 0 {
		e.metrics.recordSearch("", true)
		return nil, ErrInvalidLimit
	}

	terms := index.Tokenize(req.Query)
	normalized := &Request{
		Query:    strings.Join(terms, " "),
		Semantic: req.Semantic,
		Limit:    req.Limit,
		Domain:   req.Domain,
	}
	snapshot := e.current.Load()
	if snapshot == nil || len(terms) == 0 {
		e.metrics.recordSearch(normalized.Query, false)
		return &Response{Results: []*core.SearchResult{}}, nil
	}

	if cached, hit := e.cache.Get(normalized, snapshot.Id()); hit {
		e.metrics.recordCacheHit()
		e.metrics.recordSearch(normalized.Query, false)
		return cached, nil
	}
	e.metrics.recordCacheMiss()

	response, err := e.compute(ctx, snapshot, normalized, terms)
	if err != nil {
		e.metrics.recordSearch(normalized.Query, true)
		return nil, err
	}

	e.cache.Put(normalized, snapshot.Id(), response)
	e.metrics.recordSearch(normalized.Query, false)
	return response, nil
}

// compute runs the actual retrieval against one snapshot.
func (e *Engine) compute(ctx context.Context, snapshot *index.Snapshot, req *Request, terms []string) (*Response, error) {
	lexical := lexicalScores(snapshot, terms)

	scores := lexical
	semanticUsed := false

	if req.Semantic && e.embedder != nil {
		fused, err := e.fuseSemantic(ctx, snapshot, req, lexical)
		if err == nil {
			scores = fused
			semanticUsed = true
		} else {
			// Embedding failures degrade to lexical-only scoring rather
			// than failing the query.
			e.logger.Warn("semantic scoring unavailable, using lexical only",
				"query", req.Query, "err", err)
			e.metrics.recordSemanticFallback()
		}
	}

	results := make([]*core.SearchResult, 0, len(scores))
	for id, score := range scores {
		doc, ok := snapshot.Document(id)
		if !ok {
			continue
		}
		if req.Domain != "" && doc.Domain != req.Domain {
			continue
		}
		results = append(results, &core.SearchResult{
			Doc:        doc,
			Score:      score,
			Confidence: doc.Confidence,
		})
	}

	// Deterministic order: score, then classification confidence, then URL.
	slices.SortFunc(results, func(a, b *core.SearchResult) int {
		if a.Score != b.Score {
			if a.Score > b.Score {
				return -1
			}
			return 1
		}
		if a.Confidence != b.Confidence {
			if a.Confidence > b.Confidence {
				return -1
			}
			return 1
		}
		return strings.Compare(a.Doc.URL, b.Doc.URL)
	})

	total := len(results)
	if len(results) > req.Limit {
		results = results[:req.Limit]
	}

	return &Response{
		Results:      results,
		TotalResults: total,
		SemanticUsed: semanticUsed,
	}, nil
}

// lexicalScores returns TF-IDF scores for documents containing every query
// term. Postings lists are sorted by document ID, so the intersection is a
// k-way merge.
func lexicalScores(snapshot *index.Snapshot, terms []string) map[core.ID]float64 {
	postings := make([][]core.Posting, 0, len(terms))
	for _, term := range terms {
		p := snapshot.Postings(term)
		if len(p) == 0 {
			return nil
		}
		postings = append(postings, p)
	}

	// Intersect starting from the rarest term.
	slices.SortFunc(postings, func(a, b []core.Posting) int {
		return len(a) - len(b)
	})

	freqs := make(map[core.ID][]uint32, len(postings[0]))
	for _, posting := range postings[0] {
		freqs[posting.Doc] = append(make([]uint32, 0, len(terms)), posting.Freq)
	}
	for _, list := range postings[1:] {
		for _, posting := range list {
			if tf, ok := freqs[posting.Doc]; ok {
				freqs[posting.Doc] = append(tf, posting.Freq)
			}
		}
	}

	n := len(postings)
	scores := make(map[core.ID]float64)
	docCount := float64(snapshot.DocCount())
	for id, tfs := range freqs {
		if len(tfs) != n {
			continue
		}
		docLen := snapshot.DocLength(id)
		if docLen == 0 {
			continue
		}
		var score float64
		for i, tf := range tfs {
			idf := math.Log(1 + docCount/float64(len(postings[i])))
			score += float64(tf) * idf
		}
		scores[id] = score / float64(docLen)
	}
	return scores
}

// fuseSemantic combines normalized lexical scores with query-document cosine
// similarity. When lexical recall is below the requested limit, the
// candidate pool widens to every document with a vector, so semantic-only
// matches can surface.
func (e *Engine) fuseSemantic(ctx context.Context, snapshot *index.Snapshot, req *Request, lexical map[core.ID]float64) (map[core.ID]float64, error) {
	queryVec, err := e.embedder.EmbedText(ctx, req.Query)
	if err != nil {
		return nil, err
	}

	candidates := make(map[core.ID]struct{}, len(lexical))
	for id := range lexical {
		candidates[id] = struct{}{}
	}
	if len(lexical) < req.Limit {
		for _, id := range snapshot.DocIds() {
			if doc, ok := snapshot.Document(id); ok && len(doc.Vector) > 0 {
				candidates[id] = struct{}{}
			}
		}
	}

	var maxLexical float64
	for _, score := range lexical {
		if score > maxLexical {
			maxLexical = score
		}
	}

	totalWeight := e.lexicalWeight + e.semanticWeight
	fused := make(map[core.ID]float64, len(candidates))
	for id := range candidates {
		doc, ok := snapshot.Document(id)
		if !ok {
			continue
		}

		var lexNorm float64
		if maxLexical > 0 {
			lexNorm = lexical[id] / maxLexical
		}

		var sem float64
		if len(doc.Vector) > 0 {
			if cos := core.Cosine(queryVec, doc.Vector); cos > 0 {
				sem = cos
			}
		}

		score := (e.lexicalWeight*lexNorm + e.semanticWeight*sem) / totalWeight
		if len(lexical) == 0 {
			// Pure semantic ranking when nothing matched lexically.
			score = sem
		}
		if score > 0 {
			fused[id] = score
		}
	}
	return fused, nil
}
