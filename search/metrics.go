package search

import (
	"sort"
	"sync"
	"time"
)

// maxTrackedQueries bounds the popular-query map so an unbounded stream of
// distinct queries cannot grow memory without limit.
const maxTrackedQueries = 1000

// Metrics collects engine counters. All methods are safe for concurrent use.
type Metrics struct {
	mu                sync.Mutex
	totalSearches     uint64
	failedSearches    uint64
	cacheHits         uint64
	cacheMisses       uint64
	semanticFallbacks uint64
	queryCounts       map[string]uint64
	lastRebuild       time.Time
}

// QueryCount is one entry of the popular-query report.
type QueryCount struct {
	Query string
	Count uint64
}

// Stats is a point-in-time view of the engine counters.
type Stats struct {
	TotalSearches     uint64
	FailedSearches    uint64
	CacheHits         uint64
	CacheMisses       uint64
	CacheHitRatio     float64
	SemanticFallbacks uint64
	PopularQueries    []QueryCount
	LastRebuild       time.Time
}

// NewMetrics creates an empty metrics collector.
func NewMetrics() *Metrics {
	return &Metrics{
		queryCounts: make(map[string]uint64),
	}
}

func (m *Metrics) recordSearch(query string, failed bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.totalSearches++
	if failed {
		m.failedSearches++
		return
	}

	if _, tracked := m.queryCounts[query]; !tracked && len(m.queryCounts) >= maxTrackedQueries {
		return
	}
	m.queryCounts[query]++
}

func (m *Metrics) recordCacheHit() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cacheHits++
}

func (m *Metrics) recordCacheMiss() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cacheMisses++
}

func (m *Metrics) recordSemanticFallback() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.semanticFallbacks++
}

func (m *Metrics) recordRebuild(at time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lastRebuild = at
}

// Stats returns a snapshot of the counters. PopularQueries holds up to
// limit entries ordered by descending count, ties broken by query string.
func (m *Metrics) Stats(limit int) Stats {
	m.mu.Lock()
	defer m.mu.Unlock()

	stats := Stats{
		TotalSearches:     m.totalSearches,
		FailedSearches:    m.failedSearches,
		CacheHits:         m.cacheHits,
		CacheMisses:       m.cacheMisses,
		SemanticFallbacks: m.semanticFallbacks,
		LastRebuild:       m.lastRebuild,
	}

	if lookups := m.cacheHits + m.cacheMisses; lookups > 0 {
		stats.CacheHitRatio = float64(m.cacheHits) / float64(lookups)
	}

	queries := make([]QueryCount, 0, len(m.queryCounts))
	for query, count := range m.queryCounts {
		queries = append(queries, QueryCount{Query: query, Count: count})
	}
	sort.Slice(queries, func(i, j int) bool {
		if queries[i].Count != queries[j].Count {
			return queries[i].Count > queries[j].Count
		}
		return queries[i].Query < queries[j].Query
	})
	if limit > 0 && len(queries) > limit {
		queries = queries[:limit]
	}
	stats.PopularQueries = queries

	return stats
}
