package core

//go:generate go run ../cmd/musgen

import (
	"encoding/binary"
	"math"
	"net/url"
	"strings"
	"time"

	"github.com/go-crypt/x/blake2b"
)

// ID is a unique identifier for domain entities.
// Document IDs are generated from the document URL using content-based hashing.
type ID uint64

// IDFromURL generates a deterministic ID from a document URL using BLAKE2b hashing.
// This ensures that the same URL always maps to the same document identity.
func IDFromURL(rawURL string) ID {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(rawURL))
	sum := h.Sum(nil)
	return ID(binary.LittleEndian.Uint64(sum))
}

// DomainFromURL extracts the canonical domain from a URL.
// The leading "www." prefix is stripped so that filters and heuristics
// treat "www.example.com" and "example.com" as the same site.
func DomainFromURL(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	domain := strings.ToLower(parsed.Hostname())
	return strings.TrimPrefix(domain, "www.")
}

// Label is the classification outcome for a document.
type Label int

const (
	// LabelUndecided means no confident classification was reached.
	// Undecided documents are excluded from the document store.
	LabelUndecided Label = iota
	// LabelPersonal marks authentic first-person content.
	LabelPersonal
	// LabelCorporate marks corporate or marketing content.
	LabelCorporate
)

// String returns the label name used in logs and the CLI.
func (l Label) String() string {
	switch l {
	case LabelPersonal:
		return "personal"
	case LabelCorporate:
		return "corporate"
	default:
		return "undecided"
	}
}

// Document represents a crawled page that passed classification.
// It is mutable only during classification; once accepted into the store it
// is immutable except for an explicit reclassification run.
type Document struct {
	Id          ID
	URL         string
	Domain      string
	Title       string
	Author      string
	Description string
	Content     string
	Tokens      []string // normalized content tokens, populated by the feature extractor
	Vector      []float32
	Confidence  float64
	Label       Label
	FetchedAt   time.Time // when the crawler fetched the page
	InsertedAt  time.Time // when the document was inserted into the store
	UpdatedAt   time.Time // when the document was last updated
}

// StageScores holds the per-stage scores of a classification run.
// Each score lies in [0,1].
type StageScores struct {
	Embedding  float64
	Structural float64
	Lexical    float64
}

// ClassificationVerdict is the immutable per-document record of one
// classification run: stage scores, fused confidence, and the final label.
type ClassificationVerdict struct {
	DocId      ID
	Stages     StageScores
	Confidence float64
	Label      Label
	DecidedAt  time.Time
}

// Posting associates a document with the frequency of one index term.
type Posting struct {
	Doc  ID
	Freq uint32
}

// TermPostings is the serialized postings list for a single term.
// Postings are sorted by document ID with no duplicates.
type TermPostings struct {
	Term     string
	Postings []Posting
}

// SnapshotRecord is the persisted form of an index snapshot.
// Loading a record and rebuilding from the same document store must be
// observationally identical for search results.
type SnapshotRecord struct {
	Id        uint64
	BuiltAt   time.Time
	DocIds    []ID
	Terms     []TermPostings
	AvgDocLen float64
}

// SearchResult represents a ranked search hit with the full document,
// its relevance score, and its classification confidence.
type SearchResult struct {
	Doc        *Document
	Score      float64
	Confidence float64
}

// Cosine computes the cosine similarity of two vectors.
// Returns 0 when either vector is empty or has zero magnitude.
func Cosine(a, b []float32) float64 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	var dot, normA, normB float64
	for i := 0; i < n; i++ {
		dot += float64(a[i]) * float64(b[i])
	}
	for _, v := range a {
		normA += float64(v) * float64(v)
	}
	for _, v := range b {
		normB += float64(v) * float64(v)
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
