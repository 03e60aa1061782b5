package classifier

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"github.com/anshita195/blogsearch/ai"
	"github.com/anshita195/blogsearch/core"
	"github.com/anshita195/blogsearch/index"
)

// Byline ("by Jane Doe" on its own line or after a title) and dated-path
// patterns, matched against raw content and the URL path respectively.
var (
	bylineRe  = regexp.MustCompile(`(?im)^\s*by\s+\p{L}[\p{L}.'-]*(\s+\p{L}[\p{L}.'-]*)?\s*$`)
	dateURLRe = regexp.MustCompile(`/20[0-2]\d/`)
	dateTextRe = regexp.MustCompile(`\b20[0-2]\d-[01]\d-[0-3]\d\b|\b(?i:january|february|march|april|may|june|july|august|september|october|november|december)\s+[0-3]?\d,?\s+20[0-2]\d\b`)
)

// embedContentLimit caps how much content feeds the embedding text,
// mirroring the truncation used when the reference centroids were computed.
const embedContentLimit = 800

// FeatureSet is everything the classifier stages consume for one document:
// token statistics, structural signals, and the embedding vector.
type FeatureSet struct {
	Doc *core.Document

	// Token statistics over normalized tokens (title + content).
	TokenCounts map[string]int
	TotalTokens int

	// Structural signals computed from raw content.
	FirstPersonDensity float64
	CTADensity         float64
	HasByline          bool
	HasDatePattern     bool
	SentenceVariance   float64

	// Embedding vector, either crawler-supplied or computed on extraction.
	Vector []float32
}

// Extractor converts raw documents into feature sets. It computes the
// embedding on ingestion when the crawler did not supply one.
type Extractor struct {
	embedder ai.Embedder
	logger   *slog.Logger
}

// ExtractorOption configures an Extractor.
type ExtractorOption func(*Extractor)

// WithExtractorLogger sets a custom logger. Default is slog.Default().
func WithExtractorLogger(logger *slog.Logger) ExtractorOption {
	return func(e *Extractor) {
		if logger == nil {
			logger = slog.Default()
		}
		e.logger = logger
	}
}

// NewExtractor creates a feature extractor.
func NewExtractor(embedder ai.Embedder, opts ...ExtractorOption) (*Extractor, error) {
	if embedder == nil {
		return nil, ErrEmbedderRequired
	}

	e := &Extractor{
		embedder: embedder,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// Extract computes the feature set for a document, populating the document's
// normalized tokens and embedding vector in the process. The embedding call
// is the only potentially blocking step; no lock is held across it.
func (e *Extractor) Extract(ctx context.Context, doc *core.Document) (*FeatureSet, error) {
	if doc == nil {
		return nil, fmt.Errorf("%w: document is nil", ErrFeatureMissing)
	}
	if doc.Content == "" {
		return nil, fmt.Errorf("%w: %w", ErrFeatureMissing, core.ErrEmptyContent)
	}

	tokens := index.Tokenize(doc.Title + " " + doc.Content)
	doc.Tokens = tokens

	counts := make(map[string]int, len(tokens))
	for _, term := range tokens {
		counts[term]++
	}

	features := &FeatureSet{
		Doc:              doc,
		TokenCounts:      counts,
		TotalTokens:      len(tokens),
		SentenceVariance: sentenceLengthVariance(doc.Content),
		HasByline:        doc.Author != "" || bylineRe.MatchString(doc.Content),
		HasDatePattern:   dateURLRe.MatchString(doc.URL) || dateTextRe.MatchString(doc.Content),
	}

	rawWords := strings.Fields(strings.ToLower(doc.Content))
	if len(rawWords) > 0 {
		features.FirstPersonDensity = firstPersonCount(rawWords) / float64(len(rawWords))
		features.CTADensity = ctaCount(strings.ToLower(doc.Content)) / float64(len(rawWords))
	}

	if len(doc.Vector) > 0 {
		features.Vector = doc.Vector
		return features, nil
	}

	vector, err := e.embedder.EmbedText(ctx, embeddingText(doc))
	if err != nil {
		e.logger.Error("error generating embedding for document", "url", doc.URL, "err", err)
		return nil, err
	}
	doc.Vector = vector
	features.Vector = vector

	return features, nil
}

// embeddingText builds the text representation fed to the embedder:
// title, domain, description, and truncated content.
func embeddingText(doc *core.Document) string {
	parts := make([]string, 0, 4)
	if doc.Title != "" {
		parts = append(parts, "Title: "+doc.Title)
	}
	if doc.Domain != "" {
		parts = append(parts, "Domain: "+doc.Domain)
	}
	if doc.Description != "" {
		parts = append(parts, "Description: "+doc.Description)
	}
	content := doc.Content
	if len(content) > embedContentLimit {
		content = content[:embedContentLimit]
	}
	parts = append(parts, "Content: "+content)
	return strings.Join(parts, " | ")
}

func firstPersonCount(words []string) float64 {
	var n float64
	for _, word := range words {
		if firstPersonTerms[strings.Trim(word, ".,!?;:'\"-()[]{}")] {
			n++
		}
	}
	return n
}

func ctaCount(lowered string) float64 {
	var n float64
	for _, phrase := range ctaPhrases {
		n += float64(strings.Count(lowered, phrase))
	}
	return n
}

// sentenceLengthVariance returns the population variance of words-per-sentence.
// First-person writing tends to vary sentence length far more than
// template-driven marketing copy.
func sentenceLengthVariance(content string) float64 {
	sentences := strings.FieldsFunc(content, func(r rune) bool {
		return r == '.' || r == '!' || r == '?'
	})

	lengths := make([]float64, 0, len(sentences))
	for _, s := range sentences {
		if words := len(strings.Fields(s)); words > 0 {
			lengths = append(lengths, float64(words))
		}
	}
	if len(lengths) < 2 {
		return 0
	}

	var mean float64
	for _, l := range lengths {
		mean += l
	}
	mean /= float64(len(lengths))

	var variance float64
	for _, l := range lengths {
		d := l - mean
		variance += d * d
	}
	return variance / float64(len(lengths))
}
