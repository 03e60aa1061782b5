package classifier

import (
	"context"
	"fmt"

	"github.com/anshita195/blogsearch/ai"
	"github.com/anshita195/blogsearch/core"
)

// Centroids holds the reference vectors for the embedding stage, one per
// class, precomputed from labeled exemplar texts.
type Centroids struct {
	Personal  []float32
	Corporate []float32
}

// ComputeCentroids embeds the exemplar texts for each class and averages
// them into one centroid per class.
func ComputeCentroids(ctx context.Context, embedder ai.Embedder, personal, corporate []string) (*Centroids, error) {
	if embedder == nil {
		return nil, ErrEmbedderRequired
	}
	if len(personal) == 0 || len(corporate) == 0 {
		return nil, fmt.Errorf("%w: exemplar texts for both classes required", ErrCentroidsRequired)
	}

	personalVec, err := centroidOf(ctx, embedder, personal)
	if err != nil {
		return nil, err
	}
	corporateVec, err := centroidOf(ctx, embedder, corporate)
	if err != nil {
		return nil, err
	}

	return &Centroids{Personal: personalVec, Corporate: corporateVec}, nil
}

func centroidOf(ctx context.Context, embedder ai.Embedder, texts []string) ([]float32, error) {
	vectors, err := embedder.EmbedTexts(ctx, texts)
	if err != nil {
		return nil, err
	}
	if len(vectors) == 0 || len(vectors[0]) == 0 {
		return nil, fmt.Errorf("%w: embedder returned no vectors", ErrCentroidsRequired)
	}

	centroid := make([]float32, len(vectors[0]))
	for _, vec := range vectors {
		for i := range centroid {
			if i < len(vec) {
				centroid[i] += vec[i]
			}
		}
	}
	n := float32(len(vectors))
	for i := range centroid {
		centroid[i] /= n
	}
	return centroid, nil
}

// EmbeddingStage scores documents by cosine similarity of their embedding
// to the personal centroid relative to the corporate centroid.
type EmbeddingStage struct {
	centroids *Centroids
}

// NewEmbeddingStage creates the embedding similarity stage.
func NewEmbeddingStage(centroids *Centroids) (*EmbeddingStage, error) {
	if centroids == nil || len(centroids.Personal) == 0 || len(centroids.Corporate) == 0 {
		return nil, ErrCentroidsRequired
	}
	return &EmbeddingStage{centroids: centroids}, nil
}

// Name implements Stage.
func (s *EmbeddingStage) Name() string { return "embedding" }

// Score maps the similarity margin between the two centroids into [0,1]:
// 0.5 means equidistant, 1 means maximally closer to the personal centroid.
func (s *EmbeddingStage) Score(features *FeatureSet) (float64, error) {
	if features == nil || len(features.Vector) == 0 {
		return 0, fmt.Errorf("%w: embedding vector", ErrFeatureMissing)
	}

	personal := core.Cosine(features.Vector, s.centroids.Personal)
	corporate := core.Cosine(features.Vector, s.centroids.Corporate)

	score := (1 + personal - corporate) / 2
	return clamp01(score), nil
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// DefaultPersonalExemplars are short reference texts used to seed the
// personal centroid when no labeled dataset is supplied.
func DefaultPersonalExemplars() []string {
	return []string{
		"I've been learning web development for the past year and wanted to share my journey on this blog.",
		"This weekend I finally fixed the bug that had been bothering me for weeks. Here's what I learned.",
		"My thoughts on switching careers into programming, and the mistakes I made along the way.",
		"I started this site to write about my experiments with homelab servers and self-hosting.",
		"A few things I realized about burnout after my first year at a startup.",
	}
}

// DefaultCorporateExemplars are short reference texts used to seed the
// corporate centroid when no labeled dataset is supplied.
func DefaultCorporateExemplars() []string {
	return []string{
		"Our platform delivers enterprise-grade solutions that help customers scale their business.",
		"Request a demo today and discover how our product drives ROI for your organization.",
		"Top 10 SEO strategies to boost your website traffic and generate qualified leads.",
		"Subscribe to our newsletter for the latest industry insights and product updates.",
		"Start your free trial now. Flexible pricing plans for teams of every size.",
	}
}
