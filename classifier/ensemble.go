package classifier

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/anshita195/blogsearch/core"
)

// Default decision thresholds. Confidence at or above accept labels a
// document personal; at or below reject labels it corporate; in between the
// document is undecided and excluded from the store.
const (
	DefaultAcceptThreshold = 0.70
	DefaultRejectThreshold = 0.30
)

// Weights are the fusion weights for the three stages. They are tunable
// configuration, not derived values.
type Weights struct {
	Embedding  float64
	Structural float64
	Lexical    float64
}

// DefaultWeights returns the default fusion weights.
func DefaultWeights() Weights {
	return Weights{Embedding: 0.4, Structural: 0.3, Lexical: 0.3}
}

func (w Weights) total() float64 {
	return w.Embedding + w.Structural + w.Lexical
}

// Ensemble combines the three scoring stages into one confidence and a
// final label. Fusion is a weighted average of stage scores; domain
// heuristics clamp the fused score afterwards.
type Ensemble struct {
	embedding  Stage
	structural Stage
	lexical    Stage
	weights    Weights
	rules      []DomainRule
	accept     float64
	reject     float64
	logger     *slog.Logger
}

// Option configures an Ensemble.
type Option func(*Ensemble) error

// WithWeights sets the fusion weights.
// Default is DefaultWeights().
func WithWeights(weights Weights) Option {
	return func(e *Ensemble) error {
		if weights.total() <= 0 {
			return fmt.Errorf("fusion weights must sum to a positive value")
		}
		e.weights = weights
		return nil
	}
}

// WithThresholds sets the accept and reject confidence thresholds.
// Defaults are DefaultAcceptThreshold and DefaultRejectThreshold.
func WithThresholds(accept, reject float64) Option {
	return func(e *Ensemble) error {
		if !core.IsValidScore(accept) || !core.IsValidScore(reject) || reject > accept {
			return fmt.Errorf("invalid thresholds: accept=%v reject=%v", accept, reject)
		}
		e.accept = accept
		e.reject = reject
		return nil
	}
}

// WithDomainRules replaces the heuristic domain rules.
// Default is DefaultDomainRules().
func WithDomainRules(rules []DomainRule) Option {
	return func(e *Ensemble) error {
		e.rules = rules
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(e *Ensemble) error {
		if logger == nil {
			logger = slog.Default()
		}
		e.logger = logger
		return nil
	}
}

// NewEnsemble creates a classifier ensemble from its three stages.
func NewEnsemble(embedding, structural, lexical Stage, opts ...Option) (*Ensemble, error) {
	if embedding == nil || structural == nil || lexical == nil {
		return nil, ErrStageRequired
	}

	e := &Ensemble{
		embedding:  embedding,
		structural: structural,
		lexical:    lexical,
		weights:    DefaultWeights(),
		rules:      DefaultDomainRules(),
		accept:     DefaultAcceptThreshold,
		reject:     DefaultRejectThreshold,
		logger:     slog.Default(),
	}

	for _, opt := range opts {
		if err := opt(e); err != nil {
			return nil, err
		}
	}

	return e, nil
}

// Classify scores a feature set through all three stages, fuses the scores,
// applies domain heuristics, and decides the final label. It has no side
// effects; storing accepted documents is the caller's responsibility.
func (e *Ensemble) Classify(features *FeatureSet) (*core.ClassificationVerdict, error) {
	if features == nil || features.Doc == nil {
		return nil, fmt.Errorf("%w: feature set is nil", ErrFeatureMissing)
	}

	embeddingScore, err := e.stageScore(e.embedding, features)
	if err != nil {
		return nil, err
	}
	structuralScore, err := e.stageScore(e.structural, features)
	if err != nil {
		return nil, err
	}
	lexicalScore, err := e.stageScore(e.lexical, features)
	if err != nil {
		return nil, err
	}

	fused := (e.weights.Embedding*embeddingScore +
		e.weights.Structural*structuralScore +
		e.weights.Lexical*lexicalScore) / e.weights.total()

	confidence := fused
	for _, rule := range e.rules {
		if rule.Matches(features.Doc.Domain) {
			confidence = rule.Apply(confidence)
			e.logger.Debug("domain rule applied",
				"domain", features.Doc.Domain, "pattern", rule.Pattern,
				"fused", fused, "clamped", confidence)
			break
		}
	}

	label := core.LabelUndecided
	switch {
	case confidence >= e.accept:
		label = core.LabelPersonal
	case confidence <= e.reject:
		label = core.LabelCorporate
	}

	return &core.ClassificationVerdict{
		DocId: features.Doc.Id,
		Stages: core.StageScores{
			Embedding:  embeddingScore,
			Structural: structuralScore,
			Lexical:    lexicalScore,
		},
		Confidence: confidence,
		Label:      label,
		DecidedAt:  time.Now().UTC(),
	}, nil
}

// stageScore runs one stage and enforces the [0,1] contract on its output.
func (e *Ensemble) stageScore(stage Stage, features *FeatureSet) (float64, error) {
	score, err := stage.Score(features)
	if err != nil {
		return 0, fmt.Errorf("stage %s: %w", stage.Name(), err)
	}
	if !core.IsValidScore(score) {
		return 0, fmt.Errorf("%w: stage %s returned %v", ErrInvalidScoreRange, stage.Name(), score)
	}
	return score, nil
}
