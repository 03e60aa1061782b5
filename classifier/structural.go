package classifier

import "fmt"

// Density thresholds for the structural cascade. At or beyond these the
// signal is considered definitive and the cascade short-circuits.
const (
	firstPersonDefinitive = 0.05
	ctaDefinitive         = 0.02
	varianceSaturation    = 50.0
)

// StructuralStage evaluates an ordered cascade of structural predicates:
// call-to-action density, first-person pronoun density, byline/date
// presence, and sentence-length variance. A definitive predicate
// short-circuits to a near-certain score; otherwise the predicates
// contribute weighted partial scores.
type StructuralStage struct{}

// NewStructuralStage creates the structural cascade stage.
func NewStructuralStage() *StructuralStage {
	return &StructuralStage{}
}

// Name implements Stage.
func (s *StructuralStage) Name() string { return "structural" }

// Score implements Stage.
func (s *StructuralStage) Score(features *FeatureSet) (float64, error) {
	if features == nil || features.TokenCounts == nil || features.TotalTokens == 0 {
		return 0, fmt.Errorf("%w: token statistics", ErrFeatureMissing)
	}

	// Cascade short-circuits, in order: heavy CTA vocabulary is decisive
	// corporate, saturated first-person density is decisive personal.
	if features.CTADensity >= ctaDefinitive {
		return 0.05, nil
	}
	if features.FirstPersonDensity >= firstPersonDefinitive {
		return 0.95, nil
	}

	// Pass-through: weighted partial scores, weights summing to 1.
	score := 0.4 * ratio(features.FirstPersonDensity, firstPersonDefinitive)
	if features.HasByline || features.HasDatePattern {
		score += 0.2
	}
	score += 0.2 * (1 - ratio(features.CTADensity, ctaDefinitive))
	score += 0.2 * ratio(features.SentenceVariance, varianceSaturation)

	return clamp01(score), nil
}

func ratio(value, saturation float64) float64 {
	if value >= saturation {
		return 1
	}
	if value <= 0 {
		return 0
	}
	return value / saturation
}
