package classifier

import "fmt"

// LexicalStage computes a weighted keyword-overlap score against two marker
// vocabularies, one per class. Vocabulary weights play the role of IDF:
// distinctive markers count for more than generic ones.
type LexicalStage struct {
	personal  map[string]float64
	corporate map[string]float64
}

// NewLexicalStage creates the lexical stage from the two marker vocabularies.
func NewLexicalStage(personal, corporate map[string]float64) (*LexicalStage, error) {
	if len(personal) == 0 || len(corporate) == 0 {
		return nil, ErrVocabularyRequired
	}
	return &LexicalStage{personal: personal, corporate: corporate}, nil
}

// Name implements Stage.
func (s *LexicalStage) Name() string { return "lexical" }

// Score implements Stage. The score is the personal share of the total
// weighted marker mass: 1 when only personal markers occur, 0 when only
// corporate markers occur, 0.5 when neither vocabulary matches.
func (s *LexicalStage) Score(features *FeatureSet) (float64, error) {
	if features == nil || features.TokenCounts == nil || features.TotalTokens == 0 {
		return 0, fmt.Errorf("%w: token statistics", ErrFeatureMissing)
	}

	personal := vocabularyMass(features, s.personal)
	corporate := vocabularyMass(features, s.corporate)

	if personal+corporate == 0 {
		return 0.5, nil
	}
	return personal / (personal + corporate), nil
}

// vocabularyMass sums tf * weight over the vocabulary terms present in the
// document, normalized by document length.
func vocabularyMass(features *FeatureSet, vocab map[string]float64) float64 {
	var mass float64
	for term, weight := range vocab {
		if tf := features.TokenCounts[term]; tf > 0 {
			mass += float64(tf) * weight
		}
	}
	return mass / float64(features.TotalTokens)
}
