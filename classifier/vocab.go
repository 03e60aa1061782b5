package classifier

// Marker vocabularies for the lexical stage. Weights are IDF-style: rarer,
// more discriminative markers carry more weight than generic ones.

// DefaultPersonalVocabulary returns marker terms typical of first-person
// writing.
func DefaultPersonalVocabulary() map[string]float64 {
	return map[string]float64{
		"i":          1.0,
		"my":         1.0,
		"me":         0.8,
		"myself":     1.5,
		"journey":    1.2,
		"learned":    1.2,
		"learning":   1.0,
		"thoughts":   1.2,
		"think":      0.8,
		"felt":       1.2,
		"personally": 1.5,
		"experience": 1.0,
		"blog":       0.8,
		"wrote":      1.2,
		"writing":    0.8,
		"weekend":    1.0,
		"hobby":      1.5,
		"mistakes":   1.2,
		"honestly":   1.5,
		"realized":   1.2,
	}
}

// DefaultCorporateVocabulary returns marker terms typical of corporate and
// marketing copy.
func DefaultCorporateVocabulary() map[string]float64 {
	return map[string]float64{
		"pricing":      1.5,
		"enterprise":   1.2,
		"solutions":    1.2,
		"customers":    1.0,
		"platform":     0.8,
		"subscribe":    1.0,
		"newsletter":   0.8,
		"trial":        1.2,
		"demo":         1.2,
		"roi":          1.5,
		"seo":          1.5,
		"leads":        1.5,
		"stakeholders": 1.5,
		"leverage":     1.2,
		"scalable":     1.0,
		"webinar":      1.5,
		"whitepaper":   1.5,
		"compliance":   1.0,
		"onboarding":   1.2,
		"upgrade":      1.0,
	}
}

// ctaPhrases are call-to-action phrases counted by the feature extractor.
// High CTA density is a strong corporate signal for the structural stage.
var ctaPhrases = []string{
	"buy now",
	"get started",
	"free trial",
	"contact us",
	"subscribe now",
	"limited time",
	"sign up today",
	"request a demo",
	"pricing plans",
	"start your free",
}

// firstPersonTerms are the pronouns counted for first-person density.
// Counted on raw text before stop-word filtering, since several of these
// would otherwise be dropped.
var firstPersonTerms = map[string]bool{
	"i": true, "i'm": true, "i've": true, "i'd": true, "i'll": true,
	"my": true, "me": true, "mine": true, "myself": true,
	"we": true, "our": true, "ours": true,
}
