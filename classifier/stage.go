package classifier

// Stage is a single scoring stage of the classifier ensemble. A stage maps
// a feature set to a score in [0,1], where 1 means confidently personal and
// 0 means confidently corporate.
//
// Stages must be deterministic: fixed features and fixed reference data
// always produce the same score. Implementations are read-only after
// construction and safe for concurrent use.
type Stage interface {
	// Name identifies the stage in logs and error messages.
	Name() string

	// Score evaluates the feature set. Returns ErrFeatureMissing when a
	// required feature is absent from the set.
	Score(features *FeatureSet) (float64, error)
}
