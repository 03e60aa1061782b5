// Copyright 2025 Anshita Saini
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package classifier

import "errors"

var (
	// ErrFeatureMissing indicates a stage ran without a required feature,
	// such as the embedding vector or token statistics.
	ErrFeatureMissing = errors.New("required feature missing")

	// ErrInvalidScoreRange indicates a stage produced a score outside [0,1].
	// This guards against malformed stage implementations.
	ErrInvalidScoreRange = errors.New("stage score outside [0,1]")

	// ErrEmbedderRequired is returned when an embedder is not provided.
	ErrEmbedderRequired = errors.New("embedder required")

	// ErrStageRequired is returned when an ensemble stage is not provided.
	ErrStageRequired = errors.New("classifier stage required")

	// ErrCentroidsRequired is returned when reference centroids are absent.
	ErrCentroidsRequired = errors.New("reference centroids required")

	// ErrVocabularyRequired is returned when a marker vocabulary is empty.
	ErrVocabularyRequired = errors.New("marker vocabulary required")
)
