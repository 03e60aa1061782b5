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


package ingestion

import "errors"

var (
	// ErrDocumentRepositoryRequired is returned when the document repository is not provided.
	ErrDocumentRepositoryRequired = errors.New("document repository is required")

	// ErrVerdictRepositoryRequired is returned when the verdict repository is not provided.
	ErrVerdictRepositoryRequired = errors.New("verdict repository is required")

	// ErrExtractorRequired is returned when the feature extractor is not provided.
	ErrExtractorRequired = errors.New("feature extractor is required")

	// ErrEnsembleRequired is returned when the classifier ensemble is not provided.
	ErrEnsembleRequired = errors.New("classifier ensemble is required")
)
