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


package core

import (
	"fmt"
	"time"
)

// ValidateDocument validates a Document according to domain rules.
//
// Validation rules:
//   - URL must not be empty
//   - Content must not be empty
//   - Label must be valid
//   - Confidence must lie in [0,1]
//   - FetchedAt must not be in the future
//
// NOT validated (populated by the feature extractor):
//   - Vector (can be empty until the embedding is computed)
//   - Tokens (can be empty until normalization runs)
//   - Id (derived from the URL on insertion)
func ValidateDocument(doc *Document) error {
	if doc == nil {
		return fmt.Errorf("%w: document is nil", ErrInvalidDocument)
	}

	if doc.URL == "" {
		return fmt.Errorf("%w: %w", ErrInvalidDocument, ErrEmptyURL)
	}

	if doc.Content == "" {
		return fmt.Errorf("%w: %w", ErrInvalidDocument, ErrEmptyContent)
	}

	if err := ValidateLabel(doc.Label); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDocument, err)
	}

	if !IsValidScore(doc.Confidence) {
		return fmt.Errorf("%w: %w", ErrInvalidDocument, ErrInvalidConfidence)
	}

	if !IsValidTimestamp(doc.FetchedAt) {
		return fmt.Errorf("%w: %w", ErrInvalidDocument, ErrInvalidTimestamp)
	}

	return nil
}

// ValidateLabel validates that a Label has a valid value.
func ValidateLabel(label Label) error {
	if label != LabelUndecided && label != LabelPersonal && label != LabelCorporate {
		return fmt.Errorf("%w: value %d", ErrInvalidLabel, label)
	}
	return nil
}

// IsValidScore checks that a score or confidence lies in [0,1].
func IsValidScore(score float64) bool {
	return score >= 0 && score <= 1
}

// IsValidTimestamp checks if a timestamp is valid (not in the future).
func IsValidTimestamp(ts time.Time) bool {
	return !ts.After(time.Now())
}
