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


// Package classifier decides whether a page is a personal blog post or
// corporate marketing content.
//
// Classification runs a document through three independent scoring stages:
//
//   - EmbeddingStage: cosine similarity of the document vector against
//     personal and corporate centroid vectors
//   - StructuralStage: first-person pronoun density, call-to-action density,
//     byline and date presence, sentence length variance
//   - LexicalStage: weighted vocabulary overlap against personal and
//     corporate term lists
//
// Each stage emits a score in [0, 1] where higher means more personal. The
// Ensemble fuses the stage scores with configurable weights, clamps the
// fused confidence with domain heuristic rules, and labels the document
// against accept and reject thresholds. Scores between the thresholds leave
// the document undecided.
//
// Stages are deterministic: the same feature set always produces the same
// verdict (ignoring the decision timestamp).
package classifier
