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


// Package search answers queries against immutable index snapshots.
//
// The Engine combines two retrieval signals:
//
//   - Lexical: conjunctive term matching (every query term must appear in a
//     document) scored with length-normalized TF-IDF
//   - Semantic: cosine similarity between the query embedding and document
//     embeddings, fused with the lexical score
//
// Snapshots are installed atomically; queries running during a rebuild keep
// the snapshot they started with. A snapshot-identity-checked LRU cache
// short-circuits repeated queries, and entries computed against a replaced
// snapshot are discarded on lookup, never served stale.
package search
