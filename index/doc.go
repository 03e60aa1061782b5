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


// Package index builds immutable search snapshots from accepted documents.
//
// A Snapshot bundles the inverted index (term to postings), document
// metadata, embedding vectors, and corpus statistics used for TF-IDF
// scoring. Building is a pure function of the document store contents and
// is idempotent: an unchanged store always produces an identical snapshot.
//
// Snapshots round-trip through core.SnapshotRecord for persistence; a loaded
// record is observationally identical to a fresh rebuild from the same
// store.
package index
