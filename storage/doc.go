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


// Package storage provides the storage abstraction layer for blogsearch.
//
// This package defines repository interfaces that decouple storage
// implementation from the classifier, indexer, and search engine. It allows
// different storage backends (BadgerDB, in-memory, etc.) to be used
// interchangeably.
//
// # Architecture
//
// The storage layer follows the Repository pattern:
//
//   - DocumentRepository: Operations for accepted documents
//   - VerdictRepository: Operations for classification verdicts
//   - SnapshotStore: Persistence for the latest index snapshot
//
// Public constructors in backend packages return these interfaces to prevent
// accidental coupling to BadgerDB specifics and to keep alternative backends
// swappable.
//
// # Serialization
//
// Records are serialized with the MUS binary format. The Marshal/Unmarshal
// helpers in this package wrap the generated serializers from the core
// package; run `go generate ./core` after changing record shapes.
//
// # Thread Safety
//
// All repository implementations must be thread-safe and support concurrent
// access from multiple goroutines.
//
// # Context Support
//
// All repository methods accept context.Context for cancellation and timeout
// support. Pass context.Background() for operations without specific timeout
// requirements.
package storage
