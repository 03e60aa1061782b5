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


package badger

import "github.com/anshita195/blogsearch/storage"

// NewMemoryRepositories creates in-memory repositories for testing.
// Returns docRepo, verdictRepo, snapshotStore, backend, and error.
// Caller must close the repos and the backend when done.
func NewMemoryRepositories() (storage.DocumentRepository, storage.VerdictRepository, storage.SnapshotStore, *Backend, error) {
	backend, err := OpenBackend("", true)
	if err != nil {
		return nil, nil, nil, nil, err
	}

	docRepo, err := NewDocumentRepository(backend)
	if err != nil {
		backend.Close()
		return nil, nil, nil, nil, err
	}

	verdictRepo, err := NewVerdictRepository(backend)
	if err != nil {
		docRepo.Close()
		backend.Close()
		return nil, nil, nil, nil, err
	}

	snapStore, err := NewSnapshotStore(backend)
	if err != nil {
		verdictRepo.Close()
		docRepo.Close()
		backend.Close()
		return nil, nil, nil, nil, err
	}

	return docRepo, verdictRepo, snapStore, backend, nil
}
