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


package index

import "errors"

var (
	// ErrEmptyCorpus is returned when a snapshot build is attempted with
	// zero documents. The previous snapshot, if any, remains current.
	ErrEmptyCorpus = errors.New("empty corpus")

	// ErrCorruptSnapshot is returned when a persisted snapshot record does
	// not match the document store it is loaded against.
	ErrCorruptSnapshot = errors.New("corrupt snapshot")
)
