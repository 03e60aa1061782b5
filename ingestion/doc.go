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


// Package ingestion feeds crawled pages through the classifier and into the
// document store.
//
// The Pipeline processes batches concurrently on a worker pool. Every page
// gets a persisted classification verdict; only pages labeled personal are
// stored as documents. Reclassify reruns the classifier over the stored
// corpus after threshold or vocabulary changes.
package ingestion
