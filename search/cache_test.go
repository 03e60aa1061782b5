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


package search

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResultCache_Basics(t *testing.T) {
	cache := NewResultCache(4)
	req := &Request{Query: "python", Limit: 10}
	response := &Response{TotalResults: 1}

	_, hit := cache.Get(req, 100)
	assert.False(t, hit)

	cache.Put(req, 100, response)

	got, hit := cache.Get(req, 100)
	require.True(t, hit)
	assert.Same(t, response, got)
	assert.Equal(t, 1, cache.Size())
}

func TestResultCache_KeyCoversRequestShape(t *testing.T) {
	cache := NewResultCache(8)
	cache.Put(&Request{Query: "python", Limit: 10}, 100, &Response{TotalResults: 1})

	variants := []*Request{
		{Query: "python", Limit: 20},
		{Query: "python", Limit: 10, Semantic: true},
		{Query: "python", Limit: 10, Domain: "alice.dev"},
		{Query: "homelab", Limit: 10},
	}
	for _, req := range variants {
		_, hit := cache.Get(req, 100)
		assert.False(t, hit, "request %+v must not alias the cached one", req)
	}
}

func TestResultCache_SnapshotMismatchIsMiss(t *testing.T) {
	cache := NewResultCache(4)
	req := &Request{Query: "python", Limit: 10}
	cache.Put(req, 100, &Response{TotalResults: 1})

	_, hit := cache.Get(req, 200)
	assert.False(t, hit)

	// The stale entry was dropped, not kept around.
	assert.Equal(t, 0, cache.Size())
}

func TestResultCache_EvictsLeastRecentlyUsed(t *testing.T) {
	cache := NewResultCache(2)

	first := &Request{Query: "first", Limit: 10}
	second := &Request{Query: "second", Limit: 10}
	third := &Request{Query: "third", Limit: 10}

	cache.Put(first, 100, &Response{})
	cache.Put(second, 100, &Response{})

	// Touch first so second becomes the eviction candidate.
	_, hit := cache.Get(first, 100)
	require.True(t, hit)

	cache.Put(third, 100, &Response{})

	_, hit = cache.Get(first, 100)
	assert.True(t, hit)
	_, hit = cache.Get(second, 100)
	assert.False(t, hit)
	_, hit = cache.Get(third, 100)
	assert.True(t, hit)
}

func TestResultCache_CapacityBound(t *testing.T) {
	cache := NewResultCache(8)
	for i := 0; i < 50; i++ {
		cache.Put(&Request{Query: fmt.Sprintf("query-%d", i), Limit: 10}, 100, &Response{})
	}
	assert.Equal(t, 8, cache.Size())
}

func TestResultCache_Invalidate(t *testing.T) {
	cache := NewResultCache(4)
	req := &Request{Query: "python", Limit: 10}
	cache.Put(req, 100, &Response{})

	cache.Invalidate()

	_, hit := cache.Get(req, 100)
	assert.False(t, hit)
	assert.Equal(t, 0, cache.Size())
}
