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
	"math"
	"testing"
)

func TestIDFromURL(t *testing.T) {
	tests := []struct {
		name string
		url  string
	}{
		{
			name: "same url produces same ID",
			url:  "https://jvns.ca/blog/2020/10/28/email-marketing/",
		},
		{
			name: "empty string",
			url:  "",
		},
		{
			name: "long url",
			url:  "https://example.dev/posts/a-very-long-slug-about-what-i-learned-building-a-search-engine",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id1 := IDFromURL(tt.url)
			id2 := IDFromURL(tt.url)

			if id1 != id2 {
				t.Errorf("IDFromURL() produced different IDs for same URL: %d vs %d", id1, id2)
			}
		})
	}
}

func TestIDFromURL_Different(t *testing.T) {
	id1 := IDFromURL("https://a.example/post")
	id2 := IDFromURL("https://b.example/post")

	if id1 == id2 {
		t.Errorf("IDFromURL() produced same ID for different URLs")
	}
}

func TestDomainFromURL(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want string
	}{
		{
			name: "plain domain",
			url:  "https://jvns.ca/blog/",
			want: "jvns.ca",
		},
		{
			name: "www prefix stripped",
			url:  "https://www.example.com/about",
			want: "example.com",
		},
		{
			name: "uppercase host lowered",
			url:  "https://Blog.Example.COM/post",
			want: "blog.example.com",
		},
		{
			name: "port ignored",
			url:  "http://localhost:8001/api/search",
			want: "localhost",
		},
		{
			name: "unparseable url",
			url:  "http://[::bad",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DomainFromURL(tt.url); got != tt.want {
				t.Errorf("DomainFromURL(%q) = %q, want %q", tt.url, got, tt.want)
			}
		})
	}
}

func TestLabel_String(t *testing.T) {
	tests := []struct {
		label Label
		want  string
	}{
		{LabelPersonal, "personal"},
		{LabelCorporate, "corporate"},
		{LabelUndecided, "undecided"},
		{Label(99), "undecided"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.label.String(); got != tt.want {
				t.Errorf("Label.String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCosine(t *testing.T) {
	tests := []struct {
		name string
		a, b []float32
		want float64
	}{
		{
			name: "identical vectors",
			a:    []float32{1, 2, 3},
			b:    []float32{1, 2, 3},
			want: 1,
		},
		{
			name: "orthogonal vectors",
			a:    []float32{1, 0},
			b:    []float32{0, 1},
			want: 0,
		},
		{
			name: "opposite vectors",
			a:    []float32{1, 0},
			b:    []float32{-1, 0},
			want: -1,
		},
		{
			name: "empty vector",
			a:    nil,
			b:    []float32{1, 2},
			want: 0,
		},
		{
			name: "zero magnitude",
			a:    []float32{0, 0},
			b:    []float32{1, 2},
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Cosine(tt.a, tt.b)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Cosine() = %v, want %v", got, tt.want)
			}
		})
	}
}
