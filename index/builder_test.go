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

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anshita195/blogsearch/core"
)

func testDoc(url, title, content string) *core.Document {
	doc := &core.Document{
		Id:         core.IDFromURL(url),
		URL:        url,
		Domain:     core.DomainFromURL(url),
		Title:      title,
		Content:    content,
		Label:      core.LabelPersonal,
		Confidence: 0.8,
		UpdatedAt:  time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
	}
	doc.Tokens = Tokenize(title + " " + content)
	return doc
}

func TestBuild_EmptyCorpus(t *testing.T) {
	_, err := Build(nil)
	assert.ErrorIs(t, err, ErrEmptyCorpus)

	_, err = Build([]*core.Document{})
	assert.ErrorIs(t, err, ErrEmptyCorpus)
}

func TestBuild_Postings(t *testing.T) {
	docs := []*core.Document{
		testDoc("https://a.example/python", "Learning Python", "python python python is fun"),
		testDoc("https://b.example/go", "Notes", "go concurrency and one python mention"),
		testDoc("https://c.example/cooking", "Bread", "sourdough starter maintenance"),
	}

	snap, err := Build(docs)
	require.NoError(t, err)

	assert.Equal(t, 3, snap.DocCount())
	assert.Equal(t, 2, snap.DocFreq("python"))
	assert.Equal(t, 0, snap.DocFreq("the"), "stop words never indexed")

	postings := snap.Postings("python")
	require.Len(t, postings, 2)

	// Sorted by document ID, no duplicates
	assert.Less(t, postings[0].Doc, postings[1].Doc)

	// Term frequencies counted per document
	var freqs []uint32
	for _, p := range postings {
		freqs = append(freqs, p.Freq)
	}
	assert.ElementsMatch(t, []uint32{5, 1}, freqs, "title occurrences count double")
}

func TestBuild_Stats(t *testing.T) {
	docs := []*core.Document{
		testDoc("https://a.example/1", "one", "alpha beta gamma"),
		testDoc("https://b.example/2", "two", "delta epsilon"),
	}

	snap, err := Build(docs)
	require.NoError(t, err)

	assert.Equal(t, 4, snap.DocLength(core.IDFromURL("https://a.example/1")))
	assert.Equal(t, 3, snap.DocLength(core.IDFromURL("https://b.example/2")))
	assert.InDelta(t, 3.5, snap.AvgDocLen(), 1e-9)
	assert.Equal(t, map[string]int{"a.example": 1, "b.example": 1}, snap.Domains())
}

func TestBuild_Idempotent(t *testing.T) {
	docs := []*core.Document{
		testDoc("https://a.example/1", "first post", "I learned a lot writing this"),
		testDoc("https://b.example/2", "second post", "more notes on learning in public"),
	}

	snap1, err := Build(docs)
	require.NoError(t, err)
	snap2, err := Build(docs)
	require.NoError(t, err)

	assert.Equal(t, snap1.Id(), snap2.Id(), "unchanged corpus must produce the same identity")

	rec1 := snap1.ToRecord()
	rec2 := snap2.ToRecord()
	rec2.BuiltAt = rec1.BuiltAt
	assert.Equal(t, rec1, rec2, "postings and statistics must be identical")
}

func TestBuild_IdentityChangesWithCorpus(t *testing.T) {
	docs := []*core.Document{testDoc("https://a.example/1", "post", "hello world")}
	snap1, err := Build(docs)
	require.NoError(t, err)

	docs = append(docs, testDoc("https://b.example/2", "post", "another page"))
	snap2, err := Build(docs)
	require.NoError(t, err)

	assert.NotEqual(t, snap1.Id(), snap2.Id())
}

func TestBuild_DuplicateDocument(t *testing.T) {
	doc := testDoc("https://a.example/1", "post", "hello world")
	_, err := Build([]*core.Document{doc, doc})
	assert.Error(t, err)
}

func TestFromRecord_RoundTrip(t *testing.T) {
	docs := []*core.Document{
		testDoc("https://a.example/1", "first", "python tutorials I enjoyed"),
		testDoc("https://b.example/2", "second", "notes about python and go"),
	}

	built, err := Build(docs)
	require.NoError(t, err)

	loaded, err := FromRecord(built.ToRecord(), docs)
	require.NoError(t, err)

	assert.Equal(t, built.Id(), loaded.Id())
	assert.Equal(t, built.DocCount(), loaded.DocCount())
	assert.Equal(t, built.AvgDocLen(), loaded.AvgDocLen())
	assert.Equal(t, built.Postings("python"), loaded.Postings("python"))
	assert.Equal(t, built.DocLength(docs[0].Id), loaded.DocLength(docs[0].Id))
}

func TestFromRecord_MissingDocument(t *testing.T) {
	docs := []*core.Document{
		testDoc("https://a.example/1", "first", "python tutorials"),
		testDoc("https://b.example/2", "second", "go notes"),
	}

	built, err := Build(docs)
	require.NoError(t, err)

	// Store lost a document the record still references
	_, err = FromRecord(built.ToRecord(), docs[:1])
	assert.ErrorIs(t, err, ErrCorruptSnapshot)
}

func TestTokenize(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "lowercases and trims punctuation",
			text: "Hello, World!",
			want: []string{"hello", "world"},
		},
		{
			name: "drops stop words",
			text: "the cat is on a mat",
			want: []string{"cat", "mat"},
		},
		{
			name: "empty string",
			text: "",
			want: []string{},
		},
		{
			name: "only stop words",
			text: "the a an of",
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Tokenize(tt.text))
		})
	}
}
