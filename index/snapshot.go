package index

import (
	"time"

	"github.com/anshita195/blogsearch/core"
)

// Snapshot is an immutable, atomically-swappable view of the searchable
// corpus: inverted index, document metadata, embedding vectors, and the
// corpus statistics needed for TF-IDF scoring. Queries always read exactly
// one snapshot; a rebuild produces a new snapshot and never mutates an
// existing one.
type Snapshot struct {
	id        uint64
	builtAt   time.Time
	docs      map[core.ID]*core.Document
	docOrder  []core.ID // sorted ascending
	docLens   map[core.ID]int
	postings  map[string][]core.Posting
	domains   map[string]int
	avgDocLen float64
}

// Id returns the snapshot identity. It is derived from the corpus contents,
// so rebuilding an unchanged document store yields the same identity.
func (s *Snapshot) Id() uint64 {
	return s.id
}

// BuiltAt returns the time the snapshot was built.
func (s *Snapshot) BuiltAt() time.Time {
	return s.builtAt
}

// DocCount returns the number of documents in the snapshot.
func (s *Snapshot) DocCount() int {
	return len(s.docOrder)
}

// AvgDocLen returns the average normalized token count per document.
func (s *Snapshot) AvgDocLen() float64 {
	return s.avgDocLen
}

// Postings returns the postings list for a term, sorted by document ID.
// Returns nil for terms absent from the corpus. The returned slice is shared
// and must not be modified.
func (s *Snapshot) Postings(term string) []core.Posting {
	return s.postings[term]
}

// DocFreq returns the number of documents containing a term.
func (s *Snapshot) DocFreq(term string) int {
	return len(s.postings[term])
}

// TermCount returns the number of distinct terms in the index.
func (s *Snapshot) TermCount() int {
	return len(s.postings)
}

// Document returns the document for an ID, or false if the ID is not part
// of this snapshot.
func (s *Snapshot) Document(id core.ID) (*core.Document, bool) {
	doc, ok := s.docs[id]
	return doc, ok
}

// DocLength returns the normalized token count of a document.
func (s *Snapshot) DocLength(id core.ID) int {
	return s.docLens[id]
}

// DocIds returns the snapshot's document IDs in ascending order.
// The returned slice is shared and must not be modified.
func (s *Snapshot) DocIds() []core.ID {
	return s.docOrder
}

// Domains returns the per-domain document counts.
func (s *Snapshot) Domains() map[string]int {
	out := make(map[string]int, len(s.domains))
	for domain, n := range s.domains {
		out[domain] = n
	}
	return out
}

// ToRecord converts the snapshot into its serializable form. Terms and
// postings are emitted in sorted order so that identical snapshots produce
// identical records.
func (s *Snapshot) ToRecord() *core.SnapshotRecord {
	terms := make([]core.TermPostings, 0, len(s.postings))
	for term := range s.postings {
		terms = append(terms, core.TermPostings{Term: term, Postings: s.postings[term]})
	}
	sortTermPostings(terms)

	return &core.SnapshotRecord{
		Id:        s.id,
		BuiltAt:   s.builtAt,
		DocIds:    s.docOrder,
		Terms:     terms,
		AvgDocLen: s.avgDocLen,
	}
}
