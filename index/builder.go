package index

import (
	"encoding/binary"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/go-crypt/x/blake2b"

	"github.com/anshita195/blogsearch/core"
)

// Build constructs a snapshot from the given documents. It is a pure
// function of its input: building twice from an unchanged document set
// yields identical postings, statistics, and snapshot identity.
//
// Returns ErrEmptyCorpus when docs is empty; callers keep serving the
// previous snapshot in that case.
func Build(docs []*core.Document) (*Snapshot, error) {
	if len(docs) == 0 {
		return nil, ErrEmptyCorpus
	}

	snap := &Snapshot{
		builtAt:  time.Now().UTC(),
		docs:     make(map[core.ID]*core.Document, len(docs)),
		docLens:  make(map[core.ID]int, len(docs)),
		postings: make(map[string][]core.Posting),
		domains:  make(map[string]int),
	}

	for _, doc := range docs {
		if doc == nil {
			continue
		}
		if _, dup := snap.docs[doc.Id]; dup {
			return nil, fmt.Errorf("duplicate document id %d (%s)", doc.Id, doc.URL)
		}
		snap.docs[doc.Id] = doc
		snap.docOrder = append(snap.docOrder, doc.Id)
	}
	if len(snap.docOrder) == 0 {
		return nil, ErrEmptyCorpus
	}
	slices.Sort(snap.docOrder)

	var totalLen int
	for _, id := range snap.docOrder {
		doc := snap.docs[id]

		tokens := doc.Tokens
		if len(tokens) == 0 {
			tokens = Tokenize(doc.Title + " " + doc.Content)
		}
		snap.docLens[id] = len(tokens)
		totalLen += len(tokens)
		snap.domains[doc.Domain]++

		freqs := make(map[string]uint32, len(tokens))
		for _, term := range tokens {
			freqs[term]++
		}
		// Title terms count double so title matches outrank body-only matches.
		for _, term := range Tokenize(doc.Title) {
			if _, ok := freqs[term]; ok {
				freqs[term]++
			}
		}
		// Iterating docs in sorted ID order keeps every postings list
		// sorted by document ID without a separate sort pass.
		for term, freq := range freqs {
			snap.postings[term] = append(snap.postings[term], core.Posting{Doc: id, Freq: freq})
		}
	}

	snap.avgDocLen = float64(totalLen) / float64(len(snap.docOrder))
	snap.id = corpusIdentity(snap)

	return snap, nil
}

// FromRecord reconstructs a snapshot from its persisted record and the
// documents fetched from the store. Loading a record must be observationally
// identical to rebuilding from the same store.
//
// Returns ErrCorruptSnapshot when a document referenced by the record is
// missing, so a partial index is never served.
func FromRecord(record *core.SnapshotRecord, docs []*core.Document) (*Snapshot, error) {
	if record == nil || len(record.DocIds) == 0 {
		return nil, ErrEmptyCorpus
	}

	byID := make(map[core.ID]*core.Document, len(docs))
	for _, doc := range docs {
		if doc != nil {
			byID[doc.Id] = doc
		}
	}

	snap := &Snapshot{
		id:        record.Id,
		builtAt:   record.BuiltAt,
		docs:      make(map[core.ID]*core.Document, len(record.DocIds)),
		docLens:   make(map[core.ID]int, len(record.DocIds)),
		postings:  make(map[string][]core.Posting, len(record.Terms)),
		domains:   make(map[string]int),
		avgDocLen: record.AvgDocLen,
	}

	for _, id := range record.DocIds {
		doc, ok := byID[id]
		if !ok {
			return nil, fmt.Errorf("%w: document %d missing from store", ErrCorruptSnapshot, id)
		}
		snap.docs[id] = doc
		snap.docOrder = append(snap.docOrder, id)
		snap.domains[doc.Domain]++

		length := len(doc.Tokens)
		if length == 0 {
			length = len(Tokenize(doc.Title + " " + doc.Content))
		}
		snap.docLens[id] = length
	}
	slices.Sort(snap.docOrder)

	for _, tp := range record.Terms {
		snap.postings[tp.Term] = tp.Postings
	}

	return snap, nil
}

// corpusIdentity derives the snapshot identity from document IDs and update
// times, so unchanged corpora hash identically across rebuilds.
func corpusIdentity(snap *Snapshot) uint64 {
	h, _ := blake2b.New(8, nil)
	buf := make([]byte, 16)
	for _, id := range snap.docOrder {
		doc := snap.docs[id]
		binary.LittleEndian.PutUint64(buf[:8], uint64(id))
		binary.LittleEndian.PutUint64(buf[8:], uint64(doc.UpdatedAt.UnixMicro()))
		h.Write(buf)
	}
	sum := h.Sum(nil)
	return binary.LittleEndian.Uint64(sum)
}

func sortTermPostings(terms []core.TermPostings) {
	slices.SortFunc(terms, func(a, b core.TermPostings) int {
		return strings.Compare(a.Term, b.Term)
	})
}
