// Code generated by musgen-go. DO NOT EDIT.

package core

import (
	"github.com/mus-format/mus-go/ord"
	"github.com/mus-format/mus-go/raw"
	"github.com/mus-format/mus-go/varint"
)

var (
	slice0gspon7Kz7Sc1mOHzr642wΞΞ = ord.NewSliceSer[string](ord.String)
	slice4xCno8IIwF4VIzLFtBSz7QΞΞ = ord.NewSliceSer[TermPostings](TermPostingsMUS)
	sliceENugple3KCeAGxKRy6ZIygΞΞ = ord.NewSliceSer[Posting](PostingMUS)
	sliceROzFJRisTU3YsK4gYB6tYAΞΞ = ord.NewSliceSer[float32](varint.Float32)
	slicersf6N0Yk2SDMyiTkNiaVHAΞΞ = ord.NewSliceSer[ID](IDMUS)
)

var IDMUS = iDMUS{}

type iDMUS struct{}

func (s iDMUS) Marshal(v ID, bs []byte) (n int) {
	return varint.Uint64.Marshal(uint64(v), bs)
}

func (s iDMUS) Unmarshal(bs []byte) (v ID, n int, err error) {
	tmp, n, err := varint.Uint64.Unmarshal(bs)
	if err != nil {
		return
	}
	v = ID(tmp)
	return
}

func (s iDMUS) Size(v ID) (size int) {
	return varint.Uint64.Size(uint64(v))
}

func (s iDMUS) Skip(bs []byte) (n int, err error) {
	return varint.Uint64.Skip(bs)
}

var LabelMUS = labelMUS{}

type labelMUS struct{}

func (s labelMUS) Marshal(v Label, bs []byte) (n int) {
	return varint.Int.Marshal(int(v), bs)
}

func (s labelMUS) Unmarshal(bs []byte) (v Label, n int, err error) {
	tmp, n, err := varint.Int.Unmarshal(bs)
	if err != nil {
		return
	}
	v = Label(tmp)
	return
}

func (s labelMUS) Size(v Label) (size int) {
	return varint.Int.Size(int(v))
}

func (s labelMUS) Skip(bs []byte) (n int, err error) {
	return varint.Int.Skip(bs)
}

var DocumentMUS = documentMUS{}

type documentMUS struct{}

func (s documentMUS) Marshal(v Document, bs []byte) (n int) {
	n = IDMUS.Marshal(v.Id, bs)
	n += ord.String.Marshal(v.URL, bs[n:])
	n += ord.String.Marshal(v.Domain, bs[n:])
	n += ord.String.Marshal(v.Title, bs[n:])
	n += ord.String.Marshal(v.Author, bs[n:])
	n += ord.String.Marshal(v.Description, bs[n:])
	n += ord.String.Marshal(v.Content, bs[n:])
	n += slice0gspon7Kz7Sc1mOHzr642wΞΞ.Marshal(v.Tokens, bs[n:])
	n += sliceROzFJRisTU3YsK4gYB6tYAΞΞ.Marshal(v.Vector, bs[n:])
	n += varint.Float64.Marshal(v.Confidence, bs[n:])
	n += LabelMUS.Marshal(v.Label, bs[n:])
	n += raw.TimeUnixMicro.Marshal(v.FetchedAt, bs[n:])
	n += raw.TimeUnixMicro.Marshal(v.InsertedAt, bs[n:])
	return n + raw.TimeUnixMicro.Marshal(v.UpdatedAt, bs[n:])
}

func (s documentMUS) Unmarshal(bs []byte) (v Document, n int, err error) {
	v.Id, n, err = IDMUS.Unmarshal(bs)
	if err != nil {
		return
	}
	var n1 int
	v.URL, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Domain, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Title, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Author, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Description, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Content, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Tokens, n1, err = slice0gspon7Kz7Sc1mOHzr642wΞΞ.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Vector, n1, err = sliceROzFJRisTU3YsK4gYB6tYAΞΞ.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Confidence, n1, err = varint.Float64.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Label, n1, err = LabelMUS.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.FetchedAt, n1, err = raw.TimeUnixMicro.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.InsertedAt, n1, err = raw.TimeUnixMicro.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.UpdatedAt, n1, err = raw.TimeUnixMicro.Unmarshal(bs[n:])
	n += n1
	return
}

func (s documentMUS) Size(v Document) (size int) {
	size = IDMUS.Size(v.Id)
	size += ord.String.Size(v.URL)
	size += ord.String.Size(v.Domain)
	size += ord.String.Size(v.Title)
	size += ord.String.Size(v.Author)
	size += ord.String.Size(v.Description)
	size += ord.String.Size(v.Content)
	size += slice0gspon7Kz7Sc1mOHzr642wΞΞ.Size(v.Tokens)
	size += sliceROzFJRisTU3YsK4gYB6tYAΞΞ.Size(v.Vector)
	size += varint.Float64.Size(v.Confidence)
	size += LabelMUS.Size(v.Label)
	size += raw.TimeUnixMicro.Size(v.FetchedAt)
	size += raw.TimeUnixMicro.Size(v.InsertedAt)
	return size + raw.TimeUnixMicro.Size(v.UpdatedAt)
}

func (s documentMUS) Skip(bs []byte) (n int, err error) {
	n, err = IDMUS.Skip(bs)
	if err != nil {
		return
	}
	var n1 int
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = slice0gspon7Kz7Sc1mOHzr642wΞΞ.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = sliceROzFJRisTU3YsK4gYB6tYAΞΞ.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = varint.Float64.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = LabelMUS.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = raw.TimeUnixMicro.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = raw.TimeUnixMicro.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = raw.TimeUnixMicro.Skip(bs[n:])
	n += n1
	return
}

var StageScoresMUS = stageScoresMUS{}

type stageScoresMUS struct{}

func (s stageScoresMUS) Marshal(v StageScores, bs []byte) (n int) {
	n = varint.Float64.Marshal(v.Embedding, bs)
	n += varint.Float64.Marshal(v.Structural, bs[n:])
	return n + varint.Float64.Marshal(v.Lexical, bs[n:])
}

func (s stageScoresMUS) Unmarshal(bs []byte) (v StageScores, n int, err error) {
	v.Embedding, n, err = varint.Float64.Unmarshal(bs)
	if err != nil {
		return
	}
	var n1 int
	v.Structural, n1, err = varint.Float64.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Lexical, n1, err = varint.Float64.Unmarshal(bs[n:])
	n += n1
	return
}

func (s stageScoresMUS) Size(v StageScores) (size int) {
	size = varint.Float64.Size(v.Embedding)
	size += varint.Float64.Size(v.Structural)
	return size + varint.Float64.Size(v.Lexical)
}

func (s stageScoresMUS) Skip(bs []byte) (n int, err error) {
	n, err = varint.Float64.Skip(bs)
	if err != nil {
		return
	}
	var n1 int
	n1, err = varint.Float64.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = varint.Float64.Skip(bs[n:])
	n += n1
	return
}

var ClassificationVerdictMUS = classificationVerdictMUS{}

type classificationVerdictMUS struct{}

func (s classificationVerdictMUS) Marshal(v ClassificationVerdict, bs []byte) (n int) {
	n = IDMUS.Marshal(v.DocId, bs)
	n += StageScoresMUS.Marshal(v.Stages, bs[n:])
	n += varint.Float64.Marshal(v.Confidence, bs[n:])
	n += LabelMUS.Marshal(v.Label, bs[n:])
	return n + raw.TimeUnixMicro.Marshal(v.DecidedAt, bs[n:])
}

func (s classificationVerdictMUS) Unmarshal(bs []byte) (v ClassificationVerdict, n int, err error) {
	v.DocId, n, err = IDMUS.Unmarshal(bs)
	if err != nil {
		return
	}
	var n1 int
	v.Stages, n1, err = StageScoresMUS.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Confidence, n1, err = varint.Float64.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Label, n1, err = LabelMUS.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.DecidedAt, n1, err = raw.TimeUnixMicro.Unmarshal(bs[n:])
	n += n1
	return
}

func (s classificationVerdictMUS) Size(v ClassificationVerdict) (size int) {
	size = IDMUS.Size(v.DocId)
	size += StageScoresMUS.Size(v.Stages)
	size += varint.Float64.Size(v.Confidence)
	size += LabelMUS.Size(v.Label)
	return size + raw.TimeUnixMicro.Size(v.DecidedAt)
}

func (s classificationVerdictMUS) Skip(bs []byte) (n int, err error) {
	n, err = IDMUS.Skip(bs)
	if err != nil {
		return
	}
	var n1 int
	n1, err = StageScoresMUS.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = varint.Float64.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = LabelMUS.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = raw.TimeUnixMicro.Skip(bs[n:])
	n += n1
	return
}

var PostingMUS = postingMUS{}

type postingMUS struct{}

func (s postingMUS) Marshal(v Posting, bs []byte) (n int) {
	n = IDMUS.Marshal(v.Doc, bs)
	return n + varint.Uint32.Marshal(v.Freq, bs[n:])
}

func (s postingMUS) Unmarshal(bs []byte) (v Posting, n int, err error) {
	v.Doc, n, err = IDMUS.Unmarshal(bs)
	if err != nil {
		return
	}
	var n1 int
	v.Freq, n1, err = varint.Uint32.Unmarshal(bs[n:])
	n += n1
	return
}

func (s postingMUS) Size(v Posting) (size int) {
	size = IDMUS.Size(v.Doc)
	return size + varint.Uint32.Size(v.Freq)
}

func (s postingMUS) Skip(bs []byte) (n int, err error) {
	n, err = IDMUS.Skip(bs)
	if err != nil {
		return
	}
	var n1 int
	n1, err = varint.Uint32.Skip(bs[n:])
	n += n1
	return
}

var TermPostingsMUS = termPostingsMUS{}

type termPostingsMUS struct{}

func (s termPostingsMUS) Marshal(v TermPostings, bs []byte) (n int) {
	n = ord.String.Marshal(v.Term, bs)
	return n + sliceENugple3KCeAGxKRy6ZIygΞΞ.Marshal(v.Postings, bs[n:])
}

func (s termPostingsMUS) Unmarshal(bs []byte) (v TermPostings, n int, err error) {
	v.Term, n, err = ord.String.Unmarshal(bs)
	if err != nil {
		return
	}
	var n1 int
	v.Postings, n1, err = sliceENugple3KCeAGxKRy6ZIygΞΞ.Unmarshal(bs[n:])
	n += n1
	return
}

func (s termPostingsMUS) Size(v TermPostings) (size int) {
	size = ord.String.Size(v.Term)
	return size + sliceENugple3KCeAGxKRy6ZIygΞΞ.Size(v.Postings)
}

func (s termPostingsMUS) Skip(bs []byte) (n int, err error) {
	n, err = ord.String.Skip(bs)
	if err != nil {
		return
	}
	var n1 int
	n1, err = sliceENugple3KCeAGxKRy6ZIygΞΞ.Skip(bs[n:])
	n += n1
	return
}

var SnapshotRecordMUS = snapshotRecordMUS{}

type snapshotRecordMUS struct{}

func (s snapshotRecordMUS) Marshal(v SnapshotRecord, bs []byte) (n int) {
	n = varint.Uint64.Marshal(v.Id, bs)
	n += raw.TimeUnixMicro.Marshal(v.BuiltAt, bs[n:])
	n += slicersf6N0Yk2SDMyiTkNiaVHAΞΞ.Marshal(v.DocIds, bs[n:])
	n += slice4xCno8IIwF4VIzLFtBSz7QΞΞ.Marshal(v.Terms, bs[n:])
	return n + varint.Float64.Marshal(v.AvgDocLen, bs[n:])
}

func (s snapshotRecordMUS) Unmarshal(bs []byte) (v SnapshotRecord, n int, err error) {
	v.Id, n, err = varint.Uint64.Unmarshal(bs)
	if err != nil {
		return
	}
	var n1 int
	v.BuiltAt, n1, err = raw.TimeUnixMicro.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.DocIds, n1, err = slicersf6N0Yk2SDMyiTkNiaVHAΞΞ.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Terms, n1, err = slice4xCno8IIwF4VIzLFtBSz7QΞΞ.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.AvgDocLen, n1, err = varint.Float64.Unmarshal(bs[n:])
	n += n1
	return
}

func (s snapshotRecordMUS) Size(v SnapshotRecord) (size int) {
	size = varint.Uint64.Size(v.Id)
	size += raw.TimeUnixMicro.Size(v.BuiltAt)
	size += slicersf6N0Yk2SDMyiTkNiaVHAΞΞ.Size(v.DocIds)
	size += slice4xCno8IIwF4VIzLFtBSz7QΞΞ.Size(v.Terms)
	return size + varint.Float64.Size(v.AvgDocLen)
}

func (s snapshotRecordMUS) Skip(bs []byte) (n int, err error) {
	n, err = varint.Uint64.Skip(bs)
	if err != nil {
		return
	}
	var n1 int
	n1, err = raw.TimeUnixMicro.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = slicersf6N0Yk2SDMyiTkNiaVHAΞΞ.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = slice4xCno8IIwF4VIzLFtBSz7QΞΞ.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = varint.Float64.Skip(bs[n:])
	n += n1
	return
}
