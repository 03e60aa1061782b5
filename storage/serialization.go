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


package storage

import (
	"github.com/anshita195/blogsearch/core"
)

// MarshalID serializes an ID to bytes.
func MarshalID(id core.ID) []byte {
	buf := make([]byte, core.IDMUS.Size(id))
	core.IDMUS.Marshal(id, buf)
	return buf
}

// UnmarshalID deserializes an ID from bytes.
func UnmarshalID(data []byte) (core.ID, error) {
	var id core.ID
	id, _, err := core.IDMUS.Unmarshal(data)
	return id, err
}

// MarshalDocument serializes a Document to bytes.
func MarshalDocument(doc *core.Document) []byte {
	buf := make([]byte, core.DocumentMUS.Size(*doc))
	core.DocumentMUS.Marshal(*doc, buf)
	return buf
}

// UnmarshalDocument deserializes a Document from bytes.
func UnmarshalDocument(data []byte) (*core.Document, error) {
	doc, _, err := core.DocumentMUS.Unmarshal(data)
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

// MarshalVerdict serializes a ClassificationVerdict to bytes.
func MarshalVerdict(verdict *core.ClassificationVerdict) []byte {
	buf := make([]byte, core.ClassificationVerdictMUS.Size(*verdict))
	core.ClassificationVerdictMUS.Marshal(*verdict, buf)
	return buf
}

// UnmarshalVerdict deserializes a ClassificationVerdict from bytes.
func UnmarshalVerdict(data []byte) (*core.ClassificationVerdict, error) {
	verdict, _, err := core.ClassificationVerdictMUS.Unmarshal(data)
	if err != nil {
		return nil, err
	}
	return &verdict, nil
}

// MarshalSnapshotRecord serializes a SnapshotRecord to bytes.
func MarshalSnapshotRecord(record *core.SnapshotRecord) []byte {
	buf := make([]byte, core.SnapshotRecordMUS.Size(*record))
	core.SnapshotRecordMUS.Marshal(*record, buf)
	return buf
}

// UnmarshalSnapshotRecord deserializes a SnapshotRecord from bytes.
func UnmarshalSnapshotRecord(data []byte) (*core.SnapshotRecord, error) {
	record, _, err := core.SnapshotRecordMUS.Unmarshal(data)
	if err != nil {
		return nil, err
	}
	return &record, nil
}
