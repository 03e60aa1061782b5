package badger

import (
	"encoding/binary"
	"fmt"

	"github.com/anshita195/blogsearch/core"
)

// Key prefixes for different data types
const (
	documentPrefix       = "docrec"
	documentDomainPrefix = "docdom"
	verdictPrefix        = "verrec"
	snapshotKey          = "idxsnap:current"
)

// makeDocumentKey generates a key for a document by ID.
func makeDocumentKey(id core.ID) []byte {
	return []byte(fmt.Sprintf("%s:%d", documentPrefix, id))
}

// makeDomainKey generates a composite key for the domain index.
// Format: prefix:domain:id
func makeDomainKey(domain string, id core.ID) []byte {
	prefix := documentDomainPrefix + ":" + domain + ":"
	prefixBytes := []byte(prefix)
	buf := make([]byte, len(prefixBytes)+8)
	offset := copy(buf, prefixBytes)
	// Write in BigEndian order so lexicographic sort works correctly
	binary.BigEndian.PutUint64(buf[offset:], uint64(id))
	return buf
}

// makePartialDomainKey generates a partial key for domain scans.
// Format: prefix:domain:
func makePartialDomainKey(domain string) []byte {
	return []byte(documentDomainPrefix + ":" + domain + ":")
}

// makeVerdictKey generates a key for a verdict by document ID.
func makeVerdictKey(docID core.ID) []byte {
	return []byte(fmt.Sprintf("%s:%d", verdictPrefix, docID))
}

// makeSnapshotKey generates the key for the persisted snapshot record.
func makeSnapshotKey() []byte {
	return []byte(snapshotKey)
}
