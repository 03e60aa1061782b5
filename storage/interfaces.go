package storage

import (
	"context"

	"github.com/anshita195/blogsearch/core"
)

// Repository provides common storage operations shared across all repositories.
// Implementations must be thread-safe and support concurrent access.
type Repository interface {
	// WithTransaction executes a function within a transaction.
	// If fn returns an error, the transaction is rolled back.
	// If fn returns nil, the transaction is committed.
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error

	// Close closes the storage backend and releases resources.
	Close() error
}

// DocumentRepository provides operations for managing accepted documents.
type DocumentRepository interface {
	Repository

	// AddDocuments upserts one or more documents.
	// For documents with Id=0, derives the content-based ID from the URL.
	// Sets the canonical Domain when absent and populates InsertedAt and
	// UpdatedAt. Re-adding an existing document overwrites it and refreshes
	// UpdatedAt, keeping the domain index in sync.
	AddDocuments(ctx context.Context, docs ...*core.Document) ([]*core.Document, error)

	// UpdateDocuments updates existing documents.
	// Updates the UpdatedAt timestamp automatically.
	// Returns ErrNotFound if any document doesn't exist.
	UpdateDocuments(ctx context.Context, docs ...*core.Document) ([]*core.Document, error)

	// DeleteDocuments removes documents by their IDs.
	// Also removes associated domain index entries.
	// Returns ErrNotFound if any document doesn't exist.
	DeleteDocuments(ctx context.Context, ids ...core.ID) error

	// GetDocument retrieves a single document by ID.
	// Returns ErrNotFound if the document doesn't exist.
	GetDocument(ctx context.Context, id core.ID) (*core.Document, error)

	// GetDocuments retrieves multiple documents by their IDs.
	// Returns only the documents that exist (no error for missing documents).
	GetDocuments(ctx context.Context, ids ...core.ID) ([]*core.Document, error)

	// AllDocuments retrieves every stored document, ordered by ID.
	// This is the corpus feed for index builds.
	AllDocuments(ctx context.Context) ([]*core.Document, error)

	// GetDocumentsByDomain retrieves all documents for a canonical domain,
	// ordered by ID.
	GetDocumentsByDomain(ctx context.Context, domain string) ([]*core.Document, error)

	// CountDocuments returns the number of stored documents.
	CountDocuments(ctx context.Context) (int, error)
}

// VerdictRepository provides operations for classification verdicts.
// Verdicts are kept for every classified page, accepted or not, so that
// reclassification and audits can see past decisions.
type VerdictRepository interface {
	Repository

	// AddVerdicts upserts one or more verdicts, keyed by document ID.
	AddVerdicts(ctx context.Context, verdicts ...*core.ClassificationVerdict) error

	// GetVerdict retrieves the verdict for a document.
	// Returns ErrNotFound if no verdict exists.
	GetVerdict(ctx context.Context, docID core.ID) (*core.ClassificationVerdict, error)

	// DeleteVerdicts removes verdicts by document ID.
	// Returns ErrNotFound if any verdict doesn't exist.
	DeleteVerdicts(ctx context.Context, docIDs ...core.ID) error
}

// SnapshotStore persists the latest index snapshot record so the engine can
// serve queries immediately after restart, before the first rebuild.
type SnapshotStore interface {
	// SaveSnapshot persists a snapshot record, replacing any previous one.
	SaveSnapshot(ctx context.Context, record *core.SnapshotRecord) error

	// LoadSnapshot retrieves the persisted snapshot record.
	// Returns ErrNotFound if none has been saved.
	LoadSnapshot(ctx context.Context) (*core.SnapshotRecord, error)

	// DeleteSnapshot removes the persisted snapshot record, if any.
	// Deleting when none exists is not an error.
	DeleteSnapshot(ctx context.Context) error

	// Close releases resources held by the store.
	Close() error
}
