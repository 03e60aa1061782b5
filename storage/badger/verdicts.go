package badger

import (
	"context"

	"github.com/dgraph-io/badger/v4"

	"github.com/anshita195/blogsearch/core"
	"github.com/anshita195/blogsearch/storage"
)

// VerdictRepository implements storage.VerdictRepository for BadgerDB.
type VerdictRepository struct {
	backend *Backend
}

var _ storage.VerdictRepository = (*VerdictRepository)(nil)

// NewVerdictRepository creates a new VerdictRepository.
func NewVerdictRepository(backend *Backend) (*VerdictRepository, error) {
	return &VerdictRepository{
		backend: backend,
	}, nil
}

// Close releases resources. VerdictRepository has no resources to release.
func (r *VerdictRepository) Close() error {
	return nil
}

// WithTransaction delegates to the backend.
func (r *VerdictRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return r.backend.WithTransaction(ctx, fn)
}

// AddVerdicts upserts one or more verdicts, keyed by document ID.
func (r *VerdictRepository) AddVerdicts(ctx context.Context, verdicts ...*core.ClassificationVerdict) error {
	return r.backend.WithTx(func(tx *badger.Txn) error {
		for _, verdict := range verdicts {
			key := makeVerdictKey(verdict.DocId)
			value := storage.MarshalVerdict(verdict)
			if err := tx.Set(key, value); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)
}

// GetVerdict retrieves the verdict for a document.
func (r *VerdictRepository) GetVerdict(ctx context.Context, docID core.ID) (*core.ClassificationVerdict, error) {
	var verdict *core.ClassificationVerdict

	err := r.backend.WithTx(func(tx *badger.Txn) error {
		item, err := tx.Get(makeVerdictKey(docID))
		if err != nil {
			if err == badger.ErrKeyNotFound {
				return nil
			}
			return err
		}
		return item.Value(func(val []byte) error {
			var unmarshalErr error
			verdict, unmarshalErr = storage.UnmarshalVerdict(val)
			return unmarshalErr
		})
	}, false)

	if err != nil {
		return nil, err
	}
	if verdict == nil {
		return nil, storage.ErrNotFound
	}
	return verdict, nil
}

// DeleteVerdicts removes verdicts by document ID.
func (r *VerdictRepository) DeleteVerdicts(ctx context.Context, docIDs ...core.ID) error {
	return r.backend.WithTx(func(tx *badger.Txn) error {
		for _, docID := range docIDs {
			key := makeVerdictKey(docID)
			if _, err := tx.Get(key); err != nil {
				if err == badger.ErrKeyNotFound {
					return storage.ErrNotFound
				}
				return err
			}
			if err := tx.Delete(key); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)
}
