package badger

import (
	"context"

	"github.com/dgraph-io/badger/v4"

	"github.com/anshita195/blogsearch/core"
	"github.com/anshita195/blogsearch/storage"
)

// SnapshotStore implements storage.SnapshotStore for BadgerDB. A single key
// holds the latest snapshot record; saving replaces it atomically within a
// transaction.
type SnapshotStore struct {
	backend *Backend
}

var _ storage.SnapshotStore = (*SnapshotStore)(nil)

// NewSnapshotStore creates a new SnapshotStore.
func NewSnapshotStore(backend *Backend) (*SnapshotStore, error) {
	return &SnapshotStore{
		backend: backend,
	}, nil
}

// Close releases resources. SnapshotStore has no resources to release.
func (s *SnapshotStore) Close() error {
	return nil
}

// SaveSnapshot persists a snapshot record, replacing any previous one.
func (s *SnapshotStore) SaveSnapshot(ctx context.Context, record *core.SnapshotRecord) error {
	return s.backend.WithTx(func(tx *badger.Txn) error {
		value := storage.MarshalSnapshotRecord(record)
		if err := tx.Set(makeSnapshotKey(), value); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
}

// DeleteSnapshot removes the persisted snapshot record. Deleting when none
// exists is a no-op.
func (s *SnapshotStore) DeleteSnapshot(ctx context.Context) error {
	return s.backend.WithTx(func(tx *badger.Txn) error {
		if err := tx.Delete(makeSnapshotKey()); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
}

// LoadSnapshot retrieves the persisted snapshot record.
func (s *SnapshotStore) LoadSnapshot(ctx context.Context) (*core.SnapshotRecord, error) {
	var record *core.SnapshotRecord

	err := s.backend.WithTx(func(tx *badger.Txn) error {
		item, err := tx.Get(makeSnapshotKey())
		if err != nil {
			if err == badger.ErrKeyNotFound {
				return nil
			}
			return err
		}
		return item.Value(func(val []byte) error {
			var unmarshalErr error
			record, unmarshalErr = storage.UnmarshalSnapshotRecord(val)
			return unmarshalErr
		})
	}, false)

	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, storage.ErrNotFound
	}
	return record, nil
}
