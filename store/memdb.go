package store

import (
	"fmt"
	"sync/atomic"

	memdb "github.com/hashicorp/go-memdb"
	"github.com/on-the-ground/memo_ive_go/hashing"
)

const (
	memdbTable = "entries"
	memdbIndex = "id"
)

var _ Store = (*MemDBStore)(nil)

type record struct {
	Digest uint64
	Key    string
	Result any
}

// MemDBStore keeps entries in a go-memdb table indexed by digest.
// Reads run on snapshots and never block writers.
type MemDBStore struct {
	db  *memdb.MemDB
	len atomic.Int64
}

func schema() *memdb.DBSchema {
	return &memdb.DBSchema{
		Tables: map[string]*memdb.TableSchema{
			memdbTable: {
				Name: memdbTable,
				Indexes: map[string]*memdb.IndexSchema{
					memdbIndex: {
						Name:    memdbIndex,
						Unique:  true,
						Indexer: &memdb.UintFieldIndex{Field: "Digest"},
					},
				},
			},
		},
	}
}

// NewMemDBStore creates an empty MemDBStore.
func NewMemDBStore() (*MemDBStore, error) {
	db, err := memdb.NewMemDB(schema())
	if err != nil {
		return nil, fmt.Errorf("failed to create memdb: %w", err)
	}
	return &MemDBStore{db: db}, nil
}

func (m *MemDBStore) Load(d hashing.Digest) (Entry, bool, error) {
	txn := m.db.Txn(false)
	defer txn.Abort()

	raw, err := txn.First(memdbTable, memdbIndex, uint64(d))
	if err != nil || raw == nil {
		return Entry{}, false, err
	}
	rec, ok := raw.(*record)
	if !ok {
		return Entry{}, false, fmt.Errorf("%w: %T", ErrUnexpectedRecord, raw)
	}
	return Entry{Key: rec.Key, Result: rec.Result}, true, nil
}

func (m *MemDBStore) InsertIfAbsent(d hashing.Digest, e Entry) (bool, error) {
	txn := m.db.Txn(true)
	defer txn.Abort()

	old, err := txn.First(memdbTable, memdbIndex, uint64(d))
	if err != nil {
		return false, err
	} else if old != nil {
		return false, nil
	}

	if err := txn.Insert(memdbTable, &record{Digest: uint64(d), Key: e.Key, Result: e.Result}); err != nil {
		return false, err
	}
	txn.Commit()
	m.len.Add(1)
	return true, nil
}

func (m *MemDBStore) Len() int {
	return int(m.len.Load())
}
