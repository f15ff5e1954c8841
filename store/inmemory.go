package store

import (
	"sync"
	"sync/atomic"

	"github.com/on-the-ground/memo_ive_go/hashing"
)

var _ Store = (*inMemStore)(nil)

type inMemStore struct {
	m   sync.Map
	len atomic.Int64
}

// NewInMemoryStore returns a Store backed by a sync.Map.
func NewInMemoryStore() Store {
	return &inMemStore{}
}

func (s *inMemStore) Load(d hashing.Digest) (Entry, bool, error) {
	v, ok := s.m.Load(d)
	if !ok {
		return Entry{}, false, nil
	}
	return v.(Entry), true, nil
}

func (s *inMemStore) InsertIfAbsent(d hashing.Digest, e Entry) (bool, error) {
	if _, loaded := s.m.LoadOrStore(d, e); loaded {
		return false, nil
	}
	s.len.Add(1)
	return true, nil
}

func (s *inMemStore) Len() int {
	return int(s.len.Load())
}
