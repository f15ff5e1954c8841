package store_test

import (
	"sync"
	"testing"

	"github.com/on-the-ground/memo_ive_go/hashing"
	"github.com/on-the-ground/memo_ive_go/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func backends(t *testing.T) map[string]func() store.Store {
	return map[string]func() store.Store{
		"inmemory": store.NewInMemoryStore,
		"memdb": func() store.Store {
			s, err := store.NewMemDBStore()
			require.NoError(t, err)
			return s
		},
	}
}

func TestStore_LoadAndInsert(t *testing.T) {
	for name, newStore := range backends(t) {
		t.Run(name, func(t *testing.T) {
			s := newStore()

			_, ok, err := s.Load(1)
			require.NoError(t, err)
			assert.False(t, ok)

			inserted, err := s.InsertIfAbsent(1, store.Entry{Key: "k1", Result: "first"})
			require.NoError(t, err)
			assert.True(t, inserted)

			e, ok, err := s.Load(1)
			require.NoError(t, err)
			assert.True(t, ok)
			assert.Equal(t, "k1", e.Key)
			assert.Equal(t, "first", e.Result)
			assert.Equal(t, 1, s.Len())
		})
	}
}

func TestStore_FirstWriteWins(t *testing.T) {
	for name, newStore := range backends(t) {
		t.Run(name, func(t *testing.T) {
			s := newStore()

			_, err := s.InsertIfAbsent(7, store.Entry{Result: "first"})
			require.NoError(t, err)
			inserted, err := s.InsertIfAbsent(7, store.Entry{Result: "second"})
			require.NoError(t, err)
			assert.False(t, inserted)

			e, ok, err := s.Load(7)
			require.NoError(t, err)
			require.True(t, ok)
			assert.Equal(t, "first", e.Result)
			assert.Equal(t, 1, s.Len())
		})
	}
}

func TestStore_KeepsSharedReferences(t *testing.T) {
	for name, newStore := range backends(t) {
		t.Run(name, func(t *testing.T) {
			s := newStore()
			result := []int{1, 2, 3}

			_, err := s.InsertIfAbsent(hashing.Digest(1<<40), store.Entry{Result: result})
			require.NoError(t, err)

			e, ok, err := s.Load(hashing.Digest(1 << 40))
			require.NoError(t, err)
			require.True(t, ok)
			got := e.Result.([]int)
			got[0] = 100
			assert.Equal(t, 100, result[0])
		})
	}
}

func TestStore_ConcurrentInsertsKeepOneEntry(t *testing.T) {
	for name, newStore := range backends(t) {
		t.Run(name, func(t *testing.T) {
			s := newStore()

			var wg sync.WaitGroup
			var mu sync.Mutex
			wins := 0
			for i := range 32 {
				wg.Add(1)
				go func() {
					defer wg.Done()
					inserted, err := s.InsertIfAbsent(42, store.Entry{Result: i})
					assert.NoError(t, err)
					if inserted {
						mu.Lock()
						wins++
						mu.Unlock()
					}
				}()
			}
			wg.Wait()

			assert.Equal(t, 1, wins)
			assert.Equal(t, 1, s.Len())
		})
	}
}
