package memo

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/on-the-ground/memo_ive_go/hashing"
	"github.com/on-the-ground/memo_ive_go/keyenc"
	"github.com/on-the-ground/memo_ive_go/shared/helper"
	"github.com/on-the-ground/memo_ive_go/store"
	"github.com/rickb777/date/v2/timespan"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// Func is the shape of a function Function can wrap. receiver is the bound
// receiver of a method, or nil for plain functions.
type Func[R any] func(receiver any, args ...any) (R, error)

// Function is a memoized Func. It is safe for concurrent use: racing misses
// for the same digest may each call the wrapped function, and the first
// result stored wins.
type Function[R any] struct {
	id              uuid.UUID
	fn              Func[R]
	hashing         hashing.Strategy
	encode          func(receiver any, args []any) string
	store           store.Store
	logger          *zap.Logger
	checkCollisions bool
	counters        counters
}

// New memoizes fn. Every option is validated here, so a Function that was
// constructed never fails for configuration reasons.
func New[R any](fn Func[R], opts ...Option) (*Function[R], error) {
	cfg := defaultConfig()
	var errs error
	if fn == nil {
		errs = multierr.Append(errs, fmt.Errorf("function is nil"))
	}
	for _, opt := range opts {
		errs = multierr.Append(errs, opt(&cfg))
	}
	if errs != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, errs)
	}
	if cfg.store == nil {
		cfg.store = store.NewInMemoryStore()
	}

	mapper := cfg.mapper
	encode := func(_ any, args []any) string {
		return keyenc.Encode(args, mapper)
	}
	if cfg.keyedReceiver {
		encode = func(receiver any, args []any) string {
			return keyenc.EncodeBound(receiver, args, mapper)
		}
	}

	return &Function[R]{
		id:              uuid.New(),
		fn:              fn,
		hashing:         cfg.hashing,
		encode:          encode,
		store:           cfg.store,
		logger:          cfg.logger,
		checkCollisions: cfg.checkCollisions,
	}, nil
}

// Must is the panic-on-failure variant of New.
func Must[R any](fn Func[R], opts ...Option) *Function[R] {
	f, err := New(fn, opts...)
	if err != nil {
		panic(err)
	}
	return f
}

// ID identifies this Function in log entries.
func (m *Function[R]) ID() uuid.UUID {
	return m.id
}

// Digest returns the cache key args map to.
func (m *Function[R]) Digest(receiver any, args ...any) hashing.Digest {
	return m.hashing.Hash(m.encode(receiver, args))
}

// Invoke returns the memoized result for args, calling the wrapped function
// with receiver and args on a miss. Errors from the wrapped function are
// returned unchanged and nothing is stored for them. Panics propagate and
// likewise leave the store untouched.
//
// Composite results are shared with the store and must be treated as
// read-only.
func (m *Function[R]) Invoke(receiver any, args ...any) (R, error) {
	key := m.encode(receiver, args)
	digest := m.hashing.Hash(key)

	e, ok, err := m.store.Load(digest)
	if err != nil {
		var zero R
		return zero, fmt.Errorf("failed to load memoized result: %w", err)
	}
	if ok {
		if !m.checkCollisions || e.Key == key {
			m.counters.hits.Add(1)
			m.logger.Debug("memo hit",
				zap.Stringer("memo_id", m.id),
				zap.Uint64("digest", uint64(digest)),
			)
			return helper.GetTypedValueOf[R](e.Result)
		}
		m.counters.collisions.Add(1)
		m.logger.Warn("memo digest collision",
			zap.Stringer("memo_id", m.id),
			zap.Uint64("digest", uint64(digest)),
		)
		return m.fn(receiver, args...)
	}

	m.counters.misses.Add(1)
	start := time.Now()
	res, err := m.fn(receiver, args...)
	took := timespan.BetweenTimes(start, time.Now())
	if err != nil {
		m.counters.failures.Add(1)
		return res, err
	}

	entry := store.Entry{Result: res}
	if m.checkCollisions {
		entry.Key = key
	}
	if _, err := m.store.InsertIfAbsent(digest, entry); err != nil {
		return res, fmt.Errorf("failed to store memoized result: %w", err)
	}
	m.logger.Debug("memo miss",
		zap.Stringer("memo_id", m.id),
		zap.Uint64("digest", uint64(digest)),
		zap.Duration("took", took.Duration()),
	)
	return res, nil
}

// InvokeCopy is Invoke returning a shallow copy of slice, map and
// pointer-to-struct results, so callers may modify the top level freely.
func (m *Function[R]) InvokeCopy(receiver any, args ...any) (R, error) {
	res, err := m.Invoke(receiver, args...)
	if err != nil {
		return res, err
	}
	return shallowCopy(res), nil
}

// Stats returns a snapshot of the Function's counters.
func (m *Function[R]) Stats() Stats {
	return Stats{
		Hits:       m.counters.hits.Load(),
		Misses:     m.counters.misses.Load(),
		Failures:   m.counters.failures.Load(),
		Collisions: m.counters.collisions.Load(),
		Entries:    uint64(m.store.Len()),
	}
}
