package memo

import (
	"fmt"

	"github.com/on-the-ground/memo_ive_go/hashing"
	"github.com/on-the-ground/memo_ive_go/shared/helper"
	"github.com/on-the-ground/memo_ive_go/store"
	"github.com/on-the-ground/memo_ive_go/valuemap"
	"go.uber.org/zap"
)

// ErrInvalidConfig is returned by New when an option carries an unusable value.
var ErrInvalidConfig = fmt.Errorf("invalid memo configuration")

type config struct {
	hashing         hashing.Strategy
	mapper          valuemap.Mapper
	store           store.Store
	logger          *zap.Logger
	checkCollisions bool
	keyedReceiver   bool
}

func defaultConfig() config {
	return config{
		hashing: hashing.Simple{},
		mapper:  valuemap.Identity,
		logger:  zap.NewNop(),
	}
}

// Option overrides one default of New. Options not passed keep their default.
type Option func(*config) error

// WithHashingStrategy sets the digest function. Defaults to hashing.Simple.
func WithHashingStrategy(s hashing.Strategy) Option {
	return func(c *config) error {
		if helper.IsNil(s) {
			return fmt.Errorf("hashing strategy is nil")
		}
		c.hashing = s
		return nil
	}
}

// WithValueMappingStrategy sets the mapper applied to every visited value.
// Defaults to valuemap.Identity.
func WithValueMappingStrategy(m valuemap.Mapper) Option {
	return func(c *config) error {
		if helper.IsNil(m) {
			return fmt.Errorf("value mapping strategy is nil")
		}
		c.mapper = m
		return nil
	}
}

// WithStore sets the backing store. Defaults to a fresh store.NewInMemoryStore.
// A store must not be shared between functions.
func WithStore(s store.Store) Option {
	return func(c *config) error {
		if helper.IsNil(s) {
			return fmt.Errorf("store is nil")
		}
		c.store = s
		return nil
	}
}

// WithLogger sets the logger for hit, miss and collision events.
// Defaults to zap.NewNop.
func WithLogger(l *zap.Logger) Option {
	return func(c *config) error {
		if l == nil {
			return fmt.Errorf("logger is nil")
		}
		c.logger = l
		return nil
	}
}

// WithCollisionCheck stores the encoded key with every result and compares it
// on lookup. A colliding call computes its own result, which is returned but
// not stored.
func WithCollisionCheck() Option {
	return func(c *config) error {
		c.checkCollisions = true
		return nil
	}
}

// WithKeyedReceiver makes the receiver part of the key, for methods whose
// result depends on receiver state.
func WithKeyedReceiver() Option {
	return func(c *config) error {
		c.keyedReceiver = true
		return nil
	}
}
