package kvstore

import (
	"context"
	"sync"

	"go.uber.org/zap"

	appErrors "github.com/noah-isme/alpstech-academy-api/pkg/errors"
)

// FallbackStore forwards to a primary store until it fails once, then serves every call from
// memory for the rest of the process. Storage failures are never surfaced to callers.
type FallbackStore struct {
	primary    Store
	memory     *MemoryStore
	logger     *zap.Logger
	onFallback func(error)

	mu       sync.RWMutex
	degraded bool
}

// FallbackOption customises a FallbackStore.
type FallbackOption func(*FallbackStore)

// WithLogger sets the logger used to report the switch.
func WithLogger(logger *zap.Logger) FallbackOption {
	return func(s *FallbackStore) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// OnFallback registers a hook invoked once when the primary is abandoned.
func OnFallback(fn func(error)) FallbackOption {
	return func(s *FallbackStore) { s.onFallback = fn }
}

// NewFallback wraps primary. A nil primary starts degraded.
func NewFallback(primary Store, opts ...FallbackOption) *FallbackStore {
	s := &FallbackStore{primary: primary, memory: NewMemory(), logger: zap.NewNop()}
	for _, opt := range opts {
		opt(s)
	}
	if primary == nil {
		s.degraded = true
	}
	return s
}

// Degraded reports whether the in-memory fallback is active.
func (s *FallbackStore) Degraded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.degraded
}

func (s *FallbackStore) Get(ctx context.Context, key string) ([]byte, error) {
	if s.Degraded() {
		return s.memory.Get(ctx, key)
	}
	value, err := s.primary.Get(ctx, key)
	if err == nil || IsNotFound(err) {
		return value, err
	}
	s.degrade(err)
	return s.memory.Get(ctx, key)
}

func (s *FallbackStore) Set(ctx context.Context, key string, value []byte) error {
	if !s.Degraded() {
		err := s.primary.Set(ctx, key, value)
		if err == nil {
			return nil
		}
		s.degrade(err)
	}
	return s.memory.Set(ctx, key, value)
}

func (s *FallbackStore) Delete(ctx context.Context, key string) error {
	if !s.Degraded() {
		err := s.primary.Delete(ctx, key)
		if err == nil {
			return nil
		}
		s.degrade(err)
	}
	return s.memory.Delete(ctx, key)
}

func (s *FallbackStore) Close() error {
	if s.primary == nil {
		return nil
	}
	return s.primary.Close()
}

func (s *FallbackStore) degrade(cause error) {
	s.mu.Lock()
	if s.degraded {
		s.mu.Unlock()
		return
	}
	s.degraded = true
	s.mu.Unlock()

	s.logger.Warn("durable storage unavailable, continuing in memory",
		zap.String("code", appErrors.ErrStorageUnavailable.Code),
		zap.Error(cause),
	)
	if s.onFallback != nil {
		s.onFallback(cause)
	}
}
