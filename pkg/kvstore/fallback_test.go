package kvstore

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

type flakyStore struct {
	MemoryStore
	fail  bool
	calls int
}

func newFlaky() *flakyStore {
	return &flakyStore{MemoryStore: MemoryStore{data: map[string][]byte{}}}
}

func (f *flakyStore) Get(ctx context.Context, key string) ([]byte, error) {
	f.calls++
	if f.fail {
		return nil, errors.New("backend offline")
	}
	return f.MemoryStore.Get(ctx, key)
}

func (f *flakyStore) Set(ctx context.Context, key string, value []byte) error {
	f.calls++
	if f.fail {
		return errors.New("backend offline")
	}
	return f.MemoryStore.Set(ctx, key, value)
}

func TestFallbackForwardsWhileHealthy(t *testing.T) {
	ctx := context.Background()
	primary := newFlaky()
	s := NewFallback(primary)

	require.NoError(t, s.Set(ctx, "user", []byte("a")))
	got, err := primary.MemoryStore.Get(ctx, "user")
	require.NoError(t, err)
	assert.Equal(t, "a", string(got))

	_, err = s.Get(ctx, "missing")
	assert.True(t, IsNotFound(err))
	assert.False(t, s.Degraded())
}

func TestFallbackSwitchesOnceOnFailure(t *testing.T) {
	ctx := context.Background()
	core, logs := observer.New(zap.WarnLevel)
	primary := newFlaky()
	primary.fail = true

	var hooks int
	s := NewFallback(primary, WithLogger(zap.New(core)), OnFallback(func(error) { hooks++ }))

	require.NoError(t, s.Set(ctx, "users", []byte("roster")))
	assert.True(t, s.Degraded())

	got, err := s.Get(ctx, "users")
	require.NoError(t, err)
	assert.Equal(t, "roster", string(got))

	require.NoError(t, s.Set(ctx, "user", []byte("session")))
	assert.Equal(t, 1, primary.calls)
	assert.Equal(t, 1, hooks)
	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "STORAGE_UNAVAILABLE", logs.All()[0].ContextMap()["code"])
}

func TestFallbackWithoutPrimaryStartsDegraded(t *testing.T) {
	s := NewFallback(nil)
	assert.True(t, s.Degraded())
	require.NoError(t, s.Set(context.Background(), "k", []byte("v")))
	assert.NoError(t, s.Close())
}
