// Package notice carries user-facing notifications (the SPA's toasts) from services to the
// response that triggered them.
package notice

import (
	"context"
	"sync"
)

// Level classifies a notice for presentation.
type Level string

const (
	LevelSuccess Level = "success"
	LevelError   Level = "error"
	LevelInfo    Level = "info"
)

// Notice is a short human-readable message.
type Notice struct {
	Level   Level  `json:"level"`
	Message string `json:"message"`
}

type collectorKey struct{}

type collector struct {
	mu    sync.Mutex
	items []Notice
}

// WithCollector returns a context that accumulates notices added through Add.
func WithCollector(ctx context.Context) context.Context {
	if _, ok := ctx.Value(collectorKey{}).(*collector); ok {
		return ctx
	}
	return context.WithValue(ctx, collectorKey{}, &collector{})
}

// Add records n on the context collector. It reports false when the context has none.
func Add(ctx context.Context, n Notice) bool {
	col, ok := ctx.Value(collectorKey{}).(*collector)
	if !ok {
		return false
	}
	col.mu.Lock()
	col.items = append(col.items, n)
	col.mu.Unlock()
	return true
}

// FromContext returns a copy of the notices collected so far.
func FromContext(ctx context.Context) []Notice {
	col, ok := ctx.Value(collectorKey{}).(*collector)
	if !ok {
		return nil
	}
	col.mu.Lock()
	defer col.mu.Unlock()
	out := make([]Notice, len(col.items))
	copy(out, col.items)
	return out
}
