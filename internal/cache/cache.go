package cache

import "context"

// Invalidator drops cached renders for the given page paths.
type Invalidator interface {
	Invalidate(ctx context.Context, paths ...string) error
}

// PageCache stores rendered pages keyed by request path.
type PageCache interface {
	Invalidator
	// Get returns the cached body and whether it was present.
	Get(ctx context.Context, path string) ([]byte, bool, error)
	Set(ctx context.Context, path string, body []byte) error
}

// Noop is a PageCache that never stores anything.
type Noop struct{}

var _ PageCache = Noop{}

func (Noop) Get(context.Context, string) ([]byte, bool, error) { return nil, false, nil }
func (Noop) Set(context.Context, string, []byte) error         { return nil }
func (Noop) Invalidate(context.Context, ...string) error       { return nil }
