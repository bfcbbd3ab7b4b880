package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/google/uuid"

	"portfolio/internal/repository"
)

type record struct {
	id   string
	seq  uint64
	data map[string]any
}

// DocumentMemory is an in-process repository.DocumentStore.
// It backs STORE_DRIVER=memory and stands in for Postgres in tests.
// It is safe for concurrent use by multiple goroutines.
type DocumentMemory struct {
	mu          sync.Mutex
	seq         uint64
	collections map[string][]*record
}

// NewDocumentMemory creates an empty store.
func NewDocumentMemory() *DocumentMemory {
	return &DocumentMemory{collections: map[string][]*record{}}
}

var _ repository.DocumentStore = (*DocumentMemory)(nil)

// Query returns copies of the collection's documents ordered by the string form of the field,
// ties broken by insertion order. Missing fields sort as the empty string.
func (m *DocumentMemory) Query(ctx context.Context, collection string, order repository.OrderBy) ([]repository.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.Lock()
	recs := make([]*record, 0, len(m.collections[collection]))
	for _, r := range m.collections[collection] {
		recs = append(recs, &record{id: r.id, seq: r.seq, data: copyMap(r.data)})
	}
	m.mu.Unlock()

	key := func(r *record) string {
		v, ok := r.data[order.Field]
		if !ok || v == nil {
			return ""
		}
		return fmt.Sprint(v)
	}
	sort.SliceStable(recs, func(i, j int) bool {
		ki, kj := key(recs[i]), key(recs[j])
		if ki == kj {
			return recs[i].seq < recs[j].seq
		}
		if order.Descending {
			return ki > kj
		}
		return ki < kj
	})

	docs := make([]repository.Document, 0, len(recs))
	for _, r := range recs {
		docs = append(docs, repository.Document{ID: r.id, Data: r.data})
	}
	return docs, nil
}

// Add stores a copy of data under a new UUID.
func (m *DocumentMemory) Add(ctx context.Context, collection string, data map[string]any) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.insert(collection, data), nil
}

// Update merges fields into the document, overwriting top-level keys.
func (m *DocumentMemory) Update(ctx context.Context, collection, id string, fields map[string]any) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, r := range m.collections[collection] {
		if r.id == id {
			for k, v := range copyMap(fields) {
				r.data[k] = v
			}
			return nil
		}
	}
	return repository.ErrNotFound
}

// Delete removes the document if present.
func (m *DocumentMemory) Delete(ctx context.Context, collection, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	recs := m.collections[collection]
	for i, r := range recs {
		if r.id == id {
			m.collections[collection] = append(recs[:i:i], recs[i+1:]...)
			return nil
		}
	}
	return nil
}

// SeedIfEmpty inserts docs under the store lock when the collection is empty.
func (m *DocumentMemory) SeedIfEmpty(ctx context.Context, collection string, docs []map[string]any) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.collections[collection]) > 0 {
		return false, nil
	}
	for _, d := range docs {
		m.insert(collection, d)
	}
	return len(docs) > 0, nil
}

// Ping always succeeds.
func (m *DocumentMemory) Ping(ctx context.Context) error {
	return ctx.Err()
}

// insert requires m.mu held.
func (m *DocumentMemory) insert(collection string, data map[string]any) string {
	m.seq++
	id := uuid.NewString()
	m.collections[collection] = append(m.collections[collection], &record{id: id, seq: m.seq, data: copyMap(data)})
	return id
}

func copyMap(in map[string]any) map[string]any {
	out := make(map[string]any, len(in))
	for k, v := range in {
		if s, ok := v.([]any); ok {
			v = append([]any(nil), s...)
		}
		out[k] = v
	}
	return out
}
