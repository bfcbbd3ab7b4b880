package repository

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Update when the target document does not exist.
var ErrNotFound = errors.New("document not found")

// Document is one stored record: the store-assigned ID plus its fields.
// Data never carries the id; it is attached by the caller on read.
type Document struct {
	ID   string
	Data map[string]any
}

// OrderBy sorts a collection query by a single top-level field.
type OrderBy struct {
	Field      string
	Descending bool
}

// DocumentStore is a collection-scoped document database.
// Implementations are atomic per document and impose no cross-document transactions,
// except SeedIfEmpty which must insert all-or-nothing and only into an empty collection.
type DocumentStore interface {
	// Query returns every document of the collection ordered by the given field.
	Query(ctx context.Context, collection string, order OrderBy) ([]Document, error)

	// Add inserts a new document and returns its generated ID.
	Add(ctx context.Context, collection string, data map[string]any) (string, error)

	// Update merges fields into an existing document. Returns ErrNotFound if the id is absent.
	Update(ctx context.Context, collection, id string, fields map[string]any) error

	// Delete removes a document by ID. It returns nil if the document did not exist.
	Delete(ctx context.Context, collection, id string) error

	// SeedIfEmpty inserts docs only when the collection holds no documents.
	// Reports whether anything was inserted.
	SeedIfEmpty(ctx context.Context, collection string, docs []map[string]any) (bool, error)

	// Ping checks connectivity to the backing store.
	Ping(ctx context.Context) error
}
