package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"portfolio/internal/repository"
)

// DocumentPostgres is a PostgreSQL implementation of repository.DocumentStore.
// Every collection lives in the content_documents table with its fields in a JSONB column.
type DocumentPostgres struct {
	db *sql.DB
}

// NewDocumentPostgres creates a new DocumentPostgres store.
func NewDocumentPostgres(db *sql.DB) *DocumentPostgres {
	return &DocumentPostgres{db: db}
}

var _ repository.DocumentStore = (*DocumentPostgres)(nil)

// Query returns the collection ordered by the text value of a top-level field.
// Rows with equal keys fall back to insertion order.
func (r *DocumentPostgres) Query(ctx context.Context, collection string, order repository.OrderBy) ([]repository.Document, error) {
	dir := "ASC"
	if order.Descending {
		dir = "DESC"
	}
	q := `
		SELECT id, data
		FROM content_documents
		WHERE collection = $1
		ORDER BY data->>$2 ` + dir + `, created_at ASC, id ASC
	`
	rows, err := r.db.QueryContext(ctx, q, collection, order.Field)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	docs := make([]repository.Document, 0)
	for rows.Next() {
		var (
			id  string
			raw []byte
		)
		if err := rows.Scan(&id, &raw); err != nil {
			return nil, err
		}
		data := map[string]any{}
		if err := json.Unmarshal(raw, &data); err != nil {
			return nil, fmt.Errorf("decode document %s: %w", id, err)
		}
		docs = append(docs, repository.Document{ID: id, Data: data})
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return docs, nil
}

// Add inserts a document and returns the id generated by the database.
func (r *DocumentPostgres) Add(ctx context.Context, collection string, data map[string]any) (string, error) {
	const q = `
		INSERT INTO content_documents (collection, data)
		VALUES ($1, $2)
		RETURNING id
	`
	raw, err := json.Marshal(data)
	if err != nil {
		return "", fmt.Errorf("encode document: %w", err)
	}
	var id string
	if err := r.db.QueryRowContext(ctx, q, collection, raw).Scan(&id); err != nil {
		return "", err
	}
	return id, nil
}

// Update merges fields into the stored JSONB object.
func (r *DocumentPostgres) Update(ctx context.Context, collection, id string, fields map[string]any) error {
	const q = `
		UPDATE content_documents
		SET data = data || $3::jsonb
		WHERE collection = $1 AND id = $2
	`
	raw, err := json.Marshal(fields)
	if err != nil {
		return fmt.Errorf("encode fields: %w", err)
	}
	res, err := r.db.ExecContext(ctx, q, collection, id, raw)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// Delete removes a document by ID. It does not return an error if the row does not exist.
func (r *DocumentPostgres) Delete(ctx context.Context, collection, id string) error {
	const q = `DELETE FROM content_documents WHERE collection = $1 AND id = $2`
	_, err := r.db.ExecContext(ctx, q, collection, id)
	return err
}

// SeedIfEmpty inserts docs in one transaction guarded by a per-collection advisory lock,
// so concurrent first readers seed at most once.
func (r *DocumentPostgres) SeedIfEmpty(ctx context.Context, collection string, docs []map[string]any) (bool, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("begin seed: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `SELECT pg_advisory_xact_lock(hashtext($1))`, collection); err != nil {
		return false, fmt.Errorf("lock collection: %w", err)
	}

	var count int
	if err := tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM content_documents WHERE collection = $1`, collection).Scan(&count); err != nil {
		return false, fmt.Errorf("count collection: %w", err)
	}
	if count > 0 {
		return false, nil
	}

	const ins = `INSERT INTO content_documents (collection, data) VALUES ($1, $2)`
	for _, d := range docs {
		raw, err := json.Marshal(d)
		if err != nil {
			return false, fmt.Errorf("encode seed document: %w", err)
		}
		if _, err := tx.ExecContext(ctx, ins, collection, raw); err != nil {
			return false, fmt.Errorf("insert seed document: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("commit seed: %w", err)
	}
	return len(docs) > 0, nil
}

// Ping checks database connectivity.
func (r *DocumentPostgres) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}
