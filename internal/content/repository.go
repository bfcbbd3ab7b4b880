package content

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"portfolio/internal/cache"
	"portfolio/internal/model"
	"portfolio/internal/repository"
)

// Descriptor fixes everything that differs between content kinds.
type Descriptor[T any] struct {
	Kind       model.Kind
	Collection string
	Order      repository.OrderBy
	// Seed is written into the collection the first time it is found empty.
	Seed []T
	// Pages are the rendered paths that display this kind.
	Pages []string
}

// Deps are the collaborators shared by every content repository.
type Deps struct {
	Store       repository.DocumentStore
	Invalidator cache.Invalidator
	Logger      *zap.Logger
	// SeedOnRead enables populating an empty collection from List.
	SeedOnRead bool
}

// Repository mediates all reads and writes to one content collection.
type Repository[T any] struct {
	store      repository.DocumentStore
	inv        cache.Invalidator
	log        *zap.Logger
	seedOnRead bool
	desc       Descriptor[T]
}

// NewRepository builds a repository for one content kind.
func NewRepository[T any](deps Deps, desc Descriptor[T]) *Repository[T] {
	inv := deps.Invalidator
	if inv == nil {
		inv = cache.Noop{}
	}
	log := deps.Logger
	if log == nil {
		log = zap.NewNop()
	}
	return &Repository[T]{
		store:      deps.Store,
		inv:        inv,
		log:        log.With(zap.String("kind", string(desc.Kind)), zap.String("collection", desc.Collection)),
		seedOnRead: deps.SeedOnRead,
		desc:       desc,
	}
}

// Kind reports which content kind this repository serves.
func (r *Repository[T]) Kind() model.Kind {
	return r.desc.Kind
}

// List returns the collection in its fixed order. Store failures are logged and yield an empty slice,
// so pages degrade to "no content" instead of failing.
func (r *Repository[T]) List(ctx context.Context) []T {
	items, err := r.list(ctx)
	if err != nil {
		r.log.Error("list content failed", zap.Error(err))
		return []T{}
	}
	return items
}

func (r *Repository[T]) list(ctx context.Context) ([]T, error) {
	docs, err := r.store.Query(ctx, r.desc.Collection, r.desc.Order)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}

	if len(docs) == 0 && r.seedOnRead && len(r.desc.Seed) > 0 {
		if _, err := r.Seed(ctx); err != nil {
			return nil, err
		}
		// Re-read even when another request won the seed race.
		docs, err = r.store.Query(ctx, r.desc.Collection, r.desc.Order)
		if err != nil {
			return nil, fmt.Errorf("query after seed: %w", err)
		}
	}

	items := make([]T, 0, len(docs))
	for _, d := range docs {
		item, err := decode[T](d)
		if err != nil {
			r.log.Warn("skipping undecodable document", zap.String("id", d.ID), zap.Error(err))
			continue
		}
		items = append(items, item)
	}
	return items, nil
}

// Seed writes the demonstration set into the collection if it is empty.
// It reports whether this call inserted anything.
func (r *Repository[T]) Seed(ctx context.Context) (bool, error) {
	docs := make([]map[string]any, 0, len(r.desc.Seed))
	for _, e := range r.desc.Seed {
		fields, err := EncodeFields(e)
		if err != nil {
			return false, err
		}
		docs = append(docs, fields)
	}

	seeded, err := r.store.SeedIfEmpty(ctx, r.desc.Collection, docs)
	if err != nil {
		return false, fmt.Errorf("seed: %w", err)
	}
	if seeded {
		seededTotal.WithLabelValues(string(r.desc.Kind)).Inc()
		r.log.Info("seeded empty collection", zap.Int("documents", len(docs)))
		r.invalidate(ctx)
	}
	return seeded, nil
}

// Add inserts a new entity. Any id set on e is ignored; the store assigns one.
func (r *Repository[T]) Add(ctx context.Context, e T) (string, error) {
	fields, err := EncodeFields(e)
	if err != nil {
		return "", err
	}
	id, err := r.store.Add(ctx, r.desc.Collection, fields)
	if err != nil {
		return "", fmt.Errorf("add %s: %w", r.desc.Kind, err)
	}
	r.invalidate(ctx)
	return id, nil
}

// Update merges fields into the entity with the given id.
// It returns an error wrapping repository.ErrNotFound when the id does not exist.
func (r *Repository[T]) Update(ctx context.Context, id string, fields map[string]any) error {
	patch := make(map[string]any, len(fields))
	for k, v := range fields {
		if k == "id" {
			continue
		}
		patch[k] = v
	}
	if err := r.store.Update(ctx, r.desc.Collection, id, patch); err != nil {
		return fmt.Errorf("update %s %s: %w", r.desc.Kind, id, err)
	}
	r.invalidate(ctx)
	return nil
}

// Remove deletes the entity. Removing an unknown id is not an error.
func (r *Repository[T]) Remove(ctx context.Context, id string) error {
	if err := r.store.Delete(ctx, r.desc.Collection, id); err != nil {
		return fmt.Errorf("remove %s %s: %w", r.desc.Kind, id, err)
	}
	r.invalidate(ctx)
	return nil
}

func (r *Repository[T]) invalidate(ctx context.Context) {
	if err := r.inv.Invalidate(ctx, r.desc.Pages...); err != nil {
		r.log.Warn("page cache invalidation failed", zap.Strings("pages", r.desc.Pages), zap.Error(err))
	}
}

// EncodeFields converts an entity into stored fields, dropping its id.
func EncodeFields[T any](e T) (map[string]any, error) {
	b, err := json.Marshal(e)
	if err != nil {
		return nil, fmt.Errorf("encode entity: %w", err)
	}
	fields := map[string]any{}
	if err := json.Unmarshal(b, &fields); err != nil {
		return nil, fmt.Errorf("encode entity: %w", err)
	}
	delete(fields, "id")
	return fields, nil
}

func decode[T any](d repository.Document) (T, error) {
	var out T
	fields := make(map[string]any, len(d.Data)+1)
	for k, v := range d.Data {
		fields[k] = v
	}
	fields["id"] = d.ID

	b, err := json.Marshal(fields)
	if err != nil {
		return out, err
	}
	if err := json.Unmarshal(b, &out); err != nil {
		return out, err
	}
	return out, nil
}
