package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"portfolio/internal/repository"
)

type MockDocumentStore struct {
	mock.Mock
}

func (m *MockDocumentStore) Query(ctx context.Context, collection string, order repository.OrderBy) ([]repository.Document, error) {
	args := m.Called(ctx, collection, order)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.Document), args.Error(1)
}

func (m *MockDocumentStore) Add(ctx context.Context, collection string, data map[string]any) (string, error) {
	args := m.Called(ctx, collection, data)
	return args.String(0), args.Error(1)
}

func (m *MockDocumentStore) Update(ctx context.Context, collection, id string, fields map[string]any) error {
	args := m.Called(ctx, collection, id, fields)
	return args.Error(0)
}

func (m *MockDocumentStore) Delete(ctx context.Context, collection, id string) error {
	args := m.Called(ctx, collection, id)
	return args.Error(0)
}

func (m *MockDocumentStore) SeedIfEmpty(ctx context.Context, collection string, docs []map[string]any) (bool, error) {
	args := m.Called(ctx, collection, docs)
	return args.Bool(0), args.Error(1)
}

func (m *MockDocumentStore) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
