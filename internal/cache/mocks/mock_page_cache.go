package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type MockPageCache struct {
	mock.Mock
}

func (m *MockPageCache) Get(ctx context.Context, path string) ([]byte, bool, error) {
	args := m.Called(ctx, path)
	var b []byte
	if v := args.Get(0); v != nil {
		b = v.([]byte)
	}
	return b, args.Bool(1), args.Error(2)
}

func (m *MockPageCache) Set(ctx context.Context, path string, body []byte) error {
	args := m.Called(ctx, path, body)
	return args.Error(0)
}

func (m *MockPageCache) Invalidate(ctx context.Context, paths ...string) error {
	args := m.Called(ctx, paths)
	return args.Error(0)
}
