package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"portfolio/internal/storage"
)

type MockImageHost struct {
	mock.Mock
}

func (m *MockImageHost) Upload(ctx context.Context, folder string, img storage.Image) (storage.Uploaded, error) {
	args := m.Called(ctx, folder, img)
	return args.Get(0).(storage.Uploaded), args.Error(1)
}

func (m *MockImageHost) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}
