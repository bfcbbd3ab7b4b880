package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"portfolio/internal/mailer"
)

type MockSender struct {
	mock.Mock
}

func (m *MockSender) Send(ctx context.Context, msg mailer.Message) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}
