package mocks

import (
	"context"

	"menu-manager/core/entity"

	"github.com/stretchr/testify/mock"
)

// Channel is a mock implementation of entity.Channel
type Channel struct {
	mock.Mock
}

func (m *Channel) RequestMany(ctx context.Context, typ entity.Type, op entity.Operation, items []entity.Item) error {
	args := m.Called(ctx, typ, op, items)
	return args.Error(0)
}
