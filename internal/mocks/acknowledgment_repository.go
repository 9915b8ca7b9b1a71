package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/jmadeiros/stmartinsapp-sub001/internal/domain"
)

type AcknowledgmentRepository struct {
	mock.Mock
}

func (m *AcknowledgmentRepository) Create(ctx context.Context, ack *domain.Acknowledgment) error {
	args := m.Called(ctx, ack)
	return args.Error(0)
}

func (m *AcknowledgmentRepository) Exists(ctx context.Context, postID, userID uuid.UUID) (bool, error) {
	args := m.Called(ctx, postID, userID)
	return args.Bool(0), args.Error(1)
}

func (m *AcknowledgmentRepository) ListAcknowledgers(ctx context.Context, postID uuid.UUID) ([]domain.Acknowledger, error) {
	args := m.Called(ctx, postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Acknowledger), args.Error(1)
}
