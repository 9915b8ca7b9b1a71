package audit_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmadeiros/stmartinsapp-sub001/internal/domain"
	"github.com/jmadeiros/stmartinsapp-sub001/internal/mocks"
	"github.com/jmadeiros/stmartinsapp-sub001/internal/service/audit"
)

func TestAuditService_GetRecentActivities(t *testing.T) {
	ctx := context.Background()

	t.Run("clamps oversized limit", func(t *testing.T) {
		repo := new(mocks.AuditLogRepository)
		svc := audit.NewService(repo)
		logs := []domain.AuditLog{{ID: uuid.New(), Action: domain.AuditPinPost}}

		repo.On("List", ctx, domain.PaginationParams{Page: 1, PageSize: 100}).Return(logs, int64(1), nil)

		got, err := svc.GetRecentActivities(ctx, 500)

		require.NoError(t, err)
		assert.Equal(t, logs, got)
		repo.AssertExpectations(t)
	})

	t.Run("zero limit falls back to default", func(t *testing.T) {
		repo := new(mocks.AuditLogRepository)
		svc := audit.NewService(repo)

		repo.On("List", ctx, domain.PaginationParams{Page: 1, PageSize: 20}).Return([]domain.AuditLog{}, int64(0), nil)

		got, err := svc.GetRecentActivities(ctx, 0)

		require.NoError(t, err)
		assert.Empty(t, got)
	})
}

func TestAuditService_ListByEntity(t *testing.T) {
	ctx := context.Background()
	entityID := uuid.New()

	t.Run("paginates", func(t *testing.T) {
		repo := new(mocks.AuditLogRepository)
		svc := audit.NewService(repo)
		logs := []domain.AuditLog{{ID: uuid.New()}, {ID: uuid.New()}}

		repo.On("ListByEntity", ctx, "post", entityID, domain.PaginationParams{Page: 2, PageSize: 2}).Return(logs, int64(5), nil)

		got, err := svc.ListByEntity(ctx, "post", entityID, domain.PaginationParams{Page: 2, PageSize: 2})

		require.NoError(t, err)
		assert.Len(t, got.Data, 2)
		assert.Equal(t, 3, got.TotalPages)
		assert.True(t, got.HasNext)
		assert.True(t, got.HasPrev)
	})

	t.Run("storage error", func(t *testing.T) {
		repo := new(mocks.AuditLogRepository)
		svc := audit.NewService(repo)
		boom := errors.New("boom")

		repo.On("ListByEntity", ctx, "post", entityID, domain.PaginationParams{Page: 1, PageSize: 20}).Return([]domain.AuditLog(nil), int64(0), boom)

		_, err := svc.ListByEntity(ctx, "post", entityID, domain.PaginationParams{})

		assert.ErrorIs(t, err, boom)
	})
}
