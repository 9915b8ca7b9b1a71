package domain_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jmadeiros/stmartinsapp-sub001/internal/domain"
)

func TestPaginationParams_Validate(t *testing.T) {
	tests := []struct {
		name string
		in   domain.PaginationParams
		want domain.PaginationParams
	}{
		{"zero values", domain.PaginationParams{}, domain.PaginationParams{Page: 1, PageSize: domain.DefaultPageSize}},
		{"oversized page", domain.PaginationParams{Page: 3, PageSize: 500}, domain.PaginationParams{Page: 3, PageSize: domain.MaxPageSize}},
		{"in range", domain.PaginationParams{Page: 2, PageSize: 10}, domain.PaginationParams{Page: 2, PageSize: 10}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := tt.in
			p.Validate()
			assert.Equal(t, tt.want, p)
		})
	}
}

func TestNewPaginatedResponse(t *testing.T) {
	resp := domain.NewPaginatedResponse[int](nil, 1, 20, 0)
	assert.Equal(t, []int{}, resp.Data)
	assert.Equal(t, 0, resp.TotalPages)
	assert.False(t, resp.HasNext)

	resp = domain.NewPaginatedResponse([]int{1, 2}, 2, 2, 5)
	assert.Equal(t, 3, resp.TotalPages)
	assert.True(t, resp.HasNext)
	assert.True(t, resp.HasPrev)
}

func TestProfile_HasRole(t *testing.T) {
	admin := &domain.Profile{Role: string(domain.RoleAdmin)}
	member := &domain.Profile{Role: string(domain.RoleMember)}

	assert.True(t, admin.HasRole(domain.RoleAdmin))
	assert.True(t, admin.HasRole(domain.RoleMember))
	assert.True(t, member.HasRole(domain.RoleMember))
	assert.False(t, member.HasRole(domain.RoleAdmin))
	assert.False(t, (&domain.Profile{Role: "guest"}).HasRole(domain.RoleMember))

	var nobody *domain.Profile
	assert.False(t, nobody.IsAdmin())
}

func TestEnrichment(t *testing.T) {
	var e domain.Enrichment
	e.Fail("notify", nil)
	assert.False(t, e.Degraded())

	e.Fail("notify", errors.New("mailer down"))
	assert.True(t, e.Degraded())
	assert.Equal(t, []domain.SideEffectFailure{{Step: "notify", Error: "mailer down"}}, e.Failures)
}
