package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/spec-kit/support-desk/internal/domain"
)

// stubSession satisfies session.Provider with a fixed identity.
type stubSession struct {
	user *domain.LoggedInUser
}

func (s *stubSession) CurrentUser() *domain.LoggedInUser {
	return s.user
}

func asAdmin() *stubSession {
	return &stubSession{user: &domain.LoggedInUser{Username: "admin", Role: domain.RoleAdmin}}
}

func asAgent() *stubSession {
	return &stubSession{user: &domain.LoggedInUser{Username: "agent", Role: domain.RoleAgent}}
}

func anonymous() *stubSession {
	return &stubSession{}
}

func TestPaginate(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	assert.Equal(t, []int{1, 2}, paginate(items, 1, 2))
	assert.Equal(t, []int{3, 4}, paginate(items, 2, 2))
	assert.Equal(t, []int{5}, paginate(items, 3, 2))
	assert.Empty(t, paginate(items, 4, 2))
}

func TestPaginateNormalizesArguments(t *testing.T) {
	items := []int{1, 2, 3}

	// Page below one clamps to the first page; non-positive size falls back
	// to the default of ten.
	assert.Equal(t, []int{1, 2, 3}, paginate(items, 0, 10))
	assert.Equal(t, []int{1, 2, 3}, paginate(items, 1, 0))
	assert.Empty(t, paginate([]int{}, 1, 10))
}
