package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/support-desk/internal/domain"
	apperrors "github.com/spec-kit/support-desk/pkg/util/errorutil"
)

func TestAuthLoginResolvesIdentity(t *testing.T) {
	f := newFixture(t)

	user, err := await(t, f.auth.Login("admin", "admin123"))
	require.NoError(t, err)
	assert.Equal(t, "admin", user.Username)
	assert.Equal(t, domain.RoleAdmin, user.Role)

	// Verification alone does not start a session.
	assert.Nil(t, f.auth.CurrentUser())

	f.auth.SetCurrentUser(user)
	current := f.auth.CurrentUser()
	require.NotNil(t, current)
	assert.Equal(t, "admin", current.Username)
}

func TestAuthLoginRejectsBadCredentials(t *testing.T) {
	f := newFixture(t)

	_, err := await(t, f.auth.Login("admin", "wrong"))
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, "INVALID_CREDENTIALS"))
	assert.Nil(t, f.auth.CurrentUser())
}

func TestAuthLogout(t *testing.T) {
	f := newFixture(t)
	f.loginAs(t, "agent")
	require.NotNil(t, f.auth.CurrentUser())

	f.auth.Logout()
	assert.Nil(t, f.auth.CurrentUser())
}

func TestAuthAssignees(t *testing.T) {
	f := newFixture(t)
	assert.Equal(t, []string{"admin", "agent"}, f.auth.AvailableAssignees())
}

func TestAuthTokenRoundTrip(t *testing.T) {
	f := newFixture(t)

	user := domain.LoggedInUser{Username: "agent", Role: domain.RoleAgent}
	token, expiresAt, err := f.auth.TokenManager().GenerateToken(user)
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.False(t, expiresAt.IsZero())

	claims, err := f.auth.TokenManager().ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "agent", claims.Username)
	assert.Equal(t, domain.RoleAgent, claims.Role)
}

func TestAuthTokenRejectsGarbage(t *testing.T) {
	f := newFixture(t)

	_, err := f.auth.TokenManager().ParseToken("not-a-token")
	assert.Error(t, err)
}
