package util

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToDomainErrorPassesThrough(t *testing.T) {
	orig := NewNotFound("ticket", map[string]any{"id": "TKT-999"})

	mapped := ToDomainError(orig)
	require.NotNil(t, mapped)
	assert.Equal(t, "NOT_FOUND", mapped.Code)
	assert.Equal(t, http.StatusNotFound, mapped.HTTPStatus)
	assert.Equal(t, "TKT-999", mapped.Details["id"])
}

func TestToDomainErrorWrapsUnknown(t *testing.T) {
	mapped := ToDomainError(errors.New("disk on fire"))
	require.NotNil(t, mapped)
	assert.Equal(t, "INTERNAL_ERROR", mapped.Code)
	assert.Equal(t, http.StatusInternalServerError, mapped.HTTPStatus)
	assert.ErrorContains(t, mapped, "disk on fire")
}

func TestToDomainErrorNil(t *testing.T) {
	assert.Nil(t, ToDomainError(nil))
}

func TestToDomainErrorUnwrapsWrappedChain(t *testing.T) {
	inner := NewForbidden("no")
	wrapped := fmt.Errorf("while deleting: %w", inner)

	mapped := ToDomainError(wrapped)
	assert.Equal(t, "FORBIDDEN", mapped.Code)
}

func TestIsCode(t *testing.T) {
	err := NewInvalidCredentials("invalid username or password")
	assert.True(t, IsCode(err, "INVALID_CREDENTIALS"))
	assert.False(t, IsCode(err, "NOT_FOUND"))
	assert.False(t, IsCode(nil, "NOT_FOUND"))
	assert.False(t, IsCode(errors.New("plain"), "NOT_FOUND"))
}

func TestErrorStatusMapping(t *testing.T) {
	cases := []struct {
		err    error
		code   string
		status int
	}{
		{NewValidationError("bad", nil), "VALIDATION_FAILED", http.StatusBadRequest},
		{NewUnauthenticated("who"), "UNAUTHENTICATED", http.StatusUnauthorized},
		{NewInvalidCredentials("no"), "INVALID_CREDENTIALS", http.StatusUnauthorized},
		{NewForbidden("stop"), "FORBIDDEN", http.StatusForbidden},
		{NewSimulatedFault("boom", http.StatusConflict), "SIMULATED_FAULT", http.StatusConflict},
		{NewInternalError(errors.New("x")), "INTERNAL_ERROR", http.StatusInternalServerError},
	}
	for _, tc := range cases {
		mapped := ToDomainError(tc.err)
		assert.Equal(t, tc.code, mapped.Code)
		assert.Equal(t, tc.status, mapped.HTTPStatus)
	}
}
