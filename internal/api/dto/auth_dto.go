package dto

import (
	"time"

	"github.com/spec-kit/support-desk/internal/domain"
)

// LoginRequest payload.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// AuthResponse carries the issued token.
type AuthResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// SessionResponse describes the active identity.
type SessionResponse struct {
	User      *domain.LoggedInUser `json:"user"`
	IsAdmin   bool                 `json:"is_admin"`
	IsAgent   bool                 `json:"is_agent"`
	LoggedIn  bool                 `json:"logged_in"`
	Assignees []string             `json:"assignees,omitempty"`
}
