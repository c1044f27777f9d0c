package service

import (
	"github.com/spec-kit/support-desk/internal/auth"
	"github.com/spec-kit/support-desk/internal/config"
	"github.com/spec-kit/support-desk/internal/domain"
	"github.com/spec-kit/support-desk/internal/session"
	"github.com/spec-kit/support-desk/internal/simulate"
)

// AuthService exposes login and session queries behind the simulated delay.
type AuthService struct {
	sessions *session.Session
	tokens   *auth.TokenManager
	latency  *simulate.Latency
}

// NewAuthService constructs the service.
func NewAuthService(cfg config.AuthConfig, sessions *session.Session, latency *simulate.Latency) *AuthService {
	return &AuthService{
		sessions: sessions,
		tokens:   auth.NewTokenManager(cfg.JWTSecret, cfg.AccessTokenTTLMinutes),
		latency:  latency,
	}
}

// TokenManager exposes the JWT manager for the HTTP middleware.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokens
}

// Login verifies credentials. The session itself is untouched; callers
// commit the returned identity with SetCurrentUser.
func (s *AuthService) Login(username, password string) *simulate.Completion[domain.LoggedInUser] {
	user, err := s.sessions.Login(username, password)
	if err != nil {
		return simulate.Reject[domain.LoggedInUser](s.latency, err)
	}
	return simulate.Resolve(s.latency, user)
}

// SetCurrentUser commits an identity to the session, last write wins.
func (s *AuthService) SetCurrentUser(user domain.LoggedInUser) {
	s.sessions.SetCurrentUser(user)
}

// Logout clears the session immediately.
func (s *AuthService) Logout() {
	s.sessions.Logout()
}

// CurrentUser returns the active identity, or nil.
func (s *AuthService) CurrentUser() *domain.LoggedInUser {
	return s.sessions.CurrentUser()
}

// AvailableAssignees lists seed usernames for assignee pickers.
func (s *AuthService) AvailableAssignees() []string {
	return s.sessions.AvailableAssignees()
}
