// Package session holds the active desk identity. The simulated backend
// serves a single client, so one identity exists at a time; writes follow
// last-write-wins semantics and there is no expiry.
package session

import (
	"sync"

	"golang.org/x/crypto/bcrypt"

	"github.com/spec-kit/support-desk/internal/domain"
	apperrors "github.com/spec-kit/support-desk/pkg/util/errorutil"
)

// Listener is notified whenever the active identity changes. A nil user
// means the session was cleared. Replaces the reactive subject the desk
// client used; consumers that only need the current value call CurrentUser.
type Listener func(user *domain.LoggedInUser)

// Provider is the read surface services consult for role checks.
type Provider interface {
	CurrentUser() *domain.LoggedInUser
}

type seedAccount struct {
	username     string
	passwordHash []byte
	role         domain.UserRole
}

// Session verifies credentials against the seed accounts and tracks the
// active identity.
type Session struct {
	accounts []seedAccount

	mu        sync.RWMutex
	current   *domain.LoggedInUser
	listeners []Listener
}

// New hashes the seed passwords once and starts with no identity.
func New(users []domain.User, bcryptCost int) (*Session, error) {
	if bcryptCost < bcrypt.MinCost {
		bcryptCost = bcrypt.MinCost
	}
	accounts := make([]seedAccount, 0, len(users))
	for _, u := range users {
		hash, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcryptCost)
		if err != nil {
			return nil, err
		}
		accounts = append(accounts, seedAccount{
			username:     u.Username,
			passwordHash: hash,
			role:         u.Role,
		})
	}
	return &Session{accounts: accounts}, nil
}

// Login checks the credentials against the seed accounts. It does not touch
// the session state; callers commit the identity with SetCurrentUser.
func (s *Session) Login(username, password string) (domain.LoggedInUser, error) {
	for _, acct := range s.accounts {
		if acct.username != username {
			continue
		}
		if bcrypt.CompareHashAndPassword(acct.passwordHash, []byte(password)) == nil {
			return domain.LoggedInUser{Username: acct.username, Role: acct.role}, nil
		}
		break
	}
	return domain.LoggedInUser{}, apperrors.NewInvalidCredentials("invalid username or password")
}

// SetCurrentUser replaces the active identity.
func (s *Session) SetCurrentUser(user domain.LoggedInUser) {
	s.mu.Lock()
	s.current = &user
	listeners := append([]Listener(nil), s.listeners...)
	s.mu.Unlock()
	for _, l := range listeners {
		l(&user)
	}
}

// Logout clears the session.
func (s *Session) Logout() {
	s.mu.Lock()
	s.current = nil
	listeners := append([]Listener(nil), s.listeners...)
	s.mu.Unlock()
	for _, l := range listeners {
		l(nil)
	}
}

// CurrentUser returns a copy of the active identity, or nil.
func (s *Session) CurrentUser() *domain.LoggedInUser {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return nil
	}
	user := *s.current
	return &user
}

// IsLoggedIn reports whether an identity is active.
func (s *Session) IsLoggedIn() bool {
	return s.CurrentUser() != nil
}

// IsAdmin reports whether the active identity is an admin.
func (s *Session) IsAdmin() bool {
	user := s.CurrentUser()
	return user != nil && user.IsAdmin()
}

// IsAgent reports whether the active identity is an agent.
func (s *Session) IsAgent() bool {
	user := s.CurrentUser()
	return user != nil && user.IsAgent()
}

// AvailableAssignees lists every seed username in seed order, independent of
// the active session.
func (s *Session) AvailableAssignees() []string {
	names := make([]string, 0, len(s.accounts))
	for _, acct := range s.accounts {
		names = append(names, acct.username)
	}
	return names
}

// Subscribe registers a listener for identity changes.
func (s *Session) Subscribe(l Listener) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, l)
}
