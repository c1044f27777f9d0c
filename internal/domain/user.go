package domain

// UserRole enumerates the two desk roles.
type UserRole string

const (
	RoleAdmin UserRole = "admin"
	RoleAgent UserRole = "agent"
)

// User is a seed account. Passwords are plaintext demo credentials; the
// session layer hashes them before any comparison happens.
type User struct {
	Username string
	Password string
	Role     UserRole
}

// LoggedInUser is the identity held by a session after a successful login.
type LoggedInUser struct {
	Username string   `json:"username"`
	Role     UserRole `json:"role"`
}

// IsAdmin reports whether the identity carries the admin role.
func (u LoggedInUser) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// IsAgent reports whether the identity carries the agent role.
func (u LoggedInUser) IsAgent() bool {
	return u.Role == RoleAgent
}
