// Package session tracks which identity, if any, is authenticated for the
// current interactive client. The session is an explicit value handed to the
// presentation layer, not process-global state, and is never persisted.
package session

import (
	"github.com/google/uuid"

	"securepay/internal/models"
)

// Session is the two-state machine of one interactive client:
// Anonymous, or Authenticated with a user snapshot.
type Session struct {
	id   string
	user *models.User
}

// New returns an anonymous session with a fresh correlation id.
func New() *Session {
	return &Session{id: uuid.NewString()}
}

// ID returns the session correlation id, attached to log records.
func (s *Session) ID() string {
	return s.id
}

// Login moves the session to Authenticated. If a user is already logged in,
// the call is a no-op and returns false; callers surface an informational
// message instead of switching identities.
func (s *Session) Login(user *models.User) bool {
	if s.user != nil {
		return false
	}
	s.user = user
	return true
}

// Logout clears the authenticated identity. Safe to call when anonymous.
func (s *Session) Logout() {
	s.user = nil
}

// User returns the authenticated user snapshot, or false when anonymous.
func (s *Session) User() (*models.User, bool) {
	if s.user == nil {
		return nil, false
	}
	return s.user, true
}

// IsAuthenticated reports whether an identity is currently logged in.
func (s *Session) IsAuthenticated() bool {
	return s.user != nil
}
