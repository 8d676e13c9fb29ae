package auth

import (
	"errors"
	"fmt"
	"sync"
)

// ErrInvalidAccountType is returned for account types outside the known set.
var ErrInvalidAccountType = errors.New("invalid account type")

// LogoutHook runs after a session has been cleared.
type LogoutHook func(Session) error

// Store holds the current session. The zero value has no session and is ready to use.
type Store struct {
	mu       sync.RWMutex
	session  Session
	present  bool
	onLogout LogoutHook
}

// Current returns a copy of the session and whether one exists.
func (s *Store) Current() (Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.session, s.present
}

// SignIn replaces the current session.
func (s *Store) SignIn(session Session) error {
	if !session.Type.Valid() {
		return fmt.Errorf("sign in: %w: %q", ErrInvalidAccountType, session.Type)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session = session
	s.present = true
	return nil
}

// SetLogoutHook installs fn to run after each logout.
func (s *Store) SetLogoutHook(fn LogoutHook) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onLogout = fn
}

// Logout clears the session. The session is gone even when the hook fails;
// the hook's error is returned to the caller.
func (s *Store) Logout() error {
	s.mu.Lock()
	prev, present := s.session, s.present
	hook := s.onLogout
	s.session = Session{}
	s.present = false
	s.mu.Unlock()

	if !present || hook == nil {
		return nil
	}
	if err := hook(prev); err != nil {
		return fmt.Errorf("logout: %w", err)
	}
	return nil
}
