package auth

import (
	"fmt"
	"strings"
)

// AccountType identifies how the user signed in.
type AccountType string

const (
	AccountGoogle AccountType = "google"
	AccountPro    AccountType = "pro"
	AccountEmail  AccountType = "email"
)

// Valid reports whether t belongs to the known set.
func (t AccountType) Valid() bool {
	switch t {
	case AccountGoogle, AccountPro, AccountEmail:
		return true
	default:
		return false
	}
}

// ParseAccountType normalizes s and checks it against the known set.
// An empty string maps to AccountPro.
func ParseAccountType(s string) (AccountType, error) {
	trimmed := strings.ToLower(strings.TrimSpace(s))
	if trimmed == "" {
		return AccountPro, nil
	}
	t := AccountType(trimmed)
	if !t.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidAccountType, s)
	}
	return t, nil
}

// Session is the signed-in user's identity snapshot.
type Session struct {
	Name   Optional[string]
	Avatar Optional[string]
	Type   AccountType
}

// NewSession builds a session from raw fields; empty strings become absent.
func NewSession(name, avatar string, accountType AccountType) Session {
	return Session{
		Name:   OptionalString(name),
		Avatar: OptionalString(avatar),
		Type:   accountType,
	}
}
