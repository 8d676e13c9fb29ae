package auth

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_ZeroValueHasNoSession(t *testing.T) {
	var s Store

	_, ok := s.Current()
	assert.False(t, ok)
}

func TestStore_SignInAndCurrent(t *testing.T) {
	var s Store

	require.NoError(t, s.SignIn(NewSession("Ada", "", AccountGoogle)))

	got, ok := s.Current()
	require.True(t, ok)
	name, present := got.Name.Get()
	assert.True(t, present)
	assert.Equal(t, "Ada", name)
	assert.False(t, got.Avatar.Present())
	assert.Equal(t, AccountGoogle, got.Type)
}

func TestStore_SignInRejectsUnknownAccountType(t *testing.T) {
	var s Store

	err := s.SignIn(NewSession("Ada", "", AccountType("github")))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidAccountType)

	_, ok := s.Current()
	assert.False(t, ok)
}

func TestStore_LogoutClearsSessionAndRunsHook(t *testing.T) {
	var s Store
	var seen []Session
	s.SetLogoutHook(func(prev Session) error {
		seen = append(seen, prev)
		return nil
	})
	require.NoError(t, s.SignIn(NewSession("Ada", "", AccountPro)))

	require.NoError(t, s.Logout())

	_, ok := s.Current()
	assert.False(t, ok)
	require.Len(t, seen, 1)
	assert.Equal(t, "Ada", seen[0].Name.OrElse(""))
}

func TestStore_LogoutHookErrorStillClearsSession(t *testing.T) {
	var s Store
	s.SetLogoutHook(func(Session) error { return errors.New("revoke failed") })
	require.NoError(t, s.SignIn(NewSession("Ada", "", AccountPro)))

	err := s.Logout()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "revoke failed")

	_, ok := s.Current()
	assert.False(t, ok)
}

func TestStore_LogoutWithoutSessionSkipsHook(t *testing.T) {
	var s Store
	calls := 0
	s.SetLogoutHook(func(Session) error {
		calls++
		return nil
	})

	require.NoError(t, s.Logout())
	assert.Zero(t, calls)
}

func TestStore_ConcurrentAccess(t *testing.T) {
	var s Store
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_ = s.SignIn(NewSession("Ada", "", AccountGoogle))
		}()
		go func() {
			defer wg.Done()
			_, _ = s.Current()
		}()
	}
	wg.Wait()

	_, ok := s.Current()
	assert.True(t, ok)
}

func TestParseAccountType(t *testing.T) {
	cases := []struct {
		in      string
		want    AccountType
		wantErr bool
	}{
		{"google", AccountGoogle, false},
		{" Google ", AccountGoogle, false},
		{"pro", AccountPro, false},
		{"email", AccountEmail, false},
		{"", AccountPro, false},
		{"github", "", true},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseAccountType(tc.in)
			if tc.wantErr {
				assert.ErrorIs(t, err, ErrInvalidAccountType)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestOptionalString(t *testing.T) {
	assert.False(t, OptionalString("").Present())
	assert.Equal(t, "Guest", OptionalString("").OrElse("Guest"))

	v, ok := OptionalString("ada").Get()
	assert.True(t, ok)
	assert.Equal(t, "ada", v)

	assert.False(t, None[int]().Present())
	assert.Equal(t, 3, Some(3).OrElse(7))
}
