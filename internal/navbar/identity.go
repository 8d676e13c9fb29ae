package navbar

import (
	"unicode/utf8"

	"github.com/five82/visionchat/internal/auth"
)

const (
	avatarGlyph        = "◉"
	placeholderInitial = "G"
	guestName          = "Guest"
	googleLabel        = "Google User"
	memberLabel        = "Pro Member"
)

// Identity is what the identity affordance shows for a session.
type Identity struct {
	Avatar  auth.Optional[string]
	Initial string
	Name    string
	Label   string
}

// IdentityOf applies the fallback rules: first rune of the name (case kept)
// or "G", the name or "Guest", and a label from the account type.
func IdentityOf(s auth.Session) Identity {
	id := Identity{
		Avatar:  s.Avatar,
		Initial: placeholderInitial,
		Name:    s.Name.OrElse(guestName),
		Label:   memberLabel,
	}
	if name, ok := s.Name.Get(); ok {
		if r, size := utf8.DecodeRuneInString(name); size > 0 && r != utf8.RuneError {
			id.Initial = string(r)
		}
	}
	if s.Type == auth.AccountGoogle {
		id.Label = googleLabel
	}
	return id
}

// ShowsAvatar reports whether the avatar replaces the initial.
func (i Identity) ShowsAvatar() bool {
	return i.Avatar.Present()
}

// Badge is the avatar glyph when an avatar exists, otherwise the initial.
func (i Identity) Badge() string {
	if i.ShowsAvatar() {
		return avatarGlyph
	}
	return i.Initial
}
