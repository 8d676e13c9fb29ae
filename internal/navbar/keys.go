package navbar

import "github.com/charmbracelet/bubbles/key"

// keyMap defines the navigation bar bindings.
type keyMap struct {
	// Search
	Search key.Binding
	Blur   key.Binding

	// Navigation
	Brand key.Binding
	Items key.Binding

	// Identity
	UserMenu key.Binding
	Profile  key.Binding
	Settings key.Binding
	SignOut  key.Binding
	SignIn   key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() keyMap {
	return keyMap{
		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "Search"),
		),
		Blur: key.NewBinding(
			key.WithKeys("esc", "enter", "tab"),
			key.WithHelp("esc", "Leave search"),
		),

		Brand: key.NewBinding(
			key.WithKeys("0"),
			key.WithHelp("0", "Home"),
		),
		Items: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"),
			key.WithHelp("1-9", "Go to item"),
		),

		UserMenu: key.NewBinding(
			key.WithKeys("u"),
			key.WithHelp("u", "User menu"),
		),
		Profile: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "Profile"),
		),
		Settings: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "Settings"),
		),
		SignOut: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "Sign out"),
		),
		SignIn: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "Sign in"),
		),
	}
}

// Bindings returns the bindings that apply in the bar's current state.
func (m Model) Bindings() []key.Binding {
	if m.searchFocused {
		return []key.Binding{m.keys.Blur}
	}
	out := []key.Binding{m.keys.Search, m.keys.Items}
	if _, ok := m.session.Current(); !ok {
		return append(out, m.keys.SignIn)
	}
	out = append(out, m.keys.UserMenu)
	if m.userMenuOpen {
		out = append(out, m.keys.Profile, m.keys.Settings, m.keys.SignOut)
	}
	return out
}
