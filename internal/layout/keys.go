package layout

import "github.com/charmbracelet/bubbles/key"

// keyMap defines the shell-wide bindings. Bar bindings live in navbar.
type keyMap struct {
	// Global
	Quit        key.Binding
	ForceQuit   key.Binding
	Help        key.Binding
	ToggleTheme key.Binding
	Back        key.Binding

	// Auth page
	GoogleSignIn  key.Binding
	DefaultSignIn key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "Quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "Quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "Toggle help"),
		),
		ToggleTheme: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "Toggle theme"),
		),
		Back: key.NewBinding(
			key.WithKeys("backspace"),
			key.WithHelp("backspace", "Back"),
		),

		GoogleSignIn: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("g", "Continue with Google"),
		),
		DefaultSignIn: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "Continue"),
		),
	}
}

// footerKeys feeds the help footer with the bindings active right now.
type footerKeys struct {
	short []key.Binding
	full  [][]key.Binding
}

func (k footerKeys) ShortHelp() []key.Binding {
	return k.short
}

func (k footerKeys) FullHelp() [][]key.Binding {
	return k.full
}

func (m Model) footerKeys() footerKeys {
	nav := m.nav.Bindings()
	if m.nav.SearchFocused() {
		return footerKeys{short: nav, full: [][]key.Binding{nav}}
	}

	global := []key.Binding{m.keys.ToggleTheme, m.keys.Help, m.keys.Quit}
	var page []key.Binding
	if m.onAuthPage() {
		page = []key.Binding{m.keys.GoogleSignIn, m.keys.DefaultSignIn}
	}

	short := append(append(append([]key.Binding{}, nav...), page...), global...)
	full := [][]key.Binding{nav}
	if len(page) > 0 {
		full = append(full, page)
	}
	full = append(full, []key.Binding{m.keys.ToggleTheme, m.keys.Back, m.keys.Help, m.keys.Quit})
	return footerKeys{short: short, full: full}
}
