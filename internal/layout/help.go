package layout

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/visionchat/internal/navbar"
)

type helpSection struct {
	title string
	items []key.Binding
}

// renderHelp renders the help overlay.
func (m Model) renderHelp() string {
	tokens := m.nav.Props().Tokens
	styles := tokens.Styles()
	nav := navbar.DefaultKeyMap()

	sections := []helpSection{
		{
			title: "Navigation",
			items: []key.Binding{nav.Brand, nav.Items, m.keys.Back},
		},
		{
			title: "Search",
			items: []key.Binding{nav.Search, nav.Blur},
		},
		{
			title: "Account",
			items: []key.Binding{nav.SignIn, nav.UserMenu, nav.Profile, nav.Settings, nav.SignOut},
		},
		{
			title: "Sign in page",
			items: []key.Binding{m.keys.GoogleSignIn, m.keys.DefaultSignIn},
		},
		{
			title: "General",
			items: []key.Binding{m.keys.ToggleTheme, m.keys.Help, m.keys.Quit},
		},
	}

	var b strings.Builder

	b.WriteString(styles.Text.Bold(true).Render("Keyboard Shortcuts"))
	b.WriteString("\n")
	b.WriteString(styles.Secondary.Render(strings.Repeat("─", 30)))
	b.WriteString("\n\n")

	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(tokens.Button)).
		Width(12)

	for i, section := range sections {
		b.WriteString(styles.Text.Bold(true).Render(section.title))
		b.WriteString("\n")

		for _, item := range section.items {
			h := item.Help()
			b.WriteString(keyStyle.Render(h.Key))
			b.WriteString(styles.Text.Render(h.Desc))
			b.WriteString("\n")
		}

		if i < len(sections)-1 {
			b.WriteString("\n")
		}
	}

	modal := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(tokens.Border)).
		Padding(1, 2).
		Width(44)

	return lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Center,
		lipgloss.Center,
		modal.Render(b.String()),
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceBackground(lipgloss.Color(tokens.Background)),
	)
}
