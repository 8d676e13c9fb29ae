package theme

import "github.com/charmbracelet/lipgloss"

// dangerColor is used for destructive actions; it is not a theme role.
const dangerColor = "#f87171" // red-400

// Styles contains pre-built Lipgloss styles for a token set.
type Styles struct {
	// Base
	Bar   lipgloss.Style
	Page  lipgloss.Style
	Card  lipgloss.Style
	Hover lipgloss.Style
	Input lipgloss.Style

	// Text
	Text      lipgloss.Style
	Secondary lipgloss.Style
	Danger    lipgloss.Style

	// Components
	Active lipgloss.Style
	Border lipgloss.Style

	tokens Tokens
}

// Styles returns Lipgloss styles for these tokens.
func (t Tokens) Styles() Styles {
	return Styles{
		Bar: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Card)).
			Foreground(lipgloss.Color(t.Text)),

		Page: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Background)).
			Foreground(lipgloss.Color(t.Text)),

		Card: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Card)).
			Foreground(lipgloss.Color(t.Text)),

		Hover: lipgloss.NewStyle().
			Background(lipgloss.Color(t.CardHover)).
			Foreground(lipgloss.Color(t.Text)),

		Input: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Input)).
			Foreground(lipgloss.Color(t.Text)),

		Text: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Text)),

		Secondary: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.SecondaryText)),

		Danger: lipgloss.NewStyle().
			Foreground(lipgloss.Color(dangerColor)).
			Bold(true),

		Active: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Button)).
			Foreground(lipgloss.Color(t.ButtonText)).
			Bold(true),

		Border: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(t.Border)).
			Background(lipgloss.Color(t.Card)).
			BorderBackground(lipgloss.Color(t.Background)),

		tokens: t,
	}
}

// Tokens returns the tokens the styles were built from.
func (s Styles) Tokens() Tokens {
	return s.tokens
}
