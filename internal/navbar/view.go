package navbar

import (
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/visionchat/internal/theme"
)

const (
	brandName = "NeuroCap"
	brandMark = "⬢"

	searchIcon         = "⌕"
	searchWidth        = 24
	searchFocusedWidth = 32

	// Below this width labels are hidden, like the md: breakpoint.
	compactWidth = 80
	defaultWidth = 100
)

// ItemView is a navigation item as rendered.
type ItemView struct {
	NavItem
	Active bool
}

// Frame is everything one render shows, derived from the current inputs.
type Frame struct {
	Items         []ItemView
	SearchFocused bool
	SearchWidth   int
	SignIn        bool
	Identity      *Identity
	MenuOpen      bool
	Menu          []MenuAction
}

// Frame derives the render data from the session, the route and local state.
// Nothing here is cached.
func (m Model) Frame() Frame {
	session, present := m.session.Current()
	path := m.router.Path()

	items := Items(present)
	views := make([]ItemView, 0, len(items))
	for _, it := range items {
		views = append(views, ItemView{NavItem: it, Active: IsActive(it, path)})
	}

	f := Frame{
		Items:         views,
		SearchFocused: m.searchFocused,
		SearchWidth:   searchWidth,
	}
	if m.searchFocused {
		f.SearchWidth = searchFocusedWidth
	}

	if !present {
		f.SignIn = true
		return f
	}

	id := IdentityOf(session)
	f.Identity = &id
	f.MenuOpen = m.userMenuOpen
	if m.userMenuOpen {
		f.Menu = append([]MenuAction(nil), menuActions...)
	}
	return f
}

// View renders the bar and, when open, the dropdown below it.
func (m Model) View() string {
	return m.render(m.Frame(), time.Now())
}

func (m Model) render(f Frame, now time.Time) string {
	width := m.width
	if width <= 0 {
		width = defaultWidth
	}
	compact := width < compactWidth

	styles := m.styles
	bg := theme.NewBgStyle(m.props.Tokens.Card)

	left := []string{m.renderBrand(bg, now, compact)}
	for _, item := range f.Items {
		left = append(left, m.renderItem(item, bg, compact))
	}
	leftStr := bg.Join(left, "  ")

	var right []string
	if !compact || f.SearchFocused {
		right = append(right, m.renderSearch(f))
	}
	if f.SignIn {
		right = append(right, bg.Render(" Sign In ", styles.Active))
	} else if f.Identity != nil {
		right = append(right, m.renderIdentity(*f.Identity, f.MenuOpen, bg, compact))
	}
	rightStr := bg.Join(right, "  ")

	gap := width - lipgloss.Width(leftStr) - lipgloss.Width(rightStr) - 2
	if gap < 1 {
		gap = 1
	}
	bar := styles.Bar.Width(width).Padding(0, 1).Render(leftStr + bg.Spaces(gap) + rightStr)

	if len(f.Menu) == 0 {
		return bar
	}
	return lipgloss.JoinVertical(lipgloss.Left, bar, m.renderMenu(f.Menu, width))
}

func (m Model) renderBrand(bg theme.BgStyle, now time.Time, compact bool) string {
	base := lipgloss.NewStyle().Background(lipgloss.Color(m.props.Tokens.Card)).Bold(true)
	mark := theme.RenderGradient(brandMark, theme.GradientFrame(now), base)
	if compact {
		return mark
	}
	return mark + bg.Space() + theme.RenderGradient(brandName, theme.GradientFrame(now), base)
}

func (m Model) renderItem(item ItemView, bg theme.BgStyle, compact bool) string {
	text := item.Icon
	if !compact {
		text += " " + item.Label
	}
	if item.Active {
		return bg.Render(" "+text+" ", m.styles.Active)
	}
	return bg.Render(" "+text+" ", m.styles.Secondary)
}

func (m Model) renderSearch(f Frame) string {
	fill := m.props.Tokens.Card
	iconStyle := m.styles.Secondary
	if f.SearchFocused {
		fill = m.props.Tokens.Input
		iconStyle = m.styles.Text
	}
	fillColor := lipgloss.Color(fill)

	input := m.search
	input.Width = f.SearchWidth - 4
	input.TextStyle = m.styles.Text.Background(fillColor)
	input.PlaceholderStyle = m.styles.Secondary.Background(fillColor)

	box := lipgloss.NewStyle().Background(fillColor).Width(f.SearchWidth)
	icon := iconStyle.Background(fillColor).Render(" " + searchIcon + " ")
	return box.Render(icon + input.View())
}

func (m Model) renderIdentity(id Identity, open bool, bg theme.BgStyle, compact bool) string {
	badgeStyle := lipgloss.NewStyle().
		Background(lipgloss.Color(m.props.Tokens.Button)).
		Foreground(lipgloss.Color(m.props.Tokens.ButtonText)).
		Bold(true)
	badge := badgeStyle.Render(" " + id.Badge() + " ")

	chevron := "▾"
	if open {
		chevron = "▴"
	}

	parts := []string{badge}
	if !compact {
		parts = append(parts,
			bg.Render(id.Name, m.styles.Text.Bold(true)),
			bg.Render(id.Label, m.styles.Secondary),
		)
	}
	parts = append(parts, bg.Render(chevron, m.styles.Secondary))
	return bg.Join(parts, " ")
}

func (m Model) renderMenu(actions []MenuAction, width int) string {
	bg := theme.NewBgStyle(m.props.Tokens.Card)
	rows := make([]string, 0, len(actions))
	for _, a := range actions {
		style := m.styles.Text
		if a == MenuSignOut {
			style = m.styles.Danger
		}
		hint := m.keys.Profile.Help().Key
		switch a {
		case MenuSettings:
			hint = m.keys.Settings.Help().Key
		case MenuSignOut:
			hint = m.keys.SignOut.Help().Key
		}
		row := bg.Render(a.Icon()+"  "+a.Label(), style) + bg.Spaces(2) + bg.Render(hint, m.styles.Secondary)
		rows = append(rows, bg.FillLine(row, 20))
	}
	box := m.styles.Border.Padding(0, 1).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
	return lipgloss.PlaceHorizontal(width, lipgloss.Right, box,
		lipgloss.WithWhitespaceBackground(lipgloss.Color(m.props.Tokens.Background)))
}
