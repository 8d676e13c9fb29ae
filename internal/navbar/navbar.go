package navbar

import (
	"errors"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/five82/visionchat/internal/auth"
	"github.com/five82/visionchat/internal/router"
	"github.com/five82/visionchat/internal/theme"
	"github.com/five82/visionchat/internal/validate"
)

// SessionSource supplies the session snapshot and the logout operation.
type SessionSource interface {
	Current() (auth.Session, bool)
	Logout() error
}

// Navigator supplies the current path and imperative navigation.
type Navigator interface {
	Path() string
	Navigate(path string)
}

// Props is the whole configuration surface of the bar.
type Props struct {
	Mode   theme.Mode   `validate:"required,oneof=dark light"`
	Tokens theme.Tokens
}

// PropsFrom adapts a theme scope value.
func PropsFrom(t theme.Theme) Props {
	return Props{Mode: t.Mode, Tokens: t.Tokens}
}

// ConfigError rejects a bar composed with missing or malformed configuration.
type ConfigError struct {
	Err error
}

func (e *ConfigError) Error() string {
	return "navbar config: " + e.Err.Error()
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// Options configures New.
type Options struct {
	Props   Props
	Session SessionSource
	Router  Navigator
	Logger  zerolog.Logger
}

// Model is the top navigation bar. It owns exactly two pieces of state:
// whether the user menu is open and whether the search field has focus.
type Model struct {
	props   Props
	styles  theme.Styles
	session SessionSource
	router  Navigator
	log     zerolog.Logger
	keys    keyMap
	search  textinput.Model
	width   int

	userMenuOpen  bool
	searchFocused bool
}

// New validates opts and returns a closed, unfocused bar.
func New(opts Options) (Model, error) {
	if opts.Session == nil {
		return Model{}, &ConfigError{Err: errors.New("session source is required")}
	}
	if opts.Router == nil {
		return Model{}, &ConfigError{Err: errors.New("router is required")}
	}
	if err := validateProps(opts.Props); err != nil {
		return Model{}, err
	}

	search := textinput.New()
	search.Placeholder = "Search..."
	search.Prompt = ""
	search.CharLimit = 256

	return Model{
		props:   opts.Props,
		styles:  opts.Props.Tokens.Styles(),
		session: opts.Session,
		router:  opts.Router,
		log:     opts.Logger.With().Str("component", "navbar").Logger(),
		keys:    DefaultKeyMap(),
		search:  search,
	}, nil
}

func validateProps(p Props) error {
	if err := validate.Struct(p); err != nil {
		return &ConfigError{Err: err}
	}
	return nil
}

// SetTheme swaps in new theme props. Invalid props are rejected and the
// previous theme stays in place.
func (m *Model) SetTheme(p Props) error {
	if err := validateProps(p); err != nil {
		return err
	}
	m.props = p
	m.styles = p.Tokens.Styles()
	return nil
}

// Props returns the active configuration.
func (m Model) Props() Props {
	return m.props
}

// UserMenuOpen reports whether the dropdown is open.
func (m Model) UserMenuOpen() bool {
	return m.userMenuOpen
}

// SearchFocused reports whether the search field has focus.
func (m Model) SearchFocused() bool {
	return m.searchFocused
}

// SearchText returns what has been typed into the search field.
func (m Model) SearchText() string {
	return m.search.Value()
}

// ToggleUserMenu flips the dropdown. Without a session there is no identity
// affordance and nothing happens.
func (m *Model) ToggleUserMenu() {
	if _, ok := m.session.Current(); !ok {
		return
	}
	m.userMenuOpen = !m.userMenuOpen
}

// SelectMenu runs a dropdown entry. Profile and Settings leave the menu as
// it is; Sign Out closes it, calls Logout and then navigates to /auth
// whatever Logout returned.
func (m *Model) SelectMenu(a MenuAction) tea.Cmd {
	switch a {
	case MenuProfile, MenuSettings:
		return m.navigate(a.Path())
	case MenuSignOut:
		m.userMenuOpen = false
		if err := m.session.Logout(); err != nil {
			m.log.Warn().Err(err).Msg("logout failed")
		}
		return m.navigate(router.PathAuth)
	default:
		return nil
	}
}

// SelectItem navigates to the item at index of the current navigation list.
func (m *Model) SelectItem(index int) tea.Cmd {
	_, present := m.session.Current()
	items := Items(present)
	if index < 0 || index >= len(items) {
		return nil
	}
	return m.navigate(items[index].Path)
}

// SelectBrand navigates home.
func (m *Model) SelectBrand() tea.Cmd {
	return m.navigate(router.PathHome)
}

// SignIn navigates to the auth page. It only applies without a session.
func (m *Model) SignIn() tea.Cmd {
	if _, ok := m.session.Current(); ok {
		return nil
	}
	return m.navigate(router.PathAuth)
}

// FocusSearch gives the search field focus.
func (m *Model) FocusSearch() tea.Cmd {
	m.searchFocused = true
	return m.search.Focus()
}

// BlurSearch takes focus away from the search field.
func (m *Model) BlurSearch() {
	m.searchFocused = false
	m.search.Blur()
}

func (m *Model) navigate(path string) tea.Cmd {
	from := m.router.Path()
	m.router.Navigate(path)
	m.log.Debug().Str("from", from).Str("to", path).Msg("navigate")
	return func() tea.Msg {
		return router.NavigatedMsg{From: from, To: path}
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles window sizes and key presses.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	if m.searchFocused {
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if m.searchFocused {
		if key.Matches(msg, m.keys.Blur) {
			m.BlurSearch()
			return m, nil
		}
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		return m, cmd
	}

	_, present := m.session.Current()

	switch {
	case key.Matches(msg, m.keys.Search):
		return m, m.FocusSearch()

	case key.Matches(msg, m.keys.Brand):
		return m, m.SelectBrand()

	case key.Matches(msg, m.keys.Items):
		index := int(msg.String()[0] - '1')
		return m, m.SelectItem(index)

	case key.Matches(msg, m.keys.SignIn) && !present:
		return m, m.SignIn()

	case key.Matches(msg, m.keys.UserMenu):
		m.ToggleUserMenu()
		return m, nil
	}

	if present && m.userMenuOpen {
		switch {
		case key.Matches(msg, m.keys.Profile):
			return m, m.SelectMenu(MenuProfile)
		case key.Matches(msg, m.keys.Settings):
			return m, m.SelectMenu(MenuSettings)
		case key.Matches(msg, m.keys.SignOut):
			return m, m.SelectMenu(MenuSignOut)
		}
	}
	return m, nil
}
