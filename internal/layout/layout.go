package layout

import (
	"errors"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"github.com/five82/visionchat/internal/auth"
	"github.com/five82/visionchat/internal/navbar"
	"github.com/five82/visionchat/internal/prefs"
	"github.com/five82/visionchat/internal/router"
	"github.com/five82/visionchat/internal/theme"
)

// Page metadata.
const (
	Title       = "VisionChat"
	Description = "An AI chat assistant"
)

// Options configures the root layout.
type Options struct {
	Theme  *theme.Provider
	Auth   *auth.Store
	Router *router.Router

	// DemoSession is signed in from the auth page.
	DemoSession auth.Session

	// PrefsPath receives the theme mode after each toggle. Empty disables saving.
	PrefsPath string

	Logger zerolog.Logger
}

// Model is the root Bubble Tea model: the navigation bar above the page for
// the current route.
type Model struct {
	// Collaborators
	provider  *theme.Provider
	auth      *auth.Store
	router    *router.Router
	demo      auth.Session
	prefsPath string
	log       zerolog.Logger

	// UI state
	nav      navbar.Model
	keys     keyMap
	help     help.Model
	width    int
	height   int
	showHelp bool
}

// New builds the layout around an already configured provider, store and router.
func New(opts Options) (Model, error) {
	if opts.Theme == nil {
		return Model{}, errors.New("layout: theme provider is required")
	}
	if opts.Auth == nil {
		return Model{}, errors.New("layout: auth store is required")
	}
	rt := opts.Router
	if rt == nil {
		rt = router.New(router.PathHome)
	}

	nav, err := navbar.New(navbar.Options{
		Props:   navbar.PropsFrom(opts.Theme.Current()),
		Session: opts.Auth,
		Router:  rt,
		Logger:  opts.Logger,
	})
	if err != nil {
		return Model{}, err
	}

	demo := opts.DemoSession
	if demo.Type == "" {
		demo.Type = auth.AccountPro
	}

	return Model{
		provider:  opts.Theme,
		auth:      opts.Auth,
		router:    rt,
		demo:      demo,
		prefsPath: opts.PrefsPath,
		log:       opts.Logger.With().Str("component", "layout").Logger(),
		nav:       nav,
		keys:      DefaultKeyMap(),
		help:      help.New(),
	}, nil
}

// Nav exposes the navigation bar.
func (m Model) Nav() navbar.Model {
	return m.nav
}

// ShowingHelp reports whether the help overlay is up.
func (m Model) ShowingHelp() bool {
	return m.showHelp
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		tea.SetWindowTitle(Title),
		gradientTickCmd(),
		m.nav.Init(),
	)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		var cmd tea.Cmd
		m.nav, cmd = m.nav.Update(msg)
		return m, cmd

	case gradientTickMsg:
		return m, gradientTickCmd()

	case theme.ChangedMsg:
		if err := m.nav.SetTheme(navbar.PropsFrom(msg.Theme)); err != nil {
			m.log.Error().Err(err).Str("mode", string(msg.Theme.Mode)).Msg("rejected theme")
		}
		return m, nil

	case router.NavigatedMsg:
		m.log.Info().Str("from", msg.From).Str("to", msg.To).Msg("route changed")
		return m, nil
	}

	var cmd tea.Cmd
	m.nav, cmd = m.nav.Update(msg)
	return m, cmd
}

// handleKey routes a key press. Search input swallows everything except
// ctrl+c; otherwise global keys win, then the auth page, then the bar.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.ForceQuit) {
		return m, tea.Quit
	}

	if m.showHelp {
		// Any key closes help
		m.showHelp = false
		return m, nil
	}

	if m.nav.SearchFocused() {
		var cmd tea.Cmd
		m.nav, cmd = m.nav.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.ToggleTheme):
		return m, m.toggleTheme()

	case key.Matches(msg, m.keys.Back):
		return m, m.back()
	}

	if m.onAuthPage() {
		switch {
		case key.Matches(msg, m.keys.GoogleSignIn):
			s := m.demo
			s.Type = auth.AccountGoogle
			return m, m.signIn(s)
		case key.Matches(msg, m.keys.DefaultSignIn):
			return m, m.signIn(m.demo)
		}
	}

	var cmd tea.Cmd
	m.nav, cmd = m.nav.Update(msg)
	return m, cmd
}

func (m Model) onAuthPage() bool {
	_, present := m.auth.Current()
	return !present && m.router.Path() == router.PathAuth
}

// toggleTheme flips the provider and persists the new mode. The bar picks the
// change up from the returned ChangedMsg.
func (m Model) toggleTheme() tea.Cmd {
	t := m.provider.Toggle()
	if m.prefsPath != "" {
		if err := prefs.Save(m.prefsPath, prefs.Prefs{Theme: string(t.Mode)}); err != nil {
			m.log.Warn().Err(err).Str("path", m.prefsPath).Msg("save prefs failed")
		}
	}
	m.log.Debug().Str("mode", string(t.Mode)).Msg("theme toggled")
	return func() tea.Msg {
		return theme.ChangedMsg{Theme: t}
	}
}

func (m Model) back() tea.Cmd {
	from := m.router.Path()
	if !m.router.Back() {
		return nil
	}
	to := m.router.Path()
	return func() tea.Msg {
		return router.NavigatedMsg{From: from, To: to}
	}
}

func (m Model) signIn(s auth.Session) tea.Cmd {
	if err := m.auth.SignIn(s); err != nil {
		m.log.Error().Err(err).Msg("sign in failed")
		return nil
	}
	m.log.Info().Str("type", string(s.Type)).Msg("signed in")

	from := m.router.Path()
	m.router.Navigate(router.PathChat)
	return func() tea.Msg {
		return router.NavigatedMsg{From: from, To: router.PathChat}
	}
}

// View implements tea.Model.
func (m Model) View() string {
	if m.showHelp {
		return m.renderHelp()
	}

	styles := m.nav.Props().Tokens.Styles()

	bar := m.nav.View()
	footer := styles.Secondary.Render(m.help.View(m.footerKeys()))

	bodyHeight := m.height - lipgloss.Height(bar) - lipgloss.Height(footer)
	if bodyHeight < 3 {
		bodyHeight = 3
	}
	width := m.width
	if width <= 0 {
		width = 100
	}

	body := styles.Page.
		Width(width).
		Height(bodyHeight).
		Padding(1, 2).
		Render(m.renderPage(styles))

	return strings.Join([]string{bar, body, footer}, "\n")
}

type gradientTickMsg time.Time

func gradientTickCmd() tea.Cmd {
	return tea.Tick(theme.FrameInterval(), func(t time.Time) tea.Msg {
		return gradientTickMsg(t)
	})
}
