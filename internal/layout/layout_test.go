package layout

import (
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/five82/visionchat/internal/auth"
	"github.com/five82/visionchat/internal/prefs"
	"github.com/five82/visionchat/internal/router"
	"github.com/five82/visionchat/internal/theme"
)

type fixture struct {
	model    Model
	provider *theme.Provider
	store    *auth.Store
	router   *router.Router
	prefs    string
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	provider, err := theme.NewProvider(theme.ModeDark, theme.DefaultPalettes())
	require.NoError(t, err)

	f := &fixture{
		provider: provider,
		store:    &auth.Store{},
		router:   router.New(router.PathHome),
		prefs:    filepath.Join(t.TempDir(), "prefs.toml"),
	}
	m, err := New(Options{
		Theme:       provider,
		Auth:        f.store,
		Router:      f.router,
		DemoSession: auth.NewSession("Ada", "", auth.AccountPro),
		PrefsPath:   f.prefs,
		Logger:      zerolog.Nop(),
	})
	require.NoError(t, err)

	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	f.model = next.(Model)
	return f
}

func (f *fixture) send(t *testing.T, msg tea.Msg) tea.Cmd {
	t.Helper()
	next, cmd := f.model.Update(msg)
	model, ok := next.(Model)
	require.True(t, ok)
	f.model = model
	return cmd
}

func (f *fixture) press(t *testing.T, s string) tea.Cmd {
	t.Helper()
	return f.send(t, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
}

func TestNew_RequiresCollaborators(t *testing.T) {
	provider, err := theme.NewProvider(theme.ModeDark, theme.DefaultPalettes())
	require.NoError(t, err)

	_, err = New(Options{Auth: &auth.Store{}})
	assert.Error(t, err)

	_, err = New(Options{Theme: provider})
	assert.Error(t, err)

	m, err := New(Options{Theme: provider, Auth: &auth.Store{}})
	require.NoError(t, err)
	assert.Equal(t, router.PathHome, m.router.Path())
}

func TestInit_ReturnsCommands(t *testing.T) {
	f := newFixture(t)
	assert.NotNil(t, f.model.Init())
}

func TestToggleTheme_PropagatesAndPersists(t *testing.T) {
	f := newFixture(t)

	cmd := f.press(t, "T")
	require.NotNil(t, cmd)
	assert.Equal(t, theme.ModeLight, f.provider.Current().Mode)

	msg := cmd()
	changed, ok := msg.(theme.ChangedMsg)
	require.True(t, ok)
	assert.Equal(t, theme.ModeLight, changed.Theme.Mode)

	f.send(t, msg)
	assert.Equal(t, theme.ModeLight, f.model.Nav().Props().Mode)
	assert.Equal(t, theme.DefaultPalettes().Light, f.model.Nav().Props().Tokens)

	saved, err := prefs.Load(f.prefs)
	require.NoError(t, err)
	assert.Equal(t, "light", saved.Theme)
}

func TestChangedMsg_InvalidThemeKeepsPrevious(t *testing.T) {
	f := newFixture(t)

	bad := theme.Theme{Mode: theme.ModeLight, Tokens: theme.DefaultPalettes().Light}
	bad.Tokens.Card = ""
	f.send(t, theme.ChangedMsg{Theme: bad})

	assert.Equal(t, theme.ModeDark, f.model.Nav().Props().Mode)
}

func TestHelpOverlay_AnyKeyCloses(t *testing.T) {
	f := newFixture(t)

	f.press(t, "?")
	require.True(t, f.model.ShowingHelp())
	assert.Contains(t, f.model.View(), "Keyboard Shortcuts")

	f.press(t, "x")
	assert.False(t, f.model.ShowingHelp())
}

func TestQuitKeys(t *testing.T) {
	f := newFixture(t)

	cmd := f.press(t, "q")
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())

	cmd = f.send(t, tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestSearchFocus_CapturesGlobalKeys(t *testing.T) {
	f := newFixture(t)

	f.press(t, "/")
	require.True(t, f.model.Nav().SearchFocused())

	cmd := f.press(t, "q")
	if cmd != nil {
		_, quit := cmd().(tea.QuitMsg)
		assert.False(t, quit)
	}
	f.press(t, "T")
	assert.Equal(t, theme.ModeDark, f.provider.Current().Mode)
	assert.Equal(t, "qT", f.model.Nav().SearchText())

	f.send(t, tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, f.model.Nav().SearchFocused())

	cmd = f.send(t, tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestSignInFlow(t *testing.T) {
	f := newFixture(t)

	f.press(t, "a")
	require.Equal(t, router.PathAuth, f.router.Path())
	assert.Contains(t, f.model.View(), "Continue with Google")

	cmd := f.press(t, "g")
	require.NotNil(t, cmd)
	assert.Equal(t, router.NavigatedMsg{From: router.PathAuth, To: router.PathChat}, cmd())

	session, ok := f.store.Current()
	require.True(t, ok)
	assert.Equal(t, auth.AccountGoogle, session.Type)
	assert.Equal(t, router.PathChat, f.router.Path())

	view := f.model.View()
	assert.Contains(t, view, "Google User")
	assert.Contains(t, view, "Welcome back, Ada")
}

func TestSignInKeysOnlyOnAuthPage(t *testing.T) {
	f := newFixture(t)

	f.press(t, "g")
	_, ok := f.store.Current()
	assert.False(t, ok)
	assert.Equal(t, router.PathHome, f.router.Path())
}

func TestSignOutFromMenu(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.store.SignIn(auth.NewSession("Ada", "", auth.AccountPro)))

	f.press(t, "u")
	require.True(t, f.model.Nav().UserMenuOpen())

	f.press(t, "o")
	assert.False(t, f.model.Nav().UserMenuOpen())
	_, ok := f.store.Current()
	assert.False(t, ok)
	assert.Equal(t, router.PathAuth, f.router.Path())
}

func TestBack_ReturnsToPreviousRoute(t *testing.T) {
	f := newFixture(t)

	f.press(t, "a")
	require.Equal(t, router.PathAuth, f.router.Path())

	cmd := f.send(t, tea.KeyMsg{Type: tea.KeyBackspace})
	require.NotNil(t, cmd)
	assert.Equal(t, router.NavigatedMsg{From: router.PathAuth, To: router.PathHome}, cmd())
	assert.Equal(t, router.PathHome, f.router.Path())

	assert.Nil(t, f.send(t, tea.KeyMsg{Type: tea.KeyBackspace}))
}

func TestView_Pages(t *testing.T) {
	f := newFixture(t)
	assert.Contains(t, f.model.View(), Description)

	f.router.Navigate("/chat/")
	view := f.model.View()
	assert.Contains(t, view, "Not found")
	assert.Contains(t, view, "/chat/")

	f.router.Navigate(router.PathSettings)
	assert.Contains(t, f.model.View(), "dark")
}

func TestGradientTick_Reschedules(t *testing.T) {
	f := newFixture(t)

	cmd := f.send(t, gradientTickMsg{})
	assert.NotNil(t, cmd)
}
