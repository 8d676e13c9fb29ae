package layout

import (
	"fmt"
	"strings"

	"github.com/five82/visionchat/internal/auth"
	"github.com/five82/visionchat/internal/navbar"
	"github.com/five82/visionchat/internal/router"
	"github.com/five82/visionchat/internal/theme"
)

// renderPage renders the body for the current route.
func (m Model) renderPage(styles theme.Styles) string {
	session, present := m.auth.Current()

	switch path := m.router.Path(); path {
	case router.PathHome:
		return m.homePage(styles, present)
	case router.PathChat:
		return m.chatPage(styles, session, present)
	case router.PathProfile:
		return m.profilePage(styles, session, present)
	case router.PathSettings:
		return m.settingsPage(styles)
	case router.PathAuth:
		return m.authPage(styles, present)
	default:
		return notFoundPage(styles, path)
	}
}

func heading(styles theme.Styles, text string) string {
	return styles.Text.Bold(true).Render(text)
}

func (m Model) homePage(styles theme.Styles, present bool) string {
	lines := []string{
		heading(styles, Title),
		styles.Secondary.Render(Description),
		"",
	}
	if present {
		lines = append(lines, styles.Text.Render("Press 2 to open Chat."))
	} else {
		lines = append(lines, styles.Text.Render("Press a to sign in and start chatting."))
	}
	return strings.Join(lines, "\n")
}

func (m Model) chatPage(styles theme.Styles, session auth.Session, present bool) string {
	if !present {
		return strings.Join([]string{
			heading(styles, "Chat"),
			styles.Secondary.Render("Sign in to start a conversation."),
		}, "\n")
	}
	id := navbar.IdentityOf(session)
	return strings.Join([]string{
		heading(styles, "Chat"),
		styles.Secondary.Render(fmt.Sprintf("Welcome back, %s. Start a new conversation.", id.Name)),
	}, "\n")
}

func (m Model) profilePage(styles theme.Styles, session auth.Session, present bool) string {
	if !present {
		return strings.Join([]string{
			heading(styles, "Profile"),
			styles.Secondary.Render("No one is signed in."),
		}, "\n")
	}
	id := navbar.IdentityOf(session)
	return strings.Join([]string{
		heading(styles, "Profile"),
		"",
		field(styles, "Name", id.Name),
		field(styles, "Account", id.Label),
		field(styles, "Avatar", session.Avatar.OrElse("none")),
	}, "\n")
}

func (m Model) settingsPage(styles theme.Styles) string {
	current := m.provider.Current()
	saved := m.prefsPath
	if saved == "" {
		saved = "not saved"
	}
	return strings.Join([]string{
		heading(styles, "Settings"),
		"",
		field(styles, "Theme", string(current.Mode)),
		field(styles, "Preferences", saved),
		"",
		styles.Secondary.Render("Press T to switch between dark and light."),
	}, "\n")
}

func (m Model) authPage(styles theme.Styles, present bool) string {
	if present {
		return strings.Join([]string{
			heading(styles, "Sign in"),
			styles.Secondary.Render("You are already signed in."),
		}, "\n")
	}
	name := m.demo.Name.OrElse("Guest")
	return strings.Join([]string{
		heading(styles, "Sign in to "+Title),
		"",
		styles.Active.Render(" g ") + " " + styles.Text.Render("Continue with Google"),
		styles.Active.Render(" enter ") + " " + styles.Text.Render("Continue as "+name),
	}, "\n")
}

func notFoundPage(styles theme.Styles, path string) string {
	return strings.Join([]string{
		heading(styles, "Not found"),
		styles.Secondary.Render(fmt.Sprintf("Nothing lives at %s.", path)),
		styles.Secondary.Render("Press backspace to go back."),
	}, "\n")
}

func field(styles theme.Styles, label, value string) string {
	return styles.Secondary.Width(14).Render(label) + styles.Text.Render(value)
}
