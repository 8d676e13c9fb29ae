package navbar

import "github.com/five82/visionchat/internal/router"

// MenuAction is an entry of the user dropdown.
type MenuAction int

const (
	MenuProfile MenuAction = iota
	MenuSettings
	MenuSignOut
)

var menuActions = []MenuAction{MenuProfile, MenuSettings, MenuSignOut}

// Label returns the text shown in the dropdown.
func (a MenuAction) Label() string {
	switch a {
	case MenuProfile:
		return "Profile"
	case MenuSettings:
		return "Settings"
	case MenuSignOut:
		return "Sign Out"
	default:
		return ""
	}
}

// Icon returns the glyph shown next to the label.
func (a MenuAction) Icon() string {
	switch a {
	case MenuProfile:
		return "☺"
	case MenuSettings:
		return "⚙"
	case MenuSignOut:
		return "⏻"
	default:
		return ""
	}
}

// Path is where the action lands.
func (a MenuAction) Path() string {
	switch a {
	case MenuProfile:
		return router.PathProfile
	case MenuSettings:
		return router.PathSettings
	default:
		return router.PathAuth
	}
}
