package navbar

import "github.com/five82/visionchat/internal/router"

// NavItem is one entry of the navigation list.
type NavItem struct {
	Label string
	Icon  string
	Path  string
}

var (
	homeItem = NavItem{Label: "Home", Icon: "⌂", Path: router.PathHome}
	chatItem = NavItem{Label: "Chat", Icon: "✉", Path: router.PathChat}
)

// Items derives the navigation list: Home first, Chat only with a session.
func Items(sessionPresent bool) []NavItem {
	items := []NavItem{homeItem}
	if sessionPresent {
		items = append(items, chatItem)
	}
	return items
}

// IsActive reports whether item is the current route. Matching is exact:
// "/chat/" does not match "/chat".
func IsActive(item NavItem, currentPath string) bool {
	return item.Path == currentPath
}
