// Package navbar implements the top navigation bar: brand, navigation items,
// the search field and the identity affordance with its user menu.
//
// The bar owns only two flags, whether the user menu is open and whether
// search has focus. Everything else is read from its collaborators on each
// render, so a session or route change shows up on the next frame.
package navbar
