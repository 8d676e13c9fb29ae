// Package layout is the root of the terminal UI. It mounts the navigation
// bar above the body for the current route, owns the shell-wide keys (theme
// toggle, help, back, quit) and forwards theme changes to the bar.
//
// Key routing: ctrl+c always quits. While the search field has focus every
// other key goes to the bar. Otherwise global keys are checked first, then
// the sign-in page keys, then the bar.
package layout
