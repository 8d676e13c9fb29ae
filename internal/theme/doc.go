// Package theme is the theme scope of the shell.
//
// A Provider holds the active Mode and the dark/light Palettes. Descendants
// read Current and re-render when a ChangedMsg arrives. Tokens name nine
// style roles (background, text, card, cardHover, border, button,
// buttonText, input, secondaryText); each must be a hex color in both modes.
//
// Palettes can be overridden from a YAML file:
//
//	dark:
//	  button: "#22c55e"
//	light:
//	  card: "#f1f5f9"
//
// EnsureGlobalStyles must be called once during bootstrap. It computes the
// brand gradient keyframes, which are never torn down.
package theme
