// Package app is the composition root of VisionChat.
//
// Setup turns configuration into a wired shell:
//
//  1. Load ~/.config/visionchat/config.toml (defaults when missing)
//  2. Open the log file and build the zerolog logger
//  3. Build the brand gradient once (theme.EnsureGlobalStyles)
//  4. Resolve the theme mode: --theme flag, saved prefs, then config
//  5. Apply the optional YAML palette file over the default palettes
//  6. Create the auth store (signed in when session.signed_in is set)
//     and the router at "/"
//  7. Build the root layout model
//
// Run wraps Setup and blocks in the Bubble Tea program until the user quits
// or the context is cancelled.
//
// # Error Handling
//
// Fatal (returned from Setup):
//   - Invalid config file or values
//   - Log file that cannot be opened, or an unknown log level
//   - Unknown theme override
//
// Recoverable (logged):
//   - Invalid palette file, the default palettes are used
//   - Logout hook failures
package app
