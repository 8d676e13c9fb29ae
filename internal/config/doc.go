// Package config loads the VisionChat configuration file.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/visionchat/config.toml (default)
//  3. If the config file doesn't exist, fall back to Default()
//  4. If the file exists but fields are missing/empty, use defaults
//
// # TOML Format
//
//	[theme]
//	mode = "dark"            # dark | light
//	palette_file = ""        # optional YAML palette overrides
//
//	[session]
//	signed_in = false
//	name = "Ada"
//	avatar = ""
//	type = "google"          # google | pro | email
//
//	[log]
//	level = "info"           # trace | debug | info | warn | error | disabled
//	file = "~/.local/state/visionchat/visionchat.log"
//
// Every field is optional. Tilde expansion is performed for palette_file and
// the log file.
//
// # Error Handling
//
// Load returns errors for:
//   - Path expansion failures (e.g., cannot determine home directory)
//   - File read errors (except os.ErrNotExist, which triggers defaults)
//   - TOML parsing errors
//   - Enumerated values outside their set, as *ValidationError
//
// Missing config files are NOT an error. VisionChat works out of the box.
package config
