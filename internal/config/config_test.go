package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoad_MissingConfigFallsBackToDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg, err := Load(filepath.Join(home, "does-not-exist.toml"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Theme.Mode != defaultMode {
		t.Fatalf("Theme.Mode = %q, want %q", cfg.Theme.Mode, defaultMode)
	}
	if cfg.Session.SignedIn {
		t.Fatalf("Session.SignedIn = true, want false")
	}
	if cfg.Session.Type != defaultType {
		t.Fatalf("Session.Type = %q, want %q", cfg.Session.Type, defaultType)
	}
	if cfg.Log.Level != defaultLogLevel {
		t.Fatalf("Log.Level = %q, want %q", cfg.Log.Level, defaultLogLevel)
	}

	wantLog, err := expandPath(defaultLogFile)
	if err != nil {
		t.Fatalf("expandPath(defaultLogFile) returned error: %v", err)
	}
	if cfg.Log.File != wantLog {
		t.Fatalf("Log.File = %q, want %q", cfg.Log.File, wantLog)
	}
}

func TestLoad_ParsesAndTrimsConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`
[theme]
mode = "  Light "
palette_file = " ~/palettes/brand.yaml "

[session]
signed_in = true
name = "  Grace "
avatar = "avatar.png"
type = "EMAIL"

[log]
level = " debug "
file = "~/logs/vc.log"
`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Theme.Mode != "light" {
		t.Fatalf("Theme.Mode = %q, want %q", cfg.Theme.Mode, "light")
	}
	if cfg.Theme.PaletteFile != filepath.Join(home, "palettes", "brand.yaml") {
		t.Fatalf("Theme.PaletteFile = %q, want it under HOME", cfg.Theme.PaletteFile)
	}
	if !cfg.Session.SignedIn || cfg.Session.Name != "Grace" || cfg.Session.Type != "email" {
		t.Fatalf("Session = %+v, want signed in email session for Grace", cfg.Session)
	}
	if cfg.Log.Level != "debug" {
		t.Fatalf("Log.Level = %q, want %q", cfg.Log.Level, "debug")
	}
	if !strings.HasPrefix(cfg.Log.File, home) {
		t.Fatalf("Log.File = %q, want it under HOME %q", cfg.Log.File, home)
	}
}

func TestLoad_EmptyValuesUseDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`
[theme]
mode = "   "

[session]
type = ""

[log]
level = ""
file = ""
`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Theme.Mode != defaultMode {
		t.Fatalf("Theme.Mode = %q, want %q", cfg.Theme.Mode, defaultMode)
	}
	if cfg.Session.Type != defaultType {
		t.Fatalf("Session.Type = %q, want %q", cfg.Session.Type, defaultType)
	}
	if cfg.Session.Name != defaultName {
		t.Fatalf("Session.Name = %q, want %q", cfg.Session.Name, defaultName)
	}
	if cfg.Log.Level != defaultLogLevel {
		t.Fatalf("Log.Level = %q, want %q", cfg.Log.Level, defaultLogLevel)
	}
}

func TestLoad_InvalidValuesFailValidation(t *testing.T) {
	tests := []struct {
		name  string
		body  string
		field string
	}{
		{"mode", "[theme]\nmode = \"sepia\"\n", "theme.mode"},
		{"account type", "[session]\ntype = \"github\"\n", "session.type"},
		{"log level", "[log]\nlevel = \"loud\"\n", "log.level"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("HOME", t.TempDir())
			path := filepath.Join(t.TempDir(), "config.toml")
			if err := os.WriteFile(path, []byte(tt.body), 0o600); err != nil {
				t.Fatalf("WriteFile: %v", err)
			}

			_, err := Load(path)
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("Load error = %v, want *ValidationError", err)
			}
			if verr.Field != tt.field {
				t.Fatalf("Field = %q, want %q", verr.Field, tt.field)
			}
			if !strings.Contains(verr.Message, "must be one of") {
				t.Fatalf("Message = %q, want it to list allowed values", verr.Message)
			}
		})
	}
}

func TestLoad_InvalidTOMLFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`[theme`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	_, err := Load(path)
	if err == nil {
		t.Fatalf("Load returned nil error, want parse error")
	}
	if !strings.Contains(err.Error(), "parse config") {
		t.Fatalf("Load error = %q, want it to mention parse config", err.Error())
	}
}

func TestDefault_Validates(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	if err := Default().Validate(); err != nil {
		t.Fatalf("Default().Validate() = %v, want nil", err)
	}
}

func TestExpandPath_ExpandsTildeAndReturnsAbs(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := expandPath("~/a/b")
	if err != nil {
		t.Fatalf("expandPath returned error: %v", err)
	}
	want := filepath.Join(home, "a/b")
	if got != want {
		t.Fatalf("expandPath = %q, want %q", got, want)
	}
}

func TestExpandPath_EmptyErrors(t *testing.T) {
	if _, err := expandPath("   "); err == nil {
		t.Fatalf("expandPath returned nil error, want error")
	}
}
