package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/five82/visionchat/internal/auth"
	"github.com/five82/visionchat/internal/config"
	"github.com/five82/visionchat/internal/layout"
	"github.com/five82/visionchat/internal/logging"
	"github.com/five82/visionchat/internal/prefs"
	"github.com/five82/visionchat/internal/router"
	"github.com/five82/visionchat/internal/theme"
)

// Options configure the VisionChat application.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/visionchat/prefs.toml
	Theme      string // overrides prefs and config when set
	LogLevel   string // overrides config when set

	// LogWriter replaces the configured log file.
	LogWriter io.Writer
}

// Shell is a fully wired root model ready to hand to Bubble Tea.
type Shell struct {
	Model  layout.Model
	Theme  *theme.Provider
	Auth   *auth.Store
	Router *router.Router
	Logger zerolog.Logger

	closers []io.Closer
}

// Close releases the log file.
func (s *Shell) Close() error {
	var errs []error
	for _, c := range s.closers {
		errs = append(errs, c.Close())
	}
	s.closers = nil
	return errors.Join(errs...)
}

// Setup loads configuration and preferences and wires the shell.
func Setup(opts Options) (*Shell, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	shell := &Shell{}

	writer := opts.LogWriter
	if writer == nil {
		f, err := logging.OpenFile(cfg.Log.File)
		if err != nil {
			return nil, err
		}
		shell.closers = append(shell.closers, f)
		writer = f
	}
	level := cfg.Log.Level
	if strings.TrimSpace(opts.LogLevel) != "" {
		level = opts.LogLevel
	}
	logger, err := logging.New(logging.Options{Level: level, HumanReadable: true, Writer: writer})
	if err != nil {
		_ = shell.Close()
		return nil, err
	}
	shell.Logger = logger

	theme.EnsureGlobalStyles()

	mode, err := resolveMode(opts, cfg)
	if err != nil {
		_ = shell.Close()
		return nil, err
	}

	palettes := theme.DefaultPalettes()
	if cfg.Theme.PaletteFile != "" {
		loaded, err := theme.LoadPaletteFile(cfg.Theme.PaletteFile, palettes)
		if err != nil {
			logger.Warn().Err(err).Msg("palette file ignored")
		}
		palettes = loaded
	}

	provider, err := theme.NewProvider(mode, palettes)
	if err != nil {
		_ = shell.Close()
		return nil, fmt.Errorf("init theme: %w", err)
	}
	shell.Theme = provider

	demo, err := demoSession(cfg.Session)
	if err != nil {
		_ = shell.Close()
		return nil, err
	}

	store := &auth.Store{}
	store.SetLogoutHook(func(prev auth.Session) error {
		logger.Info().Str("type", string(prev.Type)).Msg("signed out")
		return nil
	})
	if cfg.Session.SignedIn {
		if err := store.SignIn(demo); err != nil {
			_ = shell.Close()
			return nil, err
		}
	}
	shell.Auth = store
	shell.Router = router.New(router.PathHome)

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	model, err := layout.New(layout.Options{
		Theme:       provider,
		Auth:        store,
		Router:      shell.Router,
		DemoSession: demo,
		PrefsPath:   prefsPath,
		Logger:      logger,
	})
	if err != nil {
		_ = shell.Close()
		return nil, fmt.Errorf("init layout: %w", err)
	}
	shell.Model = model

	logger.Info().
		Str("mode", string(mode)).
		Bool("signed_in", cfg.Session.SignedIn).
		Msg("visionchat starting")
	return shell, nil
}

// resolveMode picks the starting theme: flag, then saved prefs, then config.
func resolveMode(opts Options, cfg config.Config) (theme.Mode, error) {
	if strings.TrimSpace(opts.Theme) != "" {
		return theme.ParseMode(opts.Theme)
	}
	if prefs.Exists(opts.PrefsPath) {
		p, err := prefs.Load(opts.PrefsPath)
		if err == nil {
			return theme.ParseMode(p.Theme)
		}
	}
	return theme.ParseMode(cfg.Theme.Mode)
}

func demoSession(c config.SessionConfig) (auth.Session, error) {
	accountType, err := auth.ParseAccountType(c.Type)
	if err != nil {
		return auth.Session{}, fmt.Errorf("session config: %w", err)
	}
	return auth.NewSession(c.Name, c.Avatar, accountType), nil
}

// Run boots the VisionChat TUI until the user quits or the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	shell, err := Setup(opts)
	if err != nil {
		return err
	}
	defer func() { _ = shell.Close() }()

	p := tea.NewProgram(shell.Model, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("run ui: %w", err)
	}
	shell.Logger.Info().Msg("visionchat stopped")
	return nil
}
