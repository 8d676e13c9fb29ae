package main

import (
	"context"
	"errors"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/five82/visionchat/internal/app"
)

type rootFlags struct {
	configPath string
	prefsPath  string
	theme      string
	logLevel   string
}

// errNotTerminal is returned when stdout cannot host the UI.
var errNotTerminal = errors.New("stdout is not a terminal")

var stdoutIsTerminal = func() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

var runApp = app.Run

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "visionchat",
		Short:         "VisionChat terminal shell",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !stdoutIsTerminal() {
				return errNotTerminal
			}
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			return runApp(ctx, app.Options{
				ConfigPath: flags.configPath,
				PrefsPath:  flags.prefsPath,
				Theme:      flags.theme,
				LogLevel:   flags.logLevel,
			})
		},
	}

	cmd.Flags().StringVar(&flags.configPath, "config", "", "config file (default ~/.config/visionchat/config.toml)")
	cmd.Flags().StringVar(&flags.prefsPath, "prefs", "", "preferences file (default ~/.config/visionchat/prefs.toml)")
	cmd.Flags().StringVar(&flags.theme, "theme", "", "start in dark or light mode")
	cmd.Flags().StringVar(&flags.logLevel, "log-level", "", "log level (trace, debug, info, warn, error, disabled)")

	cmd.AddCommand(newVersionCmd())

	return cmd
}
