// chainview is a terminal viewer for an options chain snapshot.
//
// Usage:
//
//	chainview [file] [flags]
//	chainview inspect [file] [--json] [--schema]
//
// The file defaults to sample-options-chain.json in the working
// directory. JSON, YAML and read-only SQLite snapshots are accepted.
package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/Mr-Dark-debug/chainview/internal/config"
	"github.com/Mr-Dark-debug/chainview/internal/loader"
	"github.com/Mr-Dark-debug/chainview/internal/logging"
	"github.com/Mr-Dark-debug/chainview/internal/nav"
	"github.com/Mr-Dark-debug/chainview/internal/tui"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// app holds what every command needs after flags are parsed.
type app struct {
	cfg *config.Config
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "chainview [file]",
		Short: "Browse an options chain in the terminal",
		Long: `chainview shows every expiration of an options chain as a
collapsible table of calls and puts around each strike.

Keys: up/down move, pgup/pgdn page, e toggles the selected
expiration, g toggles greeks, / jumps to a date, q quits.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.loadConfig(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runViewer(cmd, args)
		},
	}

	root.PersistentFlags().String("config", "", "config directory (default: ~/.config/chainview)")
	root.PersistentFlags().Bool("debug", false, "enable debug logging")
	root.Flags().String("variant", "", "navigation variant: scroll or tabs")
	root.Flags().Bool("no-greeks", false, "start with greek columns hidden")

	root.AddCommand(newInspectCmd(a))
	return root
}

// loadConfig reads config and applies the flags that override it.
func (a *app) loadConfig(cmd *cobra.Command) error {
	dir, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(dir)
	if err != nil {
		return err
	}

	if debug, _ := cmd.Flags().GetBool("debug"); debug {
		cfg.Log.Level = "debug"
		if cfg.Log.File == "" {
			cfg.Log.File = config.DefaultLogFile()
		}
	}
	if f := cmd.Flags().Lookup("variant"); f != nil && f.Changed {
		cfg.View.Variant = f.Value.String()
	}
	if noGreeks, _ := cmd.Flags().GetBool("no-greeks"); noGreeks {
		cfg.View.ShowGreeks = false
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	a.cfg = cfg
	return nil
}

// dataPath is the positional file argument or the configured default.
func (a *app) dataPath(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return a.cfg.Data.Path
}

func (a *app) runViewer(cmd *cobra.Command, args []string) error {
	logger := logging.NewFileLogger(a.cfg.Log)
	path := a.dataPath(args)

	c, err := loader.Load(path)
	if err != nil {
		logger.Error().Err(err).Str("path", path).Msg("loading chain failed")
		return fmt.Errorf("loading %s: %w", path, err)
	}
	logChain(logger, path, a.cfg.Variant(), c.Symbol, c.Len())

	model := tui.NewModel(c, tui.Options{
		Variant:       a.cfg.Variant(),
		VisibleWindow: a.cfg.View.VisibleWindow,
		PageStep:      a.cfg.View.PageStep,
		HideGreeks:    !a.cfg.View.ShowGreeks,
		Logger:        logger,
	})
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithOutput(cmd.OutOrStdout()))

	if _, err := p.Run(); err != nil {
		logger.Error().Err(err).Msg("viewer exited with error")
		return fmt.Errorf("running viewer: %w", err)
	}
	logger.Info().Msg("viewer closed")
	return nil
}

func logChain(logger zerolog.Logger, path string, v nav.Variant, symbol string, n int) {
	logger.Info().
		Str("path", path).
		Str("symbol", symbol).
		Int("expirations", n).
		Str("variant", string(v)).
		Msg("chain loaded")
}
