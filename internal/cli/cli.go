// Package cli holds the kanbo command tree.
package cli

import (
	"context"
	"fmt"
	"os"

	"kanbo/internal/app"
	"kanbo/internal/config"
	"kanbo/internal/logs"
	"kanbo/internal/tui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

// options are the persistent flags shared by every command
type options struct {
	configPath string
	boardDir   string
	logDir     string
	serverAddr string
	verbose    bool

	cfg *config.Config
}

// Execute runs the root command and exits non-zero on failure
func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// NewRootCommand builds the full command tree
func NewRootCommand() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:           "kanbo",
		Short:         "A keyboard-driven kanban board",
		Long:          "kanbo opens a kanban board in the terminal. Run 'kanbo serve' to expose the same board over HTTP.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.load()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			logs.Close()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd.Context(), opts)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "Path to the config file (default ~/.config/kanbo/config.toml)")
	rootCmd.PersistentFlags().StringVarP(&opts.boardDir, "board-dir", "b", "", "Directory the board is loaded from and saved to")
	rootCmd.PersistentFlags().StringVar(&opts.logDir, "log-dir", "", "Directory for debug.log (default ~/.config/kanbo)")
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(
		newServeCmd(opts),
		newThemesCmd(opts),
		newPrefsCmd(opts),
		newExportCmd(opts),
		newSetupCmd(opts),
	)

	return rootCmd
}

func (o *options) load() error {
	cfg, err := config.Load(config.Flags{
		ConfigPath: o.configPath,
		BoardDir:   o.boardDir,
		LogDir:     o.logDir,
		ServerAddr: o.serverAddr,
	})
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	o.cfg = cfg

	if err := logs.Initialize(cfg.LogDir); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not initialize logger: %v\n", err)
	}
	logs.SetVerbose(o.verbose)
	return nil
}

// resolvedConfigPath is where setup writes and the TUI ensures a config file
func (o *options) resolvedConfigPath() (string, error) {
	if o.configPath != "" {
		return o.configPath, nil
	}
	if env := os.Getenv("KANBO_CONFIG"); env != "" {
		return env, nil
	}
	return config.DefaultPath()
}

func runTUI(ctx context.Context, opts *options) error {
	if path, err := opts.resolvedConfigPath(); err == nil {
		if err := config.EnsureConfigFile(path); err != nil {
			logs.Warnf("could not create config file: %v", err)
		}
	}

	a, err := app.New(ctx, opts.cfg)
	if err != nil {
		return err
	}

	appOpts := tui.Options{
		Service:   a.Service,
		BoardName: opts.cfg.BoardName,
		Source:    a.SeedSource,
	}
	if opts.cfg.BoardDir != "" {
		appOpts.Save = a.SaveBoard
	}

	logs.Infof("starting TUI with board from %s", a.SeedSource)
	p := tea.NewProgram(tui.NewAppModel(appOpts), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run program: %w", err)
	}

	return a.SaveBoard()
}
