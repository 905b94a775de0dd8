// Package main is the entry point for the Rimiko showcase.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/rimiko/showcase/internal/app"
	"github.com/rimiko/showcase/internal/config"
	"github.com/rimiko/showcase/internal/pref"
	"github.com/rimiko/showcase/internal/renderer/backend"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "rimiko",
		Short: "Rimiko showcase in the terminal",
		Long: `rimiko shows the Rimiko Development Community page in the terminal.

Drag the product cards with the mouse, page them with the arrow keys,
switch between English and Vietnamese, and ask the chat widget about
RimikoOS.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runInteractive,
	}

	// Global flags
	rootCmd.PersistentFlags().StringP("config", "c", "", "Path to configuration file")
	rootCmd.PersistentFlags().String("prefs", "", "Path to the preferences file")
	rootCmd.PersistentFlags().String("log-level", "", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-file", "", "Write logs to this file")
	rootCmd.Flags().Bool("watch", true, "Reload the configuration file when it changes")

	rootCmd.AddCommand(
		newVersionCmd(),
		newChatCmd(),
		newLangCmd(),
		newConfigCmd(),
	)
	return rootCmd
}

func runInteractive(cmd *cobra.Command, _ []string) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) || !term.IsTerminal(int(os.Stdin.Fd())) {
		return fmt.Errorf("interactive mode needs a terminal; try 'rimiko chat' instead")
	}

	cfg, path, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	watch, _ := cmd.Flags().GetBool("watch")

	application, err := app.New(app.Options{
		ConfigPath: path,
		Config:     cfg,
		Prefs:      openPrefs(cmd),
		Watch:      watch,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize: %w", err)
	}

	terminal, err := backend.NewTerminal()
	if err != nil {
		return fmt.Errorf("failed to create terminal: %w", err)
	}
	if err := application.SetBackend(terminal); err != nil {
		return fmt.Errorf("failed to set backend: %w", err)
	}

	// Handle signals for graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return application.Run(ctx)
}

// loadConfig loads the configuration named by --config, or the default
// file when it exists, and applies the logging flags.
func loadConfig(cmd *cobra.Command) (*config.Config, string, error) {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		if p, err := config.DefaultPath(); err == nil {
			path = p
		}
	}

	cfg, err := config.NewLoader(path).Load()
	if err != nil {
		return nil, "", err
	}

	if level, _ := cmd.Flags().GetString("log-level"); level != "" {
		cfg.Log.Level = level
	}
	if file, _ := cmd.Flags().GetString("log-file"); file != "" {
		cfg.Log.File = file
	}
	if err := cfg.Validate(); err != nil {
		return nil, "", err
	}
	return cfg, path, nil
}

// openPrefs returns the preference file store, or an in-memory store when
// no location can be determined.
func openPrefs(cmd *cobra.Command) pref.Store {
	path, _ := cmd.Flags().GetString("prefs")
	if path == "" {
		p, err := pref.DefaultPath()
		if err != nil {
			return pref.NewMemoryStore()
		}
		path = p
	}
	return pref.NewFileStore(path)
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "rimiko %s\n", version)
			fmt.Fprintf(out, "Commit: %s\n", commit)
			fmt.Fprintf(out, "Built: %s\n", date)
		},
	}
}
