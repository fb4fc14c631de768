package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/eringen/pubfolio"
)

// NewRootCmd creates the root command for pubfolio.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pubfolio",
		Short: "Photo gallery generator for static portfolio sites",
		Long: `pubfolio turns a folder of photos under media/projects/<slug> into a
gallery page with thumbnails, adds the project to portfolio.html and keeps
the recent-projects section of index.html in sync.

Settings are read from .pubfolio.yaml in the current directory (or
$XDG_CONFIG_HOME/pubfolio/config.yaml), then from the environment and a
.env file in the site root.`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringP("config", "c", "", "Configuration file path (default: "+pubfolio.DefaultConfigFile+")")
	cmd.PersistentFlags().StringP("root", "r", "", "Site root directory (default: current directory)")
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")

	cmd.AddCommand(NewGenerateCmd())
	cmd.AddCommand(NewSyncCmd())
	cmd.AddCommand(NewNewCmd())
	cmd.AddCommand(NewServeCmd())
	cmd.AddCommand(NewProjectsCmd())
	cmd.AddCommand(NewSitemapCmd())
	cmd.AddCommand(NewFeedCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// loadConfig builds the site configuration from the config file, the
// environment and the --root flag, in increasing precedence.
func loadConfig(cmd *cobra.Command) (pubfolio.SiteConfig, error) {
	explicit, err := cmd.Flags().GetString("config")
	if err != nil {
		return pubfolio.SiteConfig{}, err
	}
	root, err := cmd.Flags().GetString("root")
	if err != nil {
		return pubfolio.SiteConfig{}, err
	}

	var cfg pubfolio.SiteConfig
	if path := pubfolio.FindConfigFile(explicit, root); path != "" {
		if cfg, err = pubfolio.LoadConfig(path); err != nil {
			return cfg, err
		}
	} else if explicit != "" {
		return cfg, fmt.Errorf("%w: %s", pubfolio.ErrConfigNotFound, explicit)
	}

	if root != "" {
		cfg.Root = root
	}
	envRoot := cfg.Root
	if envRoot == "" {
		envRoot = "."
	}
	if err := godotenv.Load(filepath.Join(envRoot, ".env")); err != nil && !errors.Is(err, os.ErrNotExist) {
		return cfg, fmt.Errorf("load .env: %w", err)
	}
	cfg.ApplyEnv()
	if root != "" {
		cfg.Root = root
	}
	return cfg, nil
}

// newApp creates the App a subcommand runs against. Progress goes to the
// command's stdout, logs to its stderr.
func newApp(cmd *cobra.Command) (*pubfolio.App, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	logger := setupLogger(cmd, getVerboseFlag(cmd))
	slog.SetDefault(logger)
	return pubfolio.New(cfg,
		pubfolio.WithLogger(logger),
		pubfolio.WithOutput(cmd.OutOrStdout()),
	), nil
}

// setupLogger creates a text logger on the command's stderr.
func setupLogger(cmd *cobra.Command, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
}

func getVerboseFlag(cmd *cobra.Command) bool {
	v, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		return false
	}
	return v
}
