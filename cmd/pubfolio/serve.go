package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

// NewServeCmd creates the serve command.
func NewServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Preview the site locally",
		Long: `Serve runs a local HTTP server over the site root. Besides the static
pages it exposes the project manifest:

  GET /api/projects          all generated projects, newest first
  GET /api/projects/:slug    one project with its photos
  GET /sitemap.xml           sitemap built from the manifest`,
		Args: cobra.NoArgs,
		RunE: runServeCmd,
	}

	cmd.Flags().String("addr", "", "Listen address (default from config, :3000)")

	return cmd
}

func runServeCmd(cmd *cobra.Command, _ []string) error {
	app, err := newApp(cmd)
	if err != nil {
		return err
	}
	defer app.Close()

	if addr, _ := cmd.Flags().GetString("addr"); addr != "" {
		app.Config.Addr = addr
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv, err := app.NewServer()
	if err != nil {
		return err
	}
	return srv.Start(ctx)
}
