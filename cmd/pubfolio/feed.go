package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

// NewFeedCmd creates the feed command.
func NewFeedCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "feed",
		Short: "Write an RSS feed of generated projects",
		Long: `Feed writes an RSS 2.0 feed with one item per project in the manifest,
newest first. Use -o - to print it instead of writing a file.`,
		Args: cobra.NoArgs,
		RunE: runFeedCmd,
	}

	cmd.Flags().StringP("output", "o", "feed.xml", "Output path, relative to the site root")

	return cmd
}

func runFeedCmd(cmd *cobra.Command, _ []string) error {
	app, err := newApp(cmd)
	if err != nil {
		return err
	}
	defer app.Close()

	output, _ := cmd.Flags().GetString("output")
	if output == "-" {
		return app.Feed(cmd.OutOrStdout())
	}

	var buf bytes.Buffer
	if err := app.Feed(&buf); err != nil {
		return err
	}
	path := output
	if !filepath.IsAbs(path) {
		path = filepath.Join(app.Config.Root, path)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write feed: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
	return nil
}
