package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

// NewSitemapCmd creates the sitemap command.
func NewSitemapCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sitemap",
		Short: "Write sitemap.xml from the project manifest",
		Long: `Sitemap lists the homepage, portfolio.html and every generated gallery page.
Use -o - to print it instead of writing a file.`,
		Args: cobra.NoArgs,
		RunE: runSitemapCmd,
	}

	cmd.Flags().StringP("output", "o", "sitemap.xml", "Output path, relative to the site root")

	return cmd
}

func runSitemapCmd(cmd *cobra.Command, _ []string) error {
	app, err := newApp(cmd)
	if err != nil {
		return err
	}
	defer app.Close()

	output, _ := cmd.Flags().GetString("output")
	if output == "-" {
		return app.Sitemap(cmd.OutOrStdout())
	}

	var buf bytes.Buffer
	if err := app.Sitemap(&buf); err != nil {
		return err
	}
	path := output
	if !filepath.IsAbs(path) {
		path = filepath.Join(app.Config.Root, path)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write sitemap: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
	return nil
}
