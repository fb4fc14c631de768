package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/eringen/pubfolio"
)

// NewGenerateCmd creates the generate command.
func NewGenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate <slug> <title> [description]",
		Short: "Build a project gallery from media/projects/<slug>",
		Long: `Generate creates a thumbnail for every image in media/projects/<slug>,
writes the gallery page projects/<slug>.html, prepends a card for the project
to portfolio.html and syncs the homepage's recent projects.

Examples:
  pubfolio generate point_reyes "Point Reyes" "California / Winter 2024"
  pubfolio generate iceland Iceland --no-sync`,
		Args: cobra.RangeArgs(2, 3),
		RunE: runGenerateCmd,
	}

	cmd.Flags().Int("size", 0, "Larger thumbnail side in pixels (default from config, 800)")
	cmd.Flags().Int("quality", 0, "Thumbnail JPEG quality 1-100 (default from config, 85)")
	cmd.Flags().Bool("no-sync", false, "Do not update index.html")

	return cmd
}

func runGenerateCmd(cmd *cobra.Command, args []string) error {
	app, err := newApp(cmd)
	if err != nil {
		return err
	}
	defer app.Close()

	size, _ := cmd.Flags().GetInt("size")
	quality, _ := cmd.Flags().GetInt("quality")
	noSync, _ := cmd.Flags().GetBool("no-sync")
	if size < 0 {
		return fmt.Errorf("invalid --size %d", size)
	}
	if quality < 0 || quality > 100 {
		return fmt.Errorf("invalid --quality %d", quality)
	}
	if size > 0 {
		app.Config.ThumbnailSize = size
	}
	if quality > 0 {
		app.Config.JPEGQuality = quality
	}

	var description string
	if len(args) > 2 {
		description = args[2]
	}
	_, err = app.Generate(cmd.Context(), args[0], args[1], description, pubfolio.GenerateOptions{SkipSync: noSync})
	return err
}
