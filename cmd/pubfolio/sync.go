package main

import (
	"github.com/spf13/cobra"
)

// NewSyncCmd creates the sync command.
func NewSyncCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sync",
		Short: "Copy the newest portfolio projects to the homepage",
		Long: `Sync reads the first project cards of portfolio.html and rewrites the
recent-projects section of index.html with matching homepage cards. Each
card is laid out portrait or landscape from its cover image.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := newApp(cmd)
			if err != nil {
				return err
			}
			defer app.Close()
			_, err = app.Sync(cmd.Context())
			return err
		},
	}
}
