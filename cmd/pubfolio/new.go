package main

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/eringen/pubfolio/scaffold"
)

// NewNewCmd creates the new command.
func NewNewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "new <dir>",
		Short: "Create a starter portfolio site",
		Long: `New writes a starter site into <dir>: index.html and portfolio.html with
their project anchors in place, a stylesheet, a .pubfolio.yaml config and
the media/projects and projects folders.

Examples:
  pubfolio new my-portfolio
  pubfolio new my-portfolio --name "Jane Doe" --url https://janedoe.com`,
		Args: cobra.ExactArgs(1),
		RunE: runNewCmd,
	}

	cmd.Flags().String("name", "", "Site name (default: derived from <dir>)")
	cmd.Flags().String("url", "https://example.com", "Canonical site URL")
	cmd.Flags().String("author", "", "Author name (default: site name)")

	return cmd
}

func runNewCmd(cmd *cobra.Command, args []string) error {
	dir := args[0]
	name, _ := cmd.Flags().GetString("name")
	url, _ := cmd.Flags().GetString("url")
	author, _ := cmd.Flags().GetString("author")
	if name == "" {
		name = toTitle(filepath.Base(dir))
	}
	if author == "" {
		author = name
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Creating new portfolio site: %s\n\n", dir)
	data := scaffold.Data{
		SiteName: name,
		SiteURL:  strings.TrimSuffix(url, "/"),
		Author:   author,
		Year:     time.Now().Year(),
	}
	if err := scaffold.Write(dir, data, out); err != nil {
		return err
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Done! Next steps:")
	fmt.Fprintln(out)
	fmt.Fprintf(out, "  cd %s\n", dir)
	fmt.Fprintln(out, "  mkdir media/projects/my_trip   # add your photos here")
	fmt.Fprintln(out, `  pubfolio generate my_trip "My Trip" "Somewhere / 2026"`)
	fmt.Fprintln(out, "  pubfolio serve")
	return nil
}

// toTitle converts a hyphenated or underscored name to title case.
// e.g. "my-portfolio" -> "My Portfolio"
func toTitle(s string) string {
	s = strings.NewReplacer("-", " ", "_", " ").Replace(s)
	return cases.Title(language.English).String(s)
}
