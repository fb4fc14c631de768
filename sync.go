package pubfolio

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/eringen/pubfolio/hub"
	"github.com/eringen/pubfolio/views"
)

// Sync rewrites the recent-projects section of index.html with cards for the
// first RecentCount projects of portfolio.html, in portfolio order.
//
// It fails when either hub document is missing, when the portfolio has no
// cards, or when the section anchors cannot be found; index.html is left
// untouched in every failure case.
func (a *App) Sync(ctx context.Context) ([]RecentProject, error) {
	portfolio, err := readHub(a.PortfolioPath())
	if err != nil {
		return nil, err
	}
	homepage, err := readHub(a.HomepagePath())
	if err != nil {
		return nil, err
	}

	cards, err := hub.ParseCards(portfolio, a.Config.RecentCount)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", a.Config.PortfolioFile, err)
	}
	if len(cards) == 0 {
		return nil, ErrNoProjects
	}
	if len(cards) < a.Config.RecentCount {
		a.log.Warn("fewer projects than recent slots", "found", len(cards), "slots", a.Config.RecentCount)
	}

	fmt.Fprintf(a.out, "Found %d projects to sync:\n", len(cards))
	recent := make([]RecentProject, 0, len(cards))
	rendered := make([]views.RecentCard, 0, len(cards))
	for _, c := range cards {
		orientation, err := Orientation(a.coverPath(c.Cover))
		if err != nil {
			a.log.Debug("cover orientation unknown, using landscape", "cover", c.Cover, "err", err)
		}
		fmt.Fprintf(a.out, "  - %s (%s)\n", c.Title, c.Slug)
		recent = append(recent, RecentProject{
			Slug:        c.Slug,
			Title:       c.Title,
			Cover:       c.Cover,
			Orientation: orientation,
		})
		rendered = append(rendered, views.RecentCard{
			Slug:        c.Slug,
			Title:       c.Title,
			Cover:       c.Cover,
			Orientation: orientation,
		})
	}

	html, err := views.String(ctx, views.RecentCards(rendered))
	if err != nil {
		return nil, err
	}
	updated, err := hub.ReplaceRecent(homepage, html)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", a.Config.HomepageFile, err)
	}
	if err := os.WriteFile(a.HomepagePath(), []byte(updated), 0o644); err != nil {
		return nil, err
	}
	fmt.Fprintf(a.out, "\n✓ Successfully synced recent projects to %s\n", a.Config.HomepageFile)
	return recent, nil
}

func readHub(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("%w: %s", ErrHubMissing, path)
		}
		return "", err
	}
	return string(data), nil
}
