// Package pubfolio builds static gallery pages for a photography portfolio
// site. From a folder of images under media/projects/<slug> it writes
// thumbnails and a PhotoSwipe gallery page, prepends a project card to
// portfolio.html, and keeps the homepage's recent-projects section in step
// with the newest cards.
//
// Every generated project is also recorded in a SQLite manifest, which the
// preview server and the sitemap are built from.
package pubfolio

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/eringen/pubfolio/views"
)

// App is the central pubfolio application. It wires together the site
// configuration, the project manifest and the output streams.
type App struct {
	Config SiteConfig

	store     *Store
	ownsStore bool
	log       *slog.Logger
	out       io.Writer
	now       func() time.Time
}

// New creates an App with the given configuration. Defaults are filled in
// for every unset field.
func New(cfg SiteConfig, opts ...Option) *App {
	cfg.setDefaults()

	a := &App{
		Config: cfg,
		log:    slog.Default(),
		out:    os.Stdout,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Store returns the project manifest, opening it on first use. It returns
// nil with no error when the manifest is disabled (manifest_path "-").
func (a *App) Store() (*Store, error) {
	if a.store != nil || a.Config.ManifestPath == "-" {
		return a.store, nil
	}
	s, err := NewStore(a.Config.path(a.Config.ManifestPath))
	if err != nil {
		return nil, err
	}
	a.store = s
	a.ownsStore = true
	return s, nil
}

// Close releases the manifest if the App opened it.
func (a *App) Close() error {
	if a.store != nil && a.ownsStore {
		err := a.store.Close()
		a.store = nil
		return err
	}
	return nil
}

// Site returns the values every generated page is parameterized with.
func (a *App) Site() views.Site {
	return views.Site{
		Name:   a.Config.Name,
		URL:    a.Config.URL,
		Author: a.Config.Author,
		Year:   a.Config.CopyrightYear,
	}
}

// MediaDir returns the media folder of a project.
func (a *App) MediaDir(slug string) string {
	return filepath.Join(a.Config.path(a.Config.MediaDir), slug)
}

// GalleryPath returns the gallery document path of a project.
func (a *App) GalleryPath(slug string) string {
	return filepath.Join(a.Config.path(a.Config.ProjectsDir), slug+".html")
}

// PortfolioPath returns the path of portfolio.html.
func (a *App) PortfolioPath() string {
	return a.Config.path(a.Config.PortfolioFile)
}

// HomepagePath returns the path of index.html.
func (a *App) HomepagePath() string {
	return a.Config.path(a.Config.HomepageFile)
}

// coverPath resolves a cover path relative to the media root.
func (a *App) coverPath(cover string) string {
	return filepath.Join(a.Config.path(a.Config.MediaDir), filepath.FromSlash(cover))
}
