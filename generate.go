package pubfolio

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dustin/go-humanize"
	"golang.org/x/sync/errgroup"

	"github.com/eringen/pubfolio/hub"
	"github.com/eringen/pubfolio/views"
)

// GenerateOptions tunes a single Generate run.
type GenerateOptions struct {
	SkipSync bool // leave index.html alone
}

// GenerateResult reports what a Generate run produced.
type GenerateResult struct {
	Project          Project
	GalleryPath      string
	Skipped          []string // files excluded after a decode or encode error
	PortfolioUpdated bool
	Recent           []RecentProject // nil when sync was skipped or failed
}

// Generate builds the gallery for media/projects/<slug>: it writes one JPEG
// thumbnail per image, renders projects/<slug>.html, records the project in
// the manifest, prepends a card to portfolio.html and syncs the homepage.
//
// Missing media, or a folder with no usable image, aborts with an error. Per
// file failures, a missing portfolio marker and sync failures are logged and
// the run continues.
func (a *App) Generate(ctx context.Context, slug, title, description string, opts GenerateOptions) (*GenerateResult, error) {
	if !ValidSlug(slug) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidSlug, slug)
	}
	mediaDir := a.MediaDir(slug)
	if fi, err := os.Stat(mediaDir); err != nil || !fi.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrMediaNotFound, mediaDir)
	}
	thumbDir := filepath.Join(mediaDir, thumbnailsSubdir)
	if err := os.MkdirAll(thumbDir, 0o755); err != nil {
		return nil, fmt.Errorf("create thumbnails dir: %w", err)
	}

	res := &GenerateResult{GalleryPath: a.GalleryPath(slug)}

	images, skipped, err := a.scanImages(mediaDir)
	if err != nil {
		return nil, err
	}
	res.Skipped = skipped
	if len(images) == 0 {
		return nil, fmt.Errorf("%w in %s", ErrNoImages, mediaDir)
	}

	fmt.Fprintf(a.out, "Found %d images in %s\n", len(images), mediaDir)
	fmt.Fprintln(a.out, "Creating thumbnails...")

	project := Project{
		Slug:        slug,
		Title:       title,
		Description: description,
		GeneratedAt: a.now().UTC(),
	}
	results, err := a.createThumbnails(ctx, mediaDir, thumbDir, images)
	if err != nil {
		return nil, err
	}
	for i, img := range images {
		r := results[i]
		if r.err != nil {
			a.log.Warn("thumbnail failed", "file", img.Filename, "err", r.err)
			fmt.Fprintf(a.out, "  ✗ Failed to create thumbnail for %s\n", img.Filename)
			res.Skipped = append(res.Skipped, img.Filename)
			continue
		}
		fmt.Fprintf(a.out, "  ✓ %s -> %s (%dx%d, %s)\n", img.Filename, ThumbnailName(img.Filename),
			r.thumb.Width, r.thumb.Height, humanize.Bytes(uint64(r.thumb.Size)))
		project.Photos = append(project.Photos, PhotoItem{Original: img, Thumbnail: r.thumb})
	}
	if len(project.Photos) == 0 {
		return nil, ErrNoThumbnails
	}
	res.Project = project

	if err := RenderFile(ctx, res.GalleryPath, views.Gallery(a.galleryPage(project))); err != nil {
		return nil, fmt.Errorf("write gallery: %w", err)
	}
	fmt.Fprintf(a.out, "\nSuccessfully generated: %s\n", res.GalleryPath)
	fmt.Fprintf(a.out, "Project: %s\n", title)
	fmt.Fprintf(a.out, "Images: %d\n", len(project.Photos))

	if err := a.recordProject(project); err != nil {
		a.log.Warn("could not record project in manifest", "slug", slug, "err", err)
	}

	if err := a.UpdatePortfolio(ctx, project); err != nil {
		a.log.Warn("portfolio not updated", "file", a.PortfolioPath(), "err", err)
	} else {
		res.PortfolioUpdated = true
		fmt.Fprintf(a.out, "Added project card to %s\n", a.Config.PortfolioFile)
	}

	fmt.Fprintf(a.out, "\nYou can now view it at: %s/%s.html\n", a.Config.ProjectsDir, slug)

	if !opts.SkipSync {
		fmt.Fprintf(a.out, "\nSyncing recent projects to %s...\n", a.Config.HomepageFile)
		recent, err := a.Sync(ctx)
		if err != nil {
			a.log.Warn("failed to sync recent projects", "err", err)
		} else {
			res.Recent = recent
		}
	}
	return res, nil
}

type thumbResult struct {
	thumb ThumbnailRecord
	err   error
}

// createThumbnails encodes one thumbnail per image on up to Config.Workers
// goroutines. Results keep the order of images; per-file failures are
// reported in the result, only cancellation fails the whole batch.
func (a *App) createThumbnails(ctx context.Context, mediaDir, thumbDir string, images []ImageRecord) ([]thumbResult, error) {
	results := make([]thumbResult, len(images))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(a.Config.Workers)
	for i, img := range images {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			thumb, err := CreateThumbnail(
				filepath.Join(mediaDir, img.Filename),
				filepath.Join(thumbDir, ThumbnailName(img.Filename)),
				a.Config.ThumbnailSize,
				a.Config.JPEGQuality,
			)
			results[i] = thumbResult{thumb: thumb, err: err}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// scanImages inspects every accepted image in dir in filename order.
// Unreadable files are logged and returned as skipped.
func (a *App) scanImages(dir string) ([]ImageRecord, []string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, nil, err
	}
	var images []ImageRecord
	var skipped []string
	for _, e := range entries {
		if e.IsDir() || !IsImageFile(e.Name()) {
			continue
		}
		rec, err := Inspect(filepath.Join(dir, e.Name()))
		if err != nil {
			a.log.Warn("skipping unreadable image", "file", e.Name(), "err", err)
			skipped = append(skipped, e.Name())
			continue
		}
		images = append(images, rec)
	}
	return images, skipped, nil
}

func (a *App) galleryPage(p Project) views.GalleryPage {
	photos := make([]views.Photo, 0, len(p.Photos))
	for _, ph := range p.Photos {
		photos = append(photos, views.Photo{
			Src:         p.Slug + "/" + ph.Original.Filename,
			Thumb:       p.Slug + "/" + ph.Thumbnail.Path,
			Width:       ph.Original.Width,
			Height:      ph.Original.Height,
			ThumbWidth:  ph.Thumbnail.Width,
			ThumbHeight: ph.Thumbnail.Height,
		})
	}
	return views.GalleryPage{
		Site:        a.Site(),
		Slug:        p.Slug,
		Title:       p.Title,
		Description: p.Description,
		Photos:      photos,
	}
}

func (a *App) recordProject(p Project) error {
	s, err := a.Store()
	if err != nil || s == nil {
		return err
	}
	return s.SaveProject(p)
}

// UpdatePortfolio prepends the project's card to portfolio.html. The document
// is left untouched when it is missing or has no insertion marker.
func (a *App) UpdatePortfolio(ctx context.Context, p Project) error {
	path := a.PortfolioPath()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%w: %s", ErrHubMissing, path)
		}
		return err
	}
	card, err := views.String(ctx, views.PortfolioCard(views.Card{
		Slug:        p.Slug,
		Title:       p.Title,
		Description: p.Description,
		Cover:       p.Cover(),
	}))
	if err != nil {
		return err
	}
	updated, err := hub.InsertCard(string(data), card)
	if err != nil {
		return err
	}
	return os.WriteFile(path, []byte(updated), 0o644)
}
