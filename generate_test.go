package pubfolio

import (
	"bytes"
	"context"
	"errors"
	"image"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/eringen/pubfolio/hub"
	"github.com/eringen/pubfolio/scaffold"
)

// newTestSite scaffolds a starter site in a temp dir and returns an App
// rooted there. Progress output is captured in the returned buffer.
func newTestSite(t *testing.T) (*App, *bytes.Buffer) {
	t.Helper()
	root := filepath.Join(t.TempDir(), "site")
	data := scaffold.Data{SiteName: "Test Site", SiteURL: "https://test.example", Author: "Tess", Year: 2025}
	if err := scaffold.Write(root, data, io.Discard); err != nil {
		t.Fatalf("scaffold: %v", err)
	}
	var out bytes.Buffer
	clock := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	a := New(SiteConfig{Root: root, URL: "https://test.example", ThumbnailSize: 150},
		WithOutput(&out),
		WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
		WithClock(func() time.Time {
			clock = clock.Add(time.Minute)
			return clock
		}),
	)
	t.Cleanup(func() { a.Close() })
	return a, &out
}

func addPhotos(t *testing.T, a *App, slug string, sizes map[string]image.Point) {
	t.Helper()
	for name, p := range sizes {
		writeImage(t, filepath.Join(a.MediaDir(slug), name), gradient(p.X, p.Y))
	}
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	return string(b)
}

func TestGenerate(t *testing.T) {
	a, out := newTestSite(t)
	addPhotos(t, a, "point_reyes", map[string]image.Point{
		"a.png": {300, 200},
		"b.jpg": {200, 300},
	})
	if err := os.WriteFile(filepath.Join(a.MediaDir("point_reyes"), "notes.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()

	res, err := a.Generate(ctx, "point_reyes", "Point Reyes", "California / Winter 2024", GenerateOptions{})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(res.Project.Photos) != 2 {
		t.Fatalf("photos = %d, want 2", len(res.Project.Photos))
	}
	if !res.PortfolioUpdated || len(res.Recent) != 1 {
		t.Errorf("res = %+v", res)
	}
	for _, thumb := range []string{"a_thumb.jpg", "b_thumb.jpg"} {
		if _, err := os.Stat(filepath.Join(a.MediaDir("point_reyes"), "thumbnails", thumb)); err != nil {
			t.Errorf("missing thumbnail %s", thumb)
		}
	}
	if !strings.Contains(out.String(), "Found 2 images") {
		t.Errorf("output = %q", out.String())
	}

	gallery := readFile(t, a.GalleryPath("point_reyes"))
	for _, want := range []string{
		`<a href="../media/projects/point_reyes/a.png" itemprop="contentUrl" data-size="300x200">`,
		`<img src="../media/projects/point_reyes/thumbnails/a_thumb.jpg" width="150" height="100"/>`,
		`data-size="200x300"`,
		`width="100" height="150"`,
		"<title>Point Reyes</title>",
	} {
		if !strings.Contains(gallery, want) {
			t.Errorf("gallery missing %q", want)
		}
	}
	if strings.Index(gallery, "a_thumb.jpg") > strings.Index(gallery, "b_thumb.jpg") {
		t.Error("photos not in filename order")
	}

	portfolio := readFile(t, a.PortfolioPath())
	if !strings.Contains(portfolio, hub.Marker+"\n\n             <a href=\"projects/point_reyes.html\" class=\"project-card animatelink\">") {
		t.Errorf("card not inserted after marker:\n%s", portfolio)
	}
	if !strings.Contains(portfolio, "<p>California • Winter 2024</p>") {
		t.Error("portfolio description not formatted")
	}
	if !strings.Contains(portfolio, `<img src="media/projects/point_reyes/a.png" alt="Point Reyes"/>`) {
		t.Error("cover is not the first image")
	}

	index := readFile(t, a.HomepagePath())
	if !strings.Contains(index, `<a href="projects/point_reyes.html" class="single-image landscape animatelink" style="background: url('media/projects/point_reyes/a.png') center center; background-size: cover;">`) {
		t.Errorf("homepage not synced:\n%s", index)
	}

	s, err := a.Store()
	if err != nil {
		t.Fatal(err)
	}
	p, err := s.GetProject("point_reyes")
	if err != nil {
		t.Fatalf("manifest: %v", err)
	}
	if len(p.Photos) != 2 || p.Title != "Point Reyes" {
		t.Errorf("manifest project = %+v", p)
	}

	// A second run over the same folder rewrites the gallery identically.
	if _, err := a.Generate(ctx, "point_reyes", "Point Reyes", "California / Winter 2024", GenerateOptions{SkipSync: true}); err != nil {
		t.Fatal(err)
	}
	if again := readFile(t, a.GalleryPath("point_reyes")); again != gallery {
		t.Error("gallery changed on re-run")
	}
}

func TestGenerateMostRecentFirst(t *testing.T) {
	a, _ := newTestSite(t)
	ctx := context.Background()
	addPhotos(t, a, "yosemite", map[string]image.Point{"y.png": {40, 30}})
	addPhotos(t, a, "xanadu", map[string]image.Point{"x.png": {30, 40}})

	if _, err := a.Generate(ctx, "yosemite", "Yosemite", "", GenerateOptions{}); err != nil {
		t.Fatal(err)
	}
	res, err := a.Generate(ctx, "xanadu", "Xanadu", "", GenerateOptions{})
	if err != nil {
		t.Fatal(err)
	}

	portfolio := readFile(t, a.PortfolioPath())
	if strings.Index(portfolio, "projects/xanadu.html") > strings.Index(portfolio, "projects/yosemite.html") {
		t.Error("newest card is not first in portfolio")
	}
	if len(res.Recent) != 2 || res.Recent[0].Slug != "xanadu" || res.Recent[1].Slug != "yosemite" {
		t.Fatalf("recent = %+v", res.Recent)
	}
	if res.Recent[0].Orientation != OrientationPortrait || res.Recent[1].Orientation != OrientationLandscape {
		t.Errorf("orientations = %s, %s", res.Recent[0].Orientation, res.Recent[1].Orientation)
	}
	index := readFile(t, a.HomepagePath())
	if !strings.Contains(index, `class="single-image portrait animatelink"`) {
		t.Error("portrait cover not marked portrait")
	}
}

func TestGenerateErrors(t *testing.T) {
	a, _ := newTestSite(t)
	ctx := context.Background()

	if _, err := a.Generate(ctx, "../up", "Up", "", GenerateOptions{}); !errors.Is(err, ErrInvalidSlug) {
		t.Errorf("invalid slug: err = %v", err)
	}
	if _, err := a.Generate(ctx, "missing", "Missing", "", GenerateOptions{}); !errors.Is(err, ErrMediaNotFound) {
		t.Errorf("missing media: err = %v", err)
	}

	empty := a.MediaDir("empty")
	if err := os.MkdirAll(empty, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(empty, "README.md"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(empty, "broken.jpg"), []byte("nope"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := a.Generate(ctx, "empty", "Empty", "", GenerateOptions{}); !errors.Is(err, ErrNoImages) {
		t.Errorf("no images: err = %v", err)
	}

	// Headers decode but pixel data is missing.
	truncated := a.MediaDir("truncated")
	writeImage(t, filepath.Join(truncated, "t.png"), gradient(30, 20))
	full := readFile(t, filepath.Join(truncated, "t.png"))
	if err := os.WriteFile(filepath.Join(truncated, "t.png"), []byte(full[:40]), 0o644); err != nil {
		t.Fatal(err)
	}
	before := readFile(t, a.PortfolioPath())
	if _, err := a.Generate(ctx, "truncated", "Truncated", "", GenerateOptions{}); !errors.Is(err, ErrNoThumbnails) {
		t.Errorf("no thumbnails: err = %v", err)
	}
	if _, err := os.Stat(a.GalleryPath("truncated")); !os.IsNotExist(err) {
		t.Error("gallery written without thumbnails")
	}
	if readFile(t, a.PortfolioPath()) != before {
		t.Error("portfolio changed by a failed run")
	}
}

func TestGenerateSkipsBadFiles(t *testing.T) {
	a, out := newTestSite(t)
	addPhotos(t, a, "mixed", map[string]image.Point{"good.png": {30, 20}})
	if err := os.WriteFile(filepath.Join(a.MediaDir("mixed"), "bad.jpg"), []byte("nope"), 0o644); err != nil {
		t.Fatal(err)
	}

	res, err := a.Generate(context.Background(), "mixed", "Mixed", "", GenerateOptions{SkipSync: true})
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Project.Photos) != 1 || len(res.Skipped) != 1 || res.Skipped[0] != "bad.jpg" {
		t.Errorf("res = %+v", res)
	}
	if !strings.Contains(out.String(), "Found 1 images") {
		t.Errorf("output = %q", out.String())
	}
	if res.Recent != nil {
		t.Error("sync ran with SkipSync")
	}
}

func TestGenerateMissingMarker(t *testing.T) {
	a, _ := newTestSite(t)
	noMarker := "<html><body><div class=\"wrap\"></div></body></html>\n"
	if err := os.WriteFile(a.PortfolioPath(), []byte(noMarker), 0o644); err != nil {
		t.Fatal(err)
	}
	addPhotos(t, a, "alps", map[string]image.Point{"a.png": {30, 20}})

	res, err := a.Generate(context.Background(), "alps", "Alps", "", GenerateOptions{})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if res.PortfolioUpdated {
		t.Error("PortfolioUpdated = true without a marker")
	}
	if readFile(t, a.PortfolioPath()) != noMarker {
		t.Error("portfolio modified")
	}
	if _, err := os.Stat(a.GalleryPath("alps")); err != nil {
		t.Error("gallery not written")
	}
}

func TestUpdatePortfolioMissing(t *testing.T) {
	a, _ := newTestSite(t)
	if err := os.Remove(a.PortfolioPath()); err != nil {
		t.Fatal(err)
	}
	err := a.UpdatePortfolio(context.Background(), Project{Slug: "x", Title: "X"})
	if !errors.Is(err, ErrHubMissing) {
		t.Errorf("err = %v, want ErrHubMissing", err)
	}
}
