package pubfolio

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestSetDefaults(t *testing.T) {
	var c SiteConfig
	c.setDefaults()
	if c.Root != "." || c.Name != "Oliver Howard" || c.URL != "https://oliverhoward.co" {
		t.Errorf("site defaults = %+v", c)
	}
	if c.Author != c.Name {
		t.Errorf("Author = %q, want site name", c.Author)
	}
	if c.ThumbnailSize != 800 || c.JPEGQuality != 85 || c.RecentCount != 4 {
		t.Errorf("image defaults = %d/%d/%d", c.ThumbnailSize, c.JPEGQuality, c.RecentCount)
	}
	if c.Workers != 1 {
		t.Errorf("Workers = %d, want 1 (sequential)", c.Workers)
	}
	if c.MediaDir != "media/projects" || c.ProjectsDir != "projects" ||
		c.PortfolioFile != "portfolio.html" || c.HomepageFile != "index.html" {
		t.Errorf("layout defaults = %+v", c)
	}
	if c.ProjectCache != 5*time.Second {
		t.Errorf("ProjectCache = %v", c.ProjectCache)
	}
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, DefaultConfigFile)
	content := `site_name: "Jane Doe"
site_url: "https://jane.example/"
thumbnail_size: 640
recent_count: 6
project_cache: 30s
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	cfg.setDefaults()
	if cfg.Name != "Jane Doe" || cfg.URL != "https://jane.example" {
		t.Errorf("cfg = %+v", cfg)
	}
	if cfg.ThumbnailSize != 640 || cfg.RecentCount != 6 || cfg.ProjectCache != 30*time.Second {
		t.Errorf("cfg = %+v", cfg)
	}
	if cfg.JPEGQuality != 85 {
		t.Errorf("JPEGQuality = %d, want default 85", cfg.JPEGQuality)
	}
}

func TestLoadConfigMissing(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	if !errors.Is(err, ErrConfigNotFound) {
		t.Errorf("err = %v, want ErrConfigNotFound", err)
	}
}

func TestFindConfigFile(t *testing.T) {
	root := t.TempDir()
	if got := FindConfigFile(filepath.Join(root, "missing.yaml"), ""); got != "" {
		t.Errorf("missing explicit file: got %q", got)
	}
	path := filepath.Join(root, DefaultConfigFile)
	if err := os.WriteFile(path, []byte("site_name: x\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if got := FindConfigFile("", root); got != path {
		t.Errorf("FindConfigFile(root) = %q, want %q", got, path)
	}
	if got := FindConfigFile(path, ""); got != path {
		t.Errorf("FindConfigFile(explicit) = %q, want %q", got, path)
	}
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("SITE_URL", "https://env.example")
	t.Setenv("SITE_AUTHOR", "Env Author")
	t.Setenv("PUBFOLIO_THUMBNAIL_SIZE", "400")
	c := SiteConfig{URL: "https://file.example", Author: "File Author"}
	c.ApplyEnv()
	if c.URL != "https://env.example" || c.Author != "Env Author" || c.ThumbnailSize != 400 {
		t.Errorf("cfg = %+v", c)
	}
}
