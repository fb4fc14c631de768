package pubfolio

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is looked up in the working directory when no explicit
// config path is given.
const DefaultConfigFile = ".pubfolio.yaml"

// ErrConfigNotFound is returned by LoadConfig when the file does not exist.
var ErrConfigNotFound = errors.New("configuration file not found")

// SiteConfig holds all configuration for a pubfolio site.
type SiteConfig struct {
	Root          string `yaml:"root"`           // Site root (default ".")
	Name          string `yaml:"site_name"`      // Site name (default "Oliver Howard")
	URL           string `yaml:"site_url"`       // Canonical URL (default "https://oliverhoward.co")
	Author        string `yaml:"author"`         // Author shown in page metadata and footer
	CopyrightYear int    `yaml:"copyright_year"` // Footer year (default 2025)

	ThumbnailSize int `yaml:"thumbnail_size"` // Larger thumbnail side in pixels (default 800)
	JPEGQuality   int `yaml:"jpeg_quality"`   // Thumbnail JPEG quality (default 85)
	RecentCount   int `yaml:"recent_count"`   // Homepage recent projects (default 4)
	Workers       int `yaml:"workers"`        // Concurrent thumbnail encoders (default 1, sequential)

	MediaDir      string `yaml:"media_dir"`      // default "media/projects"
	ProjectsDir   string `yaml:"projects_dir"`   // default "projects"
	PortfolioFile string `yaml:"portfolio_file"` // default "portfolio.html"
	HomepageFile  string `yaml:"homepage_file"`  // default "index.html"
	ManifestPath  string `yaml:"manifest_path"`  // SQLite manifest (default "data/projects.db"), "-" disables

	Addr         string        `yaml:"addr"`          // Preview server address (default ":3000")
	ProjectCache time.Duration `yaml:"project_cache"` // Preview server manifest cache TTL (default 5s)
}

func (c *SiteConfig) setDefaults() {
	if c.Root == "" {
		c.Root = "."
	}
	if c.Name == "" {
		c.Name = "Oliver Howard"
	}
	if c.URL == "" {
		c.URL = "https://oliverhoward.co"
	}
	c.URL = strings.TrimSuffix(c.URL, "/")
	if c.Author == "" {
		c.Author = c.Name
	}
	if c.CopyrightYear == 0 {
		c.CopyrightYear = 2025
	}
	if c.ThumbnailSize <= 0 {
		c.ThumbnailSize = 800
	}
	if c.JPEGQuality <= 0 || c.JPEGQuality > 100 {
		c.JPEGQuality = 85
	}
	if c.RecentCount <= 0 {
		c.RecentCount = 4
	}
	if c.Workers <= 0 {
		c.Workers = 1
	}
	if c.MediaDir == "" {
		c.MediaDir = "media/projects"
	}
	if c.ProjectsDir == "" {
		c.ProjectsDir = "projects"
	}
	if c.PortfolioFile == "" {
		c.PortfolioFile = "portfolio.html"
	}
	if c.HomepageFile == "" {
		c.HomepageFile = "index.html"
	}
	if c.ManifestPath == "" {
		c.ManifestPath = "data/projects.db"
	}
	if c.Addr == "" {
		c.Addr = ":3000"
	}
	if c.ProjectCache == 0 {
		c.ProjectCache = 5 * time.Second
	}
}

// path resolves a site-relative path against Root.
func (c *SiteConfig) path(rel string) string {
	if filepath.IsAbs(rel) {
		return rel
	}
	return filepath.Join(c.Root, filepath.FromSlash(rel))
}

// LoadConfig reads a YAML config file. A missing file yields ErrConfigNotFound.
func LoadConfig(path string) (SiteConfig, error) {
	var cfg SiteConfig
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, ErrConfigNotFound
		}
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

// FindConfigFile returns the config file to use, searching in order:
// the explicit path, <root>/.pubfolio.yaml, ./.pubfolio.yaml, then
// $XDG_CONFIG_HOME/pubfolio/config.yaml. It returns "" when nothing is found.
func FindConfigFile(explicit, root string) string {
	if explicit != "" {
		if _, err := os.Stat(explicit); err == nil {
			return explicit
		}
		return ""
	}
	candidates := []string{DefaultConfigFile}
	if root != "" {
		candidates = append([]string{filepath.Join(root, DefaultConfigFile)}, candidates...)
	}
	for _, c := range candidates {
		if _, err := os.Stat(c); err == nil {
			return c
		}
	}
	if p, err := xdg.SearchConfigFile(filepath.Join("pubfolio", "config.yaml")); err == nil {
		return p
	}
	return ""
}

// ApplyEnv overrides config values from environment variables.
func (c *SiteConfig) ApplyEnv() {
	c.Root = EnvOr("PUBFOLIO_ROOT", c.Root)
	c.Name = EnvOr("SITE_NAME", c.Name)
	c.URL = EnvOr("SITE_URL", c.URL)
	c.Author = EnvOr("SITE_AUTHOR", c.Author)
	if v := os.Getenv("PUBFOLIO_THUMBNAIL_SIZE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.ThumbnailSize = n
		}
	}
}

// EnvOr returns the value of the environment variable key, or fallback if empty.
func EnvOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// Option configures additional App behavior.
type Option func(*App)

// WithLogger sets the structured logger used for warnings and debug output.
func WithLogger(l *slog.Logger) Option {
	return func(a *App) {
		a.log = l
	}
}

// WithOutput sets where progress messages are printed (default os.Stdout).
func WithOutput(w io.Writer) Option {
	return func(a *App) {
		a.out = w
	}
}

// WithStore uses s as the project manifest instead of opening ManifestPath.
func WithStore(s *Store) Option {
	return func(a *App) {
		a.store = s
	}
}

// WithClock overrides time.Now for manifest timestamps.
func WithClock(now func() time.Time) Option {
	return func(a *App) {
		a.now = now
	}
}
