package pubfolio

import (
	"database/sql"
	"sync"
	"time"
)

// ErrNotFound is returned when a requested project does not exist.
var ErrNotFound = sql.ErrNoRows

// ProjectCache is an in-memory cache of the project manifest with TTL. It
// backs the preview server, which reads while generate runs may write.
type ProjectCache struct {
	mu       sync.RWMutex
	projects []ProjectSummary
	fetched  time.Time
	ttl      time.Duration
	store    *Store
}

// NewProjectCache creates a ProjectCache backed by the given Store.
func NewProjectCache(s *Store, ttl time.Duration) *ProjectCache {
	return &ProjectCache{store: s, ttl: ttl}
}

func (c *ProjectCache) valid() bool {
	return c.projects != nil && time.Since(c.fetched) < c.ttl
}

// Invalidate clears the cache so the next read triggers a fresh load.
func (c *ProjectCache) Invalidate() {
	c.mu.Lock()
	c.projects = nil
	c.mu.Unlock()
}

// ListProjects returns the manifest summaries, newest first.
// It tries a read lock first; only takes a write lock if a reload is needed.
func (c *ProjectCache) ListProjects() ([]ProjectSummary, error) {
	c.mu.RLock()
	if c.valid() {
		projects := c.projects
		c.mu.RUnlock()
		return projects, nil
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.valid() {
		return c.projects, nil
	}
	projects, err := c.store.ListProjects()
	if err != nil {
		return nil, err
	}
	if projects == nil {
		projects = []ProjectSummary{}
	}
	c.projects = projects
	c.fetched = time.Now()
	return c.projects, nil
}

// GetProject returns a summary by slug from the cache.
func (c *ProjectCache) GetProject(slug string) (ProjectSummary, error) {
	projects, err := c.ListProjects()
	if err != nil {
		return ProjectSummary{}, err
	}
	for _, p := range projects {
		if p.Slug == slug {
			return p, nil
		}
	}
	return ProjectSummary{}, ErrNotFound
}
