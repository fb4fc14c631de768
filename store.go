package pubfolio

import (
	"database/sql"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// Store wraps a SQLite database holding the project manifest: every project
// generated so far and the photos it was built from.
type Store struct {
	db *sql.DB
}

// NewStore opens (or creates) the SQLite database at path, ensures the data
// directory exists, and runs schema migrations.
func NewStore(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	// The preview server reads while a generate run may write.
	if _, err := db.Exec(`
		PRAGMA journal_mode=WAL;
		PRAGMA busy_timeout=5000;
		PRAGMA synchronous=NORMAL;
	`); err != nil {
		db.Close()
		return nil, err
	}
	db.SetMaxOpenConns(4)
	db.SetMaxIdleConns(4)
	s := &Store{db: db}
	if err := s.ensureSchema(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) ensureSchema() error {
	_, err := s.db.Exec(`
CREATE TABLE IF NOT EXISTS projects (
    slug TEXT PRIMARY KEY,
    title TEXT NOT NULL,
    description TEXT NOT NULL,
    cover TEXT NOT NULL,
    photo_count INTEGER NOT NULL,
    generated_at TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS photos (
    slug TEXT NOT NULL,
    position INTEGER NOT NULL,
    filename TEXT NOT NULL,
    width INTEGER NOT NULL,
    height INTEGER NOT NULL,
    thumbnail TEXT NOT NULL,
    thumb_width INTEGER NOT NULL,
    thumb_height INTEGER NOT NULL,
    size INTEGER NOT NULL,
    taken_at TEXT NOT NULL DEFAULT '',
    camera TEXT NOT NULL DEFAULT '',
    PRIMARY KEY (slug, position)
);
`)
	return err
}

// SaveProject upserts a project and replaces its photo list.
func (s *Store) SaveProject(p Project) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`INSERT OR REPLACE INTO projects (slug, title, description, cover, photo_count, generated_at) VALUES (?, ?, ?, ?, ?, ?)`,
		p.Slug, p.Title, p.Description, p.Cover(), len(p.Photos), formatTime(p.GeneratedAt)); err != nil {
		return err
	}
	if _, err := tx.Exec(`DELETE FROM photos WHERE slug = ?`, p.Slug); err != nil {
		return err
	}
	for i, ph := range p.Photos {
		if _, err := tx.Exec(`INSERT INTO photos (slug, position, filename, width, height, thumbnail, thumb_width, thumb_height, size, taken_at, camera) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			p.Slug, i, ph.Original.Filename, ph.Original.Width, ph.Original.Height,
			ph.Thumbnail.Path, ph.Thumbnail.Width, ph.Thumbnail.Height, ph.Thumbnail.Size,
			formatTime(ph.Original.TakenAt), ph.Original.Camera); err != nil {
			return err
		}
	}
	return tx.Commit()
}

// ListProjects returns every project ordered by generation time, newest first.
func (s *Store) ListProjects() ([]ProjectSummary, error) {
	rows, err := s.db.Query(`SELECT slug, title, description, cover, photo_count, generated_at FROM projects ORDER BY generated_at DESC, slug`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var projects []ProjectSummary
	for rows.Next() {
		var p ProjectSummary
		var generated string
		if err := rows.Scan(&p.Slug, &p.Title, &p.Description, &p.Cover, &p.PhotoCount, &generated); err != nil {
			return nil, err
		}
		p.GeneratedAt = parseTime(generated)
		projects = append(projects, p)
	}
	return projects, rows.Err()
}

// GetProject returns a project with its photos in gallery order.
// A missing slug yields sql.ErrNoRows.
func (s *Store) GetProject(slug string) (Project, error) {
	var p Project
	var generated string
	err := s.db.QueryRow(`SELECT slug, title, description, generated_at FROM projects WHERE slug = ?`, slug).
		Scan(&p.Slug, &p.Title, &p.Description, &generated)
	if err != nil {
		return Project{}, err
	}
	p.GeneratedAt = parseTime(generated)

	rows, err := s.db.Query(`SELECT filename, width, height, thumbnail, thumb_width, thumb_height, size, taken_at, camera FROM photos WHERE slug = ? ORDER BY position`, slug)
	if err != nil {
		return Project{}, err
	}
	defer rows.Close()
	for rows.Next() {
		var ph PhotoItem
		var taken string
		if err := rows.Scan(&ph.Original.Filename, &ph.Original.Width, &ph.Original.Height,
			&ph.Thumbnail.Path, &ph.Thumbnail.Width, &ph.Thumbnail.Height, &ph.Thumbnail.Size,
			&taken, &ph.Original.Camera); err != nil {
			return Project{}, err
		}
		ph.Original.TakenAt = parseTime(taken)
		p.Photos = append(p.Photos, ph)
	}
	return p, rows.Err()
}

// DeleteProject removes a project and its photos from the manifest.
func (s *Store) DeleteProject(slug string) error {
	if _, err := s.db.Exec(`DELETE FROM photos WHERE slug = ?`, slug); err != nil {
		return err
	}
	_, err := s.db.Exec(`DELETE FROM projects WHERE slug = ?`, slug)
	return err
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}

func parseTime(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}
	}
	return t
}
