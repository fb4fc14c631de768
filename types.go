package pubfolio

import "time"

// ImageRecord describes a source image found in a project's media folder.
type ImageRecord struct {
	Filename string    `json:"filename"`
	Width    int       `json:"width"`
	Height   int       `json:"height"`
	TakenAt  time.Time `json:"taken_at,omitzero"` // EXIF capture time, zero when unknown
	Camera   string    `json:"camera,omitempty"`  // EXIF camera model, empty when unknown
}

// ThumbnailRecord describes a generated thumbnail. Path is relative to the
// project's media folder, e.g. "thumbnails/a_thumb.jpg".
type ThumbnailRecord struct {
	Path   string `json:"path"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Size   int    `json:"size"`
}

// PhotoItem pairs an original image with its thumbnail.
type PhotoItem struct {
	Original  ImageRecord     `json:"original"`
	Thumbnail ThumbnailRecord `json:"thumbnail"`
}

// Project is a single gallery built from one media folder.
type Project struct {
	Slug        string      `json:"slug"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Photos      []PhotoItem `json:"photos"`
	GeneratedAt time.Time   `json:"generated_at"`
}

// Cover returns the cover image path relative to the media root
// ("<slug>/<first filename>"), or "" when the project has no photos.
func (p Project) Cover() string {
	if len(p.Photos) == 0 {
		return ""
	}
	return p.Slug + "/" + p.Photos[0].Original.Filename
}

// ProjectSummary is a manifest row without its photos.
type ProjectSummary struct {
	Slug        string    `json:"slug"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Cover       string    `json:"cover"`
	PhotoCount  int       `json:"photo_count"`
	GeneratedAt time.Time `json:"generated_at"`
}

// RecentProject is a homepage card produced by Sync.
type RecentProject struct {
	Slug        string
	Title       string
	Cover       string
	Orientation string
}
