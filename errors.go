package pubfolio

import "errors"

// Precondition errors. These abort the operation that returned them; callers
// can match them with errors.Is.
var (
	// ErrInvalidSlug is returned when a project slug is empty or contains a
	// path separator.
	ErrInvalidSlug = errors.New("invalid project slug")

	// ErrMediaNotFound is returned when media/projects/<slug> does not exist.
	ErrMediaNotFound = errors.New("media folder not found")

	// ErrNoImages is returned when the media folder holds no readable images.
	ErrNoImages = errors.New("no images found")

	// ErrNoThumbnails is returned when every thumbnail failed to encode.
	ErrNoThumbnails = errors.New("no thumbnails were created")

	// ErrHubMissing is returned when portfolio.html or index.html is absent.
	ErrHubMissing = errors.New("hub document not found")

	// ErrNoProjects is returned by Sync when the portfolio has no cards.
	ErrNoProjects = errors.New("no projects found to sync")
)
