package views

// Site carries the site-wide values substituted into every generated page.
type Site struct {
	Name   string // og:site_name and page titles
	URL    string // canonical base, no trailing slash
	Author string // footer credit and meta description
	Year   int    // footer copyright year
}

// Photo is one gallery tile. Paths are relative to the media root
// (media/projects), e.g. "point_reyes/a.png".
type Photo struct {
	Src         string
	Thumb       string
	Width       int
	Height      int
	ThumbWidth  int
	ThumbHeight int
}

// GalleryPage is everything the gallery document is rendered from.
type GalleryPage struct {
	Site        Site
	Slug        string
	Title       string
	Description string
	Photos      []Photo
}

// Card is a portfolio project card.
type Card struct {
	Slug        string
	Title       string
	Description string
	Cover       string // relative to media/projects
}

// RecentCard is a homepage recent-projects card.
type RecentCard struct {
	Slug        string
	Title       string
	Cover       string // relative to media/projects
	Orientation string // "portrait" or "landscape"
}
