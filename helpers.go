package pubfolio

import (
	"net/url"
	"path"
	"strings"
)

// BuildURL joins a base URL with path segments. Directory-like paths get a
// trailing slash; paths ending in a file name (e.g. "point_reyes.html") do not.
func BuildURL(base string, pathSegments ...string) string {
	u, err := url.Parse(base)
	if err != nil {
		return base
	}
	u.Path = path.Join(u.Path, path.Join(pathSegments...))
	if !strings.HasSuffix(u.Path, "/") && path.Ext(u.Path) == "" {
		u.Path += "/"
	}
	return u.String()
}

// ValidSlug reports whether slug can name a media folder and a gallery page.
func ValidSlug(slug string) bool {
	if slug == "" || slug == "." || slug == ".." {
		return false
	}
	return !strings.ContainsAny(slug, `/\`)
}
