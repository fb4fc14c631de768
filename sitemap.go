package pubfolio

import (
	"encoding/xml"
	"io"
)

type sitemapURLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc     string `xml:"loc"`
	LastMod string `xml:"lastmod,omitempty"`
}

// WriteSitemap writes a sitemap listing the homepage, the portfolio and one
// gallery page per project.
func WriteSitemap(w io.Writer, base, portfolioFile, projectsDir string, projects []ProjectSummary) error {
	urls := []sitemapURL{
		{Loc: BuildURL(base)},
		{Loc: BuildURL(base, portfolioFile)},
	}
	for _, p := range projects {
		u := sitemapURL{Loc: BuildURL(base, projectsDir, p.Slug+".html")}
		if !p.GeneratedAt.IsZero() {
			u.LastMod = p.GeneratedAt.Format("2006-01-02")
		}
		urls = append(urls, u)
	}
	sitemap := sitemapURLSet{
		XMLNS: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs:  urls,
	}
	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(sitemap); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}

// Sitemap writes the site's sitemap from the project manifest. With the
// manifest disabled only the homepage and portfolio are listed.
func (a *App) Sitemap(w io.Writer) error {
	var projects []ProjectSummary
	s, err := a.Store()
	if err != nil {
		return err
	}
	if s != nil {
		if projects, err = s.ListProjects(); err != nil {
			return err
		}
	}
	return WriteSitemap(w, a.Config.URL, a.Config.PortfolioFile, a.Config.ProjectsDir, projects)
}
