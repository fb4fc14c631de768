package pubfolio

import (
	"encoding/xml"
	"io"
	"os"
	"path"
	"strings"
	"time"
)

type rssXML struct {
	XMLName xml.Name   `xml:"rss"`
	Version string     `xml:"version,attr"`
	Channel rssChannel `xml:"channel"`
}

type rssChannel struct {
	Title       string    `xml:"title"`
	Link        string    `xml:"link"`
	Description string    `xml:"description"`
	Items       []rssItem `xml:"item"`
}

type rssItem struct {
	Title       string `xml:"title"`
	Link        string `xml:"link"`
	Description string `xml:"description"`
	Enclosure   *rssEnclosure
	PubDate     string `xml:"pubDate,omitempty"`
	GUID        string `xml:"guid"`
}

type rssEnclosure struct {
	XMLName xml.Name `xml:"enclosure"`
	URL     string   `xml:"url,attr"`
	Type    string   `xml:"type,attr"`
	Length  int64    `xml:"length,attr"`
}

// WriteFeed writes an RSS 2.0 feed with one item per project, in the order
// given. Each item links the gallery page and carries the cover as enclosure
// when the cover file exists under the media dir.
func (a *App) WriteFeed(w io.Writer, projects []ProjectSummary) error {
	base := a.Config.URL
	items := make([]rssItem, 0, len(projects))
	for _, p := range projects {
		link := BuildURL(base, a.Config.ProjectsDir, p.Slug+".html")
		item := rssItem{
			Title:       p.Title,
			Link:        link,
			Description: p.Description,
			GUID:        link,
		}
		if !p.GeneratedAt.IsZero() {
			item.PubDate = p.GeneratedAt.Format(time.RFC1123Z)
		}
		if p.Cover != "" {
			// RSS requires the enclosure length, so covers missing on disk get none.
			if fi, err := os.Stat(a.coverPath(p.Cover)); err == nil {
				item.Enclosure = &rssEnclosure{
					URL:    BuildURL(base, a.Config.MediaDir, p.Cover),
					Type:   coverMIMEType(p.Cover),
					Length: fi.Size(),
				}
			}
		}
		items = append(items, item)
	}
	feed := rssXML{
		Version: "2.0",
		Channel: rssChannel{
			Title:       a.Config.Name,
			Link:        BuildURL(base),
			Description: "Photography projects by " + a.Config.Author,
			Items:       items,
		},
	}
	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	return xml.NewEncoder(w).Encode(feed)
}

// Feed writes the project feed from the manifest, newest first.
func (a *App) Feed(w io.Writer) error {
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
	return a.WriteFeed(w, projects)
}

func coverMIMEType(name string) string {
	switch strings.ToLower(path.Ext(name)) {
	case ".png":
		return "image/png"
	case ".gif":
		return "image/gif"
	case ".webp":
		return "image/webp"
	default:
		return "image/jpeg"
	}
}
