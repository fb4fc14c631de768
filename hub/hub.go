// Package hub reads and rewrites the two hub documents of a portfolio site:
// portfolio.html, which lists every project card newest first, and
// index.html, whose recent-projects section mirrors the first few cards.
//
// Both documents are hand-edited HTML, so writes are text splices anchored on
// fixed markers and leave every other byte of the document untouched. Reads
// go through an HTML parser.
package hub

import (
	"errors"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Marker is the comment in portfolio.html after which new cards are inserted.
const Marker = "<!-- Duplicate and customize these for each of your shoots/trips -->\n"

var (
	// ErrMarkerNotFound is returned by InsertCard when the document has no Marker.
	ErrMarkerNotFound = errors.New("could not find insertion point in portfolio")

	// ErrSectionNotFound is returned by ReplaceRecent when the recent-projects
	// section anchors do not match.
	ErrSectionNotFound = errors.New("could not find recent projects section")
)

// recentSection matches the homepage section in three parts: the opening
// anchor, the card content, and the closing anchor with the "view all" block.
// Whitespace around the content belongs to no part, so rendered cards keep
// their own indentation and repeated syncs produce the same document.
var recentSection = regexp.MustCompile(`(?s)` +
	`(<section class="portfolio fade-in" id="recent-projects">\s*<div class="wrap">)\s*` +
	`(.*?)\s*` +
	`(</div>\s*<div style="text-align: center; margin-top: 20px; margin-bottom: 20px;">.*?</div>\s*</section>)`)

const (
	projectHrefPrefix = "projects/"
	mediaSrcPrefix    = "media/projects/"
)

// Card is a project card as found in portfolio.html.
type Card struct {
	Slug        string
	Title       string
	Description string
	Cover       string // relative to media/projects
}

// ParseCards returns the project cards of a portfolio document in document
// order, at most limit of them (all when limit <= 0). A card is an anchor
// whose href starts with "projects/" and whose class starts with
// "project-card", with an <img> from media/projects as its first element.
func ParseCards(doc string, limit int) ([]Card, error) {
	d, err := goquery.NewDocumentFromReader(strings.NewReader(doc))
	if err != nil {
		return nil, err
	}
	var cards []Card
	d.Find(`a[href^="projects/"][class^="project-card"]`).EachWithBreak(func(_ int, s *goquery.Selection) bool {
		img := s.Children().First()
		if goquery.NodeName(img) != "img" {
			return true
		}
		src, _ := img.Attr("src")
		if !strings.HasPrefix(src, mediaSrcPrefix) {
			return true
		}
		href, _ := s.Attr("href")
		slug := strings.TrimSuffix(strings.TrimPrefix(href, projectHrefPrefix), ".html")
		title, _ := img.Attr("alt")
		if title == "" {
			title = TitleizeSlug(slug)
		}
		cards = append(cards, Card{
			Slug:        slug,
			Title:       title,
			Description: strings.TrimSpace(s.Find(".overlay-text p").First().Text()),
			Cover:       strings.TrimPrefix(src, mediaSrcPrefix),
		})
		return limit <= 0 || len(cards) < limit
	})
	return cards, nil
}

// InsertCard places fragment right after the first Marker, separated by a
// blank line, so it becomes the first card of the portfolio.
func InsertCard(doc, fragment string) (string, error) {
	i := strings.Index(doc, Marker)
	if i < 0 {
		return doc, ErrMarkerNotFound
	}
	at := i + len(Marker)
	return doc[:at] + "\n" + fragment + doc[at:], nil
}

// ReplaceRecent swaps the content of the recent-projects section for cards,
// keeping both anchors and the "view all" block.
func ReplaceRecent(doc, cards string) (string, error) {
	m := recentSection.FindStringSubmatchIndex(doc)
	if m == nil {
		return doc, ErrSectionNotFound
	}
	// m[2:4] opening anchor, m[4:6] content, m[6:8] closing anchor.
	return doc[:m[3]] + "\n" + cards + "\n\n   " + doc[m[6]:], nil
}

// TitleizeSlug turns a folder slug into a display title: "point_reyes" -> "Point Reyes".
func TitleizeSlug(slug string) string {
	return cases.Title(language.English).String(strings.ReplaceAll(slug, "_", " "))
}
