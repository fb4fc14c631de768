package views

import (
	"bytes"
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"
)

// eyeIcon is the overlay icon shared by gallery tiles and homepage cards.
const eyeIcon = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 24 24">` +
	`<path d="M22,12a11.6,11.6,0,0,1-10,6A11.6,11.6,0,0,1,2,12,` +
	`A11.6,11.6,0,0,1,12,6,A11.6,11.6,0,0,1,22,12Z" fill="none" ` +
	`stroke="#fff" stroke-width="1.5"/>` +
	`<circle cx="12" cy="12" r="3" fill="none" stroke="#fff" ` +
	`stroke-width="1.5"/></svg>`

// esc escapes s for use in HTML text and double- or single-quoted attributes.
func esc(s string) string {
	return templ.EscapeString(s)
}

// PortfolioDescription formats a description for a portfolio card:
// "California / Winter 2024" -> "California • Winter 2024".
func PortfolioDescription(desc string) string {
	return strings.ReplaceAll(desc, "/", "•")
}

// component wraps a buffer-filling render function as a templ.Component.
func component(fill func(buf *bytes.Buffer)) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var buf bytes.Buffer
		fill(&buf)
		_, err := w.Write(buf.Bytes())
		return err
	})
}

// String renders c into a string.
func String(ctx context.Context, c templ.Component) (string, error) {
	var buf bytes.Buffer
	if err := c.Render(ctx, &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}
