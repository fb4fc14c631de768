package views

import (
	"bytes"
	"strconv"

	"github.com/a-h/templ"
)

// NotFound renders the preview server's 404 page.
func NotFound(site Site) templ.Component {
	return statusPage(site, 404, "Page not found", "There is nothing at this address.")
}

// ServerError renders the preview server's 500 page.
func ServerError(site Site) templ.Component {
	return statusPage(site, 500, "Something went wrong", "The page could not be rendered.")
}

func statusPage(site Site, code int, heading, body string) templ.Component {
	return component(func(buf *bytes.Buffer) {
		buf.WriteString("<!DOCTYPE html>\n<html lang=\"en\">\n<head>\n  <meta charset=\"UTF-8\">\n  <title>")
		buf.WriteString(strconv.Itoa(code))
		buf.WriteString(" | ")
		buf.WriteString(esc(site.Name))
		buf.WriteString("</title>\n  <link rel=\"stylesheet\" href=\"/css/style.css\">\n</head>\n<body>\n  <main class=\"wrap\">\n    <h1>")
		buf.WriteString(esc(heading))
		buf.WriteString("</h1>\n    <p>")
		buf.WriteString(esc(body))
		buf.WriteString("</p>\n    <p><a href=\"/\">Back to ")
		buf.WriteString(esc(site.Name))
		buf.WriteString("</a></p>\n  </main>\n</body>\n</html>\n")
	})
}
