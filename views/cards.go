package views

import (
	"bytes"

	"github.com/a-h/templ"
)

// PortfolioCard renders a project card for portfolio.html. The fragment
// starts and ends with a blank line so consecutive insertions stay readable.
func PortfolioCard(c Card) templ.Component {
	return component(func(buf *bytes.Buffer) {
		title := esc(c.Title)
		buf.WriteString(`
             <a href="projects/`)
		buf.WriteString(esc(c.Slug))
		buf.WriteString(`.html" class="project-card animatelink">
                   <img src="media/projects/`)
		buf.WriteString(esc(c.Cover))
		buf.WriteString(`" alt="`)
		buf.WriteString(title)
		buf.WriteString(`"/>
                   <div class="overlay">
                       <div class="overlay-text">
                           <h3 class="project-title">`)
		buf.WriteString(title)
		buf.WriteString(`</h3>
                           <p>`)
		buf.WriteString(esc(PortfolioDescription(c.Description)))
		buf.WriteString(`</p>
                       </div>
                   </div>
               </a>

`)
	})
}

func writeRecentCard(buf *bytes.Buffer, c RecentCard) {
	buf.WriteString(`      <a href="projects/`)
	buf.WriteString(esc(c.Slug))
	buf.WriteString(`.html" class="single-image `)
	buf.WriteString(esc(c.Orientation))
	buf.WriteString(` animatelink" style="background: url('media/projects/`)
	buf.WriteString(esc(c.Cover))
	buf.WriteString(`') center center; background-size: cover;">
         <div class="overlay">
            <h3 class="project-title">`)
	buf.WriteString(esc(c.Title))
	buf.WriteString(`</h3>
         </div>
         `)
	buf.WriteString(eyeIcon)
	buf.WriteString(`
      </a>
`)
}

// RecentCards renders the recent-projects cards separated by blank lines.
func RecentCards(cards []RecentCard) templ.Component {
	return component(func(buf *bytes.Buffer) {
		for i, c := range cards {
			if i > 0 {
				buf.WriteString("\n")
			}
			writeRecentCard(buf, c)
		}
	})
}
