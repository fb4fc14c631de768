package views

import (
	"bytes"
	"strconv"

	"github.com/a-h/templ"
)

// PhotoTile renders one PhotoSwipe gallery item. The thumbnail is the visible
// image with its own intrinsic size; the full-size image and its dimensions
// feed the lightbox.
func PhotoTile(p Photo) templ.Component {
	return component(func(buf *bytes.Buffer) {
		writePhotoTile(buf, p)
	})
}

func writePhotoTile(buf *bytes.Buffer, p Photo) {
	buf.WriteString(`
            <div class="photoswipe-item fade-in">
                <a href="../media/projects/`)
	buf.WriteString(esc(p.Src))
	buf.WriteString(`" itemprop="contentUrl" data-size="`)
	buf.WriteString(strconv.Itoa(p.Width))
	buf.WriteString("x")
	buf.WriteString(strconv.Itoa(p.Height))
	buf.WriteString(`">
                    <img src="../media/projects/`)
	buf.WriteString(esc(p.Thumb))
	buf.WriteString(`" width="`)
	buf.WriteString(strconv.Itoa(p.ThumbWidth))
	buf.WriteString(`" height="`)
	buf.WriteString(strconv.Itoa(p.ThumbHeight))
	buf.WriteString(`"/>
                        <div class="overlay"></div>
                        <svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 24 24">
                        <path d="M22,12a11.6,11.6,0,0,1-10,6A11.6,11.6,0,0,1,2,12,11.6,11.6,0,0,1,12,6,11.6,11.6,0,0,1,22,12Z" fill="none" stroke="#fff" stroke-width="1.5"/>
                        <circle cx="12" cy="12" r="3" fill="none" stroke="#fff" stroke-width="1.5"/>
                    </svg>
                </a>
            </div>
`)
}

// Gallery renders the complete gallery document for a project.
func Gallery(page GalleryPage) templ.Component {
	return component(func(buf *bytes.Buffer) {
		writeGallery(buf, page)
	})
}

func writeGallery(buf *bytes.Buffer, page GalleryPage) {
	title := esc(page.Title)
	slug := esc(page.Slug)
	author := esc(page.Site.Author)
	name := esc(page.Site.Name)
	summary := title + " photography project by " + author + "."

	buf.WriteString(`<!DOCTYPE html>
<html lang="en">
    <head>

        <meta charset="UTF-8" />
		<meta name="viewport" content="width=device-width, initial-scale=1.0, maximum-scale=1.0, user-scalable=no" />

        <title>`)
	buf.WriteString(title)
	buf.WriteString(`</title>
        <meta name="description" content="`)
	buf.WriteString(summary)
	buf.WriteString(`">
                <meta name="robots" content="index, follow">

        <meta property="og:url" content="`)
	buf.WriteString(esc(page.Site.URL))
	buf.WriteString("/projects/")
	buf.WriteString(slug)
	buf.WriteString(`">
        <meta property="og:title" content="`)
	buf.WriteString(title + " - " + name)
	buf.WriteString(`">
        <meta property="og:description" content="`)
	buf.WriteString(summary)
	buf.WriteString(`">
        <meta property="og:site_name" content="`)
	buf.WriteString(name)
	buf.WriteString(`" />
        <meta property="og:type" content="website" />

        <link rel="canonical" href="../projects/`)
	buf.WriteString(slug)
	buf.WriteString(`.html">
`)
	buf.WriteString(galleryHeadAssets)
	buf.WriteString(`
   <section class="default-header">
      <h1>`)
	buf.WriteString(title)
	buf.WriteString(`</h1>
      <p>`)
	buf.WriteString(esc(page.Description))
	buf.WriteString(`</p>
   </section>
`)
	buf.WriteString(galleryBackLink)
	buf.WriteString(`
   <section class="grid">
      <div class="wrap-wide">
         <div class="photoswipe-wrapper fade-in" itemscope itemtype="http://schema.org/ImageGallery">
`)
	for _, p := range page.Photos {
		writePhotoTile(buf, p)
	}
	buf.WriteString(`
         </div>
      </div>
   </section>
`)
	buf.WriteString(photoSwipeScaffold)
	buf.WriteString(`
        <footer>
            <div class="background-image" style="background: url('../media/site/banner.jpg') center center; background-size: cover;"></div>
            <div class="top-fade"></div>
            <div class="left-fade"></div>
            <div class="wrap-text">
                <div class="logo-row"><img src="../assets/img/oliver-howard-logo.png" height="23"/></div>
                <div class="credits-row">
                    <li>© `)
	buf.WriteString(strconv.Itoa(page.Site.Year))
	buf.WriteString(" ")
	buf.WriteString(author)
	buf.WriteString(`</li>
                </div>
            </div>
        </footer>

        </main>
`)
	buf.WriteString(galleryScripts)
}

const galleryHeadAssets = `
        <link rel="icon" type="image/x-icon" href="../assets/img/oliver-howard-logo-black.png">
        <link rel="apple-touch-icon" href="../assets/img/oliver-howard-logo-black.png">

        <link href="../assets/css/normalize.css" rel="stylesheet">
        <link href="../assets/css/navigation.css" rel="stylesheet">
        <link href="../assets/css/photoswipe.css" rel="stylesheet">
        <link href="../assets/css/photoswipe-skin.css" rel="stylesheet">
        <link href="../assets/css/BeerSlider.css" rel="stylesheet">
        <link href="../assets/css/style.css" rel="stylesheet">
    </head>

    <body>
        <div class="overlay-transition"></div>
        <main class="" id="portfolio">
            <div class="black-overlay"></div>
            <div class="navigation-fade"></div>
            <a href="../index.html" class="logo animatelink">
                <img src="../assets/img/oliver-howard-logo.png" height="23"/>
            </a>
            <nav>
                <div class="background-image" style="background: url('../media/site/banner.jpg') center center; background-size: cover;"></div>
                <div class="top-fade"></div>
                <div class="left-fade"></div>
                <ul>
                                    <li class="big-li ">
                        <a href="../index.html" class="animatelink">Homepage</a>
                    </li>
                                    <li class="big-li active">
                        <a href="../portfolio.html" class="animatelink">Portfolio</a>
                    </li>
                                    <li class="big-li ">
                        <a href="../video.html" class="animatelink">Video</a>
                    </li>
                </ul>
            </nav>
            <div class="nav-icon">
                <div class="hamburger-bar"></div>
            </div>
`

const galleryBackLink = `
   <a href="../portfolio.html" class="back-to-portfolio animatelink">
      <svg xmlns="http://www.w3.org/2000/svg" width="16" height="16" viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2" stroke-linecap="round" stroke-linejoin="round">
         <path d="M19 12H5M12 19l-7-7 7-7"/>
      </svg>
      <span>Back to Portfolio</span>
   </a>
`

const photoSwipeScaffold = `   <!-- Root element of PhotoSwipe. Must have class pswp. -->
   <div class="pswp" tabindex="-1" role="dialog" aria-hidden="true">
      <div class="pswp__bg"></div>
      <div class="pswp__scroll-wrap">
         <div class="pswp__container">
            <div class="pswp__item"></div>
            <div class="pswp__item"></div>
            <div class="pswp__item"></div>
         </div>
         <div class="pswp__ui pswp__ui--hidden">
            <div class="pswp__top-bar">
               <div class="pswp__counter"></div>
               <button class="pswp__button pswp__button--close" title="Close (Esc)"><span>Close</span></button>
               <div class="pswp__preloader">
                  <div class="pswp__preloader__icn">
                     <div class="pswp__preloader__cut">
                        <div class="pswp__preloader__donut"></div>
                     </div>
                  </div>
               </div>
            </div>
            <button class="pswp__button pswp__button--arrow--left" title="Previous (arrow left)">
            </button>
            <button class="pswp__button pswp__button--arrow--right" title="Next (arrow right)">
            </button>
            <div class="pswp__caption">
               <div class="pswp__caption__center"></div>
            </div>
         </div>
      </div>
   </div>
`

const galleryScripts = `        <script src="https://ajax.googleapis.com/ajax/libs/jquery/2.1.1/jquery.min.js"></script>
        <script src="https://code.jquery.com/jquery-3.4.1.min.js"></script>
        <script src="https://cdnjs.cloudflare.com/ajax/libs/masonry/4.2.1/masonry.pkgd.js"></script>

        <script src="../assets/js/navigation.js"></script>
        <script src="../assets/js/observers.js"></script>
        <script src="../assets/js/photoswipe.min.js"></script>
        <script src="../assets/js/photoswipe-ui-default.min.js"></script>
        <script src="../assets/js/photoswipe.js"></script>

    </body>
</html>
`
