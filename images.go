package pubfolio

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/disintegration/imaging"
	"github.com/rwcarlsen/goexif/exif"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

const (
	defaultThumbnailSize = 800
	defaultJPEGQuality   = 85
	thumbnailsSubdir     = "thumbnails"
	thumbnailSuffix      = "_thumb.jpg"
)

// Cover orientations used as CSS classes on homepage cards.
const (
	OrientationPortrait  = "portrait"
	OrientationLandscape = "landscape"
)

var imageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

// IsImageFile reports whether name has an accepted image extension.
func IsImageFile(name string) bool {
	return imageExtensions[strings.ToLower(filepath.Ext(name))]
}

// ThumbnailName returns the thumbnail filename for a source image.
// "a.png" -> "a_thumb.jpg"
func ThumbnailName(name string) string {
	return strings.TrimSuffix(name, filepath.Ext(name)) + thumbnailSuffix
}

// Inspect reads the pixel dimensions of the image at path. Only the header is
// decoded. JPEG files additionally get their EXIF capture time and camera.
func Inspect(path string) (ImageRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return ImageRecord{}, err
	}
	defer f.Close()

	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		return ImageRecord{}, fmt.Errorf("decode %s: %w", filepath.Base(path), err)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return ImageRecord{}, fmt.Errorf("decode %s: empty image", filepath.Base(path))
	}

	rec := ImageRecord{
		Filename: filepath.Base(path),
		Width:    cfg.Width,
		Height:   cfg.Height,
	}
	ext := strings.ToLower(filepath.Ext(path))
	if ext == ".jpg" || ext == ".jpeg" {
		if _, err := f.Seek(0, 0); err == nil {
			rec.TakenAt, rec.Camera = readExif(f)
		}
	}
	return rec, nil
}

// readExif returns the capture time and camera model, or zero values when the
// file carries no usable EXIF block.
func readExif(f *os.File) (time.Time, string) {
	x, err := exif.Decode(f)
	if err != nil {
		return time.Time{}, ""
	}
	var taken time.Time
	if t, err := x.DateTime(); err == nil {
		taken = t.UTC()
	}
	var camera string
	if tag, err := x.Get(exif.Model); err == nil {
		if s, err := tag.StringVal(); err == nil {
			camera = strings.TrimSpace(s)
		}
	}
	return taken, camera
}

// Orientation classifies the image at path. Images that cannot be decoded
// are reported as landscape along with the decode error.
func Orientation(path string) (string, error) {
	rec, err := Inspect(path)
	if err != nil {
		return OrientationLandscape, err
	}
	if rec.Height > rec.Width {
		return OrientationPortrait, nil
	}
	return OrientationLandscape, nil
}

// thumbnailSize scales (w, h) so the larger side equals bound. The smaller
// side is truncated and never drops below one pixel.
func thumbnailSize(w, h, bound int) (int, int) {
	if w > h {
		nh := int(float64(bound) / float64(w) * float64(h))
		return bound, atLeastOne(nh)
	}
	nw := int(float64(bound) / float64(h) * float64(w))
	return atLeastOne(nw), bound
}

func atLeastOne(n int) int {
	if n < 1 {
		return 1
	}
	return n
}

// flatten composites images with transparency onto an opaque white canvas.
// Opaque images are returned unchanged.
func flatten(img image.Image) image.Image {
	if o, ok := img.(interface{ Opaque() bool }); ok && o.Opaque() {
		return img
	}
	// Palette entries are expanded to NRGBA first so alpha composites per pixel.
	if _, ok := img.(*image.Paletted); ok {
		img = imaging.Clone(img)
	}
	b := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), image.White, image.Point{}, draw.Src)
	draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Over)
	return dst
}

// CreateThumbnail decodes src, flattens transparency onto white, resizes it so
// the larger side equals maxSize, and writes it to dst as JPEG.
func CreateThumbnail(src, dst string, maxSize, quality int) (ThumbnailRecord, error) {
	if maxSize <= 0 {
		maxSize = defaultThumbnailSize
	}
	if quality <= 0 {
		quality = defaultJPEGQuality
	}

	img, err := imaging.Open(src)
	if err != nil {
		return ThumbnailRecord{}, fmt.Errorf("decode image: %w", err)
	}
	img = flatten(img)

	b := img.Bounds()
	w, h := thumbnailSize(b.Dx(), b.Dy(), maxSize)
	resized := imaging.Resize(img, w, h, imaging.Lanczos)

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, resized, imaging.JPEG, imaging.JPEGQuality(quality)); err != nil {
		return ThumbnailRecord{}, fmt.Errorf("encode jpeg: %w", err)
	}
	if err := os.WriteFile(dst, buf.Bytes(), 0o644); err != nil {
		return ThumbnailRecord{}, fmt.Errorf("write thumbnail: %w", err)
	}

	return ThumbnailRecord{
		Path:   thumbnailsSubdir + "/" + filepath.Base(dst),
		Width:  w,
		Height: h,
		Size:   buf.Len(),
	}, nil
}
