// Package scaffold writes a starter pubfolio site: the two hub documents with
// their insertion anchors in place, a stylesheet, a config file and the empty
// media and gallery folders.
package scaffold

import (
	"embed"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"text/template"
)

// Templates contains all scaffold template files.
// Files use Go text/template syntax and have a .tmpl suffix. Data is HTML
// escaped for .html.tmpl files; html/template is not used because it strips
// the comment marker portfolio.html needs.
//
//go:embed all:templates
var Templates embed.FS

// Data holds the template variables passed to every scaffold template.
type Data struct {
	SiteName string
	SiteURL  string
	Author   string
	Year     int
}

func (d Data) htmlEscaped() Data {
	d.SiteName = template.HTMLEscapeString(d.SiteName)
	d.SiteURL = template.HTMLEscapeString(d.SiteURL)
	d.Author = template.HTMLEscapeString(d.Author)
	return d
}

// emptyDirs are created in every new site.
var emptyDirs = []string{
	filepath.Join("media", "projects"),
	"projects",
	"data",
}

// renames maps template base names to the file names written to disk.
var renames = map[string]string{
	"dotpubfolio.yaml": ".pubfolio.yaml",
	"dotenv":           ".env.example",
}

// Write renders the starter site into dir, which must not already exist.
// Each created path is reported on out.
func Write(dir string, data Data, out io.Writer) error {
	if _, err := os.Stat(dir); err == nil {
		return fmt.Errorf("directory %q already exists", dir)
	}

	root := "templates"
	err := fs.WalkDir(Templates, root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		relPath, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		outPath := strings.TrimSuffix(filepath.Join(dir, relPath), ".tmpl")
		if name, ok := renames[filepath.Base(outPath)]; ok {
			outPath = filepath.Join(filepath.Dir(outPath), name)
		}

		if d.IsDir() {
			return os.MkdirAll(outPath, 0o755)
		}

		content, err := Templates.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read %s: %w", path, err)
		}
		tmpl, err := template.New(filepath.Base(path)).Parse(string(content))
		if err != nil {
			return fmt.Errorf("parse template %s: %w", path, err)
		}
		if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
			return err
		}
		f, err := os.Create(outPath)
		if err != nil {
			return fmt.Errorf("create %s: %w", outPath, err)
		}
		defer f.Close()

		vars := data
		if strings.HasSuffix(path, ".html.tmpl") {
			vars = data.htmlEscaped()
		}
		if err := tmpl.Execute(f, vars); err != nil {
			return fmt.Errorf("execute template %s: %w", path, err)
		}
		fmt.Fprintf(out, "  created %s\n", outPath)
		return nil
	})
	if err != nil {
		return err
	}

	for _, d := range emptyDirs {
		p := filepath.Join(dir, d)
		if err := os.MkdirAll(p, 0o755); err != nil {
			return err
		}
		fmt.Fprintf(out, "  created %s%c\n", p, filepath.Separator)
	}
	return nil
}
