package main

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// TestNewRootCmd tests the root command creation.
func TestNewRootCmd(t *testing.T) {
	t.Parallel()

	cmd := NewRootCmd()

	t.Run("has correct use", func(t *testing.T) {
		t.Parallel()
		if cmd.Use != "pubfolio" {
			t.Errorf("expected use 'pubfolio', got %q", cmd.Use)
		}
	})

	t.Run("has version", func(t *testing.T) {
		t.Parallel()
		if cmd.Version == "" {
			t.Error("expected non-empty version")
		}
	})

	t.Run("has global flags", func(t *testing.T) {
		t.Parallel()
		for name, short := range map[string]string{"config": "c", "root": "r", "verbose": "v"} {
			flag := cmd.PersistentFlags().Lookup(name)
			if flag == nil {
				t.Errorf("expected %s flag", name)
				continue
			}
			if flag.Shorthand != short {
				t.Errorf("%s: expected shorthand %q, got %q", name, short, flag.Shorthand)
			}
		}
	})

	t.Run("has subcommands", func(t *testing.T) {
		t.Parallel()
		want := map[string]bool{
			"generate": false, "sync": false, "new": false, "serve": false,
			"projects": false, "sitemap": false, "feed": false, "version": false,
		}
		for _, sub := range cmd.Commands() {
			if _, ok := want[sub.Name()]; ok {
				want[sub.Name()] = true
			}
		}
		for name, found := range want {
			if !found {
				t.Errorf("expected %s subcommand", name)
			}
		}
	})

	t.Run("silences usage and errors", func(t *testing.T) {
		t.Parallel()
		if !cmd.SilenceUsage {
			t.Error("expected SilenceUsage to be true")
		}
		if !cmd.SilenceErrors {
			t.Error("expected SilenceErrors to be true")
		}
	})
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func writePNG(t *testing.T, path string, w, h int) {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: 120, A: 255})
		}
	}
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
}

// TestSiteWorkflow scaffolds a site, generates a project and syncs it.
func TestSiteWorkflow(t *testing.T) {
	site := filepath.Join(t.TempDir(), "site")

	if _, err := run(t, "new", site, "--name", "Jane Doe", "--url", "https://jane.example"); err != nil {
		t.Fatalf("new: %v", err)
	}

	if _, err := run(t, "--root", site, "sync"); err == nil {
		t.Fatal("sync on an empty portfolio should fail")
	}

	media := filepath.Join(site, "media", "projects", "point_reyes")
	if err := os.MkdirAll(media, 0o755); err != nil {
		t.Fatal(err)
	}
	writePNG(t, filepath.Join(media, "a.png"), 120, 80)
	writePNG(t, filepath.Join(media, "b.png"), 80, 120)

	out, err := run(t, "--root", site, "generate", "point_reyes", "Point Reyes", "California / Winter 2024", "--size", "60")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if !strings.Contains(out, "Found 2 images") {
		t.Errorf("generate output = %q", out)
	}

	gallery, err := os.ReadFile(filepath.Join(site, "projects", "point_reyes.html"))
	if err != nil {
		t.Fatalf("gallery not written: %v", err)
	}
	if !strings.Contains(string(gallery), `width="60" height="40"`) {
		t.Errorf("gallery missing 60x40 thumbnail of a.png")
	}

	index, _ := os.ReadFile(filepath.Join(site, "index.html"))
	if !strings.Contains(string(index), `<a href="projects/point_reyes.html" class="single-image landscape animatelink"`) {
		t.Errorf("homepage not synced:\n%s", index)
	}

	out, err = run(t, "--root", site, "projects")
	if err != nil {
		t.Fatalf("projects: %v", err)
	}
	if !strings.Contains(out, "point_reyes") || !strings.Contains(out, "Point Reyes") {
		t.Errorf("projects output = %q", out)
	}

	out, err = run(t, "--root", site, "sitemap", "-o", "-")
	if err != nil {
		t.Fatalf("sitemap: %v", err)
	}
	if !strings.Contains(out, "<loc>https://jane.example/projects/point_reyes.html</loc>") {
		t.Errorf("sitemap output = %q", out)
	}
}

func TestGenerateArgs(t *testing.T) {
	t.Parallel()
	if _, err := run(t, "generate", "only_slug"); err == nil {
		t.Error("expected error for missing title")
	}
	if _, err := run(t, "generate", "a", "A", "--quality", "101"); err == nil {
		t.Error("expected error for quality out of range")
	}
}
