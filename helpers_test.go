package pubfolio

import "testing"

func TestBuildURL(t *testing.T) {
	tests := []struct {
		base string
		segs []string
		want string
	}{
		{"https://oliverhoward.co", nil, "https://oliverhoward.co/"},
		{"https://oliverhoward.co", []string{"portfolio.html"}, "https://oliverhoward.co/portfolio.html"},
		{"https://oliverhoward.co", []string{"projects", "point_reyes.html"}, "https://oliverhoward.co/projects/point_reyes.html"},
		{"https://example.com/site", []string{"projects"}, "https://example.com/site/projects/"},
	}
	for _, tt := range tests {
		if got := BuildURL(tt.base, tt.segs...); got != tt.want {
			t.Errorf("BuildURL(%q, %v) = %q, want %q", tt.base, tt.segs, got, tt.want)
		}
	}
}

func TestValidSlug(t *testing.T) {
	for _, s := range []string{"point_reyes", "iceland-2024", "a"} {
		if !ValidSlug(s) {
			t.Errorf("ValidSlug(%q) = false", s)
		}
	}
	for _, s := range []string{"", ".", "..", "a/b", `a\b`, "../etc"} {
		if ValidSlug(s) {
			t.Errorf("ValidSlug(%q) = true", s)
		}
	}
}
