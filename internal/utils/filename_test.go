package utils

import "testing"

func TestNormalizeFilename_StripsDeliveryURL(t *testing.T) {
	got := NormalizeFilename("https://cdn.example.com/videos/clip123.mp4")
	if got != "clip123.mp4" {
		t.Fatalf("expected clip123.mp4, got %q", got)
	}
}

func TestNormalizeFilename_KeepsBareName(t *testing.T) {
	got := NormalizeFilename("clip123.mp4")
	if got != "clip123.mp4" {
		t.Fatalf("expected clip123.mp4, got %q", got)
	}
}

func TestNormalizeFilename_Cases(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"whitespace only", "   ", ""},
		{"relative path", "a/b/c.webm", "c.webm"},
		{"backslash path", `videos\posters\frame.jpg`, "frame.jpg"},
		{"trailing slash", "https://cdn.example.com/videos/", ""},
		{"bare slash", "/", ""},
		{"query string ignored", "https://cdn.example.com/v/clip.mp4?sig=abc", "clip.mp4"},
		{"padded", "  clip.mp4  ", "clip.mp4"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := NormalizeFilename(tc.in); got != tc.want {
				t.Fatalf("NormalizeFilename(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}
