package core

import (
	"errors"
	"testing"
)

func TestNormalizePath(t *testing.T) {
	tests := map[string]string{
		"":        "/",
		"/":       "/",
		"about":   "/about",
		"/about/": "/about",
		"/a/b":    "/a/b",
	}

	for in, want := range tests {
		if got := NormalizePath(in); got != want {
			t.Errorf("NormalizePath(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestValidateRoutePath(t *testing.T) {
	valid := []string{"/", "/about", "/a/b"}
	for _, p := range valid {
		if err := ValidateRoutePath(p); err != nil {
			t.Errorf("ValidateRoutePath(%q) = %v, want nil", p, err)
		}
	}

	invalid := []string{"", "about", "/a?b=1", "/a#top", "/../etc", "/blog/*", "/blog/{id}"}
	for _, p := range invalid {
		if err := ValidateRoutePath(p); !errors.Is(err, ErrInvalidRoutePath) {
			t.Errorf("ValidateRoutePath(%q) = %v, want ErrInvalidRoutePath", p, err)
		}
	}
}

func TestExportFileForPath(t *testing.T) {
	tests := map[string]string{
		"/":          "index.html",
		"/about":     "about/index.html",
		"/about/":    "about/index.html",
		"/docs/help": "docs/help/index.html",
	}

	for in, want := range tests {
		if got := ExportFileForPath(in); got != want {
			t.Errorf("ExportFileForPath(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestGetContentType(t *testing.T) {
	tests := map[string]string{
		"site.css":    "text/css; charset=utf-8",
		"favicon.svg": "image/svg+xml",
		"INDEX.HTML":  "text/html; charset=utf-8",
		"blob":        "application/octet-stream",
	}

	for in, want := range tests {
		if got := GetContentType(in); got != want {
			t.Errorf("GetContentType(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestHashContentStable(t *testing.T) {
	a := HashContent([]byte("hello"))
	b := HashContent([]byte("hello"))
	c := HashContent([]byte("world"))

	if a != b {
		t.Errorf("HashContent not stable: %s != %s", a, b)
	}
	if a == c {
		t.Error("HashContent collided on different input")
	}
	if ETag([]byte("hello")) != `"`+a+`"` {
		t.Errorf("ETag() = %s", ETag([]byte("hello")))
	}
}

func TestETagMatches(t *testing.T) {
	etag := `"abc"`

	tests := []struct {
		header string
		want   bool
	}{
		{`"abc"`, true},
		{`W/"abc"`, true},
		{`"xyz", "abc"`, true},
		{`"xyz",W/"abc"`, true},
		{`*`, true},
		{`"xyz"`, false},
		{``, false},
		{`abc`, false},
	}

	for _, tt := range tests {
		if got := ETagMatches(tt.header, etag); got != tt.want {
			t.Errorf("ETagMatches(%q) = %v, want %v", tt.header, got, tt.want)
		}
	}
}
