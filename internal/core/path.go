package core

import (
	"errors"
	"fmt"
	"strings"
)

var ErrInvalidRoutePath = errors.New("invalid route path")

func NormalizePath(path string) string {
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	if path != "/" && strings.HasSuffix(path, "/") {
		path = strings.TrimSuffix(path, "/")
	}
	return path
}

func ValidateRoutePath(path string) error {
	if path == "" {
		return fmt.Errorf("%w: path cannot be empty", ErrInvalidRoutePath)
	}

	if !strings.HasPrefix(path, "/") {
		return fmt.Errorf("%w: %q must start with /", ErrInvalidRoutePath, path)
	}

	if strings.Contains(path, "?") {
		return fmt.Errorf("%w: %q cannot contain query string", ErrInvalidRoutePath, path)
	}

	if strings.Contains(path, "#") {
		return fmt.Errorf("%w: %q cannot contain fragment", ErrInvalidRoutePath, path)
	}

	if strings.Contains(path, "..") {
		return fmt.Errorf("%w: %q cannot contain parent directory references", ErrInvalidRoutePath, path)
	}

	if strings.Contains(path, "*") || strings.Contains(path, "{") {
		return fmt.Errorf("%w: %q cannot contain wildcards or parameters", ErrInvalidRoutePath, path)
	}

	return nil
}

// ExportFileForPath maps a route path to the file a static export writes it
// to: "/" -> "index.html", "/about" -> "about/index.html".
func ExportFileForPath(path string) string {
	path = NormalizePath(path)
	if path == "/" {
		return "index.html"
	}
	return strings.TrimPrefix(path, "/") + "/index.html"
}
