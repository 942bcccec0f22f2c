package assets

import (
	"embed"
	"io/fs"
	"os"
)

// Prefix is the URL path static files are served under.
const Prefix = "/assets/"

const (
	StylesheetFile = "site.css"
	FaviconFile    = "favicon.svg"
)

//go:embed static
var staticFS embed.FS

// FS returns the embedded static files rooted at the asset directory.
func FS() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic("assets: " + err.Error())
	}
	return sub
}

// DirFS serves assets from disk, for editing the stylesheet without
// rebuilding. An empty dir falls back to the embedded files.
func DirFS(dir string) fs.FS {
	if dir == "" {
		return FS()
	}
	return os.DirFS(dir)
}

func Href(name string) string {
	return Prefix + name
}

// Files lists every regular file in fsys, slash-separated and relative.
func Files(fsys fs.FS) ([]string, error) {
	var files []string
	err := fs.WalkDir(fsys, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			files = append(files, path)
		}
		return nil
	})
	return files, err
}
