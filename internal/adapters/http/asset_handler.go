package http

import (
	"io/fs"
	"net/http"
	"strings"

	"github.com/3-lines-studio/flashlearn/internal/core"
)

// AssetHandler serves static files from fsys. The request path must already
// have the mount prefix stripped.
type AssetHandler struct {
	fsys  fs.FS
	isDev bool
}

func NewAssetHandler(fsys fs.FS, isDev bool) http.Handler {
	return &AssetHandler{
		fsys:  fsys,
		isDev: isDev,
	}
}

func (h *AssetHandler) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	if req.Method != http.MethodGet && req.Method != http.MethodHead {
		w.Header().Set("Allow", strings.Join(core.AllowedMethods, ", "))
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	path := strings.TrimPrefix(req.URL.Path, "/")
	if path == "" || !fs.ValidPath(path) {
		http.NotFound(w, req)
		return
	}

	info, err := fs.Stat(h.fsys, path)
	if err != nil || info.IsDir() {
		http.NotFound(w, req)
		return
	}

	data, err := fs.ReadFile(h.fsys, path)
	if err != nil {
		http.NotFound(w, req)
		return
	}

	etag := core.ETag(data)
	w.Header().Set("ETag", etag)
	if h.isDev {
		w.Header().Set("Cache-Control", "no-cache")
	} else {
		w.Header().Set("Cache-Control", "public, max-age=86400")
	}

	if core.ETagMatches(req.Header.Get("If-None-Match"), etag) {
		w.WriteHeader(http.StatusNotModified)
		return
	}

	w.Header().Set("Content-Type", core.GetContentType(path))
	w.WriteHeader(http.StatusOK)
	if req.Method == http.MethodHead {
		return
	}
	_, _ = w.Write(data)
}
