package http

import (
	"bytes"
	"fmt"
	"html"
	"net/http"
	"strings"

	"github.com/3-lines-studio/flashlearn/internal/core"
	"github.com/3-lines-studio/flashlearn/internal/ctxlog"
	"github.com/3-lines-studio/flashlearn/internal/render"
)

const notFoundTitle = "Page not found"

const notFoundKey = "\x00not-found"

// PageHandler serves every page in a route table. The host router decides
// which requests reach it; the handler still consults the table so a request
// it is handed for an unknown path gets the not-found page.
type PageHandler struct {
	table    *core.RouteTable
	renderer *render.Renderer
	isDev    bool
	cache    *renderCache
}

func NewPageHandler(table *core.RouteTable, renderer *render.Renderer, isDev bool) *PageHandler {
	return &PageHandler{
		table:    table,
		renderer: renderer,
		isDev:    isDev,
		cache:    newRenderCache(),
	}
}

func (h *PageHandler) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	decision := core.DecideRoute(h.table, core.RouteRequest{
		Method: req.Method,
		Path:   req.URL.Path,
	})

	switch decision.Action {
	case core.ActionRenderPage:
		h.servePage(w, req, decision.Entry)

	case core.ActionMethodNotAllowed:
		h.ServeMethodNotAllowed(w, req)

	default:
		h.ServeNotFound(w, req)
	}
}

// ServeNotFound writes the rendered not-found page with a 404 status.
func (h *PageHandler) ServeNotFound(w http.ResponseWriter, req *http.Request) {
	page, err := h.render(notFoundKey, render.Page{Title: notFoundTitle}, core.NotFoundPage)
	if err != nil {
		h.serveError(w, req, err)
		return
	}
	h.write(w, req, http.StatusNotFound, page)
}

func (h *PageHandler) ServeMethodNotAllowed(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Allow", strings.Join(core.AllowedMethods, ", "))
	http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
}

// Render returns the document for a route entry, using the cache outside
// dev mode.
func (h *PageHandler) Render(entry core.RouteEntry) ([]byte, error) {
	page, err := h.render(entry.Path, render.Page{Title: entry.Title, Path: entry.Path}, entry.Component)
	if err != nil {
		return nil, err
	}
	return page.body, nil
}

func (h *PageHandler) RenderNotFound() ([]byte, error) {
	page, err := h.render(notFoundKey, render.Page{Title: notFoundTitle}, core.NotFoundPage)
	if err != nil {
		return nil, err
	}
	return page.body, nil
}

func (h *PageHandler) servePage(w http.ResponseWriter, req *http.Request, entry core.RouteEntry) {
	page, err := h.render(entry.Path, render.Page{Title: entry.Title, Path: entry.Path}, entry.Component)
	if err != nil {
		h.serveError(w, req, err)
		return
	}

	if core.ETagMatches(req.Header.Get("If-None-Match"), page.etag) {
		w.Header().Set("ETag", page.etag)
		w.WriteHeader(http.StatusNotModified)
		return
	}

	h.write(w, req, http.StatusOK, page)
}

func (h *PageHandler) render(key string, page render.Page, component core.Component) (renderedPage, error) {
	if !h.isDev {
		if cached, ok := h.cache.get(key); ok {
			return cached, nil
		}
	}

	body, err := h.renderer.Bytes(page, component())
	if err != nil {
		return renderedPage{}, fmt.Errorf("render %s: %w", key, err)
	}

	rendered := renderedPage{body: body, etag: core.ETag(body)}
	if !h.isDev {
		h.cache.set(key, rendered)
	}
	return rendered, nil
}

func (h *PageHandler) write(w http.ResponseWriter, req *http.Request, status int, page renderedPage) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("ETag", page.etag)
	if h.isDev {
		w.Header().Set("Cache-Control", "no-cache")
	}
	w.WriteHeader(status)

	if req.Method == http.MethodHead {
		return
	}
	_, _ = w.Write(page.body)
}

func (h *PageHandler) serveError(w http.ResponseWriter, req *http.Request, err error) {
	ctxlog.FromContext(req.Context()).Error("page.render_failed", "path", req.URL.Path, "error", err)

	data := core.ErrorData{
		Status:  http.StatusInternalServerError,
		Message: err.Error(),
		IsDev:   h.isDev,
	}

	var buf bytes.Buffer
	if err := core.ErrorTemplate.Execute(&buf, data); err != nil {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("<!doctype html><html><body><pre>" + html.EscapeString(data.Message) + "</pre></body></html>"))
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusInternalServerError)
	_, _ = w.Write(buf.Bytes())
}
