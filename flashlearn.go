// Package flashlearn serves the FlashLearn marketing site: a landing page
// composed as a typed view tree and a route table that a host router mounts.
package flashlearn

import (
	"io/fs"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/3-lines-studio/flashlearn/internal/adapters/env"
	adapthttp "github.com/3-lines-studio/flashlearn/internal/adapters/http"
	"github.com/3-lines-studio/flashlearn/internal/assets"
	"github.com/3-lines-studio/flashlearn/internal/core"
	"github.com/3-lines-studio/flashlearn/internal/render"
)

type Route = core.RouteEntry

type Component = core.Component

type DocumentConfig = render.DocumentConfig

var (
	ErrDuplicateRoute   = core.ErrDuplicateRoute
	ErrInvalidRoutePath = core.ErrInvalidRoutePath
	ErrNilComponent     = core.ErrNilComponent
)

type App struct {
	table    *core.RouteTable
	tableErr error
	renderer *render.Renderer
	pages    *adapthttp.PageHandler
	assets   fs.FS
	isDev    bool
	logger   *slog.Logger
	doc      DocumentConfig
}

type Option func(*App)

func Page(path, name string, component Component) Route {
	return Route{
		Path:      path,
		Name:      name,
		Component: component,
	}
}

// WithRoutes replaces the default route table.
func WithRoutes(routes ...Route) Option {
	return func(a *App) {
		a.table, a.tableErr = core.NewRouteTable(routes...)
	}
}

func WithDev(dev bool) Option {
	return func(a *App) {
		a.isDev = dev
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(a *App) {
		if logger != nil {
			a.logger = logger
		}
	}
}

func WithAssets(fsys fs.FS) Option {
	return func(a *App) {
		if fsys != nil {
			a.assets = fsys
		}
	}
}

func WithDocument(doc DocumentConfig) Option {
	return func(a *App) {
		a.doc = doc
	}
}

func DefaultDocument() DocumentConfig {
	return DocumentConfig{
		Lang:           "en",
		SiteTitle:      "FlashLearn",
		Description:    "Upload any PDF and let our AI create perfect study materials.",
		StylesheetHref: assets.Href(assets.StylesheetFile),
		FaviconHref:    assets.Href(assets.FaviconFile),
	}
}

func New(opts ...Option) (*App, error) {
	app := &App{
		isDev:  env.DetectMode() == core.ModeDev,
		assets: assets.FS(),
		logger: slog.Default(),
		doc:    DefaultDocument(),
	}

	for _, opt := range opts {
		opt(app)
	}

	if app.tableErr != nil {
		return nil, app.tableErr
	}
	if app.table == nil {
		app.table = core.DefaultRoutes()
	}

	app.renderer = render.NewRenderer(app.doc)
	app.pages = adapthttp.NewPageHandler(app.table, app.renderer, app.isDev)

	return app, nil
}

// Wrap registers every route and the asset mount on r. Requests chi cannot
// route fall through to the route table, which answers with the not-found
// page or 405.
func (a *App) Wrap(r chi.Router) http.Handler {
	for _, route := range a.table.Entries() {
		r.Method(http.MethodGet, route.Path, a.pages)
		r.Method(http.MethodHead, route.Path, a.pages)
	}

	assetHandler := adapthttp.NewAssetHandler(a.assets, a.isDev)
	r.Handle(assets.Prefix+"*", http.StripPrefix(strings.TrimSuffix(assets.Prefix, "/"), assetHandler))

	r.NotFound(a.pages.ServeHTTP)
	r.MethodNotAllowed(a.pages.ServeMethodNotAllowed)

	return r
}

// Handler returns a chi router with request id, logging and panic recovery
// middleware in front of the site.
func (a *App) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(adapthttp.RequestLogger(a.logger))
	r.Use(middleware.Recoverer)
	return a.Wrap(r)
}

// Render returns the document and status a GET for path would produce.
func (a *App) Render(path string) ([]byte, int, error) {
	decision := core.DecideRoute(a.table, core.RouteRequest{Method: http.MethodGet, Path: path})
	if decision.Action == core.ActionRenderPage {
		body, err := a.pages.Render(decision.Entry)
		return body, http.StatusOK, err
	}

	body, err := a.pages.RenderNotFound()
	return body, http.StatusNotFound, err
}

func (a *App) RenderNotFound() ([]byte, error) {
	return a.pages.RenderNotFound()
}

func (a *App) Routes() []Route {
	return a.table.Entries()
}

func (a *App) Assets() fs.FS {
	return a.assets
}

func (a *App) IsDev() bool {
	return a.isDev
}
