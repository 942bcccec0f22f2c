package flashlearn

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/go-chi/chi/v5"

	"github.com/3-lines-studio/flashlearn/internal/core"
)

func newTestApp(t *testing.T, opts ...Option) *App {
	t.Helper()
	opts = append([]Option{WithDev(false), WithLogger(slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)))}, opts...)
	app, err := New(opts...)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return app
}

func TestHandlerRoutes(t *testing.T) {
	handler := newTestApp(t).Handler()

	tests := []struct {
		name       string
		method     string
		path       string
		wantStatus int
		wantBody   string
	}{
		{"landing", http.MethodGet, "/", http.StatusOK, "Get Started Free"},
		{"landing head", http.MethodHead, "/", http.StatusOK, ""},
		{"unknown path", http.MethodGet, "/dashboard", http.StatusNotFound, "Page not found"},
		{"post landing", http.MethodPost, "/", http.StatusMethodNotAllowed, ""},
		{"stylesheet", http.MethodGet, "/assets/site.css", http.StatusOK, ".feature-grid"},
		{"favicon", http.MethodGet, "/assets/favicon.svg", http.StatusOK, "<svg"},
		{"missing asset", http.MethodGet, "/assets/missing.css", http.StatusNotFound, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Fatalf("Expected %d, got %d", tt.wantStatus, rec.Code)
			}
			if tt.wantBody != "" && !strings.Contains(rec.Body.String(), tt.wantBody) {
				t.Errorf("Expected body to contain %q", tt.wantBody)
			}
		})
	}
}

func TestHandlerLogsRequestID(t *testing.T) {
	var logs bytes.Buffer
	handler := newTestApp(t, WithLogger(slog.New(slog.NewTextHandler(&logs, nil)))).Handler()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-Id", "abc-123")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}
	if !strings.Contains(logs.String(), "request_id=abc-123") {
		t.Errorf("Expected request id in log line, got %q", logs.String())
	}
	if !strings.Contains(logs.String(), "msg=http.request") {
		t.Errorf("Expected http.request log line, got %q", logs.String())
	}
}

func TestWrapRegistersCustomRoutes(t *testing.T) {
	about := func() core.Node {
		return core.Region(core.RolePage, core.Text(core.RoleHeading, "About us"))
	}

	app := newTestApp(t, WithRoutes(
		Page("/", "landing", core.LandingPage),
		Page("/about", "about", about),
	))

	r := chi.NewRouter()
	handler := app.Wrap(r)

	for path, want := range map[string]string{
		"/":       "Get Started Free",
		"/about":  "About us",
		"/about/": "About us",
	} {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))

		if rec.Code != http.StatusOK {
			t.Errorf("%s: expected 200, got %d", path, rec.Code)
			continue
		}
		if !strings.Contains(rec.Body.String(), want) {
			t.Errorf("%s: expected body to contain %q", path, want)
		}
	}
}

func TestTrailingSlashPointsAtCanonicalPath(t *testing.T) {
	app := newTestApp(t, WithRoutes(
		Page("/", "landing", core.LandingPage),
		Page("/about", "about", core.LandingPage),
	))
	handler := app.Handler()

	for _, path := range []string{"/about", "/about/"} {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))

		if rec.Code != http.StatusOK {
			t.Fatalf("%s: expected 200, got %d", path, rec.Code)
		}
		if !strings.Contains(rec.Body.String(), `<link rel="canonical" href="/about">`) {
			t.Errorf("%s: expected canonical link to /about", path)
		}
	}
}

func TestWithAssetsOverridesEmbedded(t *testing.T) {
	app := newTestApp(t, WithAssets(fstest.MapFS{
		"site.css": {Data: []byte("body{color:red}")},
	}))

	rec := httptest.NewRecorder()
	app.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/assets/site.css", nil))

	if rec.Body.String() != "body{color:red}" {
		t.Errorf("Expected custom stylesheet, got %q", rec.Body.String())
	}
}
