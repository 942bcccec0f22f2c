package core

import (
	"net/http"
	"testing"
)

func TestDecideRoute(t *testing.T) {
	table := DefaultRoutes()

	tests := []struct {
		name       string
		req        RouteRequest
		wantAction RouteAction
		wantStatus int
	}{
		{"GET root", RouteRequest{Method: http.MethodGet, Path: "/"}, ActionRenderPage, http.StatusOK},
		{"HEAD root", RouteRequest{Method: http.MethodHead, Path: "/"}, ActionRenderPage, http.StatusOK},
		{"no method", RouteRequest{Path: "/"}, ActionRenderPage, http.StatusOK},
		{"POST root", RouteRequest{Method: http.MethodPost, Path: "/"}, ActionMethodNotAllowed, http.StatusMethodNotAllowed},
		{"unknown path", RouteRequest{Method: http.MethodGet, Path: "/dashboard"}, ActionNotFound, http.StatusNotFound},
		{"POST unknown path", RouteRequest{Method: http.MethodPost, Path: "/dashboard"}, ActionNotFound, http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DecideRoute(table, tt.req)
			if got.Action != tt.wantAction {
				t.Errorf("Action = %s, want %s", got.Action, tt.wantAction)
			}
			if got.Status != tt.wantStatus {
				t.Errorf("Status = %d, want %d", got.Status, tt.wantStatus)
			}
		})
	}
}

func TestDecideRouteCarriesEntry(t *testing.T) {
	got := DecideRoute(DefaultRoutes(), RouteRequest{Method: http.MethodGet, Path: "/"})
	if got.Entry.Name != "landing" {
		t.Errorf("Expected landing entry, got %q", got.Entry.Name)
	}
}
