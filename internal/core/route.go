package core

import (
	"errors"
	"fmt"
)

var (
	ErrDuplicateRoute = errors.New("duplicate route")
	ErrNilComponent   = errors.New("route has no component")
)

// Component produces the view tree for a page. Components are pure: calling
// one twice yields equal trees.
type Component func() Node

type RouteEntry struct {
	Path string
	Name string
	// Title is the document title for the page; empty means the site title.
	Title     string
	Component Component
}

// RouteTable maps exact, normalized paths to page components. It is built
// once and never modified afterwards.
type RouteTable struct {
	entries []RouteEntry
	byPath  map[string]int
}

func NewRouteTable(entries ...RouteEntry) (*RouteTable, error) {
	t := &RouteTable{
		entries: make([]RouteEntry, 0, len(entries)),
		byPath:  make(map[string]int, len(entries)),
	}

	for _, entry := range entries {
		if err := ValidateRoutePath(entry.Path); err != nil {
			return nil, err
		}
		if entry.Component == nil {
			return nil, fmt.Errorf("%w: %s", ErrNilComponent, entry.Path)
		}

		path := NormalizePath(entry.Path)
		if _, exists := t.byPath[path]; exists {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateRoute, path)
		}

		entry.Path = path
		t.byPath[path] = len(t.entries)
		t.entries = append(t.entries, entry)
	}

	return t, nil
}

// Match returns the entry registered for exactly this path, after
// normalization. There is no prefix or pattern matching.
func (t *RouteTable) Match(path string) (RouteEntry, bool) {
	if t == nil {
		return RouteEntry{}, false
	}
	i, ok := t.byPath[NormalizePath(path)]
	if !ok {
		return RouteEntry{}, false
	}
	return t.entries[i], true
}

func (t *RouteTable) Entries() []RouteEntry {
	if t == nil {
		return nil
	}
	out := make([]RouteEntry, len(t.entries))
	copy(out, t.entries)
	return out
}

// DefaultRoutes is the application's route table.
func DefaultRoutes() *RouteTable {
	t, err := NewRouteTable(
		RouteEntry{Path: "/", Name: "landing", Component: LandingPage},
	)
	if err != nil {
		panic(fmt.Sprintf("flashlearn: default routes: %v", err))
	}
	return t
}
