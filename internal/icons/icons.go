// Package icons holds the inline SVG glyphs referenced by view nodes.
// Glyph names follow the Lucide icon set.
package icons

import "sort"

// ViewBox is shared by every glyph.
const ViewBox = "0 0 24 24"

var glyphs = map[string]string{
	"arrow-right": `<path d="M5 12h14"/><path d="m12 5 7 7-7 7"/>`,
	"bar-chart-3": `<path d="M3 3v18h18"/><path d="M18 17V9"/><path d="M13 17V5"/><path d="M8 17v-3"/>`,
	"book-open":   `<path d="M2 3h6a4 4 0 0 1 4 4v14a3 3 0 0 0-3-3H2z"/><path d="M22 3h-6a4 4 0 0 0-4 4v14a3 3 0 0 1 3-3h7z"/>`,
	"brain":       `<path d="M12 5a3 3 0 1 0-5.997.125 4 4 0 0 0-2.526 5.77 4 4 0 0 0 .556 6.588A4 4 0 1 0 12 18Z"/><path d="M12 5a3 3 0 1 1 5.997.125 4 4 0 0 1 2.526 5.77 4 4 0 0 1-.556 6.588A4 4 0 1 1 12 18Z"/><path d="M15 13a4.5 4.5 0 0 1-3-4 4.5 4.5 0 0 1-3 4"/>`,
	"home":        `<path d="m3 9 9-7 9 7v11a2 2 0 0 1-2 2H5a2 2 0 0 1-2-2z"/><polyline points="9 22 9 12 15 12 15 22"/>`,
	"zap":         `<polygon points="13 2 3 14 12 14 11 22 21 10 12 10 13 2"/>`,
}

// Lookup returns the inner SVG markup for a glyph.
func Lookup(name string) (string, bool) {
	markup, ok := glyphs[name]
	return markup, ok
}

func Names() []string {
	names := make([]string, 0, len(glyphs))
	for name := range glyphs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
