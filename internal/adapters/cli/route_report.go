package cli

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

type RouteRow struct {
	Path  string
	Name  string
	Title string
}

// PrintRoutes writes the route table as aligned columns.
func (o *Output) PrintRoutes(rows []RouteRow) {
	printRoutes(o.out, o, rows)
}

func printRoutes(w io.Writer, o *Output, rows []RouteRow) {
	pathWidth := len("PATH")
	for _, r := range rows {
		pathWidth = max(pathWidth, lipgloss.Width(r.Path))
	}

	fmt.Fprintf(w, "  %s  %s\n", o.Gray(pad("PATH", pathWidth)), o.Gray("NAME"))
	for _, r := range rows {
		name := r.Name
		if r.Title != "" {
			name += " " + o.Gray("("+r.Title+")")
		}
		fmt.Fprintf(w, "  %s  %s\n", pad(r.Path, pathWidth), name)
	}
}

func pad(s string, width int) string {
	if n := lipgloss.Width(s); n < width {
		return s + strings.Repeat(" ", width-n)
	}
	return s
}

func FormatDuration(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%.0fms", float64(d)/float64(time.Millisecond))
	}
	return fmt.Sprintf("%.1fs", float64(d)/float64(time.Second))
}
