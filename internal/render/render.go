// Package render turns core view trees into HTML using gomponents.
package render

import (
	"bytes"
	"io"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/3-lines-studio/flashlearn/internal/core"
	"github.com/3-lines-studio/flashlearn/internal/icons"
)

// Node converts a view node and its children into markup.
func Node(n core.Node) g.Node {
	switch n.Kind {
	case core.KindRegion:
		return region(n)
	case core.KindText:
		return text(n)
	case core.KindControl:
		return control(n)
	case core.KindIcon:
		return icon(n.Glyph)
	default:
		return g.Group{}
	}
}

func children(n core.Node) g.Group {
	return g.Map(n.Children, Node)
}

func region(n core.Node) g.Node {
	class := Class(string(n.Role))
	switch n.Role {
	case core.RolePage:
		return Main(class, children(n))
	case core.RoleHero, core.RoleFeatures, core.RoleCTA, core.RoleNotFound:
		return Section(class, children(n))
	default:
		return Div(class, children(n))
	}
}

func text(n core.Node) g.Node {
	class := Class(string(n.Role))
	content := g.Group{g.If(n.Text != "", g.Text(n.Text)), children(n)}

	switch n.Role {
	case core.RoleTitle:
		return H1(class, content)
	case core.RoleHeading:
		return H2(class, content)
	case core.RoleItemTitle:
		return H3(class, content)
	case core.RoleTitleLine, core.RoleTitleAccent:
		return Span(class, content)
	default:
		return P(class, content)
	}
}

// control renders an inert control as a plain button with no behavior
// attached; a control with an action becomes a link.
func control(n core.Node) g.Node {
	class := Class("control " + string(n.Role))
	content := g.Group{g.Text(n.Text), children(n)}

	if n.Action.IsZero() {
		return Button(Type("button"), class, content)
	}
	return A(Href(n.Action.Href), class, content)
}

func icon(glyph string) g.Node {
	markup, ok := icons.Lookup(glyph)
	if !ok {
		return Span(Class("icon"))
	}

	return Span(Class("icon"), g.Attr("data-glyph", glyph),
		g.El("svg",
			g.Attr("xmlns", "http://www.w3.org/2000/svg"),
			g.Attr("viewBox", icons.ViewBox),
			g.Attr("fill", "none"),
			g.Attr("stroke", "currentColor"),
			g.Attr("stroke-width", "2"),
			g.Attr("stroke-linecap", "round"),
			g.Attr("stroke-linejoin", "round"),
			g.Attr("aria-hidden", "true"),
			g.Raw(markup),
		),
	)
}

type DocumentConfig struct {
	Lang           string
	SiteTitle      string
	Description    string
	StylesheetHref string
	FaviconHref    string
}

func (c DocumentConfig) title(page string) string {
	switch {
	case page == "":
		return c.SiteTitle
	case c.SiteTitle == "":
		return page
	default:
		return page + " · " + c.SiteTitle
	}
}

// Page is the per-route part of the document head. Path, when set, is
// emitted as the canonical URL.
type Page struct {
	Title string
	Path  string
}

// Document wraps a page body in a complete HTML document.
func Document(cfg DocumentConfig, page Page, body core.Node) g.Node {
	lang := cfg.Lang
	if lang == "" {
		lang = "en"
	}

	return Doctype(
		HTML(Lang(lang),
			Head(
				Meta(Charset("utf-8")),
				Meta(Name("viewport"), Content("width=device-width, initial-scale=1")),
				g.If(cfg.Description != "", Meta(Name("description"), Content(cfg.Description))),
				g.El("title", g.Text(cfg.title(page.Title))),
				g.If(page.Path != "", Link(Rel("canonical"), Href(page.Path))),
				g.If(cfg.StylesheetHref != "", Link(Rel("stylesheet"), Href(cfg.StylesheetHref))),
				g.If(cfg.FaviconHref != "", Link(Rel("icon"), Type("image/svg+xml"), Href(cfg.FaviconHref))),
			),
			Body(Node(body)),
		),
	)
}

type Renderer struct {
	doc DocumentConfig
}

func NewRenderer(doc DocumentConfig) *Renderer {
	return &Renderer{doc: doc}
}

func (r *Renderer) Render(w io.Writer, page Page, body core.Node) error {
	return Document(r.doc, page, body).Render(w)
}

func (r *Renderer) Bytes(page Page, body core.Node) ([]byte, error) {
	var buf bytes.Buffer
	if err := r.Render(&buf, page, body); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
