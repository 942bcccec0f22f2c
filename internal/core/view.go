package core

// NodeKind classifies a view node.
type NodeKind int

const (
	KindRegion NodeKind = iota
	KindText
	KindControl
	KindIcon
)

func (k NodeKind) String() string {
	switch k {
	case KindRegion:
		return "region"
	case KindText:
		return "text"
	case KindControl:
		return "control"
	case KindIcon:
		return "icon"
	default:
		return "unknown"
	}
}

// Role names what a node is for. Presentation maps roles to markup and style.
type Role string

const (
	RolePage        Role = "page"
	RoleHero        Role = "hero"
	RoleFeatures    Role = "features"
	RoleFeatureGrid Role = "feature-grid"
	RoleFeature     Role = "feature"
	RoleCTA         Role = "cta"
	RoleNotFound    Role = "not-found"

	RoleTitle       Role = "title"
	RoleTitleLine   Role = "title-line"
	RoleTitleAccent Role = "title-accent"
	RoleHeading     Role = "heading"
	RoleItemTitle   Role = "item-title"
	RoleLead        Role = "lead"
	RoleBody        Role = "body"

	RolePrimary   Role = "primary"
	RoleSecondary Role = "secondary"
)

// Action is what activating a control does. The zero value is inert.
type Action struct {
	Href string
}

func (a Action) IsZero() bool {
	return a.Href == ""
}

// Node is one element of a view tree. Trees are plain values so two renders
// of the same component can be compared directly.
type Node struct {
	Kind     NodeKind
	Role     Role
	Text     string
	Glyph    string
	Action   Action
	Children []Node
}

func Region(role Role, children ...Node) Node {
	return Node{Kind: KindRegion, Role: role, Children: children}
}

func Text(role Role, text string) Node {
	return Node{Kind: KindText, Role: role, Text: text}
}

// TextWith builds a text node made of nested text runs, e.g. a title split
// over several lines.
func TextWith(role Role, children ...Node) Node {
	return Node{Kind: KindText, Role: role, Children: children}
}

func Control(role Role, label string, action Action, children ...Node) Node {
	return Node{Kind: KindControl, Role: role, Text: label, Action: action, Children: children}
}

func Icon(glyph string) Node {
	return Node{Kind: KindIcon, Glyph: glyph}
}

// Inert reports whether a control has no attached behavior.
func (n Node) Inert() bool {
	return n.Kind == KindControl && n.Action.IsZero()
}

// Walk visits n and its descendants depth-first, parents before children.
// Returning false from fn skips the node's children.
func (n Node) Walk(fn func(Node) bool) {
	if !fn(n) {
		return
	}
	for _, child := range n.Children {
		child.Walk(fn)
	}
}

func (n Node) FindAll(kind NodeKind) []Node {
	var found []Node
	n.Walk(func(c Node) bool {
		if c.Kind == kind {
			found = append(found, c)
		}
		return true
	})
	return found
}

func (n Node) FindRole(role Role) []Node {
	var found []Node
	n.Walk(func(c Node) bool {
		if c.Role == role {
			found = append(found, c)
		}
		return true
	})
	return found
}

func (n Node) Controls() []Node {
	return n.FindAll(KindControl)
}
