package core

import "testing"

func TestWalkOrder(t *testing.T) {
	tree := Region(RolePage,
		Text(RoleHeading, "a"),
		Region(RoleCTA, Text(RoleBody, "b")),
		Text(RoleBody, "c"),
	)

	var texts []string
	tree.Walk(func(n Node) bool {
		if n.Text != "" {
			texts = append(texts, n.Text)
		}
		return true
	})

	want := []string{"a", "b", "c"}
	if len(texts) != len(want) {
		t.Fatalf("Expected %v, got %v", want, texts)
	}
	for i := range want {
		if texts[i] != want[i] {
			t.Errorf("position %d: expected %q, got %q", i, want[i], texts[i])
		}
	}
}

func TestWalkSkipsChildren(t *testing.T) {
	tree := Region(RolePage, Region(RoleCTA, Text(RoleBody, "hidden")))

	visited := 0
	tree.Walk(func(n Node) bool {
		visited++
		return n.Role != RoleCTA
	})

	if visited != 2 {
		t.Errorf("Expected 2 visited nodes, got %d", visited)
	}
}

func TestNodeKindString(t *testing.T) {
	if KindControl.String() != "control" {
		t.Errorf("KindControl.String() = %q", KindControl.String())
	}
	if NodeKind(99).String() != "unknown" {
		t.Errorf("NodeKind(99).String() = %q", NodeKind(99).String())
	}
}
