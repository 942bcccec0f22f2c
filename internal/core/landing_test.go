package core

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestLandingPageFeatureBlocks(t *testing.T) {
	page := LandingPage()

	blocks := page.FindRole(RoleFeature)
	if len(blocks) != 4 {
		t.Fatalf("Expected 4 feature blocks, got %d", len(blocks))
	}

	wantTitles := []string{
		"AI-Powered Learning",
		"Adaptive Learning",
		"Comprehensive Analytics",
		"Spaced Repetition",
	}

	for i, block := range blocks {
		titles := block.FindRole(RoleItemTitle)
		bodies := block.FindRole(RoleBody)
		icons := block.FindAll(KindIcon)

		if len(titles) != 1 || len(bodies) != 1 || len(icons) != 1 {
			t.Fatalf("block %d: expected one icon, title and description, got %d/%d/%d", i, len(icons), len(titles), len(bodies))
		}
		if titles[0].Text != wantTitles[i] {
			t.Errorf("block %d: expected title %q, got %q", i, wantTitles[i], titles[0].Text)
		}
		if bodies[0].Text == "" {
			t.Errorf("block %d: description is empty", i)
		}
		if icons[0].Glyph == "" {
			t.Errorf("block %d: icon has no glyph", i)
		}
	}
}

func TestLandingPageControls(t *testing.T) {
	controls := LandingPage().Controls()

	if len(controls) != 2 {
		t.Fatalf("Expected 2 controls, got %d", len(controls))
	}

	if controls[0].Text != "Get Started Free" {
		t.Errorf("Expected hero control 'Get Started Free', got %q", controls[0].Text)
	}
	if controls[1].Text != "Start Learning Now" {
		t.Errorf("Expected footer control 'Start Learning Now', got %q", controls[1].Text)
	}

	for _, c := range controls {
		if !c.Inert() {
			t.Errorf("control %q should be inert, has action %+v", c.Text, c.Action)
		}
	}
}

func TestLandingPageRegionOrder(t *testing.T) {
	page := LandingPage()

	if page.Kind != KindRegion || page.Role != RolePage {
		t.Fatalf("Expected page region at root, got %s/%s", page.Kind, page.Role)
	}

	want := []Role{RoleHero, RoleFeatures, RoleCTA}
	if len(page.Children) != len(want) {
		t.Fatalf("Expected %d regions, got %d", len(want), len(page.Children))
	}
	for i, role := range want {
		if page.Children[i].Role != role {
			t.Errorf("region %d: expected %s, got %s", i, role, page.Children[i].Role)
		}
	}
}

func TestLandingPageIdempotent(t *testing.T) {
	first := LandingPage()
	second := LandingPage()

	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("LandingPage() not idempotent (-first +second):\n%s", diff)
	}
}

func TestFeaturesReturnsCopy(t *testing.T) {
	features := Features()
	features[0].Title = "mutated"

	if got := Features()[0].Title; got != "AI-Powered Learning" {
		t.Errorf("catalog was mutated through returned slice: %q", got)
	}
}

func TestNotFoundPageLinksHome(t *testing.T) {
	controls := NotFoundPage().Controls()
	if len(controls) != 1 {
		t.Fatalf("Expected 1 control, got %d", len(controls))
	}
	if controls[0].Action.Href != "/" {
		t.Errorf("Expected control to link to /, got %q", controls[0].Action.Href)
	}
	if controls[0].Inert() {
		t.Error("not-found control should not be inert")
	}
}
