package core

const (
	HeroCTALabel   = "Get Started Free"
	FooterCTALabel = "Start Learning Now"
)

// LandingPage builds the marketing page: hero, feature grid and closing
// call to action. Both CTAs are inert.
func LandingPage() Node {
	return Region(RolePage,
		hero(),
		featureSection(),
		callToAction(),
	)
}

func hero() Node {
	return Region(RoleHero,
		TextWith(RoleTitle,
			Text(RoleTitleLine, "Transform Your Learning"),
			Text(RoleTitleAccent, "with AI-Powered Flashcards"),
		),
		Text(RoleLead, "Upload any PDF and let our AI create perfect study materials. Track your progress, master concepts faster, and learn more efficiently than ever before."),
		Control(RolePrimary, HeroCTALabel, Action{}, Icon("arrow-right")),
	)
}

func featureSection() Node {
	features := Features()
	blocks := make([]Node, 0, len(features))
	for _, f := range features {
		blocks = append(blocks, f.Block())
	}

	return Region(RoleFeatures,
		Text(RoleHeading, "Smart Features for Smarter Learning"),
		Region(RoleFeatureGrid, blocks...),
	)
}

func callToAction() Node {
	return Region(RoleCTA,
		Text(RoleHeading, "Ready to supercharge your learning?"),
		Text(RoleLead, "Join thousands of students who are already learning smarter, not harder."),
		Control(RoleSecondary, FooterCTALabel, Action{}, Icon("arrow-right")),
	)
}

// NotFoundPage is shown for paths the route table does not match.
func NotFoundPage() Node {
	return Region(RoleNotFound,
		Text(RoleHeading, "Page not found"),
		Text(RoleBody, "The page you are looking for does not exist."),
		Control(RoleSecondary, "Back to home", Action{Href: "/"}, Icon("home")),
	)
}
