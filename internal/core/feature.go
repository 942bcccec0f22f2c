package core

// FeatureEntry is one marketing bullet shown in the feature grid.
type FeatureEntry struct {
	Icon        string
	Title       string
	Description string
}

var featureCatalog = [...]FeatureEntry{
	{
		Icon:        "brain",
		Title:       "AI-Powered Learning",
		Description: "Our advanced AI automatically generates high-quality flashcards from your PDF documents, saving you hours of manual work.",
	},
	{
		Icon:        "zap",
		Title:       "Adaptive Learning",
		Description: "Smart algorithms adjust to your learning pace and style, ensuring you focus on what matters most.",
	},
	{
		Icon:        "bar-chart-3",
		Title:       "Comprehensive Analytics",
		Description: "Track your progress with interactive knowledge graphs and detailed performance metrics.",
	},
	{
		Icon:        "book-open",
		Title:       "Spaced Repetition",
		Description: "Scientifically-proven learning methods ensure long-term retention of knowledge.",
	},
}

// Features returns the catalog in display order. The slice is a fresh copy.
func Features() []FeatureEntry {
	out := make([]FeatureEntry, len(featureCatalog))
	copy(out, featureCatalog[:])
	return out
}

func (f FeatureEntry) Block() Node {
	return Region(RoleFeature,
		Icon(f.Icon),
		Text(RoleItemTitle, f.Title),
		Text(RoleBody, f.Description),
	)
}
