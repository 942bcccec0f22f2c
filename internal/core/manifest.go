package core

import (
	"encoding/json"
	"sort"
)

// ManifestEntry describes one exported page.
type ManifestEntry struct {
	Name string `json:"name"`
	HTML string `json:"html"`
	Hash string `json:"hash"`
}

// Manifest is written next to a static export so deploy tooling can tell
// which files changed between exports.
type Manifest struct {
	Version  int                      `json:"version"`
	Entries  map[string]ManifestEntry `json:"entries"`
	NotFound string                   `json:"notFound,omitempty"`
	Assets   map[string]string        `json:"assets,omitempty"`
}

func NewManifest() *Manifest {
	return &Manifest{
		Version: 1,
		Entries: make(map[string]ManifestEntry),
		Assets:  make(map[string]string),
	}
}

func ParseManifest(data []byte) (*Manifest, error) {
	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

func (m *Manifest) Encode() ([]byte, error) {
	return json.MarshalIndent(m, "", "  ")
}

// Paths returns the exported route paths in sorted order.
func (m *Manifest) Paths() []string {
	if m == nil {
		return nil
	}
	paths := make([]string, 0, len(m.Entries))
	for p := range m.Entries {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

// Changed returns the paths whose content differs from prev, including
// paths prev does not have. A nil prev reports every path.
func (m *Manifest) Changed(prev *Manifest) []string {
	var changed []string
	for _, p := range m.Paths() {
		if prev != nil {
			if old, ok := prev.Entries[p]; ok && old.Hash == m.Entries[p].Hash {
				continue
			}
		}
		changed = append(changed, p)
	}
	return changed
}
