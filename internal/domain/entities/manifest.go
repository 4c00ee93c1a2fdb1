package entities

import "sort"

// ManifestFile is the name of the dependency manifest at a project root.
const ManifestFile = "package.json"

// Manifest holds the parts of package.json the analyzer cares about.
type Manifest struct {
	Name            string
	Dependencies    map[string]string // runtime group, name -> version constraint
	DevDependencies map[string]string // development group
}

// DeclaredNames merges both dependency groups into a sorted list of unique names.
func (m Manifest) DeclaredNames() []string {
	seen := make(map[string]struct{}, len(m.Dependencies)+len(m.DevDependencies))
	for name := range m.Dependencies {
		seen[name] = struct{}{}
	}
	for name := range m.DevDependencies {
		seen[name] = struct{}{}
	}

	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
