//go:build integration || unit || test

package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"encoding/json"

	testkit "github.com/rios0rios0/testkit/pkg/test"

	"github.com/rios0rios0/depcheck/internal/domain/entities"
)

// ManifestBuilder helps create test manifests with a fluent interface.
type ManifestBuilder struct {
	*testkit.BaseBuilder
	name            string
	dependencies    map[string]string
	devDependencies map[string]string
}

// NewManifestBuilder creates a new manifest builder with no dependencies.
func NewManifestBuilder() *ManifestBuilder {
	return &ManifestBuilder{
		BaseBuilder:     testkit.NewBaseBuilder(),
		name:            "test-project",
		dependencies:    map[string]string{},
		devDependencies: map[string]string{},
	}
}

// WithName sets the package name.
func (b *ManifestBuilder) WithName(name string) *ManifestBuilder {
	b.name = name
	return b
}

// WithDependency adds a runtime dependency.
func (b *ManifestBuilder) WithDependency(name, version string) *ManifestBuilder {
	b.dependencies[name] = version
	return b
}

// WithDevDependency adds a development dependency.
func (b *ManifestBuilder) WithDevDependency(name, version string) *ManifestBuilder {
	b.devDependencies[name] = version
	return b
}

// Build creates the manifest (satisfies testkit.Builder interface).
func (b *ManifestBuilder) Build() interface{} {
	return b.BuildManifest()
}

// BuildManifest creates the manifest with a concrete return type.
func (b *ManifestBuilder) BuildManifest() entities.Manifest {
	return entities.Manifest{
		Name:            b.name,
		Dependencies:    copyMap(b.dependencies),
		DevDependencies: copyMap(b.devDependencies),
	}
}

// BuildJSON renders the manifest as a package.json document.
func (b *ManifestBuilder) BuildJSON() string {
	doc := map[string]interface{}{
		"name":            b.name,
		"dependencies":    b.dependencies,
		"devDependencies": b.devDependencies,
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		panic(err)
	}
	return string(data)
}

// Reset clears the builder state, allowing it to be reused.
func (b *ManifestBuilder) Reset() testkit.Builder {
	b.BaseBuilder.Reset()
	b.name = "test-project"
	b.dependencies = map[string]string{}
	b.devDependencies = map[string]string{}
	return b
}

// Clone creates a deep copy of the ManifestBuilder.
func (b *ManifestBuilder) Clone() testkit.Builder {
	return &ManifestBuilder{
		BaseBuilder:     b.BaseBuilder.Clone().(*testkit.BaseBuilder),
		name:            b.name,
		dependencies:    copyMap(b.dependencies),
		devDependencies: copyMap(b.devDependencies),
	}
}

func copyMap(in map[string]string) map[string]string {
	out := make(map[string]string, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
