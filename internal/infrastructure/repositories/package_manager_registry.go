package repositories

import (
	"fmt"
	"io/fs"

	domainRepos "github.com/rios0rios0/depcheck/internal/domain/repositories"
)

// PackageManagerRegistry manages all registered package manager implementations.
// Detection checks lockfiles in registration order; the first manager without a
// lockfile is the fallback.
type PackageManagerRegistry struct {
	managers map[string]domainRepos.PackageManagerRepository
	order    []string
}

// NewPackageManagerRegistry creates an empty package manager registry.
func NewPackageManagerRegistry() *PackageManagerRegistry {
	return &PackageManagerRegistry{
		managers: make(map[string]domainRepos.PackageManagerRepository),
	}
}

// Register adds a package manager under its name.
func (r *PackageManagerRegistry) Register(m domainRepos.PackageManagerRepository) {
	if _, exists := r.managers[m.Name()]; !exists {
		r.order = append(r.order, m.Name())
	}
	r.managers[m.Name()] = m
}

// Get returns the package manager with the given name.
func (r *PackageManagerRegistry) Get(name string) (domainRepos.PackageManagerRepository, error) {
	m, ok := r.managers[name]
	if !ok {
		return nil, fmt.Errorf("unknown package manager: %q", name)
	}
	return m, nil
}

// Detect returns the package manager whose lockfile exists in fsys,
// falling back to the one without a lockfile.
func (r *PackageManagerRegistry) Detect(fsys fs.FS) domainRepos.PackageManagerRepository {
	var fallback domainRepos.PackageManagerRepository
	for _, name := range r.order {
		m := r.managers[name]
		if m.Lockfile() == "" {
			if fallback == nil {
				fallback = m
			}
			continue
		}
		if _, err := fs.Stat(fsys, m.Lockfile()); err == nil {
			return m
		}
	}
	return fallback
}

// Names returns the registered package manager names in registration order.
func (r *PackageManagerRegistry) Names() []string {
	names := make([]string, len(r.order))
	copy(names, r.order)
	return names
}
