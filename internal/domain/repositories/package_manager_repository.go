package repositories

import "io/fs"

// PackageManagerRepository describes how a package manager removes packages.
type PackageManagerRepository interface {
	// Name returns the executable name (e.g. "npm").
	Name() string

	// Lockfile returns the lockfile that identifies a project managed by this tool.
	// An empty string means the manager is the fallback.
	Lockfile() string

	// UninstallArgs returns the arguments that remove the given packages.
	UninstallArgs(packages []string) []string
}

// PackageManagerResolver picks the package manager of a project.
type PackageManagerResolver interface {
	Get(name string) (PackageManagerRepository, error)
	Detect(fsys fs.FS) PackageManagerRepository
}
