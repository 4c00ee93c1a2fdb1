//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"io/fs"

	"github.com/rios0rios0/depcheck/internal/domain/repositories"
)

// StubPackageManager is a package manager with fixed answers.
type StubPackageManager struct {
	ManagerName  string
	LockfileName string
}

var _ repositories.PackageManagerRepository = (*StubPackageManager)(nil)

func (s *StubPackageManager) Name() string     { return s.ManagerName }
func (s *StubPackageManager) Lockfile() string { return s.LockfileName }

func (s *StubPackageManager) UninstallArgs(packages []string) []string {
	return append([]string{"remove"}, packages...)
}

// StubPackageManagerResolver resolves every request to Manager.
type StubPackageManagerResolver struct {
	Manager     repositories.PackageManagerRepository
	GetErr      error
	GetNames    []string
	DetectCalls int
}

var _ repositories.PackageManagerResolver = (*StubPackageManagerResolver)(nil)

func (s *StubPackageManagerResolver) Get(name string) (repositories.PackageManagerRepository, error) {
	s.GetNames = append(s.GetNames, name)
	if s.GetErr != nil {
		return nil, s.GetErr
	}
	return s.Manager, nil
}

func (s *StubPackageManagerResolver) Detect(_ fs.FS) repositories.PackageManagerRepository {
	s.DetectCalls++
	return s.Manager
}
