//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/rios0rios0/depcheck/internal/domain/repositories"
)

// StubWorkingTreeRepository reports a fixed modification state.
type StubWorkingTreeRepository struct {
	Modified     bool
	ModifiedErr  error
	CheckedPaths []string
}

var _ repositories.WorkingTreeRepository = (*StubWorkingTreeRepository)(nil)

func (s *StubWorkingTreeRepository) IsModified(_, path string) (bool, error) {
	s.CheckedPaths = append(s.CheckedPaths, path)
	return s.Modified, s.ModifiedErr
}
