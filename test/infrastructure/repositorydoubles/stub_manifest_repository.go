//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"io/fs"

	"github.com/rios0rios0/depcheck/internal/domain/entities"
	"github.com/rios0rios0/depcheck/internal/domain/repositories"
)

// StubManifestRepository returns a fixed manifest.
type StubManifestRepository struct {
	Manifest  entities.Manifest
	LoadErr   error
	LoadCalls int
}

var _ repositories.ManifestRepository = (*StubManifestRepository)(nil)

func (s *StubManifestRepository) Load(_ fs.FS) (entities.Manifest, error) {
	s.LoadCalls++
	return s.Manifest, s.LoadErr
}
