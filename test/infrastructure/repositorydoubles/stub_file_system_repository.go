//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"io/fs"
	"testing/fstest"

	"github.com/rios0rios0/depcheck/internal/domain/repositories"
)

// StubFileSystemRepository hands out an in-memory file system for every root.
type StubFileSystemRepository struct {
	FS      fs.FS
	OpenErr error
	// spy: roots that were opened
	OpenedRoots []string
}

var _ repositories.FileSystemRepository = (*StubFileSystemRepository)(nil)

// NewStubFileSystemRepository creates a stub over the given files (path -> content).
func NewStubFileSystemRepository(files map[string]string) *StubFileSystemRepository {
	mapFS := fstest.MapFS{}
	for path, content := range files {
		mapFS[path] = &fstest.MapFile{Data: []byte(content)}
	}
	return &StubFileSystemRepository{FS: mapFS}
}

func (s *StubFileSystemRepository) Open(root string) (fs.FS, error) {
	s.OpenedRoots = append(s.OpenedRoots, root)
	if s.OpenErr != nil {
		return nil, s.OpenErr
	}
	return s.FS, nil
}
