package repositories

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// LocalFileSystemRepository opens project directories on the local disk.
type LocalFileSystemRepository struct{}

// NewLocalFileSystemRepository creates a new LocalFileSystemRepository.
func NewLocalFileSystemRepository() *LocalFileSystemRepository {
	return &LocalFileSystemRepository{}
}

// Open returns an os.DirFS rooted at root after checking that it is a directory.
func (it *LocalFileSystemRepository) Open(root string) (fs.FS, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("invalid path %q: %w", root, err)
	}

	info, err := os.Stat(abs)
	if err != nil {
		return nil, fmt.Errorf("cannot open project %q: %w", root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("project path %q is not a directory", root)
	}

	return os.DirFS(abs), nil
}
