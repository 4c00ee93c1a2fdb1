//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"io/fs"
)

// FailingFS wraps a file system and fails reads of selected paths with Err,
// the way an unreadable file or directory would.
type FailingFS struct {
	fs.FS
	FailDirs  map[string]bool
	FailFiles map[string]bool
	Err       error
}

func (f *FailingFS) ReadDir(name string) ([]fs.DirEntry, error) {
	if f.FailDirs[name] {
		return nil, &fs.PathError{Op: "readdir", Path: name, Err: f.Err}
	}
	return fs.ReadDir(f.FS, name)
}

func (f *FailingFS) ReadFile(name string) ([]byte, error) {
	if f.FailFiles[name] {
		return nil, &fs.PathError{Op: "read", Path: name, Err: f.Err}
	}
	return fs.ReadFile(f.FS, name)
}

func (f *FailingFS) Stat(name string) (fs.FileInfo, error) {
	return fs.Stat(f.FS, name)
}
