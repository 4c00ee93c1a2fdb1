package repositories

import "io/fs"

// FileSystemRepository gives read-only access to a project tree.
// Production code hands out os.DirFS; tests use in-memory file systems.
type FileSystemRepository interface {
	// Open returns a file system rooted at the given project directory.
	Open(root string) (fs.FS, error)
}
