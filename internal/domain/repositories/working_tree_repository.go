package repositories

// WorkingTreeRepository inspects the version-control state of a project.
type WorkingTreeRepository interface {
	// IsModified reports whether path (relative to root) has uncommitted changes.
	// Projects outside version control are never modified.
	IsModified(root, path string) (bool, error)
}
