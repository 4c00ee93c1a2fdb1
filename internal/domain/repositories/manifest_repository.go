package repositories

import (
	"io/fs"

	"github.com/rios0rios0/depcheck/internal/domain/entities"
)

// ManifestRepository loads the declared dependencies of a project.
type ManifestRepository interface {
	// Load reads the manifest at the root of fsys. A missing file must wrap
	// entities.ErrManifestNotFound and a malformed one entities.ErrManifestInvalid.
	Load(fsys fs.FS) (entities.Manifest, error)
}
