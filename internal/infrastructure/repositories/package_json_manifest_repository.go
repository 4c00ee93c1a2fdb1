package repositories

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"github.com/rios0rios0/depcheck/internal/domain/entities"
)

// manifestSchema only constrains the fields the analyzer reads.
const manifestSchema = `{
  "type": "object",
  "properties": {
    "name": {"type": "string"},
    "dependencies": {
      "type": ["object", "null"],
      "additionalProperties": {"type": "string"}
    },
    "devDependencies": {
      "type": ["object", "null"],
      "additionalProperties": {"type": "string"}
    }
  }
}`

type packageJSON struct {
	Name            string            `json:"name"`
	Dependencies    map[string]string `json:"dependencies"`
	DevDependencies map[string]string `json:"devDependencies"`
}

// PackageJSONManifestRepository reads dependencies from package.json.
type PackageJSONManifestRepository struct {
	schema *gojsonschema.Schema
}

// NewPackageJSONManifestRepository creates a new PackageJSONManifestRepository.
func NewPackageJSONManifestRepository() (*PackageJSONManifestRepository, error) {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(manifestSchema))
	if err != nil {
		return nil, fmt.Errorf("failed to compile manifest schema: %w", err)
	}
	return &PackageJSONManifestRepository{schema: schema}, nil
}

// Load reads and validates package.json at the root of fsys.
func (it *PackageJSONManifestRepository) Load(fsys fs.FS) (entities.Manifest, error) {
	data, err := fs.ReadFile(fsys, entities.ManifestFile)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return entities.Manifest{}, entities.ErrManifestNotFound
		}
		return entities.Manifest{}, fmt.Errorf("%w: %w", entities.ErrManifestInvalid, err)
	}

	result, err := it.schema.Validate(gojsonschema.NewBytesLoader(data))
	if err != nil {
		return entities.Manifest{}, fmt.Errorf("%w: %w", entities.ErrManifestInvalid, err)
	}
	if !result.Valid() {
		details := make([]string, 0, len(result.Errors()))
		for _, desc := range result.Errors() {
			details = append(details, desc.String())
		}
		return entities.Manifest{}, fmt.Errorf("%w: %s", entities.ErrManifestInvalid, strings.Join(details, "; "))
	}

	var pkg packageJSON
	if unmarshalErr := json.Unmarshal(data, &pkg); unmarshalErr != nil {
		return entities.Manifest{}, fmt.Errorf("%w: %w", entities.ErrManifestInvalid, unmarshalErr)
	}

	return entities.Manifest{
		Name:            pkg.Name,
		Dependencies:    pkg.Dependencies,
		DevDependencies: pkg.DevDependencies,
	}, nil
}
