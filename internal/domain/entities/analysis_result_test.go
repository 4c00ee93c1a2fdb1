//go:build unit

package entities_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rios0rios0/depcheck/internal/domain/entities"
)

func TestNewAnalysisResult(t *testing.T) {
	t.Parallel()

	t.Run("should partition the declared set and sort both halves", func(t *testing.T) {
		t.Parallel()

		// given
		declared := []string{"typescript", "express", "lodash", "jest"}
		used := map[string]struct{}{"express": {}}

		// when
		result := entities.NewAnalysisResult(declared, used)

		// then
		assert.Equal(t, []string{"express"}, result.Used)
		assert.Equal(t, []string{"jest", "lodash", "typescript"}, result.Unused)
		assert.Equal(t, 4, result.Total)
	})

	t.Run("should count duplicated declarations once", func(t *testing.T) {
		t.Parallel()

		// given
		declared := []string{"react", "react", "vue"}

		// when
		result := entities.NewAnalysisResult(declared, map[string]struct{}{"react": {}})

		// then
		assert.Equal(t, []string{"react"}, result.Used)
		assert.Equal(t, []string{"vue"}, result.Unused)
		assert.Equal(t, 2, result.Total)
	})

	t.Run("should ignore referenced names that were never declared", func(t *testing.T) {
		t.Parallel()

		// given
		used := map[string]struct{}{"fs": {}, "path": {}}

		// when
		result := entities.NewAnalysisResult([]string{"chalk"}, used)

		// then
		assert.Empty(t, result.Used)
		assert.Equal(t, []string{"chalk"}, result.Unused)
	})

	t.Run("should return non-nil empty lists for an empty declared set", func(t *testing.T) {
		t.Parallel()

		// given / when
		result := entities.NewAnalysisResult(nil, nil)

		// then
		assert.NotNil(t, result.Used)
		assert.NotNil(t, result.Unused)
		assert.Zero(t, result.Total)
		assert.False(t, result.HasUnused())
	})
}

func TestManifestDeclaredNames(t *testing.T) {
	t.Parallel()

	t.Run("should merge both groups into a sorted unique list", func(t *testing.T) {
		t.Parallel()

		// given
		manifest := entities.Manifest{
			Dependencies:    map[string]string{"react": "^18", "axios": "^1"},
			DevDependencies: map[string]string{"react": "^18", "@types/react": "^18"},
		}

		// when
		names := manifest.DeclaredNames()

		// then
		assert.Equal(t, []string{"@types/react", "axios", "react"}, names)
	})

	t.Run("should return an empty list when nothing is declared", func(t *testing.T) {
		t.Parallel()

		// given / when
		names := entities.Manifest{}.DeclaredNames()

		// then
		assert.Empty(t, names)
	})
}
