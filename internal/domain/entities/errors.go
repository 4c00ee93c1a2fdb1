package entities

import (
	"errors"
	"fmt"
)

var (
	// ErrManifestNotFound is wrapped when no package.json exists at the project root.
	ErrManifestNotFound = errors.New("package.json not found")
	// ErrManifestInvalid is wrapped when package.json cannot be parsed or has the wrong shape.
	ErrManifestInvalid = errors.New("package.json is invalid")
	// ErrInvalidDirectory is wrapped when a directory override escapes the project root.
	ErrInvalidDirectory = errors.New("directory must be a relative path inside the project root")
	// ErrUnusedDependencies signals a successful analysis that found unused dependencies.
	ErrUnusedDependencies = errors.New("unused dependencies found")
	// ErrDirtyManifest is returned when package.json has uncommitted changes.
	ErrDirtyManifest = errors.New("package.json has uncommitted changes")
)

// ConfigurationError aborts an analysis before any scanning begins.
type ConfigurationError struct {
	Root   string
	Reason string
	Err    error
}

func (e *ConfigurationError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("configuration error in %s: %v", e.Root, e.Err)
	}
	return fmt.Sprintf("configuration error in %s: %s: %v", e.Root, e.Reason, e.Err)
}

func (e *ConfigurationError) Unwrap() error { return e.Err }

// FileReadError reports a source file that was enumerated but could not be read.
// It is fatal for the whole run.
type FileReadError struct {
	Path string
	Err  error
}

func (e *FileReadError) Error() string {
	return fmt.Sprintf("failed to read %s: %v", e.Path, e.Err)
}

func (e *FileReadError) Unwrap() error { return e.Err }
