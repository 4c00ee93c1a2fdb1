// Package scanner finds JavaScript/TypeScript source files and extracts the
// packages they reference.
package scanner

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"strings"

	ignore "github.com/sabhiram/go-gitignore"
)

// DependencyCacheDir is never descended into, whatever its depth.
const DependencyCacheDir = "node_modules"

// DefaultDirs are the conventional source roots scanned when no override is given.
//
//nolint:gochecknoglobals // read-only defaults
var DefaultDirs = []string{"src", "lib", "app", "components", "pages", "utils"}

//nolint:gochecknoglobals // read-only lookup table
var sourceExtensions = map[string]struct{}{
	".js":  {},
	".jsx": {},
	".ts":  {},
	".tsx": {},
	".mjs": {},
	".cjs": {},
}

// ErrInvalidDir is returned for directories that are not relative paths inside the root.
var ErrInvalidDir = errors.New("invalid scan directory")

// IsSourceFile reports whether name carries one of the recognized source suffixes.
func IsSourceFile(name string) bool {
	_, ok := sourceExtensions[path.Ext(name)]
	return ok
}

// ScanResult lists what a scan found.
type ScanResult struct {
	Files       []string // slash-separated, relative to the scanned file system
	SkippedDirs []string // directories that could not be read
}

// Option customizes a Scanner.
type Option func(*Scanner)

// WithGitignore skips paths matched by the .gitignore at the root.
func WithGitignore() Option {
	return func(s *Scanner) {
		s.gitignore = true
	}
}

// Scanner walks source directories of a project file system.
type Scanner struct {
	fsys      fs.FS
	gitignore bool
}

// New creates a Scanner over fsys, which must be rooted at the project directory.
func New(fsys fs.FS, opts ...Option) *Scanner {
	s := &Scanner{fsys: fsys}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CleanDirs normalizes directory names and rejects ones that leave the root.
func CleanDirs(dirs []string) ([]string, error) {
	cleaned := make([]string, 0, len(dirs))
	for _, dir := range dirs {
		dir = strings.TrimSpace(dir)
		if dir == "" {
			continue
		}
		clean := path.Clean(strings.ReplaceAll(dir, "\\", "/"))
		if !fs.ValidPath(clean) {
			return nil, fmt.Errorf("%w: %q", ErrInvalidDir, dir)
		}
		cleaned = append(cleaned, clean)
	}
	return cleaned, nil
}

// Scan returns every source file below the given directories, or below
// DefaultDirs when dirs is empty. Missing directories are skipped silently and
// unreadable ones are reported in ScanResult.SkippedDirs.
func (it *Scanner) Scan(ctx context.Context, dirs []string) (*ScanResult, error) {
	if len(dirs) == 0 {
		dirs = DefaultDirs
	}
	roots, err := CleanDirs(dirs)
	if err != nil {
		return nil, err
	}

	var gi *ignore.GitIgnore
	if it.gitignore {
		gi = loadGitignore(it.fsys)
	}

	result := &ScanResult{}
	seen := make(map[string]struct{})

	for _, root := range roots {
		info, statErr := fs.Stat(it.fsys, root)
		if statErr != nil || !info.IsDir() {
			continue
		}

		walkErr := fs.WalkDir(it.fsys, root, func(p string, d fs.DirEntry, err error) error {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return ctxErr
			}
			if err != nil {
				result.SkippedDirs = append(result.SkippedDirs, p)
				return nil
			}

			if d.IsDir() {
				if d.Name() == DependencyCacheDir {
					return fs.SkipDir
				}
				if gi != nil && p != "." && gi.MatchesPath(p+"/") {
					return fs.SkipDir
				}
				return nil
			}

			if !d.Type().IsRegular() || !IsSourceFile(d.Name()) {
				return nil
			}
			if gi != nil && gi.MatchesPath(p) {
				return nil
			}
			if _, dup := seen[p]; dup {
				return nil
			}
			seen[p] = struct{}{}
			result.Files = append(result.Files, p)
			return nil
		})
		if walkErr != nil {
			return nil, walkErr
		}
	}

	return result, nil
}

func loadGitignore(fsys fs.FS) *ignore.GitIgnore {
	data, err := fs.ReadFile(fsys, ".gitignore")
	if err != nil {
		return nil
	}
	return ignore.CompileIgnoreLines(strings.Split(string(data), "\n")...)
}
