// Package analyzer reconciles the dependencies a project declares with the
// ones its source files reference.
package analyzer

import (
	"context"
	"errors"
	"io/fs"
	"runtime"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/rios0rios0/depcheck/internal/domain/entities"
	"github.com/rios0rios0/depcheck/internal/domain/repositories"
	"github.com/rios0rios0/depcheck/internal/scanner"
)

// DependencyAnalyzer finds declared dependencies that no source file references.
// The declared set is loaded and filtered once, at construction.
type DependencyAnalyzer struct {
	fsys     fs.FS
	root     string
	declared []string
	lookup   map[string]struct{}
	dirs     []string
	workers  int
	scanner  *scanner.Scanner
}

// New loads the manifest from fsys and drops the ignored packages.
// It fails with *entities.ConfigurationError when the manifest is missing or
// malformed, or when a directory override leaves the project root.
func New(
	fsys fs.FS,
	manifests repositories.ManifestRepository,
	opts entities.AnalyzeOptions,
) (*DependencyAnalyzer, error) {
	manifest, err := manifests.Load(fsys)
	if err != nil {
		return nil, &entities.ConfigurationError{Root: opts.Root, Reason: "cannot load " + entities.ManifestFile, Err: err}
	}

	dirs, err := scanner.CleanDirs(opts.Dirs)
	if err != nil {
		return nil, &entities.ConfigurationError{Root: opts.Root, Reason: "bad --dirs value", Err: errors.Join(entities.ErrInvalidDirectory, err)}
	}

	declared := filterIgnored(manifest.DeclaredNames(), opts.Ignore)
	lookup := make(map[string]struct{}, len(declared))
	for _, name := range declared {
		lookup[name] = struct{}{}
	}

	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	var scanOpts []scanner.Option
	if opts.RespectGitignore {
		scanOpts = append(scanOpts, scanner.WithGitignore())
	}

	return &DependencyAnalyzer{
		fsys:     fsys,
		root:     opts.Root,
		declared: declared,
		lookup:   lookup,
		dirs:     dirs,
		workers:  workers,
		scanner:  scanner.New(fsys, scanOpts...),
	}, nil
}

// Declared returns the filtered declared dependency names, sorted.
func (it *DependencyAnalyzer) Declared() []string {
	out := make([]string, len(it.declared))
	copy(out, it.declared)
	return out
}

// Analyze scans the source tree and splits the declared dependencies into
// used and unused ones. The first unreadable source file aborts the run with
// *entities.FileReadError.
func (it *DependencyAnalyzer) Analyze(ctx context.Context) (*entities.AnalysisReport, error) {
	scan, err := it.scanner.Scan(ctx, it.dirs)
	if err != nil {
		return nil, err
	}

	var (
		mu    sync.Mutex
		used  = make(map[string]struct{})
		bytes int64
	)

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(it.workers)

	for _, file := range scan.Files {
		group.Go(func() error {
			if ctxErr := groupCtx.Err(); ctxErr != nil {
				return ctxErr
			}

			content, readErr := fs.ReadFile(it.fsys, file)
			if readErr != nil {
				return &entities.FileReadError{Path: file, Err: readErr}
			}

			refs := scanner.ExtractPackageReferences(string(content))

			mu.Lock()
			defer mu.Unlock()
			bytes += int64(len(content))
			for name := range refs {
				if _, declared := it.lookup[name]; declared {
					used[name] = struct{}{}
				}
			}
			return nil
		})
	}

	if waitErr := group.Wait(); waitErr != nil {
		return nil, waitErr
	}

	return &entities.AnalysisReport{
		Result:       entities.NewAnalysisResult(it.declared, used),
		FilesScanned: len(scan.Files),
		BytesScanned: bytes,
		SkippedDirs:  scan.SkippedDirs,
	}, nil
}

func filterIgnored(names, ignored []string) []string {
	if len(ignored) == 0 {
		return names
	}

	skip := make(map[string]struct{}, len(ignored))
	for _, name := range ignored {
		skip[name] = struct{}{}
	}

	kept := make([]string, 0, len(names))
	for _, name := range names {
		if _, ok := skip[name]; !ok {
			kept = append(kept, name)
		}
	}
	return kept
}
