package commands

import (
	"context"

	"github.com/dustin/go-humanize"
	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/depcheck/internal/analyzer"
	"github.com/rios0rios0/depcheck/internal/domain/entities"
	"github.com/rios0rios0/depcheck/internal/domain/repositories"
)

// Analyze is the interface for the analyze command.
type Analyze interface {
	Execute(ctx context.Context, opts entities.AnalyzeOptions) (*entities.AnalysisReport, error)
}

// AnalyzeCommand finds the declared dependencies a project never references.
type AnalyzeCommand struct {
	fileSystem repositories.FileSystemRepository
	manifests  repositories.ManifestRepository
}

// NewAnalyzeCommand creates a new AnalyzeCommand.
func NewAnalyzeCommand(
	fileSystem repositories.FileSystemRepository,
	manifests repositories.ManifestRepository,
) *AnalyzeCommand {
	return &AnalyzeCommand{
		fileSystem: fileSystem,
		manifests:  manifests,
	}
}

// Execute opens the project, loads its manifest and analyzes its sources.
func (it *AnalyzeCommand) Execute(
	ctx context.Context,
	opts entities.AnalyzeOptions,
) (*entities.AnalysisReport, error) {
	fsys, err := it.fileSystem.Open(opts.Root)
	if err != nil {
		return nil, &entities.ConfigurationError{Root: opts.Root, Reason: "cannot open project", Err: err}
	}

	depAnalyzer, err := analyzer.New(fsys, it.manifests, opts)
	if err != nil {
		return nil, err
	}
	logger.Debugf("Analyzing %d declared dependencies in %s", len(depAnalyzer.Declared()), opts.Root)
	if len(opts.Ignore) > 0 {
		logger.Debugf("Ignoring: %v", opts.Ignore)
	}

	report, err := depAnalyzer.Analyze(ctx)
	if err != nil {
		return nil, err
	}

	for _, dir := range report.SkippedDirs {
		logger.Warnf("Skipped unreadable directory %q", dir)
	}
	logger.Debugf(
		"Scanned %s source files (%s), %d used, %d unused",
		humanize.Comma(int64(report.FilesScanned)),
		humanize.Bytes(uint64(report.BytesScanned)), //nolint:gosec // byte counts are never negative
		len(report.Result.Used),
		len(report.Result.Unused),
	)

	return report, nil
}
