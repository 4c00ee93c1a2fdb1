package commands

import (
	"context"
	"fmt"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/depcheck/internal/domain/entities"
	"github.com/rios0rios0/depcheck/internal/domain/repositories"
)

//nolint:gochecknoglobals // compiled once
var selectionSeparator = regexp.MustCompile(`[\s,]+`)

// Remove is the interface for the interactive remove command.
type Remove interface {
	Execute(ctx context.Context, opts entities.RemoveOptions) ([]string, error)
}

// RemoveCommand lets the user pick unused dependencies and uninstalls them
// with the project's package manager.
type RemoveCommand struct {
	analyze         Analyze
	fileSystem      repositories.FileSystemRepository
	packageManagers repositories.PackageManagerResolver
	runner          repositories.CommandRunnerRepository
	prompter        repositories.PrompterRepository
	workingTree     repositories.WorkingTreeRepository
}

// NewRemoveCommand creates a new RemoveCommand.
func NewRemoveCommand(
	analyze Analyze,
	fileSystem repositories.FileSystemRepository,
	packageManagers repositories.PackageManagerResolver,
	runner repositories.CommandRunnerRepository,
	prompter repositories.PrompterRepository,
	workingTree repositories.WorkingTreeRepository,
) *RemoveCommand {
	return &RemoveCommand{
		analyze:         analyze,
		fileSystem:      fileSystem,
		packageManagers: packageManagers,
		runner:          runner,
		prompter:        prompter,
		workingTree:     workingTree,
	}
}

// Execute analyzes the project, asks which unused packages to drop and removes
// them. It returns the removed packages; a cancelled selection returns none.
func (it *RemoveCommand) Execute(ctx context.Context, opts entities.RemoveOptions) ([]string, error) {
	report, err := it.analyze.Execute(ctx, opts.AnalyzeOptions)
	if err != nil {
		return nil, err
	}

	unused := report.Result.Unused
	if len(unused) == 0 {
		it.prompter.Println("No unused dependencies to remove!")
		return nil, nil
	}

	if !opts.Force {
		modified, treeErr := it.workingTree.IsModified(opts.Root, entities.ManifestFile)
		if treeErr != nil {
			logger.Warnf("Could not check git status of %s: %v", entities.ManifestFile, treeErr)
		} else if modified {
			return nil, fmt.Errorf("%w; commit or stash it first, or pass --force", entities.ErrDirtyManifest)
		}
	}

	manager, err := it.resolvePackageManager(opts)
	if err != nil {
		return nil, err
	}

	selected, err := it.askSelection(unused)
	if err != nil || len(selected) == 0 {
		return nil, err
	}

	confirmed, err := it.confirm(selected)
	if err != nil || !confirmed {
		return nil, err
	}

	args := manager.UninstallArgs(selected)
	it.prompter.Println(fmt.Sprintf("Running: %s %s", manager.Name(), strings.Join(args, " ")))
	if opts.DryRun {
		logger.Infof("[DRY RUN] Would remove %d package(s) with %s", len(selected), manager.Name())
		return selected, nil
	}

	if runErr := it.runner.Run(ctx, opts.Root, manager.Name(), args...); runErr != nil {
		return nil, runErr
	}

	it.prompter.Println(fmt.Sprintf("Successfully removed %d package(s)", len(selected)))
	return selected, nil
}

func (it *RemoveCommand) resolvePackageManager(
	opts entities.RemoveOptions,
) (repositories.PackageManagerRepository, error) {
	if opts.PackageManager != "" {
		return it.packageManagers.Get(opts.PackageManager)
	}

	fsys, err := it.fileSystem.Open(opts.Root)
	if err != nil {
		return nil, fmt.Errorf("cannot open project %q: %w", filepath.Clean(opts.Root), err)
	}
	manager := it.packageManagers.Detect(fsys)
	if manager == nil {
		return nil, fmt.Errorf("no package manager available for %s", opts.Root)
	}
	logger.Debugf("Detected package manager: %s", manager.Name())
	return manager, nil
}

func (it *RemoveCommand) askSelection(unused []string) ([]string, error) {
	it.prompter.Println(fmt.Sprintf("Found %d unused dependencies:", len(unused)))
	it.prompter.Println("")
	for i, dep := range unused {
		it.prompter.Println(fmt.Sprintf("  %d. %s", i+1, dep))
	}
	it.prompter.Println("")
	it.prompter.Println("Select packages to remove:")
	it.prompter.Println(`  - Enter numbers separated by spaces (e.g., "1 3 5")`)
	it.prompter.Println(`  - Enter "all" to remove all unused packages`)
	it.prompter.Println("  - Press Enter to cancel")
	it.prompter.Println("")

	answer, err := it.prompter.Ask("Your choice: ")
	if err != nil {
		return nil, err
	}

	indices, invalid := parseSelection(answer, len(unused))
	for _, part := range invalid {
		logger.Warnf("Invalid selection %q (must be 1-%d)", part, len(unused))
	}
	if len(indices) == 0 {
		it.prompter.Println("Cancelled. No packages removed.")
		return nil, nil
	}

	selected := make([]string, 0, len(indices))
	for _, idx := range indices {
		selected = append(selected, unused[idx])
	}
	return selected, nil
}

func (it *RemoveCommand) confirm(selected []string) (bool, error) {
	it.prompter.Println(fmt.Sprintf("Removing %d package(s):", len(selected)))
	for _, pkg := range selected {
		it.prompter.Println("  - " + pkg)
	}
	it.prompter.Println("")

	answer, err := it.prompter.Ask("Proceed? (y/N): ")
	if err != nil {
		return false, err
	}

	switch strings.ToLower(answer) {
	case "y", "yes":
		return true, nil
	default:
		it.prompter.Println("Cancelled. No packages removed.")
		return false, nil
	}
}

// parseSelection turns "1 3,5" or "all" into sorted, unique 0-based indices.
// Entries that are not numbers in [1, count] are returned as invalid.
func parseSelection(input string, count int) ([]int, []string) {
	input = strings.TrimSpace(input)
	if input == "" {
		return nil, nil
	}

	if strings.EqualFold(input, "all") {
		all := make([]int, count)
		for i := range all {
			all[i] = i
		}
		return all, nil
	}

	seen := make(map[int]struct{})
	var invalid []string
	for _, part := range selectionSeparator.Split(input, -1) {
		if part == "" {
			continue
		}
		num, err := strconv.Atoi(part)
		if err != nil || num < 1 || num > count {
			invalid = append(invalid, part)
			continue
		}
		seen[num-1] = struct{}{}
	}

	indices := make([]int, 0, len(seen))
	for idx := range seen {
		indices = append(indices, idx)
	}
	sort.Ints(indices)
	return indices, invalid
}
