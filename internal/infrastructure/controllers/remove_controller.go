package controllers

import (
	"context"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/depcheck/internal/domain/commands"
	"github.com/rios0rios0/depcheck/internal/domain/entities"
)

// RemoveController handles the "remove" subcommand.
type RemoveController struct {
	command commands.Remove
}

// NewRemoveController creates a new RemoveController.
func NewRemoveController(command commands.Remove) *RemoveController {
	return &RemoveController{command: command}
}

// GetBind returns the Cobra command metadata for the remove controller.
func (it *RemoveController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "remove [path]",
		Short: "Interactively uninstall unused dependencies",
		Long: `Analyze the project, let you pick which unused dependencies to drop,
and uninstall them with the project's package manager (npm, yarn or pnpm,
detected from the lockfile).`,
	}
}

// AddFlags adds the remove-specific flags to the given Cobra command.
func (it *RemoveController) AddFlags(cmd *cobra.Command) {
	addAnalysisFlags(cmd)
	cmd.Flags().String("package-manager", "", "Package manager to use: npm, yarn or pnpm (default: detect)")
	cmd.Flags().Bool("dry-run", false, "Show the uninstall command without running it")
	cmd.Flags().Bool("force", false, "Run even when package.json has uncommitted changes")
}

// Execute runs the interactive removal.
func (it *RemoveController) Execute(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	analyzeOpts, cfg, err := resolveAnalyzeOptions(cmd, args)
	if err != nil {
		return err
	}

	dryRun, _ := cmd.Flags().GetBool("dry-run")
	force, _ := cmd.Flags().GetBool("force")

	removed, err := it.command.Execute(ctx, entities.RemoveOptions{
		AnalyzeOptions: analyzeOpts,
		PackageManager: cfg.PackageManager,
		DryRun:         dryRun,
		Force:          force,
	})
	if err != nil {
		return err
	}

	if len(removed) > 0 {
		logger.Debugf("Removed: %v", removed)
	}
	return nil
}
