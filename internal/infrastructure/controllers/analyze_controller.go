package controllers

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/rios0rios0/depcheck/internal/domain/commands"
	"github.com/rios0rios0/depcheck/internal/domain/entities"
)

// AnalyzeController handles the root command: analyze a project and report
// unused dependencies.
type AnalyzeController struct {
	command commands.Analyze
}

// NewAnalyzeController creates a new AnalyzeController.
func NewAnalyzeController(command commands.Analyze) *AnalyzeController {
	return &AnalyzeController{command: command}
}

// GetBind returns the Cobra command metadata for the analyze controller.
func (it *AnalyzeController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "depcheck [path]",
		Short: "Find unused dependencies fast",
		Long: `Find the dependencies declared in package.json that no source file imports.

Scans src, lib, app, components, pages and utils (or --dirs) for .js, .jsx,
.ts, .tsx, .mjs and .cjs files, looking for import, require() and import()
targets. Exits with status 1 when unused dependencies are found.

Examples:
  depcheck
  depcheck ./my-project
  depcheck --json
  depcheck --ignore react --ignore lodash
  depcheck --dirs src,lib,components`,
	}
}

// AddFlags adds the analyze-specific flags to the given Cobra command.
func (it *AnalyzeController) AddFlags(cmd *cobra.Command) {
	addAnalysisFlags(cmd)
	cmd.Flags().Bool("json", false, "Output results as JSON (same as --format json)")
	cmd.Flags().StringP("format", "f", "text", "Output format: text, json or yaml")
}

// Execute runs the analysis and prints the result. It returns
// entities.ErrUnusedDependencies when anything unused was found.
func (it *AnalyzeController) Execute(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	opts, cfg, err := resolveAnalyzeOptions(cmd, args)
	if err != nil {
		return err
	}

	report, err := it.command.Execute(ctx, opts)
	if err != nil {
		return err
	}

	if renderErr := renderReport(cmd.OutOrStdout(), cfg.Format, report); renderErr != nil {
		return renderErr
	}

	if report.Result.HasUnused() {
		return entities.ErrUnusedDependencies
	}
	return nil
}
