package controllers

import (
	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/depcheck/config"
	"github.com/rios0rios0/depcheck/internal/domain/entities"
)

// addAnalysisFlags adds the flags shared by every command that runs an analysis.
func addAnalysisFlags(cmd *cobra.Command) {
	cmd.Flags().StringArray("ignore", nil, "Ignore a specific package (repeatable)")
	cmd.Flags().StringSlice("dirs", nil, "Comma-separated list of directories to scan")
	cmd.Flags().Int("workers", 0, "Number of files read in parallel (default: number of CPUs)")
	cmd.Flags().Bool("respect-gitignore", false, "Skip source files matched by the project's .gitignore")
}

// resolveAnalyzeOptions merges the config file, environment and command-line
// flags into AnalyzeOptions. Flags win over config values; ignore lists are joined.
func resolveAnalyzeOptions(
	cmd *cobra.Command,
	args []string,
) (entities.AnalyzeOptions, *config.Config, error) {
	flags := cmd.Flags()

	if verbose, _ := flags.GetBool("verbose"); verbose {
		logger.SetLevel(logger.DebugLevel)
	}

	root := "."
	if len(args) > 0 {
		root = args[0]
	}

	cfg, err := loadConfig(cmd, root)
	if err != nil {
		return entities.AnalyzeOptions{}, nil, err
	}

	if flags.Lookup("format") != nil && flags.Changed("format") {
		cfg.Format, _ = flags.GetString("format")
	}
	if asJSON, _ := flags.GetBool("json"); asJSON {
		cfg.Format = config.FormatJSON
	}
	if flags.Changed("dirs") {
		cfg.Dirs, _ = flags.GetStringSlice("dirs")
	}
	if flags.Changed("workers") {
		cfg.Workers, _ = flags.GetInt("workers")
	}
	if flags.Changed("respect-gitignore") {
		cfg.RespectGitignore, _ = flags.GetBool("respect-gitignore")
	}
	if flags.Lookup("package-manager") != nil && flags.Changed("package-manager") {
		cfg.PackageManager, _ = flags.GetString("package-manager")
	}
	if validateErr := cfg.Validate(); validateErr != nil {
		return entities.AnalyzeOptions{}, nil, validateErr
	}

	ignore, _ := flags.GetStringArray("ignore")

	return entities.AnalyzeOptions{
		Root:             root,
		Ignore:           append(append([]string{}, cfg.Ignore...), ignore...),
		Dirs:             cfg.Dirs,
		Workers:          cfg.Workers,
		RespectGitignore: cfg.RespectGitignore,
	}, cfg, nil
}

func loadConfig(cmd *cobra.Command, root string) (*config.Config, error) {
	cfgPath, _ := cmd.Flags().GetString("config")
	if cfgPath == "" {
		if found, findErr := config.FindConfigFile(root); findErr == nil {
			cfgPath = found
		}
	}
	if cfgPath != "" {
		logger.Debugf("Using config file: %s", cfgPath)
	}
	return config.Load(cfgPath)
}
