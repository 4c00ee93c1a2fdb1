package entities

// AnalyzeOptions configures a single analysis run.
type AnalyzeOptions struct {
	Root             string
	Ignore           []string // exact package names dropped before analysis
	Dirs             []string // overrides the default source directories when non-empty
	Workers          int      // 0 means GOMAXPROCS
	RespectGitignore bool
}

// RemoveOptions configures the interactive removal of unused dependencies.
type RemoveOptions struct {
	AnalyzeOptions

	PackageManager string // "npm", "yarn", "pnpm" or empty to detect from lockfiles
	DryRun         bool
	Force          bool // skip the clean working tree check on package.json
}
