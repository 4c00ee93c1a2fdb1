package repositories

import "context"

// CommandRunnerRepository invokes external processes such as package managers.
type CommandRunnerRepository interface {
	// Run executes name with args inside dir, streaming its output to the user,
	// and returns an error when the process cannot start or exits non-zero.
	Run(ctx context.Context, dir, name string, args ...string) error
}
