//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/depcheck/internal/domain/repositories"
)

// RunCall records a single invocation of Run.
type RunCall struct {
	Dir  string
	Name string
	Args []string
}

// SpyCommandRunnerRepository records processes instead of starting them.
type SpyCommandRunnerRepository struct {
	RunErr error
	Calls  []RunCall
}

var _ repositories.CommandRunnerRepository = (*SpyCommandRunnerRepository)(nil)

func (s *SpyCommandRunnerRepository) Run(_ context.Context, dir, name string, args ...string) error {
	s.Calls = append(s.Calls, RunCall{Dir: dir, Name: name, Args: args})
	return s.RunErr
}
