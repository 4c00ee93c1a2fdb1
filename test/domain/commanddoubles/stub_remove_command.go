//go:build integration || unit || test

package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/depcheck/internal/domain/commands"
	"github.com/rios0rios0/depcheck/internal/domain/entities"
)

// StubRemoveCommand is a stub implementation of commands.Remove.
type StubRemoveCommand struct {
	ExecuteCallCount int
	Removed          []string
	ExecuteErr       error
	LastOpts         entities.RemoveOptions
}

var _ commands.Remove = (*StubRemoveCommand)(nil)

func (s *StubRemoveCommand) Execute(
	_ context.Context,
	opts entities.RemoveOptions,
) ([]string, error) {
	s.ExecuteCallCount++
	s.LastOpts = opts
	return s.Removed, s.ExecuteErr
}
