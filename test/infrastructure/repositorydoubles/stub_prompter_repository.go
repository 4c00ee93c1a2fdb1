//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/rios0rios0/depcheck/internal/domain/repositories"
)

// StubPrompterRepository answers questions from a queue and records output lines.
type StubPrompterRepository struct {
	Answers   []string
	AskErr    error
	Questions []string
	Lines     []string
}

var _ repositories.PrompterRepository = (*StubPrompterRepository)(nil)

func (s *StubPrompterRepository) Ask(question string) (string, error) {
	s.Questions = append(s.Questions, question)
	if s.AskErr != nil {
		return "", s.AskErr
	}
	if len(s.Answers) == 0 {
		return "", nil
	}
	answer := s.Answers[0]
	s.Answers = s.Answers[1:]
	return answer, nil
}

func (s *StubPrompterRepository) Println(line string) {
	s.Lines = append(s.Lines, line)
}
