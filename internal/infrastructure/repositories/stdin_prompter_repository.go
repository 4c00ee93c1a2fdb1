package repositories

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// StdinPrompterRepository reads answers from standard input.
type StdinPrompterRepository struct {
	reader *bufio.Reader
	writer io.Writer
}

// NewStdinPrompterRepository creates a prompter on the process' standard streams.
func NewStdinPrompterRepository() *StdinPrompterRepository {
	return NewStreamPrompterRepository(os.Stdin, os.Stdout)
}

// NewStreamPrompterRepository creates a prompter on arbitrary streams.
func NewStreamPrompterRepository(in io.Reader, out io.Writer) *StdinPrompterRepository {
	return &StdinPrompterRepository{reader: bufio.NewReader(in), writer: out}
}

// Ask prints the question and returns the trimmed answer.
// A closed input counts as an empty answer.
func (it *StdinPrompterRepository) Ask(question string) (string, error) {
	_, _ = fmt.Fprint(it.writer, question)

	input, err := it.reader.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("failed to read user input: %w", err)
	}

	return strings.TrimSpace(input), nil
}

// Println writes one line to the output stream.
func (it *StdinPrompterRepository) Println(line string) {
	_, _ = fmt.Fprintln(it.writer, line)
}
