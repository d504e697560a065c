package shell

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jpl-au/gradebook"
)

// readLine prints prompt and returns the next input line without its line
// terminator. It returns io.EOF once input is exhausted.
func (s *Shell) readLine(prompt string) (string, error) {
	fmt.Fprint(s.out, prompt)
	if !s.in.Scan() {
		fmt.Fprintln(s.out)
		if err := s.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimRight(s.in.Text(), "\r"), nil
}

// readGrade prompts until a valid grade or the -1 sentinel is entered.
// The sentinel is returned as gradebook.ErrSentinel.
func (s *Shell) readGrade(prompt string) (int, error) {
	for {
		input, err := s.readLine(prompt)
		if err != nil {
			return 0, err
		}
		v, err := gradebook.ParseGrade(input)
		if errors.Is(err, gradebook.ErrInvalidGrade) {
			s.report(err)
			continue
		}
		return v, err
	}
}

// readIndex prompts for a 1-based position in a list of n grades and
// returns it zero-based. An empty line cancels with ErrSentinel.
func (s *Shell) readIndex(prompt string, n int) (int, error) {
	for {
		input, err := s.readLine(prompt)
		if err != nil {
			return 0, err
		}
		input = strings.TrimSpace(input)
		if input == "" {
			return 0, gradebook.ErrSentinel
		}
		i, err := strconv.Atoi(input)
		if err != nil || i < 1 || i > n {
			s.report(gradebook.ErrInvalidIndex)
			continue
		}
		return i - 1, nil
	}
}

// report prints a retryable input error.
func (s *Shell) report(err error) {
	fmt.Fprintf(s.out, "ERROR: %s.\n", message(err))
}

// message returns the user-facing text for a gradebook error.
func message(err error) string {
	switch {
	case errors.Is(err, gradebook.ErrBlankName):
		return "Name cannot be blank"
	case errors.Is(err, gradebook.ErrInvalidGrade):
		return "Grade must be between 0 and 100"
	case errors.Is(err, gradebook.ErrInvalidIndex):
		return "No grade at that position"
	case errors.Is(err, gradebook.ErrNotFound):
		return "Student not found"
	default:
		return err.Error()
	}
}
