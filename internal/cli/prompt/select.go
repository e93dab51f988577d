// Package prompt provides interactive CLI prompts for choosing a runtime.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/ktr0731/go-fuzzyfinder"

	"github.com/thoreinstein/javafind/internal/errors"
	"github.com/thoreinstein/javafind/internal/java"
)

// Sentinel errors for runtime selection.
var (
	ErrNoRuntimes         = errors.New("no runtimes to select from")
	ErrInvalidSelection   = errors.New("invalid selection")
	ErrSelectionCancelled = errors.New("selection cancelled")
)

// Selector handles interactive runtime selection prompts.
type Selector struct {
	reader io.Reader
	writer io.Writer
}

// NewSelector creates a new Selector using stdin and stdout.
func NewSelector() *Selector {
	return &Selector{
		reader: os.Stdin,
		writer: os.Stdout,
	}
}

// NewSelectorWithIO creates a Selector with custom reader and writer for testing.
func NewSelectorWithIO(r io.Reader, w io.Writer) *Selector {
	return &Selector{
		reader: r,
		writer: w,
	}
}

// SelectRuntime prompts the user to choose from a numbered list.
//
// Returns:
//   - ErrNoRuntimes if the list is empty
//   - The runtime if only one exists (auto-selects without prompting)
//   - The selected runtime based on user input; empty input picks the first
//   - ErrInvalidSelection if the selection is out of range
//   - ErrSelectionCancelled if input is EOF (e.g., Ctrl+D)
func (s *Selector) SelectRuntime(runtimes []java.DetectedRuntime) (*java.DetectedRuntime, error) {
	if len(runtimes) == 0 {
		return nil, ErrNoRuntimes
	}

	if len(runtimes) == 1 {
		return &runtimes[0], nil
	}

	fmt.Fprintf(s.writer, "%d Java runtimes found:\n", len(runtimes))
	for i, rt := range runtimes {
		fmt.Fprintf(s.writer, "  [%d] %s\n", i+1, Label(rt))
	}
	fmt.Fprintf(s.writer, "Select [1]: ")

	reader := bufio.NewReader(s.reader)
	input, err := reader.ReadString('\n')
	if err != nil && (!errors.Is(err, io.EOF) || input == "") {
		if errors.Is(err, io.EOF) {
			return nil, ErrSelectionCancelled
		}
		return nil, errors.Wrap(err, "reading selection")
	}

	input = strings.TrimSpace(input)
	if input == "" {
		return &runtimes[0], nil
	}

	selection, err := strconv.Atoi(input)
	if err != nil {
		return nil, errors.Wrapf(ErrInvalidSelection, "%q is not a number", input)
	}

	// 1-indexed
	if selection < 1 || selection > len(runtimes) {
		return nil, errors.Wrapf(ErrInvalidSelection, "%d is out of range [1-%d]", selection, len(runtimes))
	}

	return &runtimes[selection-1], nil
}

// FuzzySelectRuntime opens a full-screen fuzzy finder over runtimes. It
// needs a terminal; callers fall back to SelectRuntime otherwise.
func FuzzySelectRuntime(runtimes []java.DetectedRuntime) (*java.DetectedRuntime, error) {
	switch len(runtimes) {
	case 0:
		return nil, ErrNoRuntimes
	case 1:
		return &runtimes[0], nil
	}

	idx, err := fuzzyfinder.Find(
		runtimes,
		func(i int) string {
			return Label(runtimes[i])
		},
		fuzzyfinder.WithPromptString("java> "),
		fuzzyfinder.WithPreviewWindow(func(i, _, _ int) string {
			if i == -1 {
				return ""
			}
			rt := runtimes[i]
			return fmt.Sprintf("Vendor:  %s\nVersion: %s\nPath:    %s", rt.Vendor, rt.Version, rt.Pathname)
		}),
	)
	if err != nil {
		if errors.Is(err, fuzzyfinder.ErrAbort) {
			return nil, ErrSelectionCancelled
		}
		return nil, errors.Wrap(err, "interactive selection failed")
	}

	return &runtimes[idx], nil
}

// Label renders a runtime as a single selection line.
func Label(rt java.DetectedRuntime) string {
	return fmt.Sprintf("%s %s (%s)", rt.Vendor, rt.Version, rt.Pathname)
}
