// Package editor launches the user's preferred text editor.
package editor

import (
	"context"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/thoreinstein/javafind/internal/errors"
	"github.com/thoreinstein/javafind/internal/logging"
)

// Session wires an editor process to a terminal.
type Session struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// Open launches the user's editor on path with the process's own terminal.
func Open(ctx context.Context, path string) error {
	return Session{Stdin: os.Stdin, Stdout: os.Stdout, Stderr: os.Stderr}.Open(ctx, path)
}

// Open launches the user's editor on path and waits for it to exit.
// $EDITOR and $VISUAL may carry arguments, e.g. "code --wait".
func (s Session) Open(ctx context.Context, path string) error {
	argv := strings.Fields(detectEditor())
	argv = append(argv, path)

	logging.FromContext(ctx).Debug("launching editor", "editor", argv[0], "path", path)

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Stdin = s.Stdin
	cmd.Stdout = s.Stdout
	cmd.Stderr = s.Stderr

	if err := cmd.Run(); err != nil {
		return errors.Wrapf(err, "running editor %s", argv[0])
	}
	return nil
}

// detectEditor returns the editor command line. Fallback chain:
// $EDITOR, $VISUAL, notepad on Windows, nano, vi.
func detectEditor() string {
	if editor := strings.TrimSpace(os.Getenv("EDITOR")); editor != "" {
		return editor
	}
	if visual := strings.TrimSpace(os.Getenv("VISUAL")); visual != "" {
		return visual
	}
	if _, err := exec.LookPath("notepad"); err == nil {
		return "notepad"
	}
	if _, err := exec.LookPath("nano"); err == nil {
		return "nano"
	}
	return "vi"
}
