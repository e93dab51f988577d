package commands

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/javafind/internal/cli/prompt"
	"github.com/thoreinstein/javafind/internal/errors"
	"github.com/thoreinstein/javafind/internal/java"
	"github.com/thoreinstein/javafind/internal/logging"
)

var pickHome bool

func init() {
	pickCmd.Flags().BoolVar(&pickHome, "home", false,
		"print the runtime's home directory instead of the launcher path")
	rootCmd.AddCommand(pickCmd)
}

var pickCmd = &cobra.Command{
	Use:   "pick",
	Short: "Choose one of the installed runtimes",
	Long: `Discover runtimes and choose one interactively. A fuzzy finder opens
when attached to a terminal; otherwise a numbered list is read from
stdin. The chosen launcher path is printed on stdout, so the command
composes with shell substitution.`,
	Example: `  # Point JAVA_HOME at a chosen runtime
  export JAVA_HOME=$(javafind pick --home)

  # Non-interactive: take the second runtime
  echo 2 | javafind pick

See Also: javafind list`,
	Args: cobra.NoArgs,
	RunE: func(c *cobra.Command, _ []string) error {
		return runPick(c.Context(), c.InOrStdin(), c.OutOrStdout(), c.ErrOrStderr())
	},
}

// interactive reports whether the fuzzy finder can take over the terminal.
var interactive = func() bool {
	return logging.IsTTY(os.Stdin) && logging.IsTTY(os.Stderr)
}

func runPick(ctx context.Context, in io.Reader, out, prompts io.Writer) error {
	detector, _, err := newDetector(ctx)
	if err != nil {
		return err
	}
	runtimes := detector.Detect(ctx)

	var chosen *java.DetectedRuntime
	if interactive() {
		chosen, err = prompt.FuzzySelectRuntime(runtimes)
	} else {
		chosen, err = prompt.NewSelectorWithIO(in, prompts).SelectRuntime(runtimes)
	}
	switch {
	case errors.Is(err, prompt.ErrNoRuntimes):
		return errors.NewUserError(err, "Run: javafind doctor")
	case errors.Is(err, prompt.ErrSelectionCancelled):
		return errors.NewExitError(nil, errors.ExitUser)
	case err != nil:
		return errors.NewUserError(err, "")
	}

	if pickHome {
		fmt.Fprintln(out, javaHome(chosen.Pathname))
		return nil
	}
	fmt.Fprintln(out, chosen.Pathname)
	return nil
}

// javaHome returns the directory above a launcher's bin directory.
func javaHome(launcher string) string {
	return filepath.Dir(filepath.Dir(launcher))
}
