package commands

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/javafind/cmd"
	"github.com/thoreinstein/javafind/internal/errors"
	"github.com/thoreinstein/javafind/internal/inventory"
	"github.com/thoreinstein/javafind/internal/logging"
	"github.com/thoreinstein/javafind/pkg/fileutil"
)

var (
	listFormat string
	listOutput string
)

func init() {
	listCmd.Flags().StringVarP(&listFormat, "format", "f", string(inventory.FormatTable),
		"output format: "+strings.Join(inventory.Formats(), ", "))
	listCmd.Flags().StringVarP(&listOutput, "output", "o", "",
		"write the inventory to a file instead of stdout")
	rootCmd.AddCommand(listCmd)
}

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"detect", "ls"},
	Short:   "List installed Java runtimes",
	Long: `Search every known location for java launchers, ask each one for its
version, and print the runtimes that answered.

Runtimes are listed in search order: PATH first, then JAVA_HOME, then
the platform's JVM directories and version managers. A runtime reachable
through several paths (for example a symlink on PATH) is listed once,
under the first path found.`,
	Example: `  # Table output
  javafind list

  # JSON for scripts
  javafind list --format json | jq -r '.[].pathname'

  # CycloneDX inventory written atomically
  javafind list -f cyclonedx -o runtimes.cdx.json

See Also: javafind probe, javafind doctor`,
	Args: cobra.NoArgs,
	RunE: func(c *cobra.Command, _ []string) error {
		return runList(c.Context(), c.OutOrStdout())
	},
}

func runList(ctx context.Context, w io.Writer) error {
	format, err := inventory.ParseFormat(listFormat)
	if err != nil {
		return errors.NewUserError(err, "valid formats: "+strings.Join(inventory.Formats(), ", "))
	}

	detector, _, err := newDetector(ctx)
	if err != nil {
		return err
	}
	runtimes := detector.Detect(ctx)

	if listOutput == "" {
		return inventory.Encoder{
			Color:       logging.SupportsColor(w),
			ToolVersion: cmd.Build().Version,
		}.Encode(w, format, runtimes)
	}

	enc := inventory.Encoder{ToolVersion: cmd.Build().Version}
	err = fileutil.AtomicWriteWith(listOutput, 0o644, func(out io.Writer) error {
		return enc.Encode(out, format, runtimes)
	})
	if err != nil {
		return errors.NewSystemError(errors.Wrapf(err, "writing %s", listOutput), "")
	}

	if !quiet {
		fmt.Fprintf(w, "Wrote %d runtime(s) to %s\n", len(runtimes), listOutput)
	}
	return nil
}
