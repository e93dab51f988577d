package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/javafind/internal/errors"
	"github.com/thoreinstein/javafind/internal/java"
)

var probeStrict bool

func init() {
	probeCmd.Flags().BoolVar(&probeStrict, "strict", false,
		"require a recognizable version banner and also print the vendor")
	rootCmd.AddCommand(probeCmd)
}

var probeCmd = &cobra.Command{
	Use:   "probe <path>",
	Short: "Print the version reported by one java launcher",
	Long: `Run "<path> -version" and print the version it reports.

By default any output is accepted: when no version number can be found
the first line of output is printed instead. With --strict the banner
must contain a version, and the vendor is printed alongside it.`,
	Example: `  javafind probe /usr/bin/java
  javafind probe --strict "C:\Program Files\Java\jdk-21\bin\java.exe"

See Also: javafind list`,
	Args: cobra.ExactArgs(1),
	RunE: func(c *cobra.Command, args []string) error {
		return runProbe(c.Context(), c.OutOrStdout(), args[0])
	},
}

func runProbe(ctx context.Context, w io.Writer, path string) error {
	detector, _, err := newDetector(ctx)
	if err != nil {
		return err
	}

	if !probeStrict {
		version, err := detector.Version(ctx, path)
		if err != nil {
			return probeError(err)
		}
		fmt.Fprintln(w, version)
		return nil
	}

	info, err := detector.Prober().Probe(ctx, path, true)
	if err != nil {
		return probeError(err)
	}
	fmt.Fprintf(w, "%s\t%s\n", info.Version, info.Vendor)
	return nil
}

// probeError classifies a probe failure for the exit status.
func probeError(err error) error {
	switch {
	case errors.Is(err, java.ErrSpawn):
		return errors.NewUserError(err, "check that the path exists and is executable")
	case errors.Is(err, java.ErrUnrecognizedOutput):
		return errors.NewUserError(err, "retry without --strict to see the raw output")
	default:
		return errors.NewUserError(err, "")
	}
}
