package commands

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/javafind/internal/java"
	"github.com/thoreinstein/javafind/internal/logging"
)

var candidatesAll bool

func init() {
	candidatesCmd.Flags().BoolVarP(&candidatesAll, "all", "a", false,
		"include candidates that do not exist")
	rootCmd.AddCommand(candidatesCmd)
}

var candidatesCmd = &cobra.Command{
	Use:   "candidates",
	Short: "Show every search rule and the launcher paths it produced",
	Long: `Run the search rules without probing anything and show, for each rule,
the launcher paths it produced and what the filter decided:

  accepted   an existing file seen for the first time; it will be probed
  duplicate  resolves to a file already accepted under another path
  missing    does not exist or is not a regular file (hidden without --all)`,
	Example: `  javafind candidates
  javafind candidates --all --platform darwin

See Also: javafind list, javafind doctor`,
	Args: cobra.NoArgs,
	RunE: func(c *cobra.Command, _ []string) error {
		return runCandidates(c.Context(), c.OutOrStdout())
	},
}

func runCandidates(ctx context.Context, w io.Writer) error {
	detector, _, err := newDetector(ctx)
	if err != nil {
		return err
	}

	trace := detector.Locator().Trace(ctx)

	// Classify in one pass so duplicates are judged across rules.
	var all []string
	for _, rc := range trace {
		all = append(all, rc.Candidates...)
	}
	decided := java.Classify(detector.Filesystem(), all)

	useColor := logging.SupportsColor(w)
	host := detector.Locator().Host()
	fmt.Fprintf(w, "%s (%d rules)\n\n", paint(useColor, colorBold, "Platform: "+host.Name), len(trace))

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "RULE\tPATH\tSTATE")

	i := 0
	for _, rc := range trace {
		for range rc.Candidates {
			fc := decided[i]
			i++
			if fc.State == java.Missing && !candidatesAll {
				continue
			}
			fmt.Fprintf(tw, "%s\t%s\t%s\n", rc.Rule, describeCandidate(fc), stateLabel(useColor, fc.State))
		}
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	var accepted, duplicate int
	for _, fc := range decided {
		switch fc.State {
		case java.Accepted:
			accepted++
		case java.Duplicate:
			duplicate++
		}
	}
	fmt.Fprintf(w, "\n%d candidate(s): %d accepted, %d duplicate, %d missing\n",
		len(decided), accepted, duplicate, len(decided)-accepted-duplicate)
	return nil
}

func stateLabel(useColor bool, s java.CandidateState) string {
	switch s {
	case java.Accepted:
		return paint(useColor, colorGreen, s.String())
	case java.Duplicate:
		return paint(useColor, colorYellow, s.String())
	default:
		return paint(useColor, colorGray, s.String())
	}
}

func describeCandidate(fc java.FilteredCandidate) string {
	if fc.Identity == "" || fc.Identity == fc.Path {
		return fc.Path
	}
	return fc.Path + " -> " + fc.Identity
}
