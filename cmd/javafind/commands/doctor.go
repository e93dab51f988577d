package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/thoreinstein/javafind/internal/config"
	"github.com/thoreinstein/javafind/internal/doctor"
	"github.com/thoreinstein/javafind/internal/errors"
	"github.com/thoreinstein/javafind/internal/logging"
)

var (
	doctorJSON bool
	doctorAll  bool
	doctorFix  bool
)

func init() {
	doctorCmd.Flags().BoolVar(&doctorJSON, "json", false,
		"output results as JSON")
	doctorCmd.Flags().BoolVar(&doctorAll, "all", false,
		"show every check, including passed ones")
	doctorCmd.Flags().BoolVar(&doctorFix, "fix", false,
		"repair fixable issues, then check again")
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Diagnose why a Java runtime is or is not found",
	Long: `Run diagnostic checks on the Java environment and javafind's config.

Checks JAVA_HOME, the java launcher on PATH, the full inventory, launcher
option variables, launcher permissions, the platform search table, and
the config file.

Output modes:
  (default)   Show errors and warnings
  --all       Show all checks including passed ones
  --json      Machine-readable JSON output
  -q          No output, exit code only

Exit codes:
  0 - All checks passed (no errors or warnings)
  1 - Warnings present, no errors
  2 - Errors present`,
	Example: `  javafind doctor
  javafind doctor --all
  javafind doctor --fix

See Also: javafind candidates`,
	PreRunE: validateDoctorFlags,
	RunE: func(c *cobra.Command, _ []string) error {
		return runDoctor(c.Context(), c.OutOrStdout())
	},
}

// validateDoctorFlags ensures output flags are mutually exclusive.
func validateDoctorFlags(_ *cobra.Command, _ []string) error {
	count := 0
	for _, set := range []bool{doctorJSON, doctorAll, quiet} {
		if set {
			count++
		}
	}
	if count > 1 {
		return errors.NewUserError(errors.New("flags --json, --all, and --quiet are mutually exclusive"), "")
	}
	return nil
}

// doctorChecks builds the checks in report order.
func doctorChecks(ctx context.Context) ([]doctor.Check, error) {
	detector, env, err := newDetector(ctx)
	if err != nil {
		return nil, err
	}
	return []doctor.Check{
		doctor.NewConfigSyntaxCheck(config.FileUsed()),
		doctor.NewConfigValuesCheck(configLoadErr),
		doctor.NewPlatformCheck(detector.Locator()),
		doctor.NewJavaHomeCheck(detector, env),
		doctor.NewPathJavaCheck(detector, env),
		doctor.NewJavaOptionsCheck(env),
		doctor.NewLauncherPermissionCheck(detector),
		doctor.NewInventoryCheck(detector),
	}, nil
}

func runDoctor(ctx context.Context, w io.Writer) error {
	checks, err := doctorChecks(ctx)
	if err != nil {
		return err
	}

	runner := doctor.NewRunner(checks...)
	report := runner.Run(ctx)

	if doctorFix {
		if fixes := runner.Fix(ctx); len(fixes) > 0 {
			printFixes(w, fixes)
			report = runner.Run(ctx)
		}
	}

	if err := outputDoctorReport(w, report); err != nil {
		return err
	}

	if code := report.ExitCode(); code != 0 {
		return errors.NewExitError(nil, code)
	}
	return nil
}

func printFixes(w io.Writer, fixes []doctor.FixReport) {
	if quiet || doctorJSON {
		return
	}
	for _, fix := range fixes {
		for _, r := range fix.Results {
			if r.Fixed {
				fmt.Fprintf(w, "fixed %s: %s\n", r.Path, r.Description)
			} else {
				fmt.Fprintf(w, "could not fix %s: %s\n", r.Path, r.Description)
			}
		}
	}
	fmt.Fprintln(w)
}

func outputDoctorReport(w io.Writer, report *doctor.DoctorReport) error {
	if quiet {
		return nil
	}

	if doctorJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return errors.Wrap(enc.Encode(report), "encoding JSON")
	}

	outputDoctorText(w, report)
	return nil
}

func outputDoctorText(w io.Writer, report *doctor.DoctorReport) {
	if !logging.SupportsColor(w) {
		// fatih/color decides from os.Stdout; follow the real writer instead.
		defer func(prev bool) { color.NoColor = prev }(color.NoColor)
		color.NoColor = true
	}

	visible := report.Visible(doctorAll)
	for _, result := range visible {
		fmt.Fprintf(w, "%s [%s] %s: %s\n", statusIcon(result.Status), result.Category, result.Name, result.Message)

		if result.FixHint != "" && result.Status >= doctor.SeverityWarning {
			fmt.Fprintf(w, "  hint: %s\n", result.FixHint)
		}
	}

	if len(visible) > 0 {
		fmt.Fprintln(w)
	}

	fmt.Fprintf(w, "Summary: %d passed, %d info, %d warnings, %d errors\n",
		report.Summary.Passed, report.Summary.Info, report.Summary.Warnings, report.Summary.Errors)
}

func statusIcon(s doctor.Severity) string {
	switch s {
	case doctor.SeverityPass:
		return color.GreenString("✓")
	case doctor.SeverityInfo:
		return color.CyanString("ℹ")
	case doctor.SeverityWarning:
		return color.YellowString("⚠")
	case doctor.SeverityError:
		return color.RedString("✗")
	default:
		return "?"
	}
}
