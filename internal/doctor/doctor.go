package doctor

import (
	"context"
	"time"

	"github.com/thoreinstein/javafind/internal/logging"
)

// Check is one diagnostic.
type Check interface {
	// Name is the stable identifier shown in reports, e.g. "java-home".
	Name() string

	// Category groups checks in text output ("java", "config", "platform", "filesystem").
	Category() string

	// Run performs the diagnostic. Problems are reported in the result, never panicked.
	Run(ctx context.Context) *CheckResult
}

// Runner runs checks in registration order.
type Runner struct {
	checks []Check
	now    func() time.Time
}

// NewRunner returns a Runner for checks.
func NewRunner(checks ...Check) *Runner {
	return &Runner{checks: checks, now: time.Now}
}

// Run executes every check. Once ctx is done the remaining checks are
// reported as skipped instead of run.
func (r *Runner) Run(ctx context.Context) *DoctorReport {
	logger := logging.FromContext(ctx)
	report := &DoctorReport{
		Timestamp: r.now().UTC(),
		Results:   make([]*CheckResult, 0, len(r.checks)),
	}

	for _, check := range r.checks {
		var result *CheckResult
		if err := ctx.Err(); err != nil {
			result = newResult(check)
			result.Status = SeverityInfo
			result.Message = "skipped: " + err.Error()
		} else {
			start := r.now()
			result = check.Run(ctx)
			result.Duration = r.now().Sub(start)
		}

		logger.DebugContext(ctx, "doctor check", "check", check.Name(), "status", result.Status.String(), "duration", result.Duration)
		report.add(result)
	}

	return report
}

// FixReport groups the fix attempts of one check.
type FixReport struct {
	Check   string
	Results []FixResult
}

// Fix runs every check that implements Fixer and has pending work. It must
// follow Run, which is where fixers collect their issues.
func (r *Runner) Fix(ctx context.Context) []FixReport {
	var reports []FixReport
	for _, check := range r.checks {
		fixer, ok := check.(Fixer)
		if !ok || !fixer.CanFix() {
			continue
		}
		results := fixer.Fix()
		for _, res := range results {
			logging.FromContext(ctx).InfoContext(ctx, "doctor fix", "check", check.Name(), "path", res.Path, "fixed", res.Fixed)
		}
		reports = append(reports, FixReport{Check: check.Name(), Results: results})
	}
	return reports
}

// DoctorReport is the outcome of one Runner.Run.
type DoctorReport struct {
	Timestamp time.Time      `json:"timestamp"`
	Results   []*CheckResult `json:"results"`
	Summary   Summary        `json:"summary"`
}

func (r *DoctorReport) add(result *CheckResult) {
	r.Results = append(r.Results, result)
	switch result.Status {
	case SeverityPass:
		r.Summary.Passed++
	case SeverityInfo:
		r.Summary.Info++
	case SeverityWarning:
		r.Summary.Warnings++
	case SeverityError:
		r.Summary.Errors++
	}
}

// HasErrors reports whether any check failed.
func (r *DoctorReport) HasErrors() bool {
	return r.Summary.Errors > 0
}

// HasWarnings reports whether any check warned.
func (r *DoctorReport) HasWarnings() bool {
	return r.Summary.Warnings > 0
}

// Worst returns the highest severity in the report, SeverityPass when empty.
func (r *DoctorReport) Worst() Severity {
	worst := SeverityPass
	for _, res := range r.Results {
		worst = max(worst, res.Status)
	}
	return worst
}

// Visible returns the results text output shows: problems only, or
// everything when all is set.
func (r *DoctorReport) Visible(all bool) []*CheckResult {
	if all {
		return r.Results
	}
	var out []*CheckResult
	for _, res := range r.Results {
		if res.Status >= SeverityWarning {
			out = append(out, res)
		}
	}
	return out
}

// ExitCode maps the report to a process exit status: 2 when any check
// failed, 1 when any warned, 0 otherwise.
func (r *DoctorReport) ExitCode() int {
	switch r.Worst() {
	case SeverityError:
		return 2
	case SeverityWarning:
		return 1
	default:
		return 0
	}
}
