package doctor

import (
	"context"
	"fmt"
	"os"

	"github.com/thoreinstein/javafind/internal/errors"
	"github.com/thoreinstein/javafind/internal/java"
	"github.com/thoreinstein/javafind/internal/paths"
)

// Fixer is an optional interface that checks can implement to support auto-remediation.
// Checks that implement Fixer can fix issues they detect when the --fix flag is used.
type Fixer interface {
	// CanFix returns true if this check has fixable issues.
	// Must be called after Run() to check if there are issues that can be fixed.
	CanFix() bool

	// Fix attempts to remediate the issues found by Run().
	// Must be called after Run().
	Fix() []FixResult
}

// FixResult describes the outcome of an attempted fix operation.
type FixResult struct {
	// Path is the file that was targeted for fixing.
	Path string

	// Fixed indicates whether the fix was successfully applied.
	Fixed bool

	// Description explains what was fixed or why it couldn't be fixed.
	Description string

	// Error contains the error if the fix failed.
	Error error
}

// launcherIssue is a launcher the filter accepts but the OS will not run.
type launcherIssue struct {
	Path    string
	Mode    os.FileMode
	Problem string
	Fixable bool
}

// executable returns mode with an execute bit added wherever a read bit is set.
func executable(mode os.FileMode) os.FileMode {
	perm := mode.Perm()
	return perm | (perm&0o444)>>2
}

// PermissionFixer adds execute bits to launchers.
// It is embedded in LauncherPermissionCheck to provide fix capability.
type PermissionFixer struct {
	issues []launcherIssue
}

// CanFix returns true if there are any fixable permission issues.
func (f *PermissionFixer) CanFix() bool {
	return f.CountFixable() > 0
}

// Fix attempts to fix all fixable permission issues.
func (f *PermissionFixer) Fix() []FixResult {
	results := make([]FixResult, 0, f.CountFixable())
	for _, issue := range f.issues {
		if !issue.Fixable {
			continue
		}
		results = append(results, f.fixIssue(issue))
	}
	return results
}

func (f *PermissionFixer) fixIssue(issue launcherIssue) FixResult {
	result := FixResult{Path: issue.Path}

	target := executable(issue.Mode)
	if err := os.Chmod(issue.Path, target); err != nil {
		result.Description = fmt.Sprintf("failed to chmod %04o: %v", target, err)
		result.Error = errors.Wrapf(err, "chmod %04o %s", target, issue.Path)
		return result
	}

	result.Fixed = true
	result.Description = fmt.Sprintf("chmod %04o", target)
	return result
}

func (f *PermissionFixer) setIssues(issues []launcherIssue) {
	f.issues = issues
}

// CountFixable returns the number of fixable issues.
func (f *PermissionFixer) CountFixable() int {
	count := 0
	for _, issue := range f.issues {
		if issue.Fixable {
			count++
		}
	}
	return count
}

// LauncherPermissionCheck finds launchers that exist but lack execute
// permission. Such files pass the existence filter and then fail to spawn,
// so they silently vanish from the inventory.
type LauncherPermissionCheck struct {
	PermissionFixer

	detector *java.Detector
}

var (
	_ Check = (*LauncherPermissionCheck)(nil)
	_ Fixer = (*LauncherPermissionCheck)(nil)
)

// NewLauncherPermissionCheck creates a permission check over detector's candidates.
func NewLauncherPermissionCheck(detector *java.Detector) *LauncherPermissionCheck {
	return &LauncherPermissionCheck{detector: detector}
}

// Name returns the unique identifier for this check.
func (c *LauncherPermissionCheck) Name() string {
	return "launcher-permissions"
}

// Category returns the grouping for this check.
func (c *LauncherPermissionCheck) Category() string {
	return "filesystem"
}

// Run inspects the mode of every accepted candidate.
func (c *LauncherPermissionCheck) Run(ctx context.Context) *CheckResult {
	result := newResult(c)

	if c.detector.Locator().Host().Name == paths.PlatformWindows {
		c.setIssues(nil)
		result.Status = SeverityInfo
		result.Message = "execute permissions do not apply on windows"
		return result
	}

	fsys := c.detector.Filesystem()
	accepted := java.Filter(fsys, c.detector.Locator().Candidates(ctx))

	var issues []launcherIssue
	for _, path := range accepted {
		info, err := fsys.Stat(path)
		if err != nil {
			issues = append(issues, launcherIssue{
				Path:    path,
				Problem: fmt.Sprintf("cannot stat launcher: %v", err),
			})
			continue
		}
		if info.Mode().Perm()&0o111 == 0 {
			issues = append(issues, launcherIssue{
				Path:    path,
				Mode:    info.Mode(),
				Problem: fmt.Sprintf("launcher is not executable (%04o)", info.Mode().Perm()),
				Fixable: true,
			})
		}
	}
	c.setIssues(issues)

	result.Details["checked"] = len(accepted)
	if len(issues) == 0 {
		result.Status = SeverityPass
		result.Message = fmt.Sprintf("%d launcher(s) executable", len(accepted))
		return result
	}

	problems := make([]map[string]string, 0, len(issues))
	for _, issue := range issues {
		problems = append(problems, map[string]string{"path": issue.Path, "problem": issue.Problem})
	}
	result.Details["issues"] = problems
	result.Status = SeverityWarning
	result.Message = fmt.Sprintf("%d launcher(s) cannot be executed", len(issues))
	if c.CanFix() {
		result.Fixable = true
		result.FixHint = "run: javafind doctor --fix"
	}
	return result
}
