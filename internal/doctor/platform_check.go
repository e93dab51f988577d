package doctor

import (
	"context"
	"fmt"

	"github.com/thoreinstein/javafind/internal/java"
	"github.com/thoreinstein/javafind/internal/paths"
)

// PlatformCheck reports the host platform and what each search rule yields.
type PlatformCheck struct {
	locator *java.Locator
}

// Ensure PlatformCheck implements Check interface.
var _ Check = (*PlatformCheck)(nil)

// NewPlatformCheck creates a new platform check over locator.
func NewPlatformCheck(locator *java.Locator) *PlatformCheck {
	return &PlatformCheck{locator: locator}
}

// Name returns the unique identifier for this check.
func (c *PlatformCheck) Name() string {
	return "platform-detection"
}

// Category returns the grouping for this check.
func (c *PlatformCheck) Category() string {
	return "platform"
}

// Run traces the search rules and returns per-rule candidate counts.
func (c *PlatformCheck) Run(ctx context.Context) *CheckResult {
	host := c.locator.Host()
	trace := c.locator.Trace(ctx)

	rules := make([]map[string]any, 0, len(trace))
	total := 0
	for _, rc := range trace {
		rules = append(rules, map[string]any{
			"rule":       rc.Rule,
			"candidates": len(rc.Candidates),
		})
		total += len(rc.Candidates)
	}

	result := newResult(c)
	result.Details["platform"] = host.Name
	result.Details["launchers"] = host.Launchers
	result.Details["rules"] = rules
	result.Details["candidates"] = total

	if !host.Supported {
		result.Status = SeverityInfo
		result.Message = fmt.Sprintf("no search table for %s; only PATH, JAVA_HOME and extra dirs are searched", host.Name)
		return result
	}

	result.Status = SeverityPass
	result.Message = fmt.Sprintf("%s: %d search rules, %d candidate(s)", paths.PlatformLabel(host.Name), len(trace), total)
	return result
}
