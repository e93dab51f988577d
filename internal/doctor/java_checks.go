package doctor

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/thoreinstein/javafind/internal/java"
)

// JavaHomeCheck verifies that JAVA_HOME, when set, names a working runtime.
type JavaHomeCheck struct {
	detector *java.Detector
	env      java.Environment
}

var _ Check = (*JavaHomeCheck)(nil)

// NewJavaHomeCheck creates a JAVA_HOME check backed by detector.
func NewJavaHomeCheck(detector *java.Detector, env java.Environment) *JavaHomeCheck {
	return &JavaHomeCheck{detector: detector, env: env}
}

// Name returns the unique identifier for this check.
func (c *JavaHomeCheck) Name() string {
	return "java-home"
}

// Category returns the grouping for this check.
func (c *JavaHomeCheck) Category() string {
	return "java"
}

// Run probes the launcher under $JAVA_HOME/bin.
func (c *JavaHomeCheck) Run(ctx context.Context) *CheckResult {
	result := newResult(c)

	home := c.env.Getenv("JAVA_HOME")
	if home == "" {
		result.Status = SeverityInfo
		result.Message = "JAVA_HOME is not set"
		return result
	}
	result.Details["java_home"] = home

	launcher := filepath.Join(home, "bin", c.detector.Locator().Host().Launchers[0])
	result.Details["launcher"] = launcher

	classified := java.Classify(c.detector.Filesystem(), []string{launcher})
	if classified[0].State != java.Accepted {
		result.Status = SeverityError
		result.Message = "JAVA_HOME does not contain a java launcher"
		result.FixHint = "point JAVA_HOME at a JDK or JRE installation directory"
		return result
	}

	info, err := c.detector.Prober().Probe(ctx, launcher, true)
	if err != nil {
		result.Status = SeverityWarning
		result.Message = fmt.Sprintf("JAVA_HOME runtime did not report a version: %v", err)
		result.FixHint = "run " + launcher + " -version to see the full output"
		return result
	}

	result.Status = SeverityPass
	result.Message = fmt.Sprintf("JAVA_HOME is %s %s", info.Vendor, info.Version)
	result.Details["version"] = info.Version
	result.Details["vendor"] = info.Vendor
	return result
}

// PathJavaCheck reports which runtime a bare "java" command resolves to.
type PathJavaCheck struct {
	detector *java.Detector
	env      java.Environment
}

var _ Check = (*PathJavaCheck)(nil)

// NewPathJavaCheck creates a PATH check backed by detector.
func NewPathJavaCheck(detector *java.Detector, env java.Environment) *PathJavaCheck {
	return &PathJavaCheck{detector: detector, env: env}
}

// Name returns the unique identifier for this check.
func (c *PathJavaCheck) Name() string {
	return "path-java"
}

// Category returns the grouping for this check.
func (c *PathJavaCheck) Category() string {
	return "java"
}

// Run probes the first launcher found on PATH.
func (c *PathJavaCheck) Run(ctx context.Context) *CheckResult {
	result := newResult(c)

	launcher := c.firstOnPath()
	if launcher == "" {
		result.Status = SeverityWarning
		result.Message = "no java launcher on PATH"
		result.FixHint = "add a runtime's bin directory to PATH"
		return result
	}
	result.Details["launcher"] = launcher

	info, err := c.detector.Prober().Probe(ctx, launcher, true)
	if err != nil {
		result.Status = SeverityWarning
		result.Message = fmt.Sprintf("java on PATH did not report a version: %v", err)
		return result
	}

	result.Status = SeverityPass
	result.Message = fmt.Sprintf("java on PATH is %s %s", info.Vendor, info.Version)
	result.Details["version"] = info.Version
	result.Details["vendor"] = info.Vendor
	return result
}

func (c *PathJavaCheck) firstOnPath() string {
	host := c.detector.Locator().Host()
	for dir := range strings.SplitSeq(c.env.Getenv("PATH"), host.ListSeparator) {
		if dir == "" {
			continue
		}
		candidate := filepath.Join(dir, host.Launchers[0])
		if java.Classify(c.detector.Filesystem(), []string{candidate})[0].State == java.Accepted {
			return candidate
		}
	}
	return ""
}

// InventoryCheck runs a full scan and reports how many runtimes answered.
type InventoryCheck struct {
	detector *java.Detector
}

var _ Check = (*InventoryCheck)(nil)

// NewInventoryCheck creates an inventory check backed by detector.
func NewInventoryCheck(detector *java.Detector) *InventoryCheck {
	return &InventoryCheck{detector: detector}
}

// Name returns the unique identifier for this check.
func (c *InventoryCheck) Name() string {
	return "inventory"
}

// Category returns the grouping for this check.
func (c *InventoryCheck) Category() string {
	return "java"
}

// Run executes a discovery scan.
func (c *InventoryCheck) Run(ctx context.Context) *CheckResult {
	runtimes := c.detector.Detect(ctx)

	result := newResult(c)
	result.Details["runtimes"] = runtimes
	result.Details["count"] = len(runtimes)

	if len(runtimes) == 0 {
		result.Status = SeverityWarning
		result.Message = "no Java runtimes found"
		result.FixHint = "install a JDK, or add its location with search.extra_dirs"
		return result
	}

	result.Status = SeverityPass
	result.Message = fmt.Sprintf("%d Java runtime(s) found", len(runtimes))
	return result
}

// javaOptionVars are read by every launcher, which then prints a
// "Picked up ..." line ahead of its version banner.
var javaOptionVars = []string{"JAVA_TOOL_OPTIONS", "_JAVA_OPTIONS", "JDK_JAVA_OPTIONS"}

// JavaOptionsCheck warns about launcher option variables that change the
// first line of version output and so skew vendor labels.
type JavaOptionsCheck struct {
	env java.Environment
}

var _ Check = (*JavaOptionsCheck)(nil)

// NewJavaOptionsCheck creates an options check reading env.
func NewJavaOptionsCheck(env java.Environment) *JavaOptionsCheck {
	return &JavaOptionsCheck{env: env}
}

// Name returns the unique identifier for this check.
func (c *JavaOptionsCheck) Name() string {
	return "java-options"
}

// Category returns the grouping for this check.
func (c *JavaOptionsCheck) Category() string {
	return "java"
}

// Run inspects the option variables. Values are masked before reporting.
func (c *JavaOptionsCheck) Run(_ context.Context) *CheckResult {
	result := newResult(c)

	var set []string
	for _, key := range javaOptionVars {
		if value, ok := c.env.LookupEnv(key); ok && value != "" {
			result.Details[key] = MaskJavaOptions(value)
			set = append(set, key)
		}
	}

	if len(set) == 0 {
		result.Status = SeverityPass
		result.Message = "no launcher option variables set"
		return result
	}

	result.Status = SeverityWarning
	result.Message = fmt.Sprintf("%s set; vendors may be reported as %q", strings.Join(set, ", "), "Oracle Java")
	result.FixHint = "unset " + strings.Join(set, " ") + " before scanning"
	return result
}
