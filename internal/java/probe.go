package java

import (
	"context"
	"regexp"
	"strings"
	"time"

	"github.com/thoreinstein/javafind/internal/errors"
	"github.com/thoreinstein/javafind/internal/logging"
)

// Probe failure kinds. Returned errors are marked with one of these and
// keep the captured output as their message.
var (
	ErrSpawn              = errors.New("launcher could not be executed")
	ErrNonZeroExit        = errors.New("launcher exited with non-zero status")
	ErrUnrecognizedOutput = errors.New("no version in launcher output")
)

// DefaultProbeTimeout bounds a single version query.
const DefaultProbeTimeout = 10 * time.Second

const (
	versionFlag      = "-version"
	unknownVersion   = "unknown"
	noOutputFallback = "java command failed with no output"
)

var versionPattern = regexp.MustCompile(`version\s+"?([^\s"]+)"?`)

// Prober runs a launcher's version query and parses the banner.
type Prober struct {
	runner  Runner
	timeout time.Duration
}

// NewProber returns a Prober. A zero timeout waits for the launcher
// indefinitely.
func NewProber(runner Runner, timeout time.Duration) *Prober {
	if runner == nil {
		runner = ExecRunner{}
	}
	return &Prober{runner: runner, timeout: timeout}
}

// Probe queries the launcher at path.
//
// In strict mode output without a version token fails with
// ErrUnrecognizedOutput. Otherwise the first output line stands in for the
// version, or "unknown" when there is no output.
func (p *Prober) Probe(ctx context.Context, path string, strict bool) (RuntimeInfo, error) {
	logger := logging.FromContext(ctx)

	if p.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}

	start := time.Now()
	res, err := p.runner.Run(ctx, path, versionFlag)
	if err != nil {
		return RuntimeInfo{}, errors.Mark(errors.Wrap(err, "failed to execute java"), ErrSpawn)
	}
	logger.Log(ctx, logging.LevelTrace, "version query finished",
		"path", path, "exit_code", res.ExitCode, "duration", time.Since(start))

	if res.ExitCode != 0 {
		return RuntimeInfo{}, errors.Mark(errors.New(failureMessage(res)), ErrNonZeroExit)
	}

	banner := string(res.Stdout) + string(res.Stderr)
	first, hasLine := firstLine(banner)
	info := RuntimeInfo{Vendor: VendorFromBanner(first)}

	if m := versionPattern.FindStringSubmatch(banner); m != nil {
		info.Version = m[1]
		return info, nil
	}
	if strict {
		return RuntimeInfo{}, errors.Mark(errors.Newf("no version token in output of %s", path), ErrUnrecognizedOutput)
	}

	info.Version = unknownVersion
	if hasLine {
		info.Version = first
	}
	return info, nil
}

// failureMessage picks the text reported for a non-zero exit.
func failureMessage(res Result) string {
	if msg := strings.TrimSpace(string(res.Stderr)); msg != "" {
		return msg
	}
	if msg := strings.TrimSpace(string(res.Stdout)); msg != "" {
		return msg
	}
	return noOutputFallback
}

// firstLine returns the text before the first newline, without a trailing
// carriage return. It reports false for empty input.
func firstLine(s string) (string, bool) {
	if s == "" {
		return "", false
	}
	line, _, _ := strings.Cut(s, "\n")
	return strings.TrimSuffix(line, "\r"), true
}
