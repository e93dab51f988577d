package java

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/thoreinstein/javafind/internal/logging"
)

// Options configures a Detector. The zero value scans the host with no
// probe timeout, one probe at a time.
type Options struct {
	Env    Environment
	FS     Filesystem
	Runner Runner

	// ExtraDirs are searched like JVM directories after the platform table.
	ExtraDirs []string

	// ProbeTimeout bounds each version query; zero disables it.
	ProbeTimeout time.Duration

	// Concurrency is the number of probes run at once. Values below 2 probe
	// sequentially in the calling goroutine.
	Concurrency int

	// Logger receives scan diagnostics. When nil the logger stored in the
	// scan context is used.
	Logger *slog.Logger
}

// Detector runs the discovery pipeline: locate, filter, probe, assemble.
// A Detector holds no state between scans and is safe for concurrent use.
type Detector struct {
	locator     *Locator
	fsys        Filesystem
	prober      *Prober
	concurrency int
	logger      *slog.Logger
}

// New returns a Detector for opts.
func New(opts Options) *Detector {
	if opts.Env == nil {
		opts.Env = OSEnvironment{}
	}
	if opts.FS == nil {
		opts.FS = OSFilesystem{}
	}
	return &Detector{
		locator:     NewLocator(opts.Env, opts.FS, opts.ExtraDirs...),
		fsys:        opts.FS,
		prober:      NewProber(opts.Runner, opts.ProbeTimeout),
		concurrency: max(opts.Concurrency, 1),
		logger:      opts.Logger,
	}
}

// Locator returns the detector's candidate locator.
func (d *Detector) Locator() *Locator { return d.locator }

// Prober returns the detector's version prober.
func (d *Detector) Prober() *Prober { return d.prober }

// Filesystem returns the filesystem the detector inspects.
func (d *Detector) Filesystem() Filesystem { return d.fsys }

func (d *Detector) withLogger(ctx context.Context) context.Context {
	if d.logger == nil {
		return ctx
	}
	return logging.NewContext(ctx, d.logger)
}

// Detect returns every runtime found on the host, in the order the
// filter accepted them. Candidates that fail to probe are left out. Detect
// never fails and returns an empty, non-nil slice when nothing is found.
func (d *Detector) Detect(ctx context.Context) []DetectedRuntime {
	ctx = d.withLogger(ctx)
	ctx = logging.ContextAttrs(ctx,
		slog.String("scan_id", uuid.NewString()),
		slog.String("platform", d.locator.Host().Name),
	)
	logger := logging.FromContext(ctx)
	start := time.Now()

	candidates := d.locator.Candidates(ctx)
	accepted := Filter(d.fsys, candidates)
	logger.DebugContext(ctx, "candidates filtered", "candidates", len(candidates), "accepted", len(accepted))

	probed := make([]*DetectedRuntime, len(accepted))
	probeOne := func(i int) {
		path := accepted[i]
		info, err := d.prober.Probe(ctx, path, true)
		if err != nil {
			logger.DebugContext(ctx, "dropping candidate", "path", path, "error", err)
			return
		}
		probed[i] = &DetectedRuntime{Pathname: path, Version: info.Version, Vendor: info.Vendor}
	}

	if d.concurrency > 1 && len(accepted) > 1 {
		var g errgroup.Group
		g.SetLimit(d.concurrency)
		for i := range accepted {
			g.Go(func() error {
				probeOne(i)
				return nil
			})
		}
		_ = g.Wait()
	} else {
		for i := range accepted {
			probeOne(i)
		}
	}

	runtimes := make([]DetectedRuntime, 0, len(accepted))
	for _, rt := range probed {
		if rt != nil {
			runtimes = append(runtimes, *rt)
		}
	}

	logger.InfoContext(ctx, "scan complete", "runtimes", len(runtimes), "duration", time.Since(start))
	return runtimes
}

// DetectAsync runs Detect in a new goroutine. The returned channel
// delivers exactly one inventory and is then closed.
func (d *Detector) DetectAsync(ctx context.Context) <-chan []DetectedRuntime {
	ch := make(chan []DetectedRuntime, 1)
	go func() {
		defer close(ch)
		ch <- d.Detect(ctx)
	}()
	return ch
}

// Version queries one launcher leniently: output without a version token
// yields its first line. Failures carry the launcher's output as the
// error message.
func (d *Detector) Version(ctx context.Context, path string) (string, error) {
	info, err := d.prober.Probe(d.withLogger(ctx), path, false)
	if err != nil {
		return "", err
	}
	return info.Version, nil
}

// DetectJavaRuntimes scans the host with default options.
func DetectJavaRuntimes(ctx context.Context) []DetectedRuntime {
	return New(Options{ProbeTimeout: DefaultProbeTimeout}).Detect(ctx)
}

// GetJavaVersion returns the version reported by the launcher at path.
func GetJavaVersion(ctx context.Context, path string) (string, error) {
	return New(Options{ProbeTimeout: DefaultProbeTimeout}).Version(ctx, path)
}
