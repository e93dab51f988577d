// Package logging provides structured logging for the javafind CLI using slog.
//
// The package supports both text and JSON output formats, configurable log
// levels, and helpers for testing. All loggers are based on the standard
// library's [log/slog] package.
//
// # Basic Usage
//
//	logger := logging.New(logging.Config{
//		Level:  slog.LevelInfo,
//		Format: logging.FormatText,
//		Output: os.Stderr,
//	})
//	logger.Info("starting", "version", "1.0.0")
//
// # Testing
//
// For tests, use [ForTest] to capture log output via the testing framework:
//
//	func TestSomething(t *testing.T) {
//		logger := logging.ForTest(t)
//		// logs appear in test output on failure
//	}
//
// # Scan Attributes
//
// Loggers built by [New] wrap their handler in a [ContextHandler], so
// attributes attached with [ContextAttrs] appear on every record logged
// with a *Context method:
//
//	ctx = logging.ContextAttrs(ctx, slog.String("scan_id", id))
//	logger.DebugContext(ctx, "probing candidate", "path", p)
//
// # Log Files
//
// [Config.Mirror] fans every record out to a second, JSON-encoded sink:
//
//	logger := logging.New(logging.Config{Level: level, Mirror: logFile})
package logging
