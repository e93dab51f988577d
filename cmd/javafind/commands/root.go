// Package commands implements the CLI commands for javafind.
package commands

import (
	"context"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/javafind/cmd"
	"github.com/thoreinstein/javafind/internal/config"
	"github.com/thoreinstein/javafind/internal/errors"
	"github.com/thoreinstein/javafind/internal/java"
	"github.com/thoreinstein/javafind/internal/logging"
	"github.com/thoreinstein/javafind/internal/paths"
	"github.com/thoreinstein/javafind/internal/platform"
)

// Global flag values, bound in init.
var (
	platformFlag string // --platform
	verbosity    int    // -v count
	quiet        bool
	logFormat    string
	logFile      string
	configFile   string
)

// cfg is the loaded configuration; defaults when loading failed.
var cfg = config.Default()

// configLoadErr holds any error that occurred during config loading.
var configLoadErr error

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&platformFlag, "platform", "p", "",
		"search table to use: "+strings.Join(paths.Platforms(), ", ")+" (default: host)")
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v",
		"increase verbosity level (e.g., -v, -vv, -vvv)")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false,
		"suppress non-error output")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text",
		"log format: text, json")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "",
		"write logs to file in JSON format")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "",
		"config file (default: ./config.yaml or "+paths.ConfigDir()+"/config.yaml)")

	rootCmd.Version = cmd.Build().Version
	rootCmd.SetVersionTemplate("javafind version {{.Version}}\n")

	// Silence errors and usage so we can control error output
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
}

func initConfig() {
	config.Init()

	loaded, err := config.Load(configFile)
	configLoadErr = err
	if loaded != nil && err == nil {
		cfg = loaded
	} else {
		cfg = config.Default()
	}
}

var rootCmd = &cobra.Command{
	Use:   "javafind",
	Short: "Find the Java runtimes installed on this machine",
	Long: `javafind discovers Java runtimes on Linux, macOS and Windows.

It looks for java launchers on PATH, under JAVA_HOME, in the platform's
JVM directories and in the folders of common version managers (SDKMAN,
jabba, asdf, Homebrew, Scoop, Chocolatey, JetBrains). Every launcher is
asked for its version, and each answering runtime is reported once with
its version and vendor.`,
	Example: `  # List installed runtimes
  javafind list

  # Export an inventory as a CycloneDX BOM
  javafind list --format cyclonedx --output runtimes.cdx.json

  # Ask one launcher for its version
  javafind probe /usr/lib/jvm/java-17-openjdk/bin/java

  # Choose a runtime and export it as JAVA_HOME
  export JAVA_HOME=$(javafind pick --home)

  # Explain why a runtime is missing
  javafind doctor

  See Also: javafind candidates, javafind config`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Initialize logging first
		if err := setupLogging(cmd); err != nil {
			return err
		}
		return validateGlobalFlags(cmd, args)
	},
	Run: func(cmd *cobra.Command, args []string) {
		_ = cmd.Help()
	},
}

// setupLogging configures the default logger based on verbosity flags.
func setupLogging(cmd *cobra.Command) error {
	if quiet && verbosity > 0 {
		return errors.NewUserError(errors.New("cannot use --quiet and --verbose together"), "")
	}

	var level slog.Level
	if quiet {
		level = slog.LevelError
	} else {
		v := verbosity

		// CLI flags take precedence, but if not set, check env var
		if v == 0 {
			if val, ok := os.LookupEnv("JAVAFIND_DEBUG"); ok {
				switch val {
				case "1", "true":
					v = 2 // Debug
				case "2":
					v = 3 // Trace
				}
			}
		}
		level = logging.LevelFromVerbosity(v)
	}

	format, err := logging.ParseFormat(logFormat)
	if err != nil {
		return errors.NewUserError(err, "use --log-format text or --log-format json")
	}

	logCfg := logging.Config{
		Level:  level,
		Format: format,
		Output: cmd.ErrOrStderr(),
	}

	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return errors.NewUserError(errors.Wrap(err, "opening log file"), "check the --log-file path")
		}
		logCfg.Mirror = f
	}

	logger := logging.New(logCfg)
	slog.SetDefault(logger)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(logging.NewContext(ctx, logger))

	return nil
}

// tolerantCommands run even when the config failed to load; they report
// or repair it.
var tolerantCommands = map[string]bool{
	"help":    true,
	"version": true,
	"doctor":  true,
	"init":    true,
	"edit":    true,
}

// validateGlobalFlags checks the loaded config and the --platform flag.
func validateGlobalFlags(cmd *cobra.Command, _ []string) error {
	if configLoadErr != nil && !tolerantCommands[cmd.Name()] {
		return errors.NewConfigError(configLoadErr)
	}

	if platformFlag != "" && !paths.ValidPlatform(platformFlag) {
		err := errors.Newf("invalid platform %q (valid: %s)", platformFlag, strings.Join(paths.Platforms(), ", "))
		return errors.NewUserError(err, "Run 'javafind --help' to see valid platforms")
	}

	return nil
}

// searchPlatform returns the platform whose search table is used: the
// --platform flag, then search.platform from config, then the host.
func searchPlatform() (platform.Host, error) {
	name := platformFlag
	if name == "" {
		name = cfg.Search.Platform
	}
	host, err := platform.Resolve(name)
	if err != nil {
		return host, errors.NewUserError(err, "")
	}
	return host, nil
}

// newDetector builds the detector commands scan with. Tests replace it.
var newDetector = func(ctx context.Context) (*java.Detector, java.Environment, error) {
	host, err := searchPlatform()
	if err != nil {
		return nil, nil, err
	}

	env := java.OSEnvironment{Platform: host.Name}
	return java.New(java.Options{
		Env:          env,
		ExtraDirs:    cfg.Search.ExtraDirs,
		ProbeTimeout: cfg.ProbeTimeout,
		Concurrency:  cfg.Concurrency,
		Logger:       logging.FromContext(ctx),
	}), env, nil
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
