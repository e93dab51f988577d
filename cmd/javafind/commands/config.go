package commands

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/thoreinstein/javafind/internal/config"
	"github.com/thoreinstein/javafind/internal/editor"
	"github.com/thoreinstein/javafind/internal/errors"
	"github.com/thoreinstein/javafind/internal/paths"
	"github.com/thoreinstein/javafind/pkg/fileutil"
)

var configInitForce bool

func init() {
	configInitCmd.Flags().BoolVar(&configInitForce, "force", false,
		"overwrite an existing config file")
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configEditCmd)
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect javafind configuration",
	Long: `Inspect javafind configuration stored in ` + paths.ConfigDir() + `/config.yaml.

Settings can also come from ./config.yaml, the --config flag, or
JAVAFIND_* environment variables (e.g. JAVAFIND_PROBE_TIMEOUT=30s,
JAVAFIND_SEARCH_PLATFORM=darwin).

Without a subcommand, shows the effective configuration.`,
	Example: `  # Show effective configuration
  javafind config

  # Create a config file with defaults
  javafind config init

  # Open the config file in $EDITOR
  javafind config edit

See Also: javafind doctor`,
	RunE: func(c *cobra.Command, _ []string) error {
		return runConfigShow(c.OutOrStdout())
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective configuration",
	Long:  `Show the effective configuration in YAML format, after defaults, file and environment are merged.`,
	Args:  cobra.NoArgs,
	RunE: func(c *cobra.Command, _ []string) error {
		return runConfigShow(c.OutOrStdout())
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file in use",
	Args:  cobra.NoArgs,
	Run: func(c *cobra.Command, _ []string) {
		runConfigPath(c.OutOrStdout())
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a config file with default settings",
	Long:  `Write ` + paths.ConfigDir() + `/config.yaml with the default settings.`,
	Args:  cobra.NoArgs,
	RunE: func(c *cobra.Command, _ []string) error {
		return runConfigInit(c.OutOrStdout())
	},
}

var configEditCmd = &cobra.Command{
	Use:   "edit",
	Short: "Open the config file in your editor",
	Long: `Open the config file in $EDITOR (or $VISUAL). A file with the default
settings is written first when none exists.`,
	Args: cobra.NoArgs,
	RunE: func(c *cobra.Command, _ []string) error {
		session := editor.Session{Stdin: c.InOrStdin(), Stdout: c.OutOrStdout(), Stderr: c.ErrOrStderr()}
		return runConfigEdit(c.Context(), session, c.ErrOrStderr())
	},
}

func runConfigShow(w io.Writer) error {
	if file := config.FileUsed(); file != "" {
		fmt.Fprintf(w, "# source: %s\n", file)
	} else {
		fmt.Fprintln(w, "# source: defaults")
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(cfg.Settings()); err != nil {
		return errors.Wrap(err, "marshaling config")
	}
	return errors.Wrap(enc.Close(), "marshaling config")
}

func runConfigPath(w io.Writer) {
	if file := config.FileUsed(); file != "" {
		fmt.Fprintln(w, file)
		return
	}
	fmt.Fprintln(w, defaultConfigPath())
}

func defaultConfigPath() string {
	return filepath.Join(paths.ConfigDir(), "config.yaml")
}

func runConfigInit(w io.Writer) error {
	configPath := defaultConfigPath()

	if _, err := os.Stat(configPath); err == nil && !configInitForce {
		return errors.NewUserError(
			errors.Newf("config file already exists at %s", configPath),
			"use --force to overwrite it",
		)
	}

	if err := paths.EnsureDir(filepath.Dir(configPath), 0o755); err != nil {
		return errors.NewSystemError(errors.Wrap(err, "creating config directory"), "")
	}

	if err := fileutil.AtomicWriteYAML(configPath, config.Default().Settings()); err != nil {
		return errors.NewSystemError(errors.Wrap(err, "writing config file"), "")
	}

	fmt.Fprintf(w, "Wrote %s\n", configPath)
	return nil
}

func runConfigEdit(ctx context.Context, session editor.Session, w io.Writer) error {
	configPath := config.FileUsed()
	if configPath == "" {
		configPath = defaultConfigPath()
	}

	if _, err := os.Stat(configPath); errors.Is(err, os.ErrNotExist) {
		if err := runConfigInit(w); err != nil {
			return err
		}
	}

	fmt.Fprintf(w, "Location: %s\n", configPath)
	if err := session.Open(ctx, configPath); err != nil {
		return errors.NewUserError(err, "set $EDITOR to your preferred editor")
	}
	return nil
}
