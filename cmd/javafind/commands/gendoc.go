package commands

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"

	"github.com/thoreinstein/javafind/cmd"
	"github.com/thoreinstein/javafind/internal/errors"
)

var (
	genDocDir    string
	genDocFormat string
)

var genDocCmd = &cobra.Command{
	Use:    "gen-doc",
	Short:  "Generate reference documentation for the CLI",
	Hidden: true,
	Args:   cobra.NoArgs,
	RunE: func(c *cobra.Command, _ []string) error {
		return runGenDoc(c.OutOrStdout(), genDocDir, genDocFormat)
	},
}

func init() {
	genDocCmd.Flags().StringVarP(&genDocDir, "dir", "d", "", "output directory for documentation")
	genDocCmd.Flags().StringVar(&genDocFormat, "format", "markdown", "page format: markdown, man")
	rootCmd.AddCommand(genDocCmd)
}

func runGenDoc(w io.Writer, dir, format string) error {
	if dir == "" {
		return errors.NewUserError(errors.New("output directory is required"), "pass --dir")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.NewSystemError(errors.Wrap(err, "creating output directory"), "")
	}

	// Generated pages should not carry the run date, or every build diffs.
	disableAutoGenTag(rootCmd)

	var err error
	switch format {
	case "markdown", "md":
		err = doc.GenMarkdownTreeCustom(rootCmd, dir, filePrepender, linkHandler)
	case "man":
		err = doc.GenManTree(rootCmd, &doc.GenManHeader{
			Title:   "JAVAFIND",
			Section: "1",
			Source:  "javafind " + cmd.Build().Version,
			Manual:  "javafind manual",
		}, dir)
	default:
		return errors.NewUserError(errors.Newf("unknown doc format %q", format), "use --format markdown or --format man")
	}
	if err != nil {
		return errors.NewSystemError(errors.Wrapf(err, "generating %s pages", format), "")
	}

	fmt.Fprintf(w, "Documentation generated in %s\n", dir)
	return nil
}

func disableAutoGenTag(c *cobra.Command) {
	c.DisableAutoGenTag = true
	for _, sub := range c.Commands() {
		disableAutoGenTag(sub)
	}
}

// filePrepender adds front matter so the pages drop into a static site.
func filePrepender(filename string) string {
	base := strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
	title := strings.ReplaceAll(base, "_", " ")

	return fmt.Sprintf(`---
title: "%s"
description: "Reference for %s"
---
`, title, title)
}

func linkHandler(name string) string {
	base := strings.TrimSuffix(name, filepath.Ext(name))
	return "/reference/" + strings.ToLower(base) + "/"
}
