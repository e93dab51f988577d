package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/thoreinstein/javafind/internal/config"
	"github.com/thoreinstein/javafind/internal/editor"
	"github.com/thoreinstein/javafind/internal/errors"
)

func TestRunConfigShow(t *testing.T) {
	resetGlobals(t)
	cfg = config.Default()
	cfg.Search.ExtraDirs = []string{"/opt/jdks"}

	var buf bytes.Buffer
	require.NoError(t, runConfigShow(&buf))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "# source: "), "missing source header: %s", out)

	var shown map[string]any
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &shown))
	assert.Contains(t, shown, "probe_timeout")
	assert.Contains(t, shown, "concurrency")

	search, ok := shown["search"].(map[string]any)
	require.True(t, ok, "search section missing: %v", shown)
	assert.Equal(t, []any{"/opt/jdks"}, search["extra_dirs"])
}

func TestRunConfigInit(t *testing.T) {
	resetGlobals(t)
	dir := t.TempDir()
	t.Setenv("JAVAFIND_CONFIG_DIR", filepath.Join(dir, "nested"))

	target := filepath.Join(dir, "nested", "config.yaml")

	var buf bytes.Buffer
	require.NoError(t, runConfigInit(&buf))
	assert.Contains(t, buf.String(), "Wrote "+target)

	data, err := os.ReadFile(target)
	require.NoError(t, err)

	var written map[string]any
	require.NoError(t, yaml.Unmarshal(data, &written))
	assert.Contains(t, written, "probe_timeout")
	assert.Contains(t, written, "search")

	t.Run("refuses to overwrite", func(t *testing.T) {
		configInitForce = false
		err := runConfigInit(&bytes.Buffer{})
		require.Error(t, err)
		assert.Equal(t, errors.ExitUser, errors.ExitCode(err))
		assert.Contains(t, err.Error(), "already exists")
	})

	t.Run("force overwrites", func(t *testing.T) {
		require.NoError(t, os.WriteFile(target, []byte("concurrency: 2\n"), 0o644))

		configInitForce = true
		require.NoError(t, runConfigInit(&bytes.Buffer{}))

		data, err := os.ReadFile(target)
		require.NoError(t, err)
		assert.Contains(t, string(data), "probe_timeout")
	})
}

func TestDefaultConfigPath(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("JAVAFIND_CONFIG_DIR", dir)

	assert.Equal(t, filepath.Join(dir, "config.yaml"), defaultConfigPath())
}

func TestRunConfigEdit(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("mock editor is a shell script")
	}
	resetGlobals(t)

	dir := t.TempDir()
	t.Setenv("JAVAFIND_CONFIG_DIR", dir)

	record := filepath.Join(dir, "edited.txt")
	mockEditor := filepath.Join(dir, "mock-editor.sh")
	script := "#!/bin/sh\necho \"$1\" > " + record + "\n"
	require.NoError(t, os.WriteFile(mockEditor, []byte(script), 0o755))
	t.Setenv("EDITOR", mockEditor)
	t.Setenv("VISUAL", "")

	var stderr bytes.Buffer
	session := editor.Session{Stdin: strings.NewReader(""), Stdout: &bytes.Buffer{}, Stderr: &stderr}
	require.NoError(t, runConfigEdit(t.Context(), session, &stderr))

	target := filepath.Join(dir, "config.yaml")
	assert.FileExists(t, target, "missing config should be initialized before editing")
	assert.Contains(t, stderr.String(), "Location: "+target)

	got, err := os.ReadFile(record)
	require.NoError(t, err)
	assert.Equal(t, target, strings.TrimSpace(string(got)))
}

func TestRunConfigEdit_EditorFails(t *testing.T) {
	resetGlobals(t)
	t.Setenv("JAVAFIND_CONFIG_DIR", t.TempDir())
	t.Setenv("EDITOR", "non-existent-binary-12345")

	session := editor.Session{Stdin: strings.NewReader(""), Stdout: &bytes.Buffer{}, Stderr: &bytes.Buffer{}}
	err := runConfigEdit(t.Context(), session, &bytes.Buffer{})
	require.Error(t, err)
	assert.Equal(t, errors.ExitUser, errors.ExitCode(err))
}
