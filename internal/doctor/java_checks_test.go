package doctor

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/thoreinstein/javafind/internal/java"
	"github.com/thoreinstein/javafind/internal/java/mocks"
	"github.com/thoreinstein/javafind/internal/logging"
)

const temurinBanner = "openjdk version \"17.0.9\" 2023-10-17 Temurin\n"

// touchLauncher creates dir/bin/java with mode and returns its path.
func touchLauncher(t *testing.T, dir string, mode os.FileMode) string {
	t.Helper()
	bin := filepath.Join(dir, "bin")
	require.NoError(t, os.MkdirAll(bin, 0o755))
	path := filepath.Join(bin, "java")
	require.NoError(t, os.WriteFile(path, []byte("launcher"), 0o600))
	require.NoError(t, os.Chmod(path, mode))
	return path
}

// newDetector returns a detector searching only vars, with probes answered by runner.
func newDetector(t *testing.T, vars map[string]string, runner java.Runner) (*java.Detector, java.Environment) {
	t.Helper()
	env := java.MapEnvironment{Platform: "none", Vars: vars}
	return java.New(java.Options{Env: env, Runner: runner, Logger: logging.ForTest(t)}), env
}

func TestJavaHomeCheck_Unset(t *testing.T) {
	d, env := newDetector(t, nil, mocks.NewMockRunner(t))

	result := NewJavaHomeCheck(d, env).Run(t.Context())

	assert.Equal(t, "java-home", result.Name)
	assert.Equal(t, "java", result.Category)
	assert.Equal(t, SeverityInfo, result.Status)
}

func TestJavaHomeCheck_MissingLauncher(t *testing.T) {
	home := t.TempDir()
	d, env := newDetector(t, map[string]string{"JAVA_HOME": home}, mocks.NewMockRunner(t))

	result := NewJavaHomeCheck(d, env).Run(t.Context())

	assert.Equal(t, SeverityError, result.Status)
	assert.NotEmpty(t, result.FixHint)
	assert.Equal(t, filepath.Join(home, "bin", "java"), result.Details["launcher"])
}

func TestJavaHomeCheck_Probes(t *testing.T) {
	home := t.TempDir()
	launcher := touchLauncher(t, home, 0o755)

	t.Run("pass", func(t *testing.T) {
		runner := mocks.NewMockRunner(t)
		runner.EXPECT().Run(mock.Anything, launcher, "-version").Return(java.Result{Stderr: []byte(temurinBanner)}, nil)
		d, env := newDetector(t, map[string]string{"JAVA_HOME": home}, runner)

		result := NewJavaHomeCheck(d, env).Run(t.Context())

		assert.Equal(t, SeverityPass, result.Status)
		assert.Equal(t, "17.0.9", result.Details["version"])
		assert.Equal(t, "Eclipse Temurin", result.Details["vendor"])
	})

	t.Run("probe failure warns", func(t *testing.T) {
		runner := mocks.NewMockRunner(t)
		runner.EXPECT().Run(mock.Anything, launcher, "-version").Return(java.Result{ExitCode: 1, Stderr: []byte("Error: broken install\n")}, nil)
		d, env := newDetector(t, map[string]string{"JAVA_HOME": home}, runner)

		result := NewJavaHomeCheck(d, env).Run(t.Context())

		assert.Equal(t, SeverityWarning, result.Status)
		assert.Contains(t, result.Message, "Error: broken install")
	})
}

func TestPathJavaCheck(t *testing.T) {
	empty := t.TempDir()
	first := touchLauncher(t, t.TempDir(), 0o755)
	second := touchLauncher(t, t.TempDir(), 0o755)
	path := strings.Join([]string{"", empty, filepath.Dir(first), filepath.Dir(second)}, ":")

	t.Run("first launcher wins", func(t *testing.T) {
		runner := mocks.NewMockRunner(t)
		runner.EXPECT().Run(mock.Anything, first, "-version").Return(java.Result{Stderr: []byte(temurinBanner)}, nil)
		d, env := newDetector(t, map[string]string{"PATH": path}, runner)

		result := NewPathJavaCheck(d, env).Run(t.Context())

		assert.Equal(t, "path-java", result.Name)
		assert.Equal(t, SeverityPass, result.Status)
		assert.Equal(t, first, result.Details["launcher"])
	})

	t.Run("none on path", func(t *testing.T) {
		d, env := newDetector(t, map[string]string{"PATH": empty}, mocks.NewMockRunner(t))

		result := NewPathJavaCheck(d, env).Run(t.Context())

		assert.Equal(t, SeverityWarning, result.Status)
		assert.Equal(t, "no java launcher on PATH", result.Message)
	})
}

func TestInventoryCheck(t *testing.T) {
	t.Run("empty inventory warns", func(t *testing.T) {
		d, _ := newDetector(t, map[string]string{"PATH": t.TempDir()}, mocks.NewMockRunner(t))

		result := NewInventoryCheck(d).Run(t.Context())

		assert.Equal(t, "inventory", result.Name)
		assert.Equal(t, SeverityWarning, result.Status)
		assert.Equal(t, 0, result.Details["count"])
	})

	t.Run("counts answering runtimes", func(t *testing.T) {
		good := touchLauncher(t, t.TempDir(), 0o755)
		bad := touchLauncher(t, t.TempDir(), 0o755)
		runner := mocks.NewMockRunner(t)
		runner.EXPECT().Run(mock.Anything, good, "-version").Return(java.Result{Stderr: []byte(temurinBanner)}, nil)
		runner.EXPECT().Run(mock.Anything, bad, "-version").Return(java.Result{Stdout: []byte("garbage\n")}, nil)
		d, _ := newDetector(t, map[string]string{
			"PATH": filepath.Dir(good) + ":" + filepath.Dir(bad),
		}, runner)

		result := NewInventoryCheck(d).Run(t.Context())

		assert.Equal(t, SeverityPass, result.Status)
		assert.Equal(t, 1, result.Details["count"])
		runtimes, ok := result.Details["runtimes"].([]java.DetectedRuntime)
		require.True(t, ok)
		assert.Equal(t, good, runtimes[0].Pathname)
	})
}

func TestJavaOptionsCheck(t *testing.T) {
	t.Run("clean environment", func(t *testing.T) {
		result := NewJavaOptionsCheck(java.MapEnvironment{}).Run(t.Context())
		assert.Equal(t, SeverityPass, result.Status)
	})

	t.Run("empty value ignored", func(t *testing.T) {
		env := java.MapEnvironment{Vars: map[string]string{"JAVA_TOOL_OPTIONS": ""}}
		result := NewJavaOptionsCheck(env).Run(t.Context())
		assert.Equal(t, SeverityPass, result.Status)
	})

	t.Run("set variables warn with masked details", func(t *testing.T) {
		env := java.MapEnvironment{Vars: map[string]string{
			"JAVA_TOOL_OPTIONS": "-Djavax.net.ssl.trustStorePassword=changeit",
			"JDK_JAVA_OPTIONS":  "-Xmx1g",
		}}

		result := NewJavaOptionsCheck(env).Run(t.Context())

		assert.Equal(t, SeverityWarning, result.Status)
		assert.Contains(t, result.Message, "JAVA_TOOL_OPTIONS, JDK_JAVA_OPTIONS")
		assert.Equal(t, "-Djavax.net.ssl.trustStorePassword=********", result.Details["JAVA_TOOL_OPTIONS"])
		assert.Equal(t, "-Xmx1g", result.Details["JDK_JAVA_OPTIONS"])
		assert.NotContains(t, result.Details, "_JAVA_OPTIONS")
	})
}
