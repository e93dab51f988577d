package doctor

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thoreinstein/javafind/internal/java"
	"github.com/thoreinstein/javafind/internal/logging"
)

func TestPlatformCheck_Identity(t *testing.T) {
	c := NewPlatformCheck(java.NewLocator(java.MapEnvironment{}, java.OSFilesystem{}))
	assert.Equal(t, "platform-detection", c.Name())
	assert.Equal(t, "platform", c.Category())
}

func TestPlatformCheck_UnsupportedHost(t *testing.T) {
	launcher := touchLauncher(t, t.TempDir(), 0o755)
	env := java.MapEnvironment{
		Platform: "plan9",
		Vars:     map[string]string{"PATH": filepath.Dir(launcher)},
	}

	result := NewPlatformCheck(java.NewLocator(env, java.OSFilesystem{})).Run(logging.NewContext(t.Context(), logging.ForTest(t)))

	assert.Equal(t, SeverityInfo, result.Status)
	assert.Equal(t, "plan9", result.Details["platform"])
	assert.Equal(t, 1, result.Details["candidates"])
}

func TestPlatformCheck_LinuxTable(t *testing.T) {
	home := t.TempDir()
	launcher := touchLauncher(t, filepath.Join(home, ".sdkman", "candidates", "java", "21-tem"), 0o755)
	env := java.MapEnvironment{
		Platform: "linux",
		Vars:     map[string]string{"HOME": home, "PATH": t.TempDir()},
	}

	result := NewPlatformCheck(java.NewLocator(env, java.OSFilesystem{})).Run(t.Context())

	require.Equal(t, SeverityPass, result.Status, result.Message)
	assert.Contains(t, result.Message, "Linux")

	rules, ok := result.Details["rules"].([]map[string]any)
	require.True(t, ok)
	require.NotEmpty(t, rules)
	assert.Equal(t, "PATH", rules[0]["rule"])

	var sdkman int
	for _, r := range rules {
		if r["rule"] == filepath.Join(home, ".sdkman", "candidates", "java")+"/*/bin" {
			sdkman = r["candidates"].(int)
		}
	}
	assert.Equal(t, 1, sdkman, "sdkman rule should find %s", launcher)
}
