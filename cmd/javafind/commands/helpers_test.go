package commands

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/thoreinstein/javafind/internal/config"
	"github.com/thoreinstein/javafind/internal/java"
	"github.com/thoreinstein/javafind/internal/java/mocks"
	"github.com/thoreinstein/javafind/internal/logging"
)

const (
	temurinBanner = "openjdk version \"17.0.9\" 2023-10-17 Temurin\n"
	zuluBanner    = "openjdk version \"21.0.1\" 2023-10-17 LTS Zulu21.30+15-CA\n"
)

// fakeRuntime is a launcher file plus the banner its probe returns.
type fakeRuntime struct {
	dir    string
	banner string
}

// launcher returns the path of rt's java file.
func (rt fakeRuntime) launcher() string {
	return filepath.Join(rt.dir, "bin", "java")
}

// withRuntimes installs a detector that searches only the given runtimes'
// bin directories, in order, and answers probes from their banners.
// The environment is extended with vars.
func withRuntimes(t *testing.T, vars map[string]string, runtimes ...fakeRuntime) *mocks.MockRunner {
	t.Helper()

	runner := mocks.NewMockRunner(t)
	dirs := make([]string, 0, len(runtimes))
	for _, rt := range runtimes {
		require.NoError(t, os.MkdirAll(filepath.Dir(rt.launcher()), 0o755))
		require.NoError(t, os.WriteFile(rt.launcher(), []byte("launcher"), 0o755))
		dirs = append(dirs, filepath.Dir(rt.launcher()))
		runner.EXPECT().Run(mock.Anything, rt.launcher(), "-version").
			Return(java.Result{Stderr: []byte(rt.banner)}, nil).Maybe()
	}

	env := map[string]string{"PATH": strings.Join(dirs, ":")}
	for k, v := range vars {
		env[k] = v
	}

	orig := newDetector
	t.Cleanup(func() { newDetector = orig })
	newDetector = func(context.Context) (*java.Detector, java.Environment, error) {
		e := java.MapEnvironment{Platform: "none", Vars: env}
		return java.New(java.Options{Env: e, Runner: runner, Logger: logging.ForTest(t)}), e, nil
	}
	return runner
}

// resetGlobals restores flag and config state after a test.
func resetGlobals(t *testing.T) {
	t.Helper()
	saved := struct {
		platform, format, output, logFormat, logFile, configFile string
		verbosity                                                int
		quiet, strict, all, home, jsonOut, doctorAll, fix, force bool
		cfg                                                      *config.Config
		loadErr                                                  error
	}{
		platformFlag, listFormat, listOutput, logFormat, logFile, configFile,
		verbosity,
		quiet, probeStrict, candidatesAll, pickHome, doctorJSON, doctorAll, doctorFix, configInitForce,
		cfg,
		configLoadErr,
	}
	t.Cleanup(func() {
		platformFlag, listFormat, listOutput, logFormat, logFile, configFile = saved.platform, saved.format, saved.output, saved.logFormat, saved.logFile, saved.configFile
		verbosity = saved.verbosity
		quiet, probeStrict, candidatesAll, pickHome = saved.quiet, saved.strict, saved.all, saved.home
		doctorJSON, doctorAll, doctorFix, configInitForce = saved.jsonOut, saved.doctorAll, saved.fix, saved.force
		cfg, configLoadErr = saved.cfg, saved.loadErr
	})
}
