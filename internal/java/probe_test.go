package java_test

import (
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/thoreinstein/javafind/internal/errors"
	"github.com/thoreinstein/javafind/internal/java"
	"github.com/thoreinstein/javafind/internal/java/mocks"
)

const launcher = "/opt/jdk/bin/java"

func proberReturning(t *testing.T, res java.Result, err error) *java.Prober {
	t.Helper()
	m := mocks.NewMockRunner(t)
	m.EXPECT().Run(mock.Anything, launcher, "-version").Return(res, err)
	return java.NewProber(m, 0)
}

func TestProbe_ParsesBanner(t *testing.T) {
	tests := []struct {
		name        string
		stdout      string
		stderr      string
		wantVersion string
		wantVendor  string
	}{
		{
			name:        "quoted version on stderr",
			stderr:      "openjdk version \"17.0.9\" 2023-10-17\nOpenJDK Runtime Environment (build 17.0.9+9)\n",
			wantVersion: "17.0.9",
			wantVendor:  "OpenJDK",
		},
		{
			name:        "legacy version scheme",
			stderr:      "java version \"1.8.0_392\"\nJava(TM) SE Runtime Environment (build 1.8.0_392-b08)\n",
			wantVersion: "1.8.0_392",
			wantVendor:  "Oracle Java",
		},
		{
			name:        "unquoted version",
			stdout:      "openjdk version 21.0.1 LTS\n",
			wantVersion: "21.0.1",
			wantVendor:  "OpenJDK",
		},
		{
			name:        "distribution named on first line",
			stderr:      "openjdk version \"17.0.9\" Temurin\n",
			wantVersion: "17.0.9",
			wantVendor:  "Eclipse Temurin",
		},
		{
			name:        "stdout precedes stderr",
			stdout:      "Using launcher wrapper\n",
			stderr:      "openjdk version \"11.0.21\"\n",
			wantVersion: "11.0.21",
			wantVendor:  "Java",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := proberReturning(t, java.Result{Stdout: []byte(tt.stdout), Stderr: []byte(tt.stderr)}, nil)

			for _, strict := range []bool{true, false} {
				info, err := p.Probe(t.Context(), launcher, strict)
				require.NoError(t, err)
				assert.Equal(t, tt.wantVersion, info.Version)
				assert.Equal(t, tt.wantVendor, info.Vendor)
			}
		})
	}
}

func TestProbe_UnrecognizedOutput(t *testing.T) {
	res := java.Result{Stdout: []byte("Usage: java [options]\r\nmore help\n")}

	t.Run("strict drops", func(t *testing.T) {
		p := proberReturning(t, res, nil)
		_, err := p.Probe(t.Context(), launcher, true)
		require.Error(t, err)
		assert.True(t, errors.Is(err, java.ErrUnrecognizedOutput))
	})

	t.Run("lenient falls back to first line", func(t *testing.T) {
		p := proberReturning(t, res, nil)
		info, err := p.Probe(t.Context(), launcher, false)
		require.NoError(t, err)
		assert.Equal(t, "Usage: java [options]", info.Version)
		assert.Equal(t, "Oracle Java", info.Vendor)
	})

	t.Run("lenient with no output", func(t *testing.T) {
		p := proberReturning(t, java.Result{}, nil)
		info, err := p.Probe(t.Context(), launcher, false)
		require.NoError(t, err)
		assert.Equal(t, "unknown", info.Version)
		assert.Equal(t, java.GenericVendor, info.Vendor)
	})
}

func TestProbe_NonZeroExit(t *testing.T) {
	tests := []struct {
		name    string
		res     java.Result
		wantMsg string
	}{
		{
			name:    "stderr preferred",
			res:     java.Result{ExitCode: 1, Stdout: []byte("ignored"), Stderr: []byte("  Error: could not find java.dll\n")},
			wantMsg: "Error: could not find java.dll",
		},
		{
			name:    "stdout when stderr empty",
			res:     java.Result{ExitCode: 2, Stdout: []byte("bad option\n"), Stderr: []byte(" \n")},
			wantMsg: "bad option",
		},
		{
			name:    "fixed message without output",
			res:     java.Result{ExitCode: 1},
			wantMsg: "java command failed with no output",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := proberReturning(t, tt.res, nil)
			_, err := p.Probe(t.Context(), launcher, false)
			require.Error(t, err)
			assert.Equal(t, tt.wantMsg, err.Error())
			assert.True(t, errors.Is(err, java.ErrNonZeroExit))
		})
	}
}

func TestProbe_SpawnFailure(t *testing.T) {
	p := proberReturning(t, java.Result{}, errors.New("fork/exec /opt/jdk/bin/java: permission denied"))

	_, err := p.Probe(t.Context(), launcher, false)
	require.Error(t, err)
	assert.Equal(t, "failed to execute java: fork/exec /opt/jdk/bin/java: permission denied", err.Error())
	assert.True(t, errors.Is(err, java.ErrSpawn))
	assert.False(t, errors.Is(err, java.ErrNonZeroExit))
}

func TestProbe_Timeout(t *testing.T) {
	m := mocks.NewMockRunner(t)
	m.EXPECT().Run(mock.Anything, launcher, "-version").
		RunAndReturn(func(ctx context.Context, _ string, _ ...string) (java.Result, error) {
			<-ctx.Done()
			return java.Result{}, ctx.Err()
		}).Once()

	p := java.NewProber(m, 20*time.Millisecond)
	_, err := p.Probe(t.Context(), launcher, true)
	require.Error(t, err)
	assert.True(t, errors.Is(err, java.ErrSpawn))
	assert.True(t, errors.Is(err, context.DeadlineExceeded))
}

func TestGetJavaVersion_MissingLauncher(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "bin", "java")

	_, err := java.GetJavaVersion(t.Context(), missing)
	require.Error(t, err)
	assert.True(t, strings.HasPrefix(err.Error(), "failed to execute java: "), "got %q", err.Error())
	assert.True(t, errors.Is(err, java.ErrSpawn))
}
