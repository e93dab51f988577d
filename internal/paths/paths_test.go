package paths

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/thoreinstein/javafind/internal/errors"
)

func TestHome(t *testing.T) {
	got := Home()
	want, err := os.UserHomeDir()
	if err != nil {
		t.Fatalf("os.UserHomeDir() failed: %v", err)
	}
	if got != want {
		t.Errorf("Home() = %q, want %q", got, want)
	}
}

func TestResolveHome(t *testing.T) {
	got, err := ResolveHome()
	want, _ := os.UserHomeDir()

	if err != nil {
		if !errors.Is(err, ErrHomeDirNotFound) {
			t.Errorf("unexpected error type: %v", err)
		}
	} else if got != want {
		t.Errorf("ResolveHome() = %q, want %q", got, want)
	}
}

func TestConfigHome(t *testing.T) {
	got := ConfigHome()
	if got == "" {
		t.Error("ConfigHome() returned empty string")
	}
	if !filepath.IsAbs(got) {
		t.Errorf("ConfigHome() = %q, want absolute path", got)
	}
}

func TestConfigDir(t *testing.T) {
	t.Run("default under ConfigHome", func(t *testing.T) {
		t.Setenv("JAVAFIND_CONFIG_DIR", "")
		got := ConfigDir()
		if !strings.HasPrefix(got, ConfigHome()) {
			t.Errorf("ConfigDir() = %q, want path under %q", got, ConfigHome())
		}
		if filepath.Base(got) != AppName {
			t.Errorf("ConfigDir() = %q, want base %q", got, AppName)
		}
	})

	t.Run("env override", func(t *testing.T) {
		dir := t.TempDir()
		t.Setenv("JAVAFIND_CONFIG_DIR", dir)
		if got := ConfigDir(); got != dir {
			t.Errorf("ConfigDir() = %q, want %q", got, dir)
		}
	})
}

func TestValidPlatform(t *testing.T) {
	tests := []struct {
		platform string
		want     bool
	}{
		{PlatformLinux, true},
		{PlatformDarwin, true},
		{PlatformWindows, true},
		{"macos", false},
		{"Linux", false},
		{"", false},
		{"freebsd", false},
	}

	for _, tt := range tests {
		t.Run(tt.platform, func(t *testing.T) {
			if got := ValidPlatform(tt.platform); got != tt.want {
				t.Errorf("ValidPlatform(%q) = %v, want %v", tt.platform, got, tt.want)
			}
		})
	}
}

func TestPlatforms(t *testing.T) {
	got := Platforms()
	want := []string{PlatformLinux, PlatformDarwin, PlatformWindows}
	if len(got) != len(want) {
		t.Fatalf("Platforms() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Platforms()[%d] = %q, want %q", i, got[i], want[i])
		}
		if !ValidPlatform(got[i]) {
			t.Errorf("Platforms()[%d] = %q is not valid", i, got[i])
		}
	}
}

func TestPlatformLabel(t *testing.T) {
	if got := PlatformLabel(PlatformDarwin); got != "macOS" {
		t.Errorf("PlatformLabel(darwin) = %q, want macOS", got)
	}
	if got := PlatformLabel("plan9"); got != "plan9" {
		t.Errorf("PlatformLabel(plan9) = %q, want passthrough", got)
	}
}

func TestEnsureDir(t *testing.T) {
	tmpDir := t.TempDir()

	t.Run("creates nested directories", func(t *testing.T) {
		path := filepath.Join(tmpDir, "parent", "child")
		if err := EnsureDir(path, 0); err != nil {
			t.Fatalf("EnsureDir failed: %v", err)
		}
		info, err := os.Stat(path)
		if err != nil {
			t.Fatalf("stat failed: %v", err)
		}
		if !info.IsDir() {
			t.Error("expected directory")
		}
	})

	t.Run("idempotent", func(t *testing.T) {
		path := filepath.Join(tmpDir, "existing")
		if err := os.Mkdir(path, 0o755); err != nil {
			t.Fatal(err)
		}
		if err := EnsureDir(path, 0o700); err != nil {
			t.Errorf("EnsureDir failed on existing directory: %v", err)
		}
	})

	t.Run("empty path", func(t *testing.T) {
		if err := EnsureDir("", 0); !errors.Is(err, ErrInvalidPath) {
			t.Errorf("EnsureDir(\"\") error = %v, want ErrInvalidPath", err)
		}
	})
}
