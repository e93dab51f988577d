package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/cockroachdb/errors"
)

// AppName is the directory name used under the XDG base directories.
const AppName = "javafind"

// Platform identifiers, matching runtime.GOOS values, that have a Java
// search table.
const (
	PlatformLinux   = "linux"
	PlatformDarwin  = "darwin"
	PlatformWindows = "windows"
)

// platformLabels maps platform names to human-readable labels.
var platformLabels = map[string]string{
	PlatformLinux:   "Linux",
	PlatformDarwin:  "macOS",
	PlatformWindows: "Windows",
}

// Sentinel errors for path resolution.
var (
	// ErrHomeDirNotFound indicates the user's home directory could not be determined.
	ErrHomeDirNotFound = errors.New("home directory not found")

	// ErrInvalidPath indicates the provided path is malformed or invalid.
	ErrInvalidPath = errors.New("invalid path")
)

// DefaultDirPerm is the default permission for newly created directories.
const DefaultDirPerm = 0o755

// EnsureDir creates the directory and any necessary parents with specified permissions.
// If perm is 0, DefaultDirPerm is used. It returns nil if the directory already exists.
func EnsureDir(path string, perm os.FileMode) error {
	if path == "" {
		return ErrInvalidPath
	}
	if perm == 0 {
		perm = DefaultDirPerm
	}
	return os.MkdirAll(path, perm)
}

// Home returns the user's home directory, or "" if it cannot be determined.
// Use ResolveHome for proper error handling.
func Home() string {
	h, _ := ResolveHome()
	return h
}

// ResolveHome returns the user's home directory.
// Returns ErrHomeDirNotFound if the directory cannot be determined.
func ResolveHome() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(ErrHomeDirNotFound, err.Error())
	}
	return home, nil
}

// ConfigHome returns the XDG config home directory.
// On Linux: ~/.config
// On macOS: ~/Library/Application Support
// On Windows: %LOCALAPPDATA%
func ConfigHome() string {
	return xdg.ConfigHome
}

// ConfigDir returns the javafind config directory: <ConfigHome>/javafind.
// JAVAFIND_CONFIG_DIR overrides it.
func ConfigDir() string {
	if dir := os.Getenv("JAVAFIND_CONFIG_DIR"); dir != "" {
		return dir
	}
	return filepath.Join(ConfigHome(), AppName)
}

// ValidPlatform reports whether name has a search table.
func ValidPlatform(name string) bool {
	_, ok := platformLabels[name]
	return ok
}

// Platforms returns all platform identifiers in a stable order.
func Platforms() []string {
	return []string{
		PlatformLinux,
		PlatformDarwin,
		PlatformWindows,
	}
}

// PlatformLabel returns the display label for a platform, or the name itself when unknown.
func PlatformLabel(name string) string {
	if label, ok := platformLabels[name]; ok {
		return label
	}
	return name
}
