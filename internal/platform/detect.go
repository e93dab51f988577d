package platform

import (
	"runtime"
	"strings"

	"github.com/thoreinstein/javafind/internal/errors"
	"github.com/thoreinstein/javafind/internal/paths"
)

// ErrUnknownPlatform is returned by ForName for names without a search table.
var ErrUnknownPlatform = errors.New("unknown platform")

// Host describes the platform identity a scan runs against.
type Host struct {
	// Name is the GOOS-style platform identifier (linux, darwin, windows).
	Name string

	// Launchers are the Java launcher file names searched in each bin directory.
	// Windows has a console and a windowless launcher.
	Launchers []string

	// ListSeparator splits PATH-style variables.
	ListSeparator string

	// Supported reports whether the platform has a well-known directory table.
	// Unsupported hosts still search PATH and JAVA_HOME.
	Supported bool
}

// Detect returns the Host for the running operating system.
func Detect() Host {
	return For(runtime.GOOS)
}

// ForName returns the Host for an explicit platform name, used when the
// search table is overridden by flag or config.
func ForName(name string) (Host, error) {
	if !paths.ValidPlatform(name) {
		err := errors.Wrapf(ErrUnknownPlatform, "%q", name)
		return Host{}, errors.WithHint(err, "valid platforms: "+strings.Join(paths.Platforms(), ", "))
	}
	return For(name), nil
}

// Resolve returns ForName(override) when override is set, otherwise Detect().
func Resolve(override string) (Host, error) {
	if override == "" {
		return Detect(), nil
	}
	return ForName(override)
}

// For returns the Host for goos without validating it. Hosts without a
// directory table report Supported == false.
func For(goos string) Host {
	return Host{
		Name:          goos,
		Launchers:     LaunchersFor(goos),
		ListSeparator: ListSeparatorFor(goos),
		Supported:     paths.ValidPlatform(goos),
	}
}

// LaunchersFor returns the launcher executable names for goos.
func LaunchersFor(goos string) []string {
	if goos == paths.PlatformWindows {
		return []string{"java.exe", "javaw.exe"}
	}
	return []string{"java"}
}

// ListSeparatorFor returns the PATH list separator for goos.
func ListSeparatorFor(goos string) string {
	if goos == paths.PlatformWindows {
		return ";"
	}
	return ":"
}
