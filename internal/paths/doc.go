// Package paths provides cross-platform path resolution for javafind's own
// files and the platform identifiers used to pick a Java search table.
//
// # XDG Base Directory Compliance
//
// The package wraps github.com/adrg/xdg. The config directory is
// <ConfigHome>/javafind unless JAVAFIND_CONFIG_DIR is set:
//
//	| OS      | ConfigDir                                  |
//	|---------|--------------------------------------------|
//	| Linux   | ~/.config/javafind                         |
//	| macOS   | ~/Library/Application Support/javafind     |
//	| Windows | %LOCALAPPDATA%\javafind                    |
//
// # Platform Constants
//
// Platform identifiers match runtime.GOOS:
//
//	paths.ValidPlatform(paths.PlatformDarwin) // true
//	paths.ValidPlatform("plan9")               // false
package paths
