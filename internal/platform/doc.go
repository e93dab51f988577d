// Package platform resolves the host platform identity that selects a Java
// search table: the launcher file names, the PATH separator, and whether
// the platform has a table of well-known install directories.
//
// The identity is chosen once per scan:
//
//	host, err := platform.Resolve(cfg.Search.Platform) // "" means runtime.GOOS
//	if err != nil {
//	    return err
//	}
//	fmt.Println(host.Launchers) // [java.exe javaw.exe] on windows
//
// Overriding the platform is useful for inspecting another system's
// layout, e.g. a mounted macOS volume, with `javafind candidates`.
package platform
