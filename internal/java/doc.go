// Package java discovers Java runtimes installed on the host.
//
// A scan is a one-way pipeline:
//
//   - The Locator enumerates candidate launcher paths from PATH, JAVA_HOME
//     and a per-platform table of install directories (package managers,
//     version managers, vendor folders, IDE-bundled runtimes).
//   - Filter keeps existing regular files and drops candidates whose
//     resolved path was already accepted, so a runtime reachable through
//     several symlinks is reported once, by the first path found.
//   - The Prober runs each launcher with -version and extracts a version
//     token and a vendor label from the banner.
//   - The Detector assembles the survivors in filter order.
//
// Bulk discovery never fails: candidates that cannot be probed are left
// out. A single-path query is lenient instead and always answers with
// either a version string or an error carrying the launcher's output.
//
//	runtimes := java.DetectJavaRuntimes(ctx)
//	version, err := java.GetJavaVersion(ctx, "/usr/bin/java")
//
// Environment, Filesystem and Runner are interfaces so tests and tools can
// scan a synthetic host.
package java
