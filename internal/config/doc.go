// Package config provides configuration management for the javafind CLI.
//
// # Configuration File
//
// The configuration file is config.yaml (or config.toml) in the current
// directory or in ~/.config/javafind. JAVAFIND_CONFIG_DIR overrides the
// latter, and --config names a file explicitly.
//
//	version: 1
//	probe_timeout: 10s   # per-launcher version query; 0 disables
//	concurrency: 1       # launchers probed at once
//	search:
//	  extra_dirs:        # searched like /usr/lib/jvm
//	    - /opt/jdks
//	  platform: ""       # linux, darwin or windows; empty means the host
//
// Every key can be overridden from the environment with the JAVAFIND_
// prefix, e.g. JAVAFIND_PROBE_TIMEOUT=30s or JAVAFIND_SEARCH_PLATFORM=darwin.
//
// # Loading Configuration
//
//	config.Init()
//	cfg, err := config.Load(flagPath)
//	if errors.Is(err, errors.ErrNotFound) {
//	    // --config named a missing file
//	}
//
// Load validates the result; failures are marked with
// errors.ErrInvalidConfig and wrap every field error.
package config
