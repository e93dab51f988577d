package config

import (
	"path/filepath"
	"strconv"
	"strings"

	"github.com/thoreinstein/javafind/internal/errors"
	"github.com/thoreinstein/javafind/internal/paths"
)

// Validation errors for configuration fields.
var (
	// ErrVersionTooLow indicates the version field is below the minimum.
	ErrVersionTooLow = errors.New("version must be >= 1")

	// ErrUnsupportedVersion indicates a config written for a newer javafind.
	ErrUnsupportedVersion = errors.New("unsupported config version")

	// ErrInvalidPlatform indicates an unrecognized platform name.
	ErrInvalidPlatform = errors.New("invalid platform")

	// ErrInvalidPath indicates a path value is malformed.
	ErrInvalidPath = errors.New("invalid path")

	// ErrNegativeTimeout indicates probe_timeout is below zero.
	ErrNegativeTimeout = errors.New("probe_timeout must be >= 0")

	// ErrInvalidConcurrency indicates concurrency is below one.
	ErrInvalidConcurrency = errors.New("concurrency must be >= 1")
)

// Validate reports every problem in cfg. A nil result means cfg is usable.
func Validate(cfg *Config) []error {
	if cfg == nil {
		return []error{errors.New("config is nil")}
	}

	var errs []error
	add := func(field, value string, err error) {
		errs = append(errs, &FieldError{Field: field, Value: value, Err: err})
	}

	switch {
	case cfg.Version < 1:
		errs = append(errs, ErrVersionTooLow)
	case cfg.Version > DefaultVersion:
		add("version", strconv.Itoa(cfg.Version), ErrUnsupportedVersion)
	}
	if cfg.ProbeTimeout < 0 {
		add("probe_timeout", cfg.ProbeTimeout.String(), ErrNegativeTimeout)
	}
	if cfg.Concurrency < 1 {
		add("concurrency", strconv.Itoa(cfg.Concurrency), ErrInvalidConcurrency)
	}
	if p := cfg.Search.Platform; p != "" && !paths.ValidPlatform(p) {
		add("search.platform", p, ErrInvalidPlatform)
	}
	for _, dir := range cfg.Search.ExtraDirs {
		if err := validatePath(dir); err != nil {
			add("search.extra_dirs", strconv.Quote(dir), err)
		}
	}
	return errs
}

// validatePath rejects empty and NUL-containing paths. Existence is not
// checked; a missing extra directory simply yields no candidates.
func validatePath(path string) error {
	if path == "" || strings.ContainsRune(path, 0) || filepath.Clean(path) == "." {
		return ErrInvalidPath
	}
	return nil
}

// FieldError ties a validation failure to the config key that caused it.
type FieldError struct {
	Field string
	Value string
	Err   error
}

func (e *FieldError) Error() string {
	return e.Field + ": " + e.Err.Error() + " (got " + e.Value + ")"
}

func (e *FieldError) Unwrap() error { return e.Err }
