package java

import (
	"os"
	"runtime"
)

// Environment supplies environment variables and the platform identity
// that selects a search table.
type Environment interface {
	Getenv(key string) string
	LookupEnv(key string) (string, bool)
	GOOS() string
}

// OSEnvironment reads the process environment.
type OSEnvironment struct {
	// Platform overrides runtime.GOOS when set.
	Platform string
}

// Getenv implements Environment.
func (e OSEnvironment) Getenv(key string) string { return os.Getenv(key) }

// LookupEnv implements Environment.
func (e OSEnvironment) LookupEnv(key string) (string, bool) { return os.LookupEnv(key) }

// GOOS implements Environment.
func (e OSEnvironment) GOOS() string {
	if e.Platform != "" {
		return e.Platform
	}
	return runtime.GOOS
}

// MapEnvironment is a fixed Environment, used for tests and for
// inspecting another system's layout.
type MapEnvironment struct {
	Vars     map[string]string
	Platform string
}

// Getenv implements Environment.
func (e MapEnvironment) Getenv(key string) string { return e.Vars[key] }

// LookupEnv implements Environment.
func (e MapEnvironment) LookupEnv(key string) (string, bool) {
	v, ok := e.Vars[key]
	return v, ok
}

// GOOS implements Environment.
func (e MapEnvironment) GOOS() string {
	if e.Platform != "" {
		return e.Platform
	}
	return runtime.GOOS
}

// nonEmpty returns the value of key when it is set and non-empty.
func nonEmpty(env Environment, key string) (string, bool) {
	v, ok := env.LookupEnv(key)
	if !ok || v == "" {
		return "", false
	}
	return v, true
}
