package java

// RuntimeInfo is the result of successfully probing one launcher.
type RuntimeInfo struct {
	// Version is the free-form version token, e.g. "17.0.9" or "1.8.0_392".
	Version string

	// Vendor is one of the known vendor labels or GenericVendor.
	Vendor string
}

// DetectedRuntime is one entry of a discovery inventory.
//
// Pathname is the candidate path as it was found, not its resolved
// identity, so a runtime reached through a PATH symlink is reported by
// that symlink.
type DetectedRuntime struct {
	Pathname string `json:"pathname" yaml:"pathname" toml:"pathname"`
	Version  string `json:"version" yaml:"version" toml:"version"`
	Vendor   string `json:"vendor" yaml:"vendor" toml:"vendor"`
}
