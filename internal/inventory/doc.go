// Package inventory encodes discovered Java runtimes for people and tools.
//
// The table format is for terminals. JSON is a bare array of
// {pathname, version, vendor} objects; YAML and TOML wrap the same records
// in a top-level "runtimes" list. The cyclonedx format emits a CycloneDX
// 1.6 BOM so runtime inventories can be merged with other SBOM data.
package inventory
