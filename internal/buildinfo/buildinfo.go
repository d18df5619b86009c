// Package buildinfo holds release metadata stamped in at link time, e.g.
// -ldflags "-X github.com/aidanlsb/maple/internal/buildinfo.Version=v0.3.0".
package buildinfo

// Empty for local builds; version reporting then falls back to the module
// build info.
var (
	Version = ""
	Commit  = ""
	Date    = ""
)
