// Package version carries the tool version string.
package version

// Version is overridable at build time via
// -ldflags "-X cbind-repair/internal/version.Version=...".
var Version = "0.1.0-dev"
