// Package buildinfo holds identifiers stamped in at link time, e.g.
//
//	-ldflags "-X neobios/internal/buildinfo.Version=v0.4.0"
package buildinfo

// Version is set at build time via -ldflags.
var Version = "dev"

// Commit is set at build time via -ldflags.
var Commit = "unknown"

// Short returns the version, or the commit when no version was stamped.
func Short() string {
	if Version != "" && Version != "dev" {
		return Version
	}
	if Commit != "" && Commit != "unknown" {
		return Commit
	}
	return "dev"
}
