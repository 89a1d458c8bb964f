// Package protax provides version information for the protax application.
package protax

var (
	// Version is the application version, set by build flags.
	Version = "v0.1.0"
	// Build is the build timestamp, set by build flags.
	Build = "n/a"
)
