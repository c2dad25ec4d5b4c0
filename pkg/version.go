// Package taxodb holds build information of the taxodb application.
package taxodb

var (
	// Version of taxodb, set by build flags.
	Version = "v0.1.0"

	// Build timestamp, set by build flags.
	Build = "n/a"
)
