package version

// Version is overridden at build time with -ldflags "-X".
var Version = "0.1.0"

// FullVersion returns the version with the v prefix.
func FullVersion() string {
	return "v" + Version
}
