package jsonconfig

//nolint:gochecknoglobals // set via ldflags at build time.
var (
	// Version is the jsonconfig version, set via ldflags.
	Version = "dev"
	// CompiledAt is the build timestamp, set via ldflags.
	CompiledAt = "unknown"
)

// VersionString returns the version and build timestamp in one line.
func VersionString() string {
	return "jsonconfig " + Version + " (compiled " + CompiledAt + ")"
}
