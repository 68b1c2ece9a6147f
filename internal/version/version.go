package version

// Populated by the Go linker at build time.
var (
	Version    = "dev"
	CommitHash = "unknown"
	BuildDate  = "unknown"
)
