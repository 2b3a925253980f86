package env

const AppName = "sniff"

// Build metadata, injected at link time via -ldflags.
var (
	Version    = "dev"
	CommitHash = "unknown"
	BuildTime  = "unknown"
)
