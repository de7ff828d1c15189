package versioning

// Build information of the rsa-verifier binary, embedded by --ldflags on build time.
// Version follows the SemVer guidelines.
var (
	Version   = "0.1.0-dev"
	Branch    string
	Commit    string
	BuildTime string
)
