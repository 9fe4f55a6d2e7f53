package version

import "fmt"

// Set at build time with -ldflags "-X .../internal/version.Version=..."
var (
	Version = "dev"
	Commit  = ""
)

// GetVersion returns the version, suffixed with the commit when known
func GetVersion() string {
	if Commit == "" {
		return Version
	}

	return fmt.Sprintf("%s (%s)", Version, Commit)
}
