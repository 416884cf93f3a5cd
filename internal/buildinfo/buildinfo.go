package buildinfo

import "fmt"

// Set with -ldflags "-X github.com/katalvlaran/ridetime/internal/buildinfo.Version=...".
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// String returns the one-line version banner printed by "ridetime version".
func String() string {
	return fmt.Sprintf("ridetime %s (commit=%s, date=%s)", Version, Commit, Date)
}
