package app

import "fmt"

// Set via ldflags, e.g.
// go build -ldflags "-X github.com/heartmarshall/lawdesk-backend/internal/app.Version=1.2.0".
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// BuildVersion is the version line logged at startup and printed by lawctl.
func BuildVersion() string {
	return fmt.Sprintf("lawdesk %s (commit %s, built %s)", Version, Commit, BuildTime)
}
