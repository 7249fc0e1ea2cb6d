// Package version reports how a minigrep binary was built.
//
// Version, Commit and Date are injected at link time:
//
//	-ldflags "-X github.com/Aman-CERP/minigrep/pkg/version.Version=v1.2.0
//	          -X github.com/Aman-CERP/minigrep/pkg/version.Commit=$(git rev-parse HEAD)"
package version

import (
	"fmt"
	"log/slog"
	"runtime"
)

// Link-time build metadata.
var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

// shortCommitLen is how much of a commit hash --version shows.
const shortCommitLen = 12

// Info is the build metadata of the running binary.
type Info struct {
	Version  string
	Commit   string
	Date     string
	Go       string
	Platform string
}

// Get returns the metadata of the running binary.
func Get() Info {
	return Info{
		Version:  Version,
		Commit:   Commit,
		Date:     Date,
		Go:       runtime.Version(),
		Platform: runtime.GOOS + "/" + runtime.GOARCH,
	}
}

// String is the line printed by --version.
func (i Info) String() string {
	return fmt.Sprintf("minigrep %s (commit %s, built %s, %s %s)",
		i.Version, i.ShortCommit(), i.Date, i.Go, i.Platform)
}

// ShortCommit abbreviates a full hash the way git does.
func (i Info) ShortCommit() string {
	if len(i.Commit) > shortCommitLen {
		return i.Commit[:shortCommitLen]
	}
	return i.Commit
}

// LogValue groups the metadata under a single attribute, keeping the
// full commit hash.
func (i Info) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("version", i.Version),
		slog.String("commit", i.Commit),
		slog.String("date", i.Date),
		slog.String("go", i.Go),
		slog.String("platform", i.Platform),
	)
}
