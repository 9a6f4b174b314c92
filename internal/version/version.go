package version

import (
	"fmt"
	"runtime"
)

// Set at build time via -ldflags.
var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

// Info is a snapshot of the build metadata plus the toolchain and
// platform the binary was compiled with.
type Info struct {
	Version   string
	Commit    string
	Date      string
	GoVersion string
	Platform  string
}

func GetInfo() Info {
	return Info{
		Version:   Version,
		Commit:    shorten(Commit),
		Date:      Date,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
}

// shorten truncates a full git hash to the usual 8-char display form.
func shorten(commit string) string {
	if len(commit) > 8 {
		return commit[:8]
	}
	return commit
}

func (i Info) String() string {
	return fmt.Sprintf("Vagas %s (%s) built %s with %s for %s",
		i.Version, i.Commit, i.Date, i.GoVersion, i.Platform)
}

// Short returns just the semantic version.
func (i Info) Short() string {
	return i.Version
}
