package version

import (
	"fmt"
	"runtime"
)

// Name is the product name shown in the UI title and --version output.
const Name = "playingicon"

var (
	// Version is the version string set by ldflags.
	Version = "dev"

	// Commit is the git commit hash set by ldflags.
	Commit = "unknown"

	// Date is the build date set by ldflags.
	Date = "unknown"
)

// Short returns the name and version for the title line.
func Short() string {
	return fmt.Sprintf("%s %s", Name, Version)
}

// Info returns detailed version information.
func Info() string {
	return fmt.Sprintf(`%s - animated equalizer indicator
Version: %s
Commit: %s
Built: %s
Go: %s
OS/Arch: %s/%s`, Name, Version, Commit, Date, runtime.Version(), runtime.GOOS, runtime.GOARCH)
}
