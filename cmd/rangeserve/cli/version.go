package cli

import (
	"fmt"
	"runtime"
)

// Set at build time using -ldflags "-X github.com/tus/rangeserve/cmd/rangeserve/cli.VersionName=..."
var VersionName = "n/a"
var GitCommit = "n/a"
var BuildDate = "n/a"

func ShowVersion() {
	fmt.Printf("Version: %s\nCommit: %s\nDate: %s\nGo: %s\n", VersionName, GitCommit, BuildDate, runtime.Version())
}
