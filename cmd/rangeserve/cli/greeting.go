package cli

import (
	"fmt"
	"net/http"
)

var greeting string

func PrepareGreeting() {
	greeting = fmt.Sprintf(
		`Welcome to rangeserve
=====================

This is the root directory of the server. Resources are served at the %s
route, e.g. %s<id>. Partial downloads are supported using the Range header:

  curl -H "Range: bytes=0-499" http://<host>%s<id>

Version = %s
GitCommit = %s
BuildDate = %s
`, Flags.Basepath, Flags.Basepath, Flags.Basepath, VersionName, GitCommit, BuildDate)
}

func DisplayGreeting(w http.ResponseWriter, r *http.Request) {
	_, _ = w.Write([]byte(greeting))
}
