package main

import (
	"github.com/tus/rangeserve/cmd/rangeserve/cli"
)

func main() {
	cli.ParseFlags()
	cli.PrepareGreeting()

	// Print version and other information and exit if the -version flag has been
	// passed else we will start the HTTP server
	if cli.Flags.ShowVersion {
		cli.ShowVersion()
	} else {
		cli.CreateStore()
		cli.Serve()
	}
}
