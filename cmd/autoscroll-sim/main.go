// Command autoscroll-sim replays auto-scroll scenarios headlessly and
// validates scenario and config files.
package main

import (
	"fmt"
	"os"

	"github.com/phanxgames/autoscroll/internal/cli"
)

func main() {
	cmd := cli.NewRootCommand()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(cli.GetExitCode(err))
	}
}
