package main

import (
	"os"

	"github.com/seojun-dev/denv/internal/cli"
	"github.com/seojun-dev/denv/internal/cmdexec"
)

func main() {
	app := &cli.App{Commander: &cmdexec.RealCommander{}}
	cmd := app.NewRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(int(cli.MapExitCode(err)))
	}
}
