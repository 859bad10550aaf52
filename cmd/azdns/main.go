// Package main is the entry point for the azdns CLI.
//
// azdns provisions an Azure DNS sample environment (zones, a web app with a
// custom domain, two VMs and the records tying them together) and deletes
// it again through a single resource-group delete.
//
// Commands: run, names, version.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/imamik/azdns/cmd/azdns/commands"
	"github.com/imamik/azdns/cmd/azdns/handlers"
)

// Version information set by goreleaser at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)

	commands.SetVersionInfo(version, commit, date)
	err := commands.Root().ExecuteContext(ctx)
	stop()

	if err != nil {
		fmt.Fprintln(os.Stderr, err)
	}
	os.Exit(handlers.ExitCode(err))
}
