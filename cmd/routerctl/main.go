// Package main is the entry point for the routerctl CLI.
//
// routerctl is the post-boot configuration reconciler of the LLM router
// appliance. It renders the provider configuration for the selected
// deployment mode into ConfigMaps and Secrets on the local k3s control
// plane and restarts the router workloads.
//
// Commands: configure, mode, status, init.
//
// For detailed usage information, run:
//
//	routerctl --help
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/imamik/routerctl/cmd/routerctl/commands"
	"github.com/imamik/routerctl/internal/apperr"
)

// Version information set by goreleaser at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	commands.SetVersionInfo(version, commit, date)
	if err := commands.Root().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, apperr.Message(err))
		stop()
		os.Exit(1)
	}
}
