// Package main is the entry point for the kubesweep CLI.
//
// kubesweep tears down controller-managed Kubernetes resources in
// dependency order: claims before the composites that own them, then
// workflows and jobs, and finally the test namespaces. Resources that
// survive a bulk delete get their finalizers cleared and are force
// deleted; afterwards the cluster is rechecked for anything a still
// active controller recreated.
//
// Commands: sweep, verify, version, completion.
//
// For detailed usage information, run:
//
//	kubesweep --help
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/kubesweep/kubesweep/cmd/kubesweep/commands"
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
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
