// Package handlers implements the CLI command logic.
//
// Handlers load the teardown plan, build the cluster client and run the
// teardown engine. They are separated from the cobra command definitions
// so the logic is testable without flag parsing.
package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/kubesweep/kubesweep/internal/cluster"
	"github.com/kubesweep/kubesweep/internal/config"
	"github.com/kubesweep/kubesweep/internal/teardown"
)

// SweepOptions carries the flag values shared by sweep and verify.
type SweepOptions struct {
	ConfigPath string
	Kubeconfig string
	JSON       bool
}

// ErrIncomplete is returned when the run finished but the cluster is not
// clean; the process exit code becomes 1.
var ErrIncomplete = errors.New("teardown incomplete")

// Factory function variables - can be replaced in tests.
var (
	// newClusterClient builds the real Kubernetes client.
	newClusterClient = func(kubeconfig string) (cluster.ResourceClient, error) {
		return cluster.NewClient(kubeconfig)
	}

	// newTeardownContext creates a new teardown context.
	newTeardownContext = teardown.NewContext

	// runTeardown executes the full sweep.
	runTeardown = teardown.Run
)

// Sweep handles the sweep command.
//
// It loads the teardown plan, runs every phase, scrubs the matching
// namespaces and rechecks for recreated objects. A non-clean report is
// an error so the process exits non-zero.
func Sweep(ctx context.Context, opts SweepOptions) error {
	report, err := run(ctx, opts, runTeardown)
	if err != nil {
		return err
	}
	return verdict(report, opts)
}

// run wires plan, client and context together and hands off to the
// given engine entry point.
func run(ctx context.Context, opts SweepOptions, engine func(*teardown.Context) (teardown.Report, error)) (teardown.Report, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return teardown.Report{}, fmt.Errorf("load teardown plan: %w", err)
	}

	client, err := newClusterClient(opts.Kubeconfig)
	if err != nil {
		return teardown.Report{}, fmt.Errorf("connect to cluster: %w", err)
	}

	return engine(newTeardownContext(ctx, cfg, client))
}

// verdict emits the optional JSON report and converts a dirty report
// into an error.
func verdict(report teardown.Report, opts SweepOptions) error {
	if opts.JSON {
		out, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return fmt.Errorf("encode report: %w", err)
		}
		fmt.Fprintln(os.Stdout, string(out))
	}
	if !report.Clean() {
		return ErrIncomplete
	}
	return nil
}
