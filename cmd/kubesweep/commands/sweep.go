package commands

import (
	"github.com/spf13/cobra"

	"github.com/kubesweep/kubesweep/cmd/kubesweep/handlers"
)

// Sweep returns the sweep command.
//
// The sweep command deletes the planned resource kinds phase by phase,
// force deletes anything a finalizer pins in place, scrubs the matching
// namespaces and then rechecks the cluster for recreated objects.
func Sweep() *cobra.Command {
	var opts handlers.SweepOptions

	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Delete all planned resources and verify nothing comes back",
		Long: `Sweep tears down every resource kind in the teardown plan.

Phases run strictly in order; within a phase each kind is bulk deleted,
then stragglers held by finalizers are force deleted one by one. After
the last phase the namespaces matching the configured patterns are
deleted, and the whole plan is re-counted once to catch objects a still
active controller recreated.

Without --config the built-in plan is used: platform claims, environment
claims, composites, Argo workflows and batch jobs.

Example:
  kubesweep sweep --kubeconfig ~/.kube/config
  kubesweep sweep -c plan.yaml --json

The command exits 0 only when every kind counts zero, every matched
namespace is gone and nothing was recreated.

WARNING: This operation is irreversible. All matched resources and
namespaces will be deleted.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Sweep(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.ConfigPath, "config", "c", "", "Path to a teardown plan file (built-in plan when omitted)")
	cmd.Flags().StringVar(&opts.Kubeconfig, "kubeconfig", "", "Path to the kubeconfig file (in-cluster config when omitted)")
	cmd.Flags().BoolVar(&opts.JSON, "json", false, "Print the final report as JSON on stdout")

	return cmd
}
