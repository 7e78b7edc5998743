package commands

import (
	"github.com/spf13/cobra"

	"github.com/kubesweep/kubesweep/cmd/kubesweep/handlers"
)

// Verify returns the verify command.
//
// The verify command runs the read-only half of a sweep: it counts every
// planned kind and lists the matching namespaces without deleting
// anything, reporting whether the cluster is already clean.
func Verify() *cobra.Command {
	var opts handlers.SweepOptions

	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Check the cluster for leftovers without deleting anything",
		Long: `Verify counts every kind in the teardown plan and lists the
namespaces matching the configured patterns. Nothing is deleted.

Example:
  kubesweep verify -c plan.yaml

The command exits 0 when the cluster holds none of the planned resources
and no matching namespaces.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Verify(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.ConfigPath, "config", "c", "", "Path to a teardown plan file (built-in plan when omitted)")
	cmd.Flags().StringVar(&opts.Kubeconfig, "kubeconfig", "", "Path to the kubeconfig file (in-cluster config when omitted)")
	cmd.Flags().BoolVar(&opts.JSON, "json", false, "Print the final report as JSON on stdout")

	return cmd
}
