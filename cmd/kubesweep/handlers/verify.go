package handlers

import (
	"context"

	"github.com/kubesweep/kubesweep/internal/teardown"
)

// runVerify executes the read-only check - can be replaced in tests.
var runVerify = teardown.Verify

// Verify handles the verify command.
//
// It runs the read-only leftover check: counts for every planned kind
// and the matching namespace listing. Leftovers make the process exit
// non-zero, same as an incomplete sweep.
func Verify(ctx context.Context, opts SweepOptions) error {
	report, err := run(ctx, opts, runVerify)
	if err != nil {
		return err
	}
	return verdict(report, opts)
}
