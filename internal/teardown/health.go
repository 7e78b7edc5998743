package teardown

import (
	"errors"
	"fmt"

	"github.com/kubesweep/kubesweep/internal/util/retry"
)

// ErrControlPlaneUnresponsive marks a run aborted because the control plane
// never passed a readiness probe. Deletion results cannot be trusted
// against an unresponsive API server, so this is fatal for the whole run.
var ErrControlPlaneUnresponsive = errors.New("control plane unresponsive")

// AwaitHealthy gates the run on control-plane readiness. It probes at a
// fixed interval up to the configured attempt limit; exhausting the limit
// returns ErrControlPlaneUnresponsive.
func AwaitHealthy(ctx *Context) error {
	attempt := 0
	err := retry.Do(ctx, func() error {
		attempt++
		if err := ctx.Cluster.Ready(ctx); err != nil {
			ctx.Observer.Event(Event{
				Type:    EventHealthWaiting,
				Message: fmt.Sprintf("readiness probe %d/%d failed: %v", attempt, ctx.Timeouts.HealthMaxAttempts, err),
			})
			return err
		}
		return nil
	},
		retry.WithMaxAttempts(ctx.Timeouts.HealthMaxAttempts),
		retry.WithInterval(ctx.Timeouts.HealthInterval),
	)
	if err != nil {
		return fmt.Errorf("%w after %d attempts: %v", ErrControlPlaneUnresponsive, ctx.Timeouts.HealthMaxAttempts, err)
	}
	return nil
}
