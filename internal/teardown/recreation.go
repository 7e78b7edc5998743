package teardown

import (
	"errors"
	"fmt"
	"time"
)

// RecreationSignal reports a kind that came back after teardown. A
// non-empty signal set means some controller is still reconciling the
// deleted objects and teardown is not durable.
type RecreationSignal struct {
	Kind          string        `json:"kind"`
	Namespace     string        `json:"namespace,omitempty"`
	Count         int           `json:"count"`
	ObservedAfter time.Duration `json:"observedAfter"`
}

// DetectRecreation waits once for the settling interval, then re-counts
// every kind from every phase. It only ever reads: a signal is surfaced to
// the operator, never auto-remediated. The returned error aggregates
// kinds whose recheck itself failed.
func DetectRecreation(ctx *Context, waitFor time.Duration) ([]RecreationSignal, error) {
	if waitFor > 0 {
		ctx.Observer.Printf("Waiting %v before recreation check...", waitFor)
		ctx.Sleep(waitFor)
	}

	var signals []RecreationSignal
	var errs []error

	for _, kind := range ctx.Config.Kinds() {
		n, err := ctx.Cluster.Count(ctx, kind)
		if err != nil {
			errs = append(errs, fmt.Errorf("recheck %s: %w", kind.Kind, err))
			continue
		}
		if n > 0 {
			ctx.Observer.Event(Event{
				Type:    EventRecreationDetected,
				Kind:    kind.String(),
				Message: fmt.Sprintf("%d objects present %v after deletion", n, waitFor),
			})
			signals = append(signals, RecreationSignal{
				Kind:          kind.Kind,
				Namespace:     kind.Namespace,
				Count:         n,
				ObservedAfter: waitFor,
			})
		}
	}

	return signals, errors.Join(errs...)
}
