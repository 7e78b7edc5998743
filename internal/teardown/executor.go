package teardown

import (
	"context"
	"fmt"
	"time"

	"k8s.io/apimachinery/pkg/util/wait"

	"github.com/kubesweep/kubesweep/internal/config"
)

// countPollInterval is how often a kind is re-counted while waiting for a
// bulk delete to drain.
const countPollInterval = 2 * time.Second

// Outcome records the deletion result for one kind in one phase. All three
// counts are retained for diagnosis.
type Outcome struct {
	Kind             string   `json:"kind"`
	Namespace        string   `json:"namespace,omitempty"`
	CountBefore      int      `json:"countBefore"`
	CountAfterBulk   int      `json:"countAfterBulk"`
	CountAfterForced int      `json:"countAfterForced"`
	ForcedCount      int      `json:"forcedCount"`
	Errors           []string `json:"errors,omitempty"`
}

// Clean reports whether the kind reached zero without unresolved errors.
func (o Outcome) Clean() bool {
	return o.CountAfterForced == 0 && len(o.Errors) == 0
}

func (o *Outcome) addError(err error) {
	o.Errors = append(o.Errors, err.Error())
}

// runPhase deletes every kind in the phase: bulk delete first, forced
// per-object deletion for stragglers.
func runPhase(ctx *Context, phase config.Phase) []Outcome {
	obs := ctx.Observer.WithFields(map[string]string{"phase": phase.Name})

	outcomes := make([]Outcome, 0, len(phase.Kinds))
	for _, kind := range phase.Kinds {
		outcomes = append(outcomes, deleteKind(ctx, obs, kind))
	}
	return outcomes
}

// deleteKind drives one kind to zero count. Bulk delete is the fast path;
// forced deletion clears finalizers and bypasses the owning controller's
// cleanup contract, which is only safe because earlier phases removed the
// controller's inputs.
func deleteKind(ctx *Context, obs Observer, kind config.ResourceKind) Outcome {
	out := Outcome{Kind: kind.Kind, Namespace: kind.Namespace}

	before, err := ctx.Cluster.Count(ctx, kind)
	if err != nil {
		out.addError(fmt.Errorf("count %s: %w", kind.Kind, err))
		return out
	}
	out.CountBefore = before

	if before == 0 {
		obs.Event(Event{Type: EventKindAbsent, Kind: kind.String(), Message: "nothing to delete"})
		return out
	}

	obs.Event(Event{
		Type:    EventKindDeleting,
		Kind:    kind.String(),
		Message: fmt.Sprintf("bulk deleting %d objects", before),
	})
	if err := ctx.Cluster.DeleteCollection(ctx, kind); err != nil {
		out.addError(fmt.Errorf("bulk delete %s: %w", kind.Kind, err))
	}

	out.CountAfterBulk = awaitZero(ctx, kind, ctx.Timeouts.Phase, before)
	if out.CountAfterBulk == 0 {
		return out
	}

	obs.Event(Event{
		Type:    EventKindStuck,
		Kind:    kind.String(),
		Message: fmt.Sprintf("%d objects survived bulk delete, forcing", out.CountAfterBulk),
	})

	names, err := ctx.Cluster.List(ctx, kind)
	if err != nil {
		out.addError(fmt.Errorf("list %s stragglers: %w", kind.Kind, err))
		out.CountAfterForced = out.CountAfterBulk
		return out
	}

	for _, name := range names {
		obs.Event(Event{
			Type:    EventResourceForcing,
			Kind:    kind.String(),
			Message: fmt.Sprintf("clearing finalizers on %q", name),
		})
		if err := ctx.Cluster.ForceDelete(ctx, kind, name); err != nil {
			out.addError(fmt.Errorf("force delete %s %q: %w", kind.Kind, name, err))
			continue
		}
		out.ForcedCount++
	}

	after, err := ctx.Cluster.Count(ctx, kind)
	if err != nil {
		out.addError(fmt.Errorf("recount %s: %w", kind.Kind, err))
		out.CountAfterForced = out.CountAfterBulk
		return out
	}
	out.CountAfterForced = after
	return out
}

// awaitZero polls the kind's count until it reaches zero or the timeout
// expires, returning the last observed count. A timeout is a recorded
// result here, not an error: the caller falls back to forced deletion.
func awaitZero(ctx *Context, kind config.ResourceKind, timeout time.Duration, fallback int) int {
	last := fallback
	_ = wait.PollUntilContextTimeout(ctx, countPollInterval, timeout, true, func(c context.Context) (bool, error) {
		n, err := ctx.Cluster.Count(c, kind)
		if err != nil {
			return false, nil
		}
		last = n
		return n == 0, nil
	})
	return last
}
