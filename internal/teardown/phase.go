package teardown

import (
	"fmt"
	"time"
)

// PhaseResult is the recorded execution of one phase.
type PhaseResult struct {
	Name     string    `json:"name"`
	Outcomes []Outcome `json:"outcomes"`
}

// Clean reports whether every kind in the phase reached zero count.
func (r PhaseResult) Clean() bool {
	for _, o := range r.Outcomes {
		if !o.Clean() {
			return false
		}
	}
	return true
}

// RunPhases executes the dependency graph strictly in declared order. A
// kind that fails to drain is recorded as a failed outcome and the run
// continues; only context cancellation stops the loop early. The phase
// order is the single source of truth for what must be gone before what.
func RunPhases(ctx *Context) ([]PhaseResult, error) {
	start := time.Now()
	ctx.Observer.Printf("Starting teardown with %d phases...", len(ctx.Config.Phases))

	results := make([]PhaseResult, 0, len(ctx.Config.Phases))
	for i, phase := range ctx.Config.Phases {
		if err := ctx.Err(); err != nil {
			return results, err
		}

		phaseStart := time.Now()
		ctx.Observer.Event(Event{
			Type:    EventPhaseStarted,
			Phase:   phase.Name,
			Message: fmt.Sprintf("starting (%d/%d)", i+1, len(ctx.Config.Phases)),
		})

		result := PhaseResult{Name: phase.Name, Outcomes: runPhase(ctx, phase)}
		results = append(results, result)

		if result.Clean() {
			ctx.Observer.Event(Event{
				Type:    EventPhaseCompleted,
				Phase:   phase.Name,
				Message: fmt.Sprintf("completed in %v", time.Since(phaseStart).Round(time.Millisecond)),
			})
		} else {
			ctx.Observer.Event(Event{
				Type:    EventPhaseFailed,
				Phase:   phase.Name,
				Message: "some objects could not be removed",
			})
		}
	}

	ctx.Observer.Printf("Phase execution finished in %v", time.Since(start).Round(time.Millisecond))
	return results, nil
}
