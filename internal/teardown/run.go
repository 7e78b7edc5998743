package teardown

import (
	"fmt"
)

// Run executes a complete teardown: readiness gate, the plan's phases in
// order, the terminal namespace scrub, a second readiness gate and the
// single-shot recreation recheck. Control-plane unresponsiveness is the
// only fatal error; everything else is recorded in the report.
func Run(ctx *Context) (Report, error) {
	if err := AwaitHealthy(ctx); err != nil {
		return Report{ExitCode: 1}, err
	}

	phases, err := RunPhases(ctx)
	if err != nil {
		report := Summarize(phases, NamespaceOutcome{}, nil, 0, 0)
		report.ExitCode = 1
		return report, err
	}

	namespaces := ScrubNamespaces(ctx)

	// Verification against an unresponsive control plane would be
	// meaningless; gate again before trusting the recheck.
	if err := AwaitHealthy(ctx); err != nil {
		report := Summarize(phases, namespaces, nil, 0, 0)
		report.ExitCode = 1
		return report, err
	}

	signals, recheckErr := DetectRecreation(ctx, ctx.Timeouts.RecheckWait)

	podCount, nodeCount := clusterTotals(ctx)

	report := Summarize(phases, namespaces, signals, podCount, nodeCount)
	if recheckErr != nil {
		ctx.Observer.Event(Event{
			Type:    EventWarning,
			Message: fmt.Sprintf("recreation check incomplete: %v", recheckErr),
		})
		report.ExitCode = 1
	}

	report.Log(ctx.Observer)
	return report, nil
}

// Verify runs only the read-only checks: a readiness gate, an immediate
// leftover count for every plan kind, and the namespace pattern listing.
// Nothing is deleted.
func Verify(ctx *Context) (Report, error) {
	if err := AwaitHealthy(ctx); err != nil {
		return Report{ExitCode: 1}, err
	}

	signals, recheckErr := DetectRecreation(ctx, 0)

	var namespaces NamespaceOutcome
	matcher := NewMatcher(ctx.Config.NamespacePatterns)
	if !matcher.Empty() {
		names, err := ctx.Cluster.ListNamespaces(ctx)
		if err != nil {
			namespaces.Errors = append(namespaces.Errors, fmt.Sprintf("list namespaces: %v", err))
		} else {
			namespaces.Matched = matcher.Filter(names)
			namespaces.Remaining = namespaces.Matched
		}
	}

	podCount, nodeCount := clusterTotals(ctx)

	report := Summarize(nil, namespaces, signals, podCount, nodeCount)
	if recheckErr != nil {
		ctx.Observer.Event(Event{
			Type:    EventWarning,
			Message: fmt.Sprintf("leftover check incomplete: %v", recheckErr),
		})
		report.ExitCode = 1
	}

	report.Log(ctx.Observer)
	return report, nil
}

// clusterTotals fetches the pod and node counts for the report. Failures
// are warnings: the totals are informational, not part of the verdict.
func clusterTotals(ctx *Context) (int, int) {
	podCount, err := ctx.Cluster.PodCount(ctx)
	if err != nil {
		ctx.Observer.Event(Event{Type: EventWarning, Message: fmt.Sprintf("pod count unavailable: %v", err)})
	}
	nodeCount, err := ctx.Cluster.NodeCount(ctx)
	if err != nil {
		ctx.Observer.Event(Event{Type: EventWarning, Message: fmt.Sprintf("node count unavailable: %v", err)})
	}
	return podCount, nodeCount
}
