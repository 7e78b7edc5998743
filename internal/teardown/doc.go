// Package teardown orchestrates dependency-aware deletion of cluster
// resources that an active controller keeps recreating.
//
// A run is strictly sequential: a readiness gate, the plan's phases in
// declared order, a terminal namespace scrub, a second readiness gate and
// a single-shot recreation recheck. Correctness depends on that
// serialization; nothing here runs concurrently.
package teardown
