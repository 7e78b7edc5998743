package teardown

// Report is the sole externally observable result of a run.
type Report struct {
	Phases     []PhaseResult      `json:"phases,omitempty"`
	Namespaces NamespaceOutcome   `json:"namespaces"`
	Signals    []RecreationSignal `json:"signals,omitempty"`
	PodCount   int                `json:"podCount"`
	NodeCount  int                `json:"nodeCount"`
	ExitCode   int                `json:"exitCode"`
}

// Clean reports whether the teardown is complete and durable.
func (r Report) Clean() bool {
	return r.ExitCode == 0
}

// Summarize aggregates phase outcomes, the namespace scrub and recreation
// signals into the final report. Exit code 0 requires every kind at zero,
// a clean namespace scrub and zero signals. Pure aggregation, no cluster
// side effects.
func Summarize(phases []PhaseResult, namespaces NamespaceOutcome, signals []RecreationSignal, podCount, nodeCount int) Report {
	report := Report{
		Phases:     phases,
		Namespaces: namespaces,
		Signals:    signals,
		PodCount:   podCount,
		NodeCount:  nodeCount,
	}

	for _, phase := range phases {
		if !phase.Clean() {
			report.ExitCode = 1
		}
	}
	if !namespaces.Clean() {
		report.ExitCode = 1
	}
	if len(signals) > 0 {
		report.ExitCode = 1
	}

	return report
}

// Log prints the leveled summary: per-kind counts with pass/fail markers,
// namespace results, recreation signals and the final verdict.
func (r Report) Log(obs Observer) {
	obs.Printf("=== Teardown report ===")

	for _, phase := range r.Phases {
		for _, o := range phase.Outcomes {
			mark := "✓"
			if !o.Clean() {
				mark = "✗"
			}
			name := o.Kind
			if o.Namespace != "" {
				name = o.Kind + " (" + o.Namespace + ")"
			}
			obs.Printf("%s [%s] %s: before=%d afterBulk=%d afterForced=%d forced=%d",
				mark, phase.Name, name, o.CountBefore, o.CountAfterBulk, o.CountAfterForced, o.ForcedCount)
			for _, e := range o.Errors {
				obs.Printf("    error: %s", e)
			}
		}
	}

	if len(r.Namespaces.Matched) > 0 || len(r.Namespaces.Errors) > 0 {
		mark := "✓"
		if !r.Namespaces.Clean() {
			mark = "✗"
		}
		obs.Printf("%s namespaces: matched=%d deleted=%d remaining=%d",
			mark, len(r.Namespaces.Matched), len(r.Namespaces.Deleted), len(r.Namespaces.Remaining))
		for _, name := range r.Namespaces.Remaining {
			obs.Printf("    still terminating: %s", name)
		}
		for _, e := range r.Namespaces.Errors {
			obs.Printf("    error: %s", e)
		}
	}

	for _, s := range r.Signals {
		name := s.Kind
		if s.Namespace != "" {
			name = s.Kind + " (" + s.Namespace + ")"
		}
		obs.Printf("✗ recreation: %s count=%d after %v", name, s.Count, s.ObservedAfter)
	}

	obs.Printf("cluster totals: pods=%d nodes=%d", r.PodCount, r.NodeCount)

	if r.Clean() {
		obs.Printf("✓ Teardown complete: cluster is clean")
	} else {
		obs.Printf("✗ Teardown incomplete: see errors above")
	}
}
