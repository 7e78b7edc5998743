package teardown

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSummarizeExitCode(t *testing.T) {
	cleanPhase := PhaseResult{Name: "claims", Outcomes: []Outcome{{Kind: "ApplicationClaim"}}}
	dirtyPhase := PhaseResult{Name: "claims", Outcomes: []Outcome{{Kind: "ApplicationClaim", CountAfterForced: 2}}}

	tests := []struct {
		name       string
		phases     []PhaseResult
		namespaces NamespaceOutcome
		signals    []RecreationSignal
		exitCode   int
	}{
		{
			name:     "everything clean",
			phases:   []PhaseResult{cleanPhase},
			exitCode: 0,
		},
		{
			name:     "leftover kind",
			phases:   []PhaseResult{dirtyPhase},
			exitCode: 1,
		},
		{
			name:       "stuck namespace",
			phases:     []PhaseResult{cleanPhase},
			namespaces: NamespaceOutcome{Remaining: []string{"test-service-1"}},
			exitCode:   1,
		},
		{
			name:       "namespace error",
			phases:     []PhaseResult{cleanPhase},
			namespaces: NamespaceOutcome{Errors: []string{"boom"}},
			exitCode:   1,
		},
		{
			name:     "recreation signal",
			phases:   []PhaseResult{cleanPhase},
			signals:  []RecreationSignal{{Kind: "ApplicationClaim", Count: 2}},
			exitCode: 1,
		},
		{
			name:     "empty run is clean",
			exitCode: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report := Summarize(tt.phases, tt.namespaces, tt.signals, 3, 1)
			assert.Equal(t, tt.exitCode, report.ExitCode)
			assert.Equal(t, tt.exitCode == 0, report.Clean())
			assert.Equal(t, 3, report.PodCount)
			assert.Equal(t, 1, report.NodeCount)
		})
	}
}

func TestReportLog(t *testing.T) {
	report := Summarize(
		[]PhaseResult{{
			Name: "claims",
			Outcomes: []Outcome{
				{Kind: "ApplicationClaim", Namespace: "default", CountBefore: 12},
				{Kind: "AppContainerClaim", Namespace: "default", CountBefore: 3, CountAfterForced: 1, Errors: []string{"force delete failed"}},
			},
		}},
		NamespaceOutcome{
			Matched:   []string{"test-service-1"},
			Deleted:   []string{"test-service-1"},
			Remaining: []string{"test-service-1"},
		},
		[]RecreationSignal{{Kind: "Workflow", Namespace: "argo", Count: 2}},
		14, 3,
	)

	obs := &recordingObserver{}
	report.Log(obs)

	logged := strings.Join(obs.lines, "\n")
	assert.Contains(t, logged, "✓ [claims] ApplicationClaim (default): before=12 afterBulk=0 afterForced=0 forced=0")
	assert.Contains(t, logged, "✗ [claims] AppContainerClaim (default)")
	assert.Contains(t, logged, "error: force delete failed")
	assert.Contains(t, logged, "still terminating: test-service-1")
	assert.Contains(t, logged, "recreation: Workflow (argo) count=2")
	assert.Contains(t, logged, "cluster totals: pods=14 nodes=3")
	assert.Contains(t, logged, "✗ Teardown incomplete")
}

func TestReportLogCleanVerdict(t *testing.T) {
	report := Summarize(
		[]PhaseResult{{Name: "claims", Outcomes: []Outcome{{Kind: "ApplicationClaim", CountBefore: 2}}}},
		NamespaceOutcome{Matched: []string{"test-service-1"}, Deleted: []string{"test-service-1"}},
		nil, 0, 1,
	)

	obs := &recordingObserver{}
	report.Log(obs)

	logged := strings.Join(obs.lines, "\n")
	assert.Contains(t, logged, "✓ Teardown complete: cluster is clean")
	assert.NotContains(t, logged, "recreation:")
}
