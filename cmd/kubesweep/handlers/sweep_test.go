package handlers

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kubesweep/kubesweep/internal/cluster"
	"github.com/kubesweep/kubesweep/internal/teardown"
)

func withStubbedEngine(t *testing.T, report teardown.Report, runErr error) {
	t.Helper()
	origClient := newClusterClient
	origRun := runTeardown
	origVerify := runVerify
	t.Cleanup(func() {
		newClusterClient = origClient
		runTeardown = origRun
		runVerify = origVerify
	})

	newClusterClient = func(_ string) (cluster.ResourceClient, error) {
		return &cluster.MockClient{}, nil
	}
	runTeardown = func(_ *teardown.Context) (teardown.Report, error) {
		return report, runErr
	}
	runVerify = func(_ *teardown.Context) (teardown.Report, error) {
		return report, runErr
	}
}

func TestSweep_CleanReport(t *testing.T) {
	withStubbedEngine(t, teardown.Report{ExitCode: 0}, nil)

	err := Sweep(context.Background(), SweepOptions{})
	require.NoError(t, err)
}

func TestSweep_DirtyReportIsAnError(t *testing.T) {
	withStubbedEngine(t, teardown.Report{ExitCode: 1}, nil)

	err := Sweep(context.Background(), SweepOptions{})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrIncomplete)
}

func TestSweep_EngineErrorPropagates(t *testing.T) {
	withStubbedEngine(t, teardown.Report{ExitCode: 1}, errors.New("control plane unresponsive"))

	err := Sweep(context.Background(), SweepOptions{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "control plane unresponsive")
}

func TestSweep_BadPlanFileFailsBeforeConnecting(t *testing.T) {
	connected := false
	origClient := newClusterClient
	t.Cleanup(func() { newClusterClient = origClient })
	newClusterClient = func(_ string) (cluster.ResourceClient, error) {
		connected = true
		return &cluster.MockClient{}, nil
	}

	err := Sweep(context.Background(), SweepOptions{ConfigPath: "/nonexistent/plan.yaml"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load teardown plan")
	assert.False(t, connected)
}

func TestSweep_ClientErrorPropagates(t *testing.T) {
	origClient := newClusterClient
	t.Cleanup(func() { newClusterClient = origClient })
	newClusterClient = func(_ string) (cluster.ResourceClient, error) {
		return nil, errors.New("kubeconfig not found")
	}

	err := Sweep(context.Background(), SweepOptions{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connect to cluster")
}

func TestVerify_LeftoversAreAnError(t *testing.T) {
	withStubbedEngine(t, teardown.Report{
		Signals:  []teardown.RecreationSignal{{Kind: "ApplicationClaim", Count: 2}},
		ExitCode: 1,
	}, nil)

	err := Verify(context.Background(), SweepOptions{})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrIncomplete)
}

func TestVerify_CleanCluster(t *testing.T) {
	withStubbedEngine(t, teardown.Report{ExitCode: 0}, nil)

	require.NoError(t, Verify(context.Background(), SweepOptions{}))
}
