package teardown

import (
	"context"
	"time"

	"github.com/kubesweep/kubesweep/internal/cluster"
	"github.com/kubesweep/kubesweep/internal/config"
)

// Context wraps all dependencies needed for a teardown run.
type Context struct {
	context.Context
	Config   *config.Config
	Cluster  cluster.ResourceClient
	Observer Observer
	Timeouts *config.Timeouts

	// Sleep is the settling wait used by the recreation detector.
	// Injectable so tests can simulate elapsed time.
	Sleep func(d time.Duration)
}

// NewContext creates a new teardown context with console observability and
// environment-derived timeouts.
func NewContext(ctx context.Context, cfg *config.Config, client cluster.ResourceClient) *Context {
	return &Context{
		Context:  ctx,
		Config:   cfg,
		Cluster:  client,
		Observer: NewConsoleObserver(),
		Timeouts: config.LoadTimeouts(),
		Sleep:    time.Sleep,
	}
}
