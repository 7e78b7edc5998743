package teardown

import (
	"context"
	"fmt"
	"time"

	"github.com/kubesweep/kubesweep/internal/cluster"
	"github.com/kubesweep/kubesweep/internal/config"
)

// recordingObserver captures events and log lines for assertions.
type recordingObserver struct {
	events []Event
	lines  []string
}

func (o *recordingObserver) Printf(format string, v ...interface{}) {
	o.lines = append(o.lines, fmt.Sprintf(format, v...))
}

func (o *recordingObserver) Event(event Event) {
	o.events = append(o.events, event)
}

func (o *recordingObserver) WithFields(_ map[string]string) Observer {
	return o
}

func (o *recordingObserver) eventTypes() []EventType {
	var types []EventType
	for _, e := range o.events {
		types = append(types, e.Type)
	}
	return types
}

func (o *recordingObserver) hasEvent(t EventType) bool {
	for _, e := range o.events {
		if e.Type == t {
			return true
		}
	}
	return false
}

// testContext builds a Context with millisecond timeouts and a no-op sleep
// so tests never wait for real intervals.
func testContext(cfg *config.Config, client cluster.ResourceClient) (*Context, *recordingObserver) {
	obs := &recordingObserver{}
	return &Context{
		Context:  context.Background(),
		Config:   cfg,
		Cluster:  client,
		Observer: obs,
		Timeouts: &config.Timeouts{
			Phase:             10 * time.Millisecond,
			Namespace:         10 * time.Millisecond,
			HealthMaxAttempts: 3,
			HealthInterval:    time.Millisecond,
			RecheckWait:       0,
		},
		Sleep: func(time.Duration) {},
	}, obs
}

func singleKindPlan(kind config.ResourceKind) *config.Config {
	return &config.Config{
		Phases: []config.Phase{{Name: "only", Kinds: []config.ResourceKind{kind}}},
	}
}

var testKind = config.ResourceKind{
	Kind:      "ApplicationClaim",
	Group:     "platform.example.org",
	Version:   "v1alpha1",
	Resource:  "applicationclaims",
	Namespace: "default",
}
