package teardown

import (
	"fmt"
	"log"
	"strings"
	"time"
)

// Logger is the printf-style logging interface.
type Logger interface {
	Printf(format string, v ...interface{})
}

// Observer defines the interface for structured observability during a
// teardown run.
type Observer interface {
	Logger

	// Event emits a structured event
	Event(event Event)

	// WithFields returns a new Observer with additional context fields
	WithFields(fields map[string]string) Observer
}

// Event represents a structured teardown event.
type Event struct {
	Type      EventType         // Type of event
	Phase     string            // Phase name (e.g., "claims", "workflows")
	Kind      string            // Resource kind if applicable
	Message   string            // Human-readable message
	Timestamp time.Time         // When the event occurred
	Fields    map[string]string // Additional contextual fields
}

// EventType represents the type of teardown event.
type EventType string

const (
	// EventPhaseStarted indicates a teardown phase has started.
	EventPhaseStarted EventType = "phase.started"
	// EventPhaseCompleted indicates a teardown phase reached zero count.
	EventPhaseCompleted EventType = "phase.completed"
	// EventPhaseFailed indicates objects survived a teardown phase.
	EventPhaseFailed EventType = "phase.failed"

	// EventKindAbsent indicates a kind had no objects to delete.
	EventKindAbsent EventType = "kind.absent"
	// EventKindDeleting indicates a bulk delete was issued for a kind.
	EventKindDeleting EventType = "kind.deleting"
	// EventKindStuck indicates objects survived the bulk delete window.
	EventKindStuck EventType = "kind.stuck"
	// EventResourceForcing indicates a finalizer-clearing forced delete.
	EventResourceForcing EventType = "resource.forcing"

	// EventNamespaceDeleting indicates a matched namespace is being deleted.
	EventNamespaceDeleting EventType = "namespace.deleting"
	// EventNamespaceStuck indicates a namespace survived its timeout.
	EventNamespaceStuck EventType = "namespace.stuck"

	// EventHealthWaiting indicates the control plane failed a readiness probe.
	EventHealthWaiting EventType = "health.waiting"
	// EventRecreationDetected indicates deleted objects reappeared.
	EventRecreationDetected EventType = "recreation.detected"
	// EventWarning indicates a non-fatal problem worth surfacing.
	EventWarning EventType = "warning"
)

// ConsoleObserver implements Observer using the standard log package.
type ConsoleObserver struct {
	contextFields map[string]string
}

// NewConsoleObserver creates a new console-based observer.
func NewConsoleObserver() *ConsoleObserver {
	return &ConsoleObserver{
		contextFields: make(map[string]string),
	}
}

// Printf implements the Logger interface.
func (o *ConsoleObserver) Printf(format string, v ...interface{}) {
	log.Printf(format, v...)
}

// Event implements the Observer interface.
func (o *ConsoleObserver) Event(event Event) {
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}

	// Merge context fields
	if event.Fields == nil {
		event.Fields = make(map[string]string)
	}
	for k, v := range o.contextFields {
		if _, exists := event.Fields[k]; !exists {
			event.Fields[k] = v
		}
	}

	log.Print(o.formatEvent(event))
}

// WithFields implements the Observer interface.
func (o *ConsoleObserver) WithFields(fields map[string]string) Observer {
	newFields := make(map[string]string)
	for k, v := range o.contextFields {
		newFields[k] = v
	}
	for k, v := range fields {
		newFields[k] = v
	}

	return &ConsoleObserver{
		contextFields: newFields,
	}
}

// formatEvent formats an event for console output.
func (o *ConsoleObserver) formatEvent(event Event) string {
	var parts []string

	parts = append(parts, string(event.Type))

	if event.Phase != "" {
		parts = append(parts, fmt.Sprintf("[%s]", event.Phase))
	}

	if event.Kind != "" {
		parts = append(parts, fmt.Sprintf("kind=%s", event.Kind))
	}

	parts = append(parts, event.Message)

	if len(event.Fields) > 0 {
		var fieldParts []string
		for k, v := range event.Fields {
			fieldParts = append(fieldParts, fmt.Sprintf("%s=%s", k, v))
		}
		parts = append(parts, fmt.Sprintf("(%s)", strings.Join(fieldParts, ", ")))
	}

	return strings.Join(parts, " ")
}
