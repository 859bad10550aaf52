package provisioning

import (
	"fmt"
	"io"
	"maps"
	"time"

	"github.com/rs/zerolog"
)

// Logger is the minimal printf-style logging interface.
type Logger interface {
	Printf(format string, v ...any)
}

// Observer defines the interface for structured observability during provisioning.
type Observer interface {
	Logger

	// Event emits a structured event
	Event(event Event)

	// Progress reports progress for a phase
	Progress(phase string, current, total int)

	// WithFields returns a new Observer with additional context fields
	WithFields(fields map[string]string) Observer
}

// Event represents a structured provisioning event.
type Event struct {
	Type      EventType         // Type of event
	Phase     string            // Phase name (e.g., "root-zone", "partner-host")
	Message   string            // Human-readable message
	Resource  string            // Resource name/ID if applicable
	Err       error             // Failure cause for failed events
	Timestamp time.Time         // When the event occurred
	Fields    map[string]string // Additional contextual fields
}

// EventType represents the type of provisioning event.
type EventType string

const (
	// EventPhaseStarted indicates a provisioning phase has started.
	EventPhaseStarted EventType = "phase.started"
	// EventPhaseCompleted indicates a provisioning phase completed successfully.
	EventPhaseCompleted EventType = "phase.completed"
	// EventPhaseFailed indicates a provisioning phase failed.
	EventPhaseFailed EventType = "phase.failed"

	// EventResourceCreating indicates a resource is being created.
	EventResourceCreating EventType = "resource.creating"
	// EventResourceCreated indicates a resource was created successfully.
	EventResourceCreated EventType = "resource.created"
	// EventResourceFailed indicates resource creation failed.
	EventResourceFailed EventType = "resource.failed"
	// EventResourceDeleting indicates a resource is being deleted.
	EventResourceDeleting EventType = "resource.deleting"
	// EventResourceDeleted indicates a resource was deleted successfully.
	EventResourceDeleted EventType = "resource.deleted"

	// EventCleanupFailed indicates the final resource group delete failed.
	EventCleanupFailed EventType = "cleanup.failed"

	// EventProgress indicates progress in a long-running operation.
	EventProgress EventType = "progress"
)

// ConsoleObserver implements Observer on top of a zerolog logger.
type ConsoleObserver struct {
	logger zerolog.Logger
}

// NewConsoleObserver creates an observer writing through logger.
func NewConsoleObserver(logger zerolog.Logger) *ConsoleObserver {
	return &ConsoleObserver{logger: logger}
}

// NewNopObserver returns an observer that discards everything.
func NewNopObserver() *ConsoleObserver {
	return &ConsoleObserver{logger: zerolog.Nop()}
}

// NewWriterObserver returns an observer writing JSON lines to w. Useful in tests.
func NewWriterObserver(w io.Writer) *ConsoleObserver {
	return &ConsoleObserver{logger: zerolog.New(w)}
}

// Printf implements Logger.
func (o *ConsoleObserver) Printf(format string, v ...any) {
	o.logger.Info().Msgf(format, v...)
}

// Event implements Observer.
func (o *ConsoleObserver) Event(event Event) {
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}

	entry := o.logger.Info()
	if event.Err != nil || event.Type == EventPhaseFailed || event.Type == EventResourceFailed || event.Type == EventCleanupFailed {
		entry = o.logger.Error().Err(event.Err)
	}

	entry = entry.Str("event", string(event.Type)).Time("at", event.Timestamp)
	if event.Phase != "" {
		entry = entry.Str("phase", event.Phase)
	}
	if event.Resource != "" {
		entry = entry.Str("resource", event.Resource)
	}
	for k, v := range event.Fields {
		entry = entry.Str(k, v)
	}
	entry.Msg(event.Message)
}

// Progress implements Observer.
func (o *ConsoleObserver) Progress(phase string, current, total int) {
	entry := o.logger.Info().
		Str("event", string(EventProgress)).
		Str("phase", phase).
		Int("current", current).
		Int("total", total)
	if total > 0 {
		entry = entry.Int("percent", (current*100)/total)
	}
	entry.Msg("progress")
}

// WithFields implements Observer.
func (o *ConsoleObserver) WithFields(fields map[string]string) Observer {
	ctx := o.logger.With()
	for k, v := range fields {
		ctx = ctx.Str(k, v)
	}
	return &ConsoleObserver{logger: ctx.Logger()}
}

// Helper functions for common events

// LogPhaseStart logs a phase start event.
func LogPhaseStart(observer Observer, phase string) {
	observer.Event(Event{
		Type:    EventPhaseStarted,
		Phase:   phase,
		Message: "starting",
	})
}

// LogPhaseComplete logs a phase completion event.
func LogPhaseComplete(observer Observer, phase string, duration time.Duration) {
	observer.Event(Event{
		Type:    EventPhaseCompleted,
		Phase:   phase,
		Message: fmt.Sprintf("completed in %v", duration.Round(time.Millisecond)),
	})
}

// LogPhaseFailed logs a phase failure event.
func LogPhaseFailed(observer Observer, phase string, err error) {
	observer.Event(Event{
		Type:    EventPhaseFailed,
		Phase:   phase,
		Message: "failed",
		Err:     err,
	})
}

// LogResourceCreating logs a resource creation start event.
func LogResourceCreating(observer Observer, phase, resourceType, resourceName string) {
	observer.Event(Event{
		Type:     EventResourceCreating,
		Phase:    phase,
		Resource: resourceName,
		Message:  fmt.Sprintf("creating %s", resourceType),
		Fields:   map[string]string{"type": resourceType},
	})
}

// LogResourceCreated logs a successful resource creation event.
func LogResourceCreated(observer Observer, phase, resourceType, resourceName, resourceID string, extra ...map[string]string) {
	fields := map[string]string{
		"type": resourceType,
		"id":   resourceID,
	}
	for _, e := range extra {
		maps.Copy(fields, e)
	}
	observer.Event(Event{
		Type:     EventResourceCreated,
		Phase:    phase,
		Resource: resourceName,
		Message:  fmt.Sprintf("%s created", resourceType),
		Fields:   fields,
	})
}

// LogResourceDeleting logs a resource deletion start event.
func LogResourceDeleting(observer Observer, phase, resourceType, resourceName string) {
	observer.Event(Event{
		Type:     EventResourceDeleting,
		Phase:    phase,
		Resource: resourceName,
		Message:  fmt.Sprintf("deleting %s", resourceType),
		Fields:   map[string]string{"type": resourceType},
	})
}

// LogResourceDeleted logs a successful resource deletion event.
func LogResourceDeleted(observer Observer, phase, resourceType, resourceName string) {
	observer.Event(Event{
		Type:     EventResourceDeleted,
		Phase:    phase,
		Resource: resourceName,
		Message:  fmt.Sprintf("%s deleted", resourceType),
		Fields:   map[string]string{"type": resourceType},
	})
}
