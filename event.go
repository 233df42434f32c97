package instructor

import "time"

// EventType identifies the kind of event occurring during the retry loop.
type EventType string

const (
	// EventAttemptStart fires before each completion attempt.
	EventAttemptStart EventType = "attempt_start"

	// EventDecodeFailed fires after an attempt whose output failed to decode.
	EventDecodeFailed EventType = "decode_failed"

	// EventRetrying fires before a corrective retry is issued.
	EventRetrying EventType = "retrying"

	// EventSuccess fires when an attempt decodes successfully.
	EventSuccess EventType = "success"

	// EventExhausted fires when the retry budget is exhausted.
	EventExhausted EventType = "exhausted"

	// EventAdapterError fires when the adapter reports a terminal failure.
	EventAdapterError EventType = "adapter_error"
)

// Event represents an observable occurrence during the retry loop.
type Event struct {
	// Type identifies the kind of event.
	Type EventType

	// Attempt is the current attempt number (1-indexed).
	Attempt int

	// MaxAttempts is the total number of attempts allowed.
	MaxAttempts int

	// Errors contains the formatted decode-error lines for decode failures.
	Errors []string

	// Err contains the adapter error for EventAdapterError.
	Err error

	// Timestamp is when the event occurred.
	Timestamp time.Time
}

// emit sends an event with timestamp to the channel without blocking.
func emit(ch chan<- Event, event Event) {
	if ch == nil {
		return
	}
	event.Timestamp = time.Now()
	select {
	case ch <- event:
	default:
		// Channel full - don't block
	}
}
