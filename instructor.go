package instructor

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// correctivePreamble opens every corrective system message sent after a
// decode failure.
const correctivePreamble = "The response did not pass validation. Please try again and fix the following validation errors:\n\n"

// Run drives the request/validate/correct loop until a terminal outcome.
//
// Each iteration performs exactly one call to adapter.Complete; across a
// single invocation at most 1 + req.MaxRetries calls are made. The raw
// response text is parsed as JSON and fed to the decoder. On decode failure
// with budget remaining, the adapter's reask messages and a corrective system
// message summarizing the decode errors are appended to a derived request and
// the loop re-enters.
//
// Failure is always returned as a value: a *ValidationError carrying the
// final attempt's formatted decode errors, or a *AdapterError for transport
// and provider failures, which are never retried.
func Run[T any](ctx context.Context, adapter Adapter, req *Request, decoder Decoder[T]) (T, error) {
	var zero T

	current := req.clone()
	if !current.Mode.Valid() {
		return zero, &AdapterError{Msg: fmt.Sprintf("unsupported response mode %q", current.Mode)}
	}
	if current.MaxRetries < 0 {
		current.MaxRetries = 0
	}
	maxAttempts := current.MaxRetries + 1

	for attempt := 1; ; attempt++ {
		emit(current.events, Event{
			Type:        EventAttemptStart,
			Attempt:     attempt,
			MaxAttempts: maxAttempts,
		})

		if err := ctx.Err(); err != nil {
			return zero, &AdapterError{Msg: "request cancelled", Err: err}
		}

		raw, err := adapter.Complete(ctx, current)
		if err != nil {
			aerr := asAdapterError(err)
			emit(current.events, Event{
				Type:        EventAdapterError,
				Attempt:     attempt,
				MaxAttempts: maxAttempts,
				Err:         aerr,
			})
			return zero, aerr
		}

		value, decErrs := decodeRaw(raw, decoder)
		if len(decErrs) == 0 {
			emit(current.events, Event{
				Type:        EventSuccess,
				Attempt:     attempt,
				MaxAttempts: maxAttempts,
			})
			return value, nil
		}

		lines := formatDecodeErrors(decErrs)
		emit(current.events, Event{
			Type:        EventDecodeFailed,
			Attempt:     attempt,
			MaxAttempts: maxAttempts,
			Errors:      lines,
		})

		if current.MaxRetries == 0 {
			emit(current.events, Event{
				Type:        EventExhausted,
				Attempt:     attempt,
				MaxAttempts: maxAttempts,
				Errors:      lines,
			})
			return zero, &ValidationError{Errors: lines}
		}

		emit(current.events, Event{
			Type:        EventRetrying,
			Attempt:     attempt,
			MaxAttempts: maxAttempts,
			Errors:      lines,
		})
		current = current.withCorrection(adapter.Reask(raw, current), correctiveMessage(lines))
	}
}

// Extract is the typed convenience entry point: it generates a response
// schema for T if the request carries none, then runs the retry loop with a
// reflective struct decoder.
func Extract[T any](ctx context.Context, adapter Adapter, req *Request) (T, error) {
	if req.Schema == nil {
		schema, err := SchemaFor[T]()
		if err != nil {
			var zero T
			return zero, &AdapterError{Msg: "failed to generate schema", Err: err}
		}
		withSchema := req.clone()
		withSchema.Schema = &ResponseSchema{
			Name:   schemaNameFor[T](),
			Schema: schema,
		}
		req = withSchema
	}
	return Run[T](ctx, adapter, req, StructDecoder[T]{})
}

// StreamResult is the single event emitted by RunStream.
type StreamResult[T any] struct {
	Value T
	Err   error
}

// RunStream is the streaming variant of Run. Incremental validation is not
// implemented: the loop collapses to a single-shot Run whose terminal outcome
// is delivered on the returned channel, which is then closed.
func RunStream[T any](ctx context.Context, adapter Adapter, req *Request, decoder Decoder[T]) <-chan StreamResult[T] {
	ch := make(chan StreamResult[T], 1)
	streaming := req.clone()
	streaming.Stream = true
	go func() {
		defer close(ch)
		value, err := Run(ctx, adapter, streaming, decoder)
		ch <- StreamResult[T]{Value: value, Err: err}
	}()
	return ch
}

// decodeRaw parses the raw response text as JSON and feeds the tree to the
// decoder. Unparseable text is a recoverable decode failure, not an adapter
// error: the model can fix malformed JSON when reprompted.
func decodeRaw[T any](raw string, decoder Decoder[T]) (T, []DecodeError) {
	var tree any
	if err := json.Unmarshal([]byte(strings.TrimSpace(raw)), &tree); err != nil {
		var zero T
		return zero, []DecodeError{{Expected: "json", Found: "invalid json"}}
	}
	return decoder.Decode(tree)
}

// formatDecodeErrors renders each decode error as a single corrective line.
func formatDecodeErrors(errs []DecodeError) []string {
	lines := make([]string, len(errs))
	for i, e := range errs {
		lines[i] = e.String()
	}
	return lines
}

// correctiveMessage builds the system message appended after a failed decode.
// Synthesized messages carry generated IDs; caller messages are left as-is.
func correctiveMessage(lines []string) Message {
	return Message{
		ID:      GenerateMessageID(),
		Role:    RoleSystem,
		Content: correctivePreamble + strings.Join(lines, "\n"),
	}
}

// asAdapterError passes through adapter errors that already carry metadata
// and wraps everything else.
func asAdapterError(err error) *AdapterError {
	var ae *AdapterError
	if errors.As(err, &ae) {
		return ae
	}
	return &AdapterError{Msg: err.Error(), Err: err}
}
