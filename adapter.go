package instructor

import "context"

// Adapter is the boundary between the retry loop and a provider integration.
//
// Implementations translate a Request into a provider API call and return the
// raw response text in whatever shape the request's Mode calls for (tool-call
// arguments, a bare JSON object, or JSON extracted from a markdown fence).
type Adapter interface {
	// Complete performs exactly one network round-trip and returns the raw
	// response text. Implementations must not retry internally; retry policy
	// belongs to the caller. Transport, auth, and provider failures are
	// returned as errors and are never retried by Run.
	Complete(ctx context.Context, req *Request) (string, error)

	// Reask decides how a prior invalid response should be represented in
	// conversation history before a retry, typically by replaying it as an
	// assistant turn. It must be pure and may return nil if the adapter has
	// nothing to add.
	Reask(raw string, req *Request) []Message
}
