// Package instructor coerces LLM text output into validated, strongly-typed
// Go values.
//
// The heart of the library is a validation-guided retry loop: a request is
// sent through a provider [Adapter], the raw response is decoded against a
// target type, and on failure a corrective system message embedding the
// decode errors is appended to the conversation and the request is reissued,
// up to a bounded retry budget.
//
// # Basic Usage
//
// Extract a typed value from a conversation:
//
//	type Person struct {
//	    Name string `json:"name"`
//	    Age  int    `json:"age"`
//	}
//
//	adapter := openai.New() // reads OPENAI_API_KEY, or use openai.WithAPIKey
//	req := instructor.NewRequest("gpt-5.1", []instructor.Message{
//	    {Role: instructor.RoleUser, Content: "Ada Lovelace was 36 when she died."},
//	}, instructor.WithMaxRetries(2))
//
//	person, err := instructor.Extract[Person](ctx, adapter, req)
//
// [Extract] generates a JSON Schema for the target type, attaches it to the
// request, and decodes the response with a reflective struct decoder. For
// custom validation, supply your own [Decoder] to [Run].
//
// # Response Modes
//
// The [Mode] on a request selects how the schema reaches the provider:
// function-call arguments ([ModeTools]), a bare JSON object ([ModeJSON]), a
// schema-constrained response ([ModeJSONSchema]), or JSON in a fenced
// markdown block ([ModeMDJSON]). The retry loop treats the mode as opaque;
// adapters alone interpret it.
//
// # Failure Handling
//
// Run never panics and never retries transport failures: adapter errors are
// returned immediately as [*AdapterError], while decode failures that survive
// the retry budget are returned as [*ValidationError] carrying the final
// attempt's formatted errors. Branch with [IsAdapterError] and
// [IsValidationError] or errors.As.
//
// # Provider Integrations
//
// Use the [github.com/mikkihugo/instructor-go/client] package as the entry
// point for provider routing, and the
// [github.com/mikkihugo/instructor-go/models] package for model selection.
// A [MockAdapter] is provided for tests.
package instructor
