package instructor

// Mode selects how the response schema is communicated to the provider and
// how the raw response is expected to be shaped. The retry loop treats the
// mode as opaque data; only adapters interpret it.
type Mode string

const (
	// ModeTools requests structured output as function-call arguments.
	ModeTools Mode = "tools"

	// ModeJSON requests a bare JSON object response.
	ModeJSON Mode = "json"

	// ModeJSONSchema requests a schema-constrained JSON object response.
	ModeJSONSchema Mode = "json_schema"

	// ModeMDJSON requests JSON embedded in a fenced markdown code block.
	ModeMDJSON Mode = "md_json"
)

// String returns the mode identifier.
func (m Mode) String() string { return string(m) }

// Valid reports whether the mode is one of the supported response modes.
// Run rejects a request carrying an unknown mode before the first attempt.
func (m Mode) Valid() bool {
	switch m {
	case ModeTools, ModeJSON, ModeJSONSchema, ModeMDJSON:
		return true
	}
	return false
}
