package instructor

// Request holds everything needed for a single completion attempt.
//
// A Request is treated as immutable once handed to Run: each retry derives a
// fresh Request value with messages appended and the retry budget
// decremented, so no shared mutable state exists between attempts.
type Request struct {
	// Model is the provider model identifier.
	Model string

	// Messages is the ordered conversation history.
	Messages []Message

	// Temperature is the sampling temperature, nil for provider default.
	Temperature *float64

	// MaxTokens caps the number of generated tokens, 0 for provider default.
	MaxTokens int

	// Stream requests a streaming response from the adapter. The retry loop
	// is agnostic to this flag; see RunStream.
	Stream bool

	// Mode selects the response encoding. Defaults to ModeTools.
	Mode Mode

	// MaxRetries is the remaining retry budget. The loop terminates when it
	// reaches zero. Never negative.
	MaxRetries int

	// Schema describes the desired output shape. Adapters use it to build
	// tool definitions, response formats, or schema prompts.
	Schema *ResponseSchema

	// ValidationContext carries arbitrary caller data for custom decoders.
	ValidationContext map[string]any

	events chan<- Event
}

// Option is a functional option for configuring a Request.
type Option func(*Request)

// WithTemperature sets the sampling temperature.
func WithTemperature(t float64) Option {
	return func(r *Request) {
		r.Temperature = &t
	}
}

// WithMaxTokens sets the maximum number of tokens to generate.
func WithMaxTokens(n int) Option {
	return func(r *Request) {
		r.MaxTokens = n
	}
}

// WithMode sets the response encoding mode.
func WithMode(m Mode) Option {
	return func(r *Request) {
		r.Mode = m
	}
}

// WithMaxRetries sets the retry budget. Negative values are clamped to zero.
func WithMaxRetries(n int) Option {
	return func(r *Request) {
		if n < 0 {
			n = 0
		}
		r.MaxRetries = n
	}
}

// WithStream marks the request as streaming.
func WithStream() Option {
	return func(r *Request) {
		r.Stream = true
	}
}

// WithResponseSchema attaches an explicit response schema.
func WithResponseSchema(s ResponseSchema) Option {
	return func(r *Request) {
		r.Schema = &s
	}
}

// WithValidationContext sets caller data made available to decoders.
func WithValidationContext(vc map[string]any) Option {
	return func(r *Request) {
		r.ValidationContext = vc
	}
}

// WithEvents sets an optional channel for receiving retry loop events.
// Events are sent non-blocking; if the channel is full, events are dropped.
func WithEvents(ch chan<- Event) Option {
	return func(r *Request) {
		r.events = ch
	}
}

// NewRequest builds a Request for the given model and conversation.
func NewRequest(model string, messages []Message, opts ...Option) *Request {
	r := &Request{
		Model:    model,
		Messages: messages,
		Mode:     ModeTools,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// clone returns a copy of the request with its own message slice.
func (r *Request) clone() *Request {
	c := *r
	c.Messages = make([]Message, len(r.Messages))
	copy(c.Messages, r.Messages)
	return &c
}

// withCorrection derives the next attempt's request: the reask messages and
// the corrective system message are appended and the budget is decremented.
func (r *Request) withCorrection(reask []Message, corrective Message) *Request {
	next := r.clone()
	next.Messages = append(next.Messages, reask...)
	next.Messages = append(next.Messages, corrective)
	next.MaxRetries--
	return next
}
