// Package anthropic exposes the Anthropic adapter for direct use with Run
// and Extract, without going through the unified client.
package anthropic

import (
	"os"

	instructor "github.com/mikkihugo/instructor-go"
	internal "github.com/mikkihugo/instructor-go/internal/provider/anthropic"
)

// Option configures the adapter.
type Option func(*config)

type config struct {
	apiKey string
}

// WithAPIKey sets the API key explicitly instead of using the environment
// variable.
func WithAPIKey(key string) Option {
	return func(c *config) {
		c.apiKey = key
	}
}

// New creates an Anthropic adapter. The API key is read from the
// ANTHROPIC_API_KEY environment variable unless set with WithAPIKey.
func New(opts ...Option) instructor.Adapter {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.apiKey == "" {
		cfg.apiKey = os.Getenv("ANTHROPIC_API_KEY")
	}
	return internal.New(cfg.apiKey)
}
