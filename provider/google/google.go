// Package google exposes the Google Gemini adapter for direct use with Run
// and Extract, without going through the unified client.
package google

import (
	"context"
	"os"

	instructor "github.com/mikkihugo/instructor-go"
	internal "github.com/mikkihugo/instructor-go/internal/provider/google"
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

// New creates a Google adapter. The API key is read from the GOOGLE_API_KEY
// environment variable unless set with WithAPIKey. Client construction can
// fail, so an error is returned.
func New(ctx context.Context, opts ...Option) (instructor.Adapter, error) {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.apiKey == "" {
		cfg.apiKey = os.Getenv("GOOGLE_API_KEY")
	}
	adapter, err := internal.New(ctx, cfg.apiKey)
	if err != nil {
		return nil, err
	}
	return adapter, nil
}
