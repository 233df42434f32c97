package openai

import (
	"errors"

	"github.com/openai/openai-go"

	instructor "github.com/mikkihugo/instructor-go"
)

// wrapError converts an OpenAI SDK error into an AdapterError carrying the
// HTTP status code when one is available.
func wrapError(err error) error {
	if err == nil {
		return nil
	}

	var apiErr *openai.Error
	if errors.As(err, &apiErr) {
		return instructor.NewAdapterError(err.Error(), apiErr.StatusCode, err)
	}

	// Network or transport failure without an API status code.
	return instructor.NewAdapterError(err.Error(), 0, err)
}
