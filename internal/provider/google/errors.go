package google

import (
	"errors"

	"google.golang.org/genai"

	instructor "github.com/mikkihugo/instructor-go"
)

// wrapError converts a GenAI SDK error into an AdapterError carrying the
// HTTP status code when one is available.
func wrapError(err error) error {
	if err == nil {
		return nil
	}

	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		return instructor.NewAdapterError(err.Error(), apiErr.Code, err)
	}

	return instructor.NewAdapterError(err.Error(), 0, err)
}
