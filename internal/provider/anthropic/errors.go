package anthropic

import (
	"errors"

	"github.com/anthropics/anthropic-sdk-go"

	instructor "github.com/mikkihugo/instructor-go"
)

// wrapError converts an Anthropic SDK error into an AdapterError carrying the
// HTTP status code when one is available.
func wrapError(err error) error {
	if err == nil {
		return nil
	}

	var apiErr *anthropic.Error
	if errors.As(err, &apiErr) {
		return instructor.NewAdapterError(err.Error(), apiErr.StatusCode, err)
	}

	return instructor.NewAdapterError(err.Error(), 0, err)
}
