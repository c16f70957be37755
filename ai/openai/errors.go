package openai

import "errors"

var (
	// ErrEmptyResponse is returned when the model produces no usable output.
	ErrEmptyResponse = errors.New("model returned an empty response")

	// ErrMalformedResponse is returned when the model output is not the expected JSON.
	ErrMalformedResponse = errors.New("model returned malformed JSON")
)
