package llm

import "errors"

var (
	// ErrUnavailable indicates the Ollama server could not be reached.
	ErrUnavailable = errors.New("ollama server unavailable")

	// ErrTimeout indicates the request exceeded its configured timeout.
	ErrTimeout = errors.New("llm request timed out")

	// ErrInvalidOutput indicates the model response could not be parsed
	// into the expected structured format.
	ErrInvalidOutput = errors.New("invalid llm output format")

	// ErrRetryExhausted indicates every retry attempt failed.
	ErrRetryExhausted = errors.New("llm retry attempts exhausted")
)
