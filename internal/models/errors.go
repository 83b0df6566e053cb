package models

import "errors"

// Error kinds returned across the core's boundary. Each failure is a
// distinct, matchable kind so callers can pick distinct user messaging
// ("re-upload the document" vs "try your question again").
var (
	ErrInvalidParameter = errors.New("invalid parameter")
	ErrExtraction       = errors.New("document text extraction failed")
	ErrEmbedding        = errors.New("embedding request failed")
	ErrGeneration       = errors.New("answer generation failed")
)

type kindError struct {
	kind  error
	cause error
}

func (e *kindError) Error() string {
	if e.cause == nil {
		return e.kind.Error()
	}
	return e.kind.Error() + ": " + e.cause.Error()
}

func (e *kindError) Is(target error) bool { return target == e.kind }

func (e *kindError) Unwrap() error { return e.cause }

// WrapError ties a cause to one of the error kinds above. The result
// matches the kind with errors.Is and exposes the cause through Unwrap.
func WrapError(kind, cause error) error {
	return &kindError{kind: kind, cause: cause}
}
