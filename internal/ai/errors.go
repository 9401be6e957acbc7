package ai

import "errors"

// GenerationError reports a failed provider call or an unusable response.
// Message is the localized text shown to the user; Cause holds the detail for logs.
type GenerationError struct {
	Kind    string // post, text, quotes, image, trends
	Message string
	Cause   error
}

func (e *GenerationError) Error() string { return e.Message }

func (e *GenerationError) Unwrap() error { return e.Cause }

// InputError reports a request rejected before any provider call.
type InputError struct {
	Message string
}

func (e *InputError) Error() string { return e.Message }

// IsInputError reports whether err is, or wraps, an InputError.
func IsInputError(err error) bool {
	var ie *InputError
	return errors.As(err, &ie)
}

// IsGenerationError reports whether err is, or wraps, a GenerationError.
func IsGenerationError(err error) bool {
	var ge *GenerationError
	return errors.As(err, &ge)
}
