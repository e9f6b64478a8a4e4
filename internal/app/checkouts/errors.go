package checkouts

import "fmt"

// Error is a checkout failure the HTTP adapter reports as an error envelope.
// Cause, when set, is the underlying model error, so callers can still match
// core.ErrInvalidData or core.ErrMissingRequiredField with errors.Is.
type Error struct {
	Status  int
	Code    string
	Message string
	Details map[string]any
	Cause   error
}

func (e *Error) Error() string {
	if e.Message == "" {
		return e.Code
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error { return e.Cause }
