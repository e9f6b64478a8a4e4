package sessionrepo

import "errors"

var (
	// ErrNotFound indicates the requested session does not exist for the principal.
	ErrNotFound = errors.New("checkout session not found")

	// ErrAlreadyExists indicates a session already exists with the provided ID.
	ErrAlreadyExists = errors.New("checkout session already exists")
)
