package domain

import "errors"

var (
	ErrSubdomainTaken  = errors.New("subdomain is already registered")
	ErrProfileNotFound = errors.New("profile not found")
)

// ValidationError marks client input the signup endpoint refuses. Message is
// safe to show to the submitter as-is.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
