package services

import "errors"

// Validation errors returned before any storage call.
var (
	ErrInvalidRating       = errors.New("Rating must be between 1 and 5.")
	ErrCommentRequired     = errors.New("Comment is required.")
	ErrCredentialsRequired = errors.New("Username and email are required.")
	ErrUsernameTaken       = errors.New("Username already taken.")
	ErrEmailTaken          = errors.New("Email already registered.")
)

// IsValidationError reports whether err is one of the validation errors above.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidRating) ||
		errors.Is(err, ErrCommentRequired) ||
		errors.Is(err, ErrCredentialsRequired) ||
		errors.Is(err, ErrUsernameTaken) ||
		errors.Is(err, ErrEmailTaken)
}
