package rules

import "errors"

var (
	// ErrValidationFailed matches every failure returned by a Rule via errors.Is.
	ErrValidationFailed = errors.New("validation failed")

	// ErrInvalidPattern is returned when a Format pattern does not compile.
	ErrInvalidPattern = errors.New("invalid pattern")
)

// ValidationError is the failure returned by a Rule. Error returns the
// human-readable message; the translation fields let callers render the
// failure in another language.
type ValidationError struct {
	Message           string
	TranslationKey    string
	TranslationValues map[string]any
}

func (e ValidationError) Error() string {
	return e.Message
}

func (e ValidationError) Is(target error) bool {
	return target == ErrValidationFailed
}

func fail(key, message string, values map[string]any) error {
	return ValidationError{
		Message:           message,
		TranslationKey:    key,
		TranslationValues: values,
	}
}
