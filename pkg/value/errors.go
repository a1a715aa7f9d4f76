package value

import "errors"

var (
	// ErrUnsupportedType is returned when native data has no Value representation.
	ErrUnsupportedType = errors.New("unsupported value type")

	// ErrInvalidDocument is returned when a JSON or YAML document cannot be decoded.
	ErrInvalidDocument = errors.New("invalid document")
)
