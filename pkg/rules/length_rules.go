package rules

import (
	"fmt"

	"github.com/dmitrymomot/rulekit/pkg/value"
)

// Length checks the length of strings (in characters) and arrays against
// WithMin, WithMax and WithExact, in that order. Other kinds pass.
func Length(opts ...Option) Rule {
	o := buildOptions(opts)
	return func(v value.Value) error {
		n, ok := v.Len()
		if !ok {
			return nil
		}
		length := float64(n)

		if o.min != nil && length < *o.min {
			return fail(
				"validation.min_length",
				fmt.Sprintf("is too short (minimum is %s characters)", value.Number(*o.min)),
				map[string]any{"min": *o.min},
			)
		}
		if o.max != nil && length > *o.max {
			return fail(
				"validation.max_length",
				fmt.Sprintf("is too long (maximum is %s characters)", value.Number(*o.max)),
				map[string]any{"max": *o.max},
			)
		}
		if o.exact != nil && n != *o.exact {
			return fail(
				"validation.exact_length",
				fmt.Sprintf("is the wrong length (should be %d characters)", *o.exact),
				map[string]any{"length": *o.exact},
			)
		}
		return nil
	}
}
