package rules

import (
	"fmt"

	"github.com/dmitrymomot/rulekit/pkg/value"
)

// Numericality bounds numeric values with WithMin and WithMax (both inclusive).
// Non-numeric values pass; combine with TypeOf to require a number.
func Numericality(opts ...Option) Rule {
	o := buildOptions(opts)
	return func(v value.Value) error {
		if !v.IsNumber() {
			return nil
		}
		num, _ := v.Float()

		if o.min != nil && num < *o.min {
			return fail(
				"validation.min",
				fmt.Sprintf("must be greater or equal %s", value.Number(*o.min)),
				map[string]any{"min": *o.min},
			)
		}
		if o.max != nil && num > *o.max {
			return fail(
				"validation.max",
				fmt.Sprintf("must be less or equal %s", value.Number(*o.max)),
				map[string]any{"max": *o.max},
			)
		}
		return nil
	}
}
