package rules

import "github.com/dmitrymomot/rulekit/pkg/value"

// Presence fails for blank values: absent, null, whitespace-only strings,
// empty arrays and empty objects. Zero and false are present.
func Presence(opts ...Option) Rule {
	message := buildOptions(opts).messageOr("can't be blank")
	return func(v value.Value) error {
		if v.IsBlank() {
			return fail("validation.required", message, nil)
		}
		return nil
	}
}
