package rules

import (
	"slices"

	"github.com/dmitrymomot/rulekit/pkg/value"
)

// Every applies set to each element of an array and returns the first failure.
// WithMessage replaces the element's own message. Values that are not arrays
// pass; combine with TypeOf(TypeArray) to require one.
func Every(set RuleSet, opts ...Option) Rule {
	set = slices.Clone(set)
	o := buildOptions(opts)
	return func(v value.Value) error {
		for i, item := range v.Elements() {
			err := set.Check(item)
			if err == nil {
				continue
			}
			if o.hasMessage {
				return fail("validation.every", o.message, map[string]any{
					"index":   i,
					"message": err.Error(),
				})
			}
			return err
		}
		return nil
	}
}

// Dig walks path through nested objects and applies rules to the value found
// there. Values that are not objects pass. A missing key or a non-object on
// the way resolves to Absent, so Presence fails for missing paths.
func Dig(path []string, rules ...Rule) Rule {
	path = slices.Clone(path)
	set := RuleSet(slices.Clone(rules))
	return func(v value.Value) error {
		if !v.IsObject() {
			return nil
		}
		return set.Check(resolve(v, path))
	}
}

// Field is Dig with a single key.
func Field(name string, rules ...Rule) Rule {
	return Dig([]string{name}, rules...)
}

func resolve(v value.Value, path []string) value.Value {
	current := v
	for _, key := range path {
		next, ok := current.Get(key)
		if !ok {
			return value.Absent()
		}
		current = next
	}
	return current
}
