package rules

import (
	"slices"
	"strings"

	"github.com/dmitrymomot/rulekit/pkg/value"
)

// Or succeeds as soon as one branch succeeds. Each branch is an AND sequence.
// When every branch fails the result is the WithMessage override, or
// "is invalid: " followed by each branch's message in order. An empty branch
// list always succeeds.
func Or(branches []RuleSet, opts ...Option) Rule {
	normalized := make([]RuleSet, len(branches))
	for i, b := range branches {
		normalized[i] = slices.Clone(b)
	}
	o := buildOptions(opts)

	return func(v value.Value) error {
		if len(normalized) == 0 {
			return nil
		}

		summary := make([]string, 0, len(normalized))
		for _, branch := range normalized {
			err := branch.Check(v)
			if err == nil {
				return nil
			}
			summary = append(summary, err.Error())
		}

		message := o.messageOr("is invalid: " + strings.Join(summary, ", "))
		return fail("validation.or", message, map[string]any{"messages": summary})
	}
}
