package rules

import (
	"slices"
	"strings"

	"github.com/dmitrymomot/rulekit/pkg/value"
)

// Inclusion fails for defined values that are not equal to any allowed value.
//
// The message lists the allowed values sorted ascending by their display form
// and joined with ", ". A custom message set with WithMessage may reference
// the list as {{values}}. The caller's slice is copied, never reordered.
func Inclusion(allowed []value.Value, opts ...Option) Rule {
	sorted := slices.Clone(allowed)
	slices.SortStableFunc(sorted, func(a, b value.Value) int {
		return strings.Compare(a.String(), b.String())
	})

	labels := make([]string, len(sorted))
	for i, v := range sorted {
		labels[i] = v.String()
	}
	joined := strings.Join(labels, ", ")

	tmpl := buildOptions(opts).messageOr("must be one of: {{values}}")
	message := Interpolate(tmpl, map[string]string{"values": joined})

	return func(v value.Value) error {
		if v.IsDefined() && !slices.ContainsFunc(sorted, v.Equal) {
			return fail("validation.in_list", message, map[string]any{"values": labels})
		}
		return nil
	}
}
