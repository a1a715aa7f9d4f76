package rules

import (
	"fmt"
	"regexp"

	"github.com/dmitrymomot/rulekit/pkg/value"
)

// Format fails for non-blank strings that re does not match. Blank strings and
// other kinds pass. Anchors are the caller's responsibility: use ^...$ to
// require a full match.
//
// Format panics if re is nil.
func Format(re *regexp.Regexp, opts ...Option) Rule {
	if re == nil {
		panic("rules: Format requires a non-nil pattern")
	}
	message := buildOptions(opts).messageOr("is invalid")
	return func(v value.Value) error {
		s, ok := v.Str()
		if !ok || v.IsBlank() {
			return nil
		}
		if !re.MatchString(s) {
			return fail("validation.format", message, map[string]any{"pattern": re.String()})
		}
		return nil
	}
}

// FormatString compiles pattern and returns a Format rule.
func FormatString(pattern string, opts ...Option) (Rule, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidPattern, err)
	}
	return Format(re, opts...), nil
}

// MustFormat is like FormatString but panics if pattern does not compile.
func MustFormat(pattern string, opts ...Option) Rule {
	rule, err := FormatString(pattern, opts...)
	if err != nil {
		panic(err)
	}
	return rule
}
