package rules

import (
	"slices"

	"github.com/dmitrymomot/rulekit/pkg/value"
)

// Rule inspects a single value. It returns nil on success and a failure
// (usually a ValidationError) otherwise.
type Rule func(v value.Value) error

// RuleSet is an ordered sequence of rules applied as a logical AND.
type RuleSet []Rule

// Check applies the rules in order and returns the first failure.
// An empty set always succeeds. Nil rules are skipped.
func (rs RuleSet) Check(v value.Value) error {
	for _, rule := range rs {
		if rule == nil {
			continue
		}
		if err := rule(v); err != nil {
			return err
		}
	}
	return nil
}

// All combines rules into a single Rule that stops at the first failure.
func All(rules ...Rule) Rule {
	return RuleSet(slices.Clone(rules)).Check
}

// Check applies rules to v as a one-off AND sequence.
func Check(v value.Value, rules ...Rule) error {
	return RuleSet(rules).Check(v)
}

// Message returns the failure message of err, or "" when err is nil.
func Message(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}

// Option configures a rule at construction time. Options a rule does not
// understand are ignored.
type Option func(*options)

type options struct {
	message    string
	hasMessage bool
	min        *float64
	max        *float64
	exact      *int
}

// WithMessage replaces the default failure message. For Inclusion the message
// is a template and may reference {{values}}.
func WithMessage(msg string) Option {
	return func(o *options) {
		o.message = msg
		o.hasMessage = true
	}
}

// WithMin sets the lower bound used by Numericality and Length.
func WithMin(n float64) Option {
	return func(o *options) { o.min = &n }
}

// WithMax sets the upper bound used by Numericality and Length.
func WithMax(n float64) Option {
	return func(o *options) { o.max = &n }
}

// WithExact sets the exact length required by Length.
func WithExact(n int) Option {
	return func(o *options) { o.exact = &n }
}

func buildOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

func (o options) messageOr(def string) string {
	if o.hasMessage {
		return o.message
	}
	return def
}
