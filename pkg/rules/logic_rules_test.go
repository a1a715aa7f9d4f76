package rules_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/rulekit/pkg/rules"
	"github.com/dmitrymomot/rulekit/pkg/value"
)

func TestOr(t *testing.T) {
	rule := rules.Or([]rules.RuleSet{
		{rules.TypeOf(rules.TypeString), rules.Length(rules.WithMin(3))},
		{rules.TypeOf(rules.TypeBoolean)},
	})

	t.Run("any passing branch wins", func(t *testing.T) {
		assert.NoError(t, rule(value.Absent()))
		for _, v := range values(nil, "foo", true, false) {
			assert.NoError(t, rule(v), "value: %s", v)
		}
	})

	t.Run("all branches fail", func(t *testing.T) {
		assert.EqualError(t, rule(of(0)), "is invalid: is not a string, is not a boolean")
		assert.EqualError(t, rule(of([]any{})), "is invalid: is not a string, is not a boolean")
		assert.EqualError(t, rule(of("zz")), "is invalid: is too short (minimum is 3 characters), is not a boolean")
	})

	t.Run("override message", func(t *testing.T) {
		rule := rules.Or([]rules.RuleSet{
			{rules.TypeOf(rules.TypeString)},
			{rules.TypeOf(rules.TypeNumber)},
		}, rules.WithMessage("must be a string or a number"))
		assert.NoError(t, rule(of(1)))
		assert.EqualError(t, rule(of(true)), "must be a string or a number")
	})

	t.Run("empty branch list succeeds", func(t *testing.T) {
		assert.NoError(t, rules.Or(nil)(of(1)))
		assert.NoError(t, rules.Or([]rules.RuleSet{})(value.Absent()))
	})

	t.Run("empty branch succeeds", func(t *testing.T) {
		rule := rules.Or([]rules.RuleSet{{rules.TypeOf(rules.TypeString)}, {}})
		assert.NoError(t, rule(of(1)))
	})

	t.Run("stops at first passing branch", func(t *testing.T) {
		calls := 0
		counting := func(v value.Value) error {
			calls++
			return nil
		}
		rule := rules.Or([]rules.RuleSet{{counting}, {counting}})
		require.NoError(t, rule(of(1)))
		assert.Equal(t, 1, calls)
	})

	t.Run("translation metadata", func(t *testing.T) {
		var verr rules.ValidationError
		require.ErrorAs(t, rule(of(0)), &verr)
		assert.Equal(t, "validation.or", verr.TranslationKey)
		assert.Equal(t, []string{"is not a string", "is not a boolean"}, verr.TranslationValues["messages"])
	})
}

func TestAll(t *testing.T) {
	rule := rules.All(rules.Presence(), rules.TypeOf(rules.TypeInteger), rules.Numericality(rules.WithMax(10)))

	assert.EqualError(t, rule(value.Absent()), "can't be blank")
	assert.EqualError(t, rule(of(1.5)), "is not an integer")
	assert.EqualError(t, rule(of(11)), "must be less or equal 10")
	assert.NoError(t, rule(of(10)))

	t.Run("empty sequence passes", func(t *testing.T) {
		assert.NoError(t, rules.All()(value.Absent()))
	})

	t.Run("nil rules are skipped", func(t *testing.T) {
		assert.NoError(t, rules.RuleSet{nil, rules.Presence()}.Check(of("x")))
	})
}

func TestCheck(t *testing.T) {
	assert.NoError(t, rules.Check(of("foo"), rules.Presence(), rules.Length(rules.WithMax(3))))
	assert.EqualError(t, rules.Check(of("foobar"), rules.Presence(), rules.Length(rules.WithMax(3))), "is too long (maximum is 3 characters)")
	assert.Equal(t, "", rules.Message(nil))
	assert.Equal(t, "can't be blank", rules.Message(rules.Check(value.Absent(), rules.Presence())))
}
