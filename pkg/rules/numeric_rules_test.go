package rules_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/rulekit/pkg/rules"
	"github.com/dmitrymomot/rulekit/pkg/value"
)

func TestNumericality(t *testing.T) {
	t.Run("without bounds everything passes", func(t *testing.T) {
		rule := rules.Numericality()
		assert.NoError(t, rule(value.Absent()))
		for _, v := range values(nil, 0, 123, -123, 1.23, -1.23, "", "foo", true, false) {
			assert.NoError(t, rule(v), "value: %s", v)
		}
	})

	t.Run("minimum", func(t *testing.T) {
		rule := rules.Numericality(rules.WithMin(1))
		assert.EqualError(t, rule(of(-1)), "must be greater or equal 1")
		assert.EqualError(t, rule(of(0)), "must be greater or equal 1")
		assert.EqualError(t, rule(of(0.999)), "must be greater or equal 1")
		assert.NoError(t, rule(of(1)))
		assert.NoError(t, rule(of(2)))
	})

	t.Run("maximum", func(t *testing.T) {
		rule := rules.Numericality(rules.WithMax(1))
		assert.NoError(t, rule(of(-1)))
		assert.NoError(t, rule(of(0)))
		assert.NoError(t, rule(of(1)))
		assert.EqualError(t, rule(of(1.001)), "must be less or equal 1")
		assert.EqualError(t, rule(of(2)), "must be less or equal 1")
	})

	t.Run("non-numeric values ignore bounds", func(t *testing.T) {
		rule := rules.Numericality(rules.WithMin(10), rules.WithMax(20))
		assert.NoError(t, rule(value.Absent()))
		for _, v := range values(nil, "5", "", true, []any{1}, map[string]any{"n": 1}) {
			assert.NoError(t, rule(v), "value: %s", v)
		}
		assert.NoError(t, rule(value.Number(math.NaN())))
	})

	t.Run("fractional bounds in messages", func(t *testing.T) {
		rule := rules.Numericality(rules.WithMin(0.5), rules.WithMax(2.25))
		assert.EqualError(t, rule(of(0)), "must be greater or equal 0.5")
		assert.EqualError(t, rule(of(3)), "must be less or equal 2.25")
	})

	t.Run("failure carries translation metadata", func(t *testing.T) {
		err := rules.Numericality(rules.WithMin(3))(of(2))
		require.Error(t, err)
		assert.True(t, errors.Is(err, rules.ErrValidationFailed))

		var verr rules.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "validation.min", verr.TranslationKey)
		assert.Equal(t, 3.0, verr.TranslationValues["min"])
	})
}
