package rules_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/rulekit/pkg/rules"
	"github.com/dmitrymomot/rulekit/pkg/value"
)

func TestPresence(t *testing.T) {
	rule := rules.Presence()

	t.Run("blank values fail", func(t *testing.T) {
		blank := []value.Value{
			value.Absent(),
			of(nil),
			of(""),
			of(" "),
			of("\t"),
			of([]any{}),
			of(map[string]any{}),
		}
		for _, v := range blank {
			assert.EqualError(t, rule(v), "can't be blank", "value: %s", v)
		}
	})

	t.Run("present values pass", func(t *testing.T) {
		for _, v := range values("foo", 123, 0, true, false, []any{nil}, map[string]any{"key": "value"}) {
			assert.NoError(t, rule(v), "value: %s", v)
		}
	})

	t.Run("custom message", func(t *testing.T) {
		rule := rules.Presence(rules.WithMessage("is required"))
		assert.EqualError(t, rule(value.Absent()), "is required")
	})

	t.Run("empty custom message is still a failure", func(t *testing.T) {
		rule := rules.Presence(rules.WithMessage(""))
		err := rule(of(""))
		assert.Error(t, err)
		assert.Equal(t, "", rules.Message(err))
	})
}
