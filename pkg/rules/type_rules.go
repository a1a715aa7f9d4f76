package rules

import (
	"fmt"

	"github.com/dmitrymomot/rulekit/pkg/value"
)

// Type names a kind checked by TypeOf.
type Type string

const (
	TypeString  Type = "string"
	TypeNumber  Type = "number"
	TypeInteger Type = "integer"
	TypeBoolean Type = "boolean"
	TypeArray   Type = "array"
	TypeObject  Type = "object"
)

func (t Type) matches(v value.Value) bool {
	switch t {
	case TypeString:
		return v.IsString()
	case TypeNumber:
		return v.IsNumber()
	case TypeInteger:
		return v.IsInteger()
	case TypeBoolean:
		return v.IsBool()
	case TypeArray:
		return v.IsArray()
	case TypeObject:
		return v.IsObject()
	}
	return false
}

func (t Type) article() string {
	switch t {
	case TypeInteger, TypeArray, TypeObject:
		return "an"
	}
	return "a"
}

// TypeOf fails for defined values that are not of type t. The empty string
// passes for every type; emptiness is left to Presence and Length.
func TypeOf(t Type, opts ...Option) Rule {
	message := buildOptions(opts).messageOr(fmt.Sprintf("is not %s %s", t.article(), t))
	return func(v value.Value) error {
		if !v.IsDefined() || isEmptyString(v) || t.matches(v) {
			return nil
		}
		return fail("validation.type", message, map[string]any{"type": string(t)})
	}
}

func isEmptyString(v value.Value) bool {
	s, ok := v.Str()
	return ok && s == ""
}
