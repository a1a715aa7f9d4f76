package value

import (
	"encoding/json"
	"iter"
	"maps"
	"math"
	"slices"
	"strconv"
	"unicode/utf8"
)

// Kind identifies the variant held by a Value.
type Kind uint8

const (
	KindAbsent Kind = iota
	KindNull
	KindString
	KindNumber
	KindBool
	KindArray
	KindObject
)

func (k Kind) String() string {
	switch k {
	case KindAbsent:
		return "absent"
	case KindNull:
		return "null"
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindBool:
		return "bool"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return "unknown"
	}
}

// Value is an immutable tagged union. The zero Value is Absent.
type Value struct {
	kind   Kind
	str    string
	num    float64
	flag   bool
	items  []Value
	fields map[string]Value
}

// Absent returns the value of a missing field.
func Absent() Value { return Value{} }

// Null returns an explicit null.
func Null() Value { return Value{kind: KindNull} }

func String(s string) Value { return Value{kind: KindString, str: s} }

// Number wraps a float. NaN is accepted but is not classified as a number.
func Number(f float64) Value { return Value{kind: KindNumber, num: f} }

func Int(i int64) Value { return Value{kind: KindNumber, num: float64(i)} }

func Bool(b bool) Value { return Value{kind: KindBool, flag: b} }

// Array copies items into a new array value.
func Array(items ...Value) Value {
	return Value{kind: KindArray, items: slices.Clone(items)}
}

// Object copies fields into a new object value. A nil map yields an empty object.
func Object(fields map[string]Value) Value {
	cp := make(map[string]Value, len(fields))
	maps.Copy(cp, fields)
	return Value{kind: KindObject, fields: cp}
}

func (v Value) Kind() Kind { return v.kind }

func (v Value) Str() (string, bool) {
	return v.str, v.kind == KindString
}

func (v Value) Float() (float64, bool) {
	return v.num, v.kind == KindNumber
}

func (v Value) Boolean() (bool, bool) {
	return v.flag, v.kind == KindBool
}

// Items returns a copy of the array elements, or nil for non-arrays.
func (v Value) Items() []Value {
	if v.kind != KindArray {
		return nil
	}
	return slices.Clone(v.items)
}

// Elements iterates over array elements without copying them.
// It yields nothing for non-arrays.
func (v Value) Elements() iter.Seq2[int, Value] {
	return func(yield func(int, Value) bool) {
		if v.kind != KindArray {
			return
		}
		for i, item := range v.items {
			if !yield(i, item) {
				return
			}
		}
	}
}

// Fields returns a copy of the object fields, or nil for non-objects.
func (v Value) Fields() map[string]Value {
	if v.kind != KindObject {
		return nil
	}
	return maps.Clone(v.fields)
}

// Len returns the length of a string (in characters) or an array.
// The second result is false for every other kind.
func (v Value) Len() (int, bool) {
	switch v.kind {
	case KindString:
		return utf8.RuneCountInString(v.str), true
	case KindArray:
		return len(v.items), true
	default:
		return 0, false
	}
}

// Get looks up a key on an object value.
func (v Value) Get(key string) (Value, bool) {
	if v.kind != KindObject {
		return Value{}, false
	}
	f, ok := v.fields[key]
	return f, ok
}

// Equal reports deep equality. NaN is never equal to anything.
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case KindAbsent, KindNull:
		return true
	case KindString:
		return v.str == other.str
	case KindNumber:
		return v.num == other.num
	case KindBool:
		return v.flag == other.flag
	case KindArray:
		return slices.EqualFunc(v.items, other.items, Value.Equal)
	case KindObject:
		return maps.EqualFunc(v.fields, other.fields, Value.Equal)
	}
	return false
}

// Interface converts the value back to plain Go data: nil, string, float64,
// bool, []any or map[string]any. Absent and Null both become nil.
func (v Value) Interface() any {
	switch v.kind {
	case KindString:
		return v.str
	case KindNumber:
		return v.num
	case KindBool:
		return v.flag
	case KindArray:
		out := make([]any, len(v.items))
		for i, item := range v.items {
			out[i] = item.Interface()
		}
		return out
	case KindObject:
		out := make(map[string]any, len(v.fields))
		for k, f := range v.fields {
			out[k] = f.Interface()
		}
		return out
	default:
		return nil
	}
}

// String renders the value for messages: strings verbatim, numbers in their
// shortest exact form, arrays and objects as JSON.
func (v Value) String() string {
	switch v.kind {
	case KindAbsent:
		return "undefined"
	case KindNull:
		return "null"
	case KindString:
		return v.str
	case KindNumber:
		return formatNumber(v.num)
	case KindBool:
		return strconv.FormatBool(v.flag)
	default:
		b, err := json.Marshal(v.Interface())
		if err != nil {
			return v.kind.String()
		}
		return string(b)
	}
}

func (v Value) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.Interface())
}

func (v *Value) UnmarshalJSON(data []byte) error {
	parsed, err := ParseJSON(data)
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

func formatNumber(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}
