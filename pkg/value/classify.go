package value

import (
	"math"
	"strings"
	"unicode"
)

// IsDefined is false iff the value is Absent or Null.
func (v Value) IsDefined() bool {
	return v.kind != KindAbsent && v.kind != KindNull
}

// IsBlank reports whether the value carries no content.
func (v Value) IsBlank() bool {
	switch v.kind {
	case KindAbsent, KindNull:
		return true
	case KindString:
		return strings.TrimFunc(v.str, unicode.IsSpace) == ""
	case KindNumber:
		// NaN is not a number, so it has nothing to show.
		return math.IsNaN(v.num)
	case KindBool:
		return false
	case KindArray:
		return len(v.items) == 0
	case KindObject:
		return len(v.fields) == 0
	}
	return true
}

func (v Value) IsString() bool { return v.kind == KindString }

// IsNumber is true for every number except NaN.
func (v Value) IsNumber() bool {
	return v.kind == KindNumber && !math.IsNaN(v.num)
}

// IsInteger accepts any number without a fractional part, including 2.0.
func (v Value) IsInteger() bool {
	return v.IsNumber() && math.Mod(v.num, 1) == 0
}

func (v Value) IsBool() bool { return v.kind == KindBool }

func (v Value) IsArray() bool { return v.kind == KindArray }

func (v Value) IsObject() bool { return v.kind == KindObject }
