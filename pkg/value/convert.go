package value

import (
	"encoding/json"
	"fmt"
	"reflect"
	"time"
)

// From converts native Go data into a Value.
//
// Supported inputs are nil, Value, strings, booleans, every integer and float
// kind, json.Number, time.Time (rendered as RFC 3339), pointers to supported
// values, and slices, arrays and maps of supported values. Map keys are
// stringified with fmt. Anything else returns an error wrapping ErrUnsupportedType.
func From(x any) (Value, error) {
	switch t := x.(type) {
	case nil:
		return Null(), nil
	case Value:
		return t, nil
	case string:
		return String(t), nil
	case bool:
		return Bool(t), nil
	case int:
		return Int(int64(t)), nil
	case int64:
		return Int(t), nil
	case float64:
		return Number(t), nil
	case json.Number:
		f, err := t.Float64()
		if err != nil {
			return Value{}, fmt.Errorf("%w: json number %q: %w", ErrUnsupportedType, t.String(), err)
		}
		return Number(f), nil
	case time.Time:
		return String(t.Format(time.RFC3339Nano)), nil
	case []any:
		if t == nil {
			return Null(), nil
		}
		items := make([]Value, len(t))
		for i, item := range t {
			v, err := From(item)
			if err != nil {
				return Value{}, fmt.Errorf("index %d: %w", i, err)
			}
			items[i] = v
		}
		return Value{kind: KindArray, items: items}, nil
	case map[string]any:
		if t == nil {
			return Null(), nil
		}
		fields := make(map[string]Value, len(t))
		for k, item := range t {
			v, err := From(item)
			if err != nil {
				return Value{}, fmt.Errorf("key %q: %w", k, err)
			}
			fields[k] = v
		}
		return Value{kind: KindObject, fields: fields}, nil
	}
	return fromReflect(reflect.ValueOf(x))
}

// MustFrom is like From but panics on unsupported input.
func MustFrom(x any) Value {
	v, err := From(x)
	if err != nil {
		panic(fmt.Sprintf("value: %v", err))
	}
	return v
}

func fromReflect(rv reflect.Value) (Value, error) {
	switch rv.Kind() {
	case reflect.Invalid:
		return Null(), nil
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return Null(), nil
		}
		return From(rv.Elem().Interface())
	case reflect.String:
		return String(rv.String()), nil
	case reflect.Bool:
		return Bool(rv.Bool()), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return Int(rv.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return Number(float64(rv.Uint())), nil
	case reflect.Float32, reflect.Float64:
		return Number(rv.Float()), nil
	case reflect.Slice:
		if rv.IsNil() {
			return Null(), nil
		}
		fallthrough
	case reflect.Array:
		items := make([]Value, rv.Len())
		for i := range items {
			v, err := From(rv.Index(i).Interface())
			if err != nil {
				return Value{}, fmt.Errorf("index %d: %w", i, err)
			}
			items[i] = v
		}
		return Value{kind: KindArray, items: items}, nil
	case reflect.Map:
		if rv.IsNil() {
			return Null(), nil
		}
		fields := make(map[string]Value, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			key := fmt.Sprint(iter.Key().Interface())
			v, err := From(iter.Value().Interface())
			if err != nil {
				return Value{}, fmt.Errorf("key %q: %w", key, err)
			}
			fields[key] = v
		}
		return Value{kind: KindObject, fields: fields}, nil
	}
	return Value{}, fmt.Errorf("%w: %s", ErrUnsupportedType, rv.Type())
}
