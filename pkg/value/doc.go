// Package value defines the permissive value model inspected by validation rules.
//
// A Value is an immutable tagged union of seven kinds: Absent, Null, String,
// Number, Bool, Array and Object. The zero Value is Absent, so a missing field
// and an uninitialised variable behave the same way.
//
// # Absence, blankness and type
//
// Three questions are kept apart on purpose:
//
//   - IsDefined reports whether a value exists at all (false for Absent and Null).
//   - IsBlank reports whether a value carries content. Empty or whitespace-only
//     strings, empty arrays and empty objects are blank yet defined. Numbers and
//     booleans are never blank, including 0 and false.
//   - IsString, IsNumber, IsInteger, IsBool, IsArray and IsObject classify the kind.
//     IsNumber excludes NaN and IsInteger accepts floats without a fractional
//     part, so 2.0 is an integer.
//
// # Building values
//
// Values are built with the kind constructors or converted from native Go data:
//
//	v := value.Object(map[string]value.Value{
//	    "name": value.String("Ada"),
//	    "tags": value.Array(value.String("admin")),
//	})
//
//	v, err := value.From(map[string]any{"age": 42})
//	v, err := value.ParseJSON([]byte(`{"age": 42}`))
//	v, err := value.ParseYAML([]byte("age: 42"))
//
// Constructors copy the slices and maps they receive, so a Value never shares
// memory with the caller and is safe to read from any number of goroutines.
package value
