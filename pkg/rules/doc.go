// Package rules provides composable, declarative validation rules for values
// of the value package.
//
// A Rule is a plain function that inspects one value and returns nil on
// success or a ValidationError describing the failure. Rules are built once by
// factory functions that capture their configuration, then applied any number
// of times. They hold no mutable state and are safe for concurrent use.
//
// # Architecture
//
// Each source file groups a family of rules:
//
//   - presence_rules.go   – Presence
//   - numeric_rules.go    – Numericality
//   - length_rules.go     – Length
//   - choice_rules.go     – Inclusion
//   - pattern_rules.go    – Format, FormatString, MustFormat
//   - type_rules.go       – TypeOf
//   - collection_rules.go – Every, Dig, Field
//   - logic_rules.go      – Or
//
// RuleSet, All and Check sequence rules as a logical AND: rules run in order
// and the first failure is the result.
//
// # Absence and type mismatches
//
// Absent and null values pass every rule except Presence. Rules that only make
// sense for some kinds ignore the others: Numericality passes strings, Length
// passes numbers, Format passes non-strings and blank strings. Type checks are
// the job of TypeOf, which itself lets the empty string through so that blank
// input is reported by Presence alone.
//
// # Usage
//
//	age := rules.All(
//	    rules.Presence(),
//	    rules.TypeOf(rules.TypeInteger),
//	    rules.Numericality(rules.WithMin(18), rules.WithMax(130)),
//	)
//
//	nameOrFlag := rules.Or([]rules.RuleSet{
//	    {rules.TypeOf(rules.TypeString), rules.Length(rules.WithMin(3))},
//	    {rules.TypeOf(rules.TypeBoolean)},
//	})
//
//	nested := rules.Dig([]string{"profile", "age"}, rules.Presence(), age)
//
//	if err := nested(input); err != nil {
//	    fmt.Println(err) // "can't be blank"
//	}
//
// # Error Handling
//
// Every failure produced by this package is a ValidationError. It matches
// ErrValidationFailed with errors.Is and carries a TranslationKey together
// with TranslationValues, so messages can be rendered in another language
// without parsing the English text. Custom messages are set with WithMessage;
// Inclusion treats them as templates and substitutes {{values}} through
// Interpolate.
package rules
