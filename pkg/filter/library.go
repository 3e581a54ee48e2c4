package filter

import (
	"strings"
	"unicode"

	"github.com/goliatone/go-stache/pkg/value"
)

// Ready-made filters mirroring the standard library most Mustache engines
// ship. All of them operate on the display-string form of their argument, so
// they accept any variant.

// Uppercase maps the display string to upper case.
var Uppercase = Func(func(v value.Value) (value.Value, error) {
	return value.BoxString(strings.ToUpper(v.String())), nil
})

// Lowercase maps the display string to lower case.
var Lowercase = Func(func(v value.Value) (value.Value, error) {
	return value.BoxString(strings.ToLower(v.String())), nil
})

// Capitalized upper-cases the first letter of every word and lower-cases the
// rest.
var Capitalized = Func(func(v value.Value) (value.Value, error) {
	var sb strings.Builder
	startOfWord := true
	for _, r := range v.String() {
		switch {
		case unicode.IsSpace(r):
			startOfWord = true
			sb.WriteRune(r)
		case startOfWord:
			startOfWord = false
			sb.WriteRune(unicode.ToUpper(r))
		default:
			sb.WriteRune(unicode.ToLower(r))
		}
	}
	return value.BoxString(sb.String()), nil
})

// IsEmpty reports whether the argument is the empty value.
var IsEmpty = Func(func(v value.Value) (value.Value, error) {
	return value.BoxBool(v.Kind() == value.KindEmpty), nil
})

// IsBlank reports whether the argument is empty or displays as whitespace
// only.
var IsBlank = Func(func(v value.Value) (value.Value, error) {
	if v.Kind() == value.KindEmpty {
		return value.BoxBool(true), nil
	}
	return value.BoxBool(strings.TrimSpace(v.String()) == ""), nil
})

// Count returns the element count of a collection argument and Empty for
// anything that has no count.
var Count = Func(func(v value.Value) (value.Value, error) {
	switch v.Kind() {
	case value.KindSequence, value.KindSet:
		return v.Key("count"), nil
	case value.KindMapping:
		m, _ := v.AsMap()
		return value.BoxInt(int64(len(m))), nil
	default:
		return value.Empty(), nil
	}
})
