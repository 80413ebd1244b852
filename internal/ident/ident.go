// Package ident turns free-form spreadsheet keys into member names that can
// be declared in generated code.
//
// Normalization is a total function: every input, including the empty
// string, yields a non-empty name that starts with a lower-case letter,
// contains only letters and digits, and is not a reserved word.
package ident

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Fallback is the name used for keys that normalize to nothing.
const Fallback = "defaultKey"

// Kind describes which rule decided the outcome of Classify.
type Kind int

const (
	// Plain names are the camel-case join of the key's words.
	Plain Kind = iota
	// Blank keys were empty after trimming whitespace.
	Blank
	// Degenerate keys held only delimiters or punctuation.
	Degenerate
	// DigitPrefixed names started with a digit and were prefixed with "key".
	DigitPrefixed
	// Reserved names matched a keyword and were suffixed with "Value".
	Reserved
	// Uncased names started with a letter that has no lower-case form and
	// were prefixed with "key".
	Uncased
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case Plain:
		return "plain"
	case Blank:
		return "blank"
	case Degenerate:
		return "degenerate"
	case DigitPrefixed:
		return "digit-prefixed"
	case Reserved:
		return "reserved"
	case Uncased:
		return "uncased"
	}
	return "unknown"
}

// Result is the outcome of normalizing one key.
type Result struct {
	Name string
	Kind Kind
}

// Normalize returns the member name for raw. It does not resolve collisions;
// see Resolver for that.
func Normalize(raw string) string {
	return Classify(raw).Name
}

// Classify normalizes raw and reports which rule produced the name.
func Classify(raw string) Result {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return Result{Name: Fallback, Kind: Blank}
	}

	words := fragments(trimmed)
	if len(words) == 0 {
		return Result{Name: Fallback, Kind: Degenerate}
	}

	var b strings.Builder
	b.WriteString(lower(words[0]))
	for _, w := range words[1:] {
		b.WriteString(upperFirst(w))
	}
	name := b.String()

	kind := Plain
	switch r, _ := utf8.DecodeRuneInString(name); {
	case unicode.IsDigit(r):
		name = "key" + capitalize(name)
		kind = DigitPrefixed
	case !unicode.IsLower(r):
		name = "key" + capitalize(name)
		kind = Uncased
	}

	if IsReserved(name) {
		name += "Value"
		kind = Reserved
	}

	if name == "" {
		return Result{Name: Fallback, Kind: Degenerate}
	}

	return Result{Name: name, Kind: kind}
}

// isDelimiter reports whether r separates words in a key.
func isDelimiter(r rune) bool {
	return r == '_' || r == '-' || r == '.' || unicode.IsSpace(r)
}

// fragments splits s into words, keeping only letters and digits of each
// word and dropping words left empty.
func fragments(s string) []string {
	var ret []string
	for _, f := range strings.FieldsFunc(s, isDelimiter) {
		f = strings.Map(func(r rune) rune {
			if unicode.IsLetter(r) || unicode.IsDigit(r) {
				return r
			}
			return -1
		}, f)

		if f != "" {
			ret = append(ret, f)
		}
	}
	return ret
}

// lower maps every rune of s to lower case one rune at a time, so the
// result never gains combining marks.
func lower(s string) string {
	return strings.Map(unicode.ToLower, s)
}

// upperFirst upper-cases the first rune of s and leaves the rest unchanged.
func upperFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

// capitalize upper-cases the first rune of s and lower-cases the rest.
func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}
	return string(unicode.ToUpper(r)) + lower(s[size:])
}
