package ident

import (
	"sort"
	"strings"
)

// reserved holds the keywords of the declaration language that cannot be
// used as property names.
var reserved = map[string]struct{}{
	"class": {}, "fun": {}, "val": {}, "var": {}, "if": {}, "else": {},
	"when": {}, "for": {}, "while": {}, "do": {}, "try": {}, "catch": {},
	"finally": {}, "throw": {}, "return": {}, "break": {}, "continue": {},
	"object": {}, "interface": {}, "package": {}, "import": {}, "as": {},
	"is": {}, "in": {}, "out": {}, "by": {}, "where": {}, "init": {},
	"constructor": {}, "this": {}, "super": {}, "null": {}, "true": {},
	"false": {},
}

// IsReserved reports whether name, compared case-insensitively, is a
// reserved word.
func IsReserved(name string) bool {
	_, ok := reserved[strings.ToLower(name)]
	return ok
}

// ReservedWords returns the reserved words in sorted order.
func ReservedWords() []string {
	ret := make([]string, 0, len(reserved))
	for w := range reserved {
		ret = append(ret, w)
	}
	sort.Strings(ret)
	return ret
}
