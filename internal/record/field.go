// Package record builds the field list of the generated type and renders it
// as source code for a target language.
package record

import "github.com/ajjensen13/sheetkeys/internal/ident"

// Field pairs a spreadsheet key with the member name declared for it.
type Field struct {
	// Key is the key exactly as it appears in the sheet. It is used
	// verbatim as the JSON name and as the default value.
	Key string
	// Name is the unique member name derived from Key.
	Name string
}

// Dedup returns keys without repeats, keeping the first occurrence of each.
func Dedup(keys []string) []string {
	seen := make(map[string]struct{}, len(keys))
	ret := make([]string, 0, len(keys))
	for _, k := range keys {
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		ret = append(ret, k)
	}
	return ret
}

// Build removes duplicate keys and assigns every remaining key a unique
// member name. Distinct keys that normalize to the same name are both kept
// and told apart by a numeric suffix.
func Build(keys []string) []Field {
	r := ident.NewResolver()
	for _, k := range Dedup(keys) {
		r.Assign(k)
	}

	fields := make([]Field, 0, r.Len())
	r.Each(func(name, raw string) {
		fields = append(fields, Field{Key: raw, Name: name})
	})
	return fields
}
