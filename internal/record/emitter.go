package record

import (
	"fmt"
	"sort"
	"strings"
	"unicode"
)

const (
	// DefaultTypeName is the name of the generated type when none is given.
	DefaultTypeName = "StringApp"
	// DefaultGenerator is the command named in the generated header.
	DefaultGenerator = "sheetkeys"
)

// Emitter renders fields as the source of one target language.
type Emitter interface {
	// Emit returns the complete generated file.
	Emit(fields []Field, opts Options) ([]byte, error)
	// Language returns the target name, e.g. "kotlin".
	Language() string
	// FileExtension returns the extension of generated files, e.g. ".kt".
	FileExtension() string
}

// Options carries the values that appear in the generated file besides the
// fields themselves.
type Options struct {
	// Namespace is the package the generated type is declared in.
	Namespace string
	// SourceID identifies the sheet the keys were read from.
	SourceID string
	// TypeName is the name of the generated type.
	TypeName string
	// Generator is the command that regenerates the file.
	Generator string
}

func (o Options) withDefaults() Options {
	if o.TypeName == "" {
		o.TypeName = DefaultTypeName
	}
	if o.Generator == "" {
		o.Generator = DefaultGenerator
	}
	return o
}

// commentText makes s safe inside a line or block comment of either target:
// control characters become spaces and "*/" cannot close the comment.
func commentText(s string) string {
	s = strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return ' '
		}
		return r
	}, s)
	return strings.ReplaceAll(s, "*/", "* /")
}

var emitters = map[string]Emitter{}

func register(e Emitter) {
	emitters[e.Language()] = e
}

func init() {
	register(Kotlin{})
	register(Go{})
}

// Languages returns the supported target names in sorted order.
func Languages() []string {
	ret := make([]string, 0, len(emitters))
	for l := range emitters {
		ret = append(ret, l)
	}
	sort.Strings(ret)
	return ret
}

// Lookup returns the Emitter for language.
func Lookup(language string) (Emitter, error) {
	e, ok := emitters[strings.ToLower(language)]
	if !ok {
		return nil, fmt.Errorf("unknown target %q: must be one of %s", language, strings.Join(Languages(), ", "))
	}
	return e, nil
}
