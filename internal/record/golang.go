package record

import (
	"bytes"
	"fmt"
	"go/token"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/dave/jennifer/jen"
)

// Go renders a Go struct with encoding/json tags and a constructor that
// fills every field with its key.
type Go struct{}

// Language implements Emitter.
func (Go) Language() string { return "go" }

// FileExtension implements Emitter.
func (Go) FileExtension() string { return ".go" }

// Emit implements Emitter.
//
// Keys containing a comma or a quote are written to the tag verbatim, but
// encoding/json cannot use them as names; the constructor still carries them.
func (Go) Emit(fields []Field, opts Options) ([]byte, error) {
	opts = opts.withDefaults()
	names := GoFieldNames(fields)
	ctor := "Default" + opts.TypeName

	f := jen.NewFile(GoPackageName(opts.Namespace))
	f.HeaderComment(fmt.Sprintf("Code generated by %s; DO NOT EDIT.", commentText(opts.Generator)))

	f.Commentf("%s holds string constants generated from Google Sheets.", opts.TypeName)
	f.Comment("")
	f.Commentf("Sheet ID: %s", commentText(opts.SourceID))
	f.Commentf("Total unique keys: %d", len(fields))
	f.Type().Id(opts.TypeName).StructFunc(func(g *jen.Group) {
		for i, fd := range fields {
			g.Id(names[i]).String().Tag(map[string]string{"json": fd.Key})
		}
	})

	f.Line()
	f.Commentf("%s returns a %s whose fields hold their own keys.", ctor, opts.TypeName)
	f.Func().Id(ctor).Params().Id(opts.TypeName).Block(
		jen.Return(jen.Id(opts.TypeName).Values(jen.DictFunc(func(d jen.Dict) {
			for i, fd := range fields {
				d[jen.Id(names[i])] = jen.Lit(fd.Key)
			}
		}))),
	)

	f.Line()
	f.Comment("Property mapping for reference:")
	f.Comment("Original Key -> Go Field")
	for i, fd := range fields {
		f.Commentf("%s -> %s", strconv.Quote(fd.Key), names[i])
	}

	var buf bytes.Buffer
	if err := f.Render(&buf); err != nil {
		return nil, fmt.Errorf("failed to render %s: %w", opts.TypeName, err)
	}
	return buf.Bytes(), nil
}

// GoFieldNames returns the Go field name of every field. Names are
// exported forms of Field.Name, suffixed when two of them coincide.
func GoFieldNames(fields []Field) []string {
	ret := make([]string, len(fields))
	used := make(map[string]bool, len(fields))
	for i, fd := range fields {
		base := exportedName(fd.Name)
		name := base
		for n := 1; used[name]; n++ {
			name = base + strconv.Itoa(n)
		}
		used[name] = true
		ret[i] = name
	}
	return ret
}

// exportedName returns s with its first rune upper-cased. Names whose first
// rune has no upper-case form are prefixed with "X".
func exportedName(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return "X"
	}

	up := unicode.ToUpper(r)
	if !unicode.IsUpper(up) {
		return "X" + s
	}
	return string(up) + s[size:]
}

// GoPackageName derives a package name from the last segment of a dotted or
// slashed namespace.
func GoPackageName(namespace string) string {
	if i := strings.LastIndexAny(namespace, "./"); i >= 0 {
		namespace = namespace[i+1:]
	}

	name := strings.Map(func(r rune) rune {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			return unicode.ToLower(r)
		case r == '_':
			return r
		}
		return -1
	}, namespace)

	if name == "" {
		return "generated"
	}
	if r, _ := utf8.DecodeRuneInString(name); unicode.IsDigit(r) {
		name = "p" + name
	}
	if token.IsKeyword(name) {
		name = "_" + name
	}
	return name
}
