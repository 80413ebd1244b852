package record

import (
	"fmt"
	"strings"
)

// Kotlin renders a Moshi-annotated Kotlin data class.
type Kotlin struct{}

// Language implements Emitter.
func (Kotlin) Language() string { return "kotlin" }

// FileExtension implements Emitter.
func (Kotlin) FileExtension() string { return ".kt" }

// Emit implements Emitter. It never returns an error.
//
// Every field becomes a constructor property whose @Json name and default
// value are the key itself. The file ends with a comment mapping each key to
// its property, in field order.
//
// An empty field list yields a data class with no constructor parameters,
// which the Kotlin compiler rejects; callers are expected to refuse empty
// input before emitting.
func (Kotlin) Emit(fields []Field, opts Options) ([]byte, error) {
	opts = opts.withDefaults()

	lines := []string{
		"package " + opts.Namespace,
		"",
		"import com.squareup.moshi.Json",
		"import com.squareup.moshi.JsonClass",
		"",
		"/**",
		" * Auto-generated string constants data class",
		" * Generated from Google Sheets",
		" * Sheet ID: " + commentText(opts.SourceID),
		fmt.Sprintf(" * Total unique keys: %d", len(fields)),
		" *",
		" * DO NOT EDIT THIS FILE MANUALLY",
		" * Run " + commentText(opts.Generator) + " again to update",
		" */",
		"@JsonClass(generateAdapter = true)",
		"data class " + opts.TypeName + "(",
	}

	for i, f := range fields {
		key := kotlinString(f.Key)
		line := fmt.Sprintf(`    @Json(name = "%s") val %s: String = "%s"`, key, f.Name, key)
		if i < len(fields)-1 {
			line += ","
		}
		lines = append(lines, line)
	}

	lines = append(lines,
		")",
		"",
		"// Property mapping for reference:",
		"// Original Key -> Kotlin Property",
	)
	for _, f := range fields {
		lines = append(lines, fmt.Sprintf(`// "%s" -> %s`, kotlinString(f.Key), f.Name))
	}

	return []byte(strings.Join(lines, "\n")), nil
}

// kotlinString escapes s for use between the quotes of a Kotlin string
// literal. Keys without special characters are returned unchanged.
func kotlinString(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch r {
		case '\\':
			b.WriteString(`\\`)
		case '"':
			b.WriteString(`\"`)
		case '$':
			b.WriteString(`\$`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		case '\b':
			b.WriteString(`\b`)
		default:
			if r < 0x20 || r == 0x7f {
				fmt.Fprintf(&b, `\u%04x`, r)
				continue
			}
			b.WriteRune(r)
		}
	}
	return b.String()
}
