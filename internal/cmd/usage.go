package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/ajjensen13/sheetkeys/internal/record"
)

const usageSampleSize = 3

// printUsage prints examples of consuming the generated type.
func printUsage(w io.Writer, cfg config, e record.Emitter, fields []record.Field) error {
	sample, err := sampleJSON(fields)
	if err != nil {
		return err
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, strings.Repeat("=", 60))
	fmt.Fprintln(w, "USAGE EXAMPLES")
	fmt.Fprintln(w, strings.Repeat("=", 60))

	switch e.Language() {
	case "go":
		printGoUsage(w, cfg, fields, sample)
	default:
		printKotlinUsage(w, cfg, fields, sample)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run this command again to regenerate:")
	fmt.Fprintf(w, "   sheetkeys -p %s -o %s --target %s\n", cfg.Package, cfg.OutputDir, e.Language())
	return nil
}

func printKotlinUsage(w io.Writer, cfg config, fields []record.Field, sample string) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, "1. Add to your build.gradle (app level):")
	fmt.Fprintln(w, "   dependencies {")
	fmt.Fprintln(w, "       implementation 'com.squareup.moshi:moshi:1.15.0'")
	fmt.Fprintln(w, "       implementation 'com.squareup.moshi:moshi-kotlin:1.15.0'")
	fmt.Fprintln(w, "       ksp 'com.squareup.moshi:moshi-kotlin-codegen:1.15.0'")
	fmt.Fprintln(w, "   }")

	fmt.Fprintln(w)
	fmt.Fprintln(w, "2. Import and use the generated data class:")
	fmt.Fprintf(w, "   import %s.%s\n", cfg.Package, cfg.TypeName)
	fmt.Fprintln(w, "   val moshi = Moshi.Builder().build()")
	fmt.Fprintf(w, "   val adapter = moshi.adapter(%s::class.java)\n", cfg.TypeName)
	fmt.Fprintln(w, "   val strings = adapter.fromJson(jsonString)")

	fmt.Fprintln(w)
	fmt.Fprintln(w, "3. Access properties:")
	printAccessors(w, fields, func(i int) string { return "strings?." + fields[i].Name })

	fmt.Fprintln(w)
	fmt.Fprintln(w, "4. Create JSON for testing:")
	fmt.Fprintln(w, `   val jsonString = """`)
	fmt.Fprintln(w, sample)
	fmt.Fprintln(w, `   """.trimIndent()`)
}

func printGoUsage(w io.Writer, cfg config, fields []record.Field, sample string) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, "1. Decode translations into the generated struct:")
	fmt.Fprintf(w, "   s := %s.Default%s()\n", record.GoPackageName(cfg.Package), cfg.TypeName)
	fmt.Fprintln(w, "   err := json.Unmarshal(data, &s)")

	fmt.Fprintln(w)
	fmt.Fprintln(w, "2. Access fields:")
	names := record.GoFieldNames(fields)
	printAccessors(w, fields, func(i int) string { return "s." + names[i] })

	fmt.Fprintln(w)
	fmt.Fprintln(w, "3. JSON for testing:")
	fmt.Fprintln(w, sample)
}

func printAccessors(w io.Writer, fields []record.Field, accessor func(i int) string) {
	for i, f := range fields {
		if i == usageSampleSize {
			fmt.Fprintf(w, "   // ... and %d more properties\n", len(fields)-usageSampleSize)
			break
		}
		fmt.Fprintf(w, "   // %q -> %s\n", f.Key, accessor(i))
	}
}

// sampleJSON renders a JSON object of the first few keys, in field order.
func sampleJSON(fields []record.Field) (string, error) {
	om := orderedmap.New[string, string]()
	for i, f := range fields {
		if i == usageSampleSize {
			break
		}
		om.Set(f.Key, "Value for "+f.Key)
	}

	b, err := json.MarshalIndent(om, "   ", "    ")
	if err != nil {
		return "", fmt.Errorf("failed to render sample JSON: %w", err)
	}
	return "   " + string(b), nil
}
