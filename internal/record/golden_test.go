package record

import (
	"bytes"
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/tools/txtar"
)

var writeGolden = flag.Bool("write-golden", false, "If true, rewrites the want.kt files in testdata/*.txtar")

// goldenCase is one testdata archive. The archive comment holds
// "name: value" options; the "keys" file holds one raw key per line.
type goldenCase struct {
	archive *txtar.Archive
	opts    Options
	keys    []string
	want    *txtar.File
}

func parseGoldenCase(t *testing.T, path string) goldenCase {
	t.Helper()

	archive, err := txtar.ParseFile(path)
	if err != nil {
		t.Fatalf("failed to parse %s: %v", path, err)
	}

	gc := goldenCase{archive: archive}
	for _, line := range strings.Split(string(archive.Comment), "\n") {
		name, value, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		value = strings.TrimSpace(value)
		switch strings.TrimSpace(name) {
		case "namespace":
			gc.opts.Namespace = value
		case "source":
			gc.opts.SourceID = value
		case "type":
			gc.opts.TypeName = value
		}
	}

	for i := range archive.Files {
		file := &archive.Files[i]
		switch file.Name {
		case "keys":
			data := strings.TrimSuffix(string(file.Data), "\n")
			if data != "" {
				gc.keys = strings.Split(data, "\n")
			}
		case "want.kt":
			gc.want = file
		}
	}

	if gc.want == nil {
		t.Fatalf("%s has no want.kt file", path)
	}
	return gc
}

func TestKotlin_Golden(t *testing.T) {
	paths, err := filepath.Glob("testdata/*.txtar")
	if err != nil {
		t.Fatalf("failed to find txtar files: %v", err)
	}
	if len(paths) == 0 {
		t.Skip("no txtar files found")
	}

	for _, path := range paths {
		path := path
		t.Run(filepath.Base(path), func(t *testing.T) {
			gc := parseGoldenCase(t, path)

			got, err := Kotlin{}.Emit(Build(gc.keys), gc.opts)
			if err != nil {
				t.Fatalf("Emit() error = %v", err)
			}
			got = append(got, '\n')

			if *writeGolden {
				gc.want.Data = got
				if err := os.WriteFile(path, txtar.Format(gc.archive), 0o644); err != nil {
					t.Fatal(err)
				}
				return
			}

			if diff := cmp.Diff(string(gc.want.Data), string(got)); diff != "" {
				t.Errorf("Emit() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestKotlin_Deterministic(t *testing.T) {
	keys := []string{"zeta", "alpha", "Alpha", "m-i-d", "class", "9lives"}

	first, _ := Kotlin{}.Emit(Build(keys), Options{Namespace: "pkg.name", SourceID: "sheet123"})
	for i := 0; i < 20; i++ {
		again, _ := Kotlin{}.Emit(Build(keys), Options{Namespace: "pkg.name", SourceID: "sheet123"})
		if !bytes.Equal(first, again) {
			t.Fatalf("run %d differs:\n%s", i, cmp.Diff(string(first), string(again)))
		}
	}
}
