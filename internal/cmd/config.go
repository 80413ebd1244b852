package cmd

import (
	"errors"
	"fmt"
	"go/token"
	"strings"
	"time"

	"github.com/spf13/pflag"

	"github.com/ajjensen13/sheetkeys/internal/ident"
	"github.com/ajjensen13/sheetkeys/internal/record"
	"github.com/ajjensen13/sheetkeys/internal/sheet"
)

const (
	defaultSheetID   = "1x7XMEJYv6jVppuA3fV-Srp5OmyrCgdl8w1m0ETsxzxw"
	defaultGID       = "0"
	defaultPackage   = "com.example.myapplication"
	defaultOutputDir = "build/generated/source/buildConfig/debug"
	defaultTimeout   = 30 * time.Second
)

// config holds the resolved settings of one run.
type config struct {
	Package   string
	OutputDir string
	SheetID   string
	GID       string
	Filename  string
	TypeName  string
	Target    string

	Input     string
	Worksheet string

	Credentials string
	APIKey      string
	Range       string

	Timeout   time.Duration
	CopyToCwd bool
	Quiet     bool
}

func defaultConfig() config {
	return config{
		Package:   defaultPackage,
		OutputDir: defaultOutputDir,
		SheetID:   defaultSheetID,
		GID:       defaultGID,
		TypeName:  record.DefaultTypeName,
		Target:    "kotlin",
		Range:     sheet.DefaultRange,
		Timeout:   defaultTimeout,
		CopyToCwd: true,
	}
}

// envFlags maps flags to the environment variables consulted when the flag
// is not given.
var envFlags = []struct {
	flag string
	env  string
}{
	{"package", "SHEETKEYS_PACKAGE"},
	{"output-dir", "SHEETKEYS_OUTPUT_DIR"},
	{"sheet-id", "SHEETKEYS_SHEET_ID"},
	{"gid", "SHEETKEYS_GID"},
	{"filename", "SHEETKEYS_FILENAME"},
	{"target", "SHEETKEYS_TARGET"},
	{"credentials", "SHEETKEYS_CREDENTIALS"},
	{"api-key", "SHEETKEYS_API_KEY"},
}

// resolve fills unset flags from the environment and validates the result.
func (c *config) resolve(fs *pflag.FlagSet) error {
	for _, ef := range envFlags {
		f := fs.Lookup(ef.flag)
		if f == nil || f.Changed {
			continue
		}
		if v, ok := resolveParameterValue(f, ef.env); ok {
			if err := f.Value.Set(v); err != nil {
				return fmt.Errorf("invalid $%s: %w", ef.env, err)
			}
		}
	}

	return c.validate()
}

func (c *config) validate() error {
	if _, err := record.Lookup(c.Target); err != nil {
		return err
	}
	c.Target = strings.ToLower(c.Target)

	if !token.IsIdentifier(c.TypeName) || token.IsKeyword(c.TypeName) || ident.IsReserved(c.TypeName) {
		return fmt.Errorf("invalid type name %q", c.TypeName)
	}
	if c.Package == "" {
		return errors.New("package name is required")
	}
	if c.OutputDir == "" {
		c.OutputDir = "."
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive, got %s", c.Timeout)
	}
	return nil
}

// source returns where keys are read from: a local file, the Sheets API
// when credentials are configured, or the public CSV export.
func (c config) source() sheet.Source {
	switch {
	case c.Input != "":
		return sheet.FileSource{Path: c.Input, Sheet: c.Worksheet}
	case c.Credentials != "" || c.APIKey != "":
		return sheet.APISource{SheetID: c.SheetID, Range: c.Range, CredentialsFile: c.Credentials, APIKey: c.APIKey}
	default:
		return sheet.ExportSource{SheetID: c.SheetID, GID: c.GID}
	}
}

// describeSource names the kind of source chosen by source.
func (c config) describeSource() string {
	switch {
	case c.Input != "":
		return "local file"
	case c.Credentials != "":
		return "Google Sheets API (credentials file)"
	case c.APIKey != "":
		return "Google Sheets API (API key)"
	default:
		return "public CSV export"
	}
}

// sourceID identifies the key source in the generated file.
func (c config) sourceID() string {
	if c.Input != "" {
		return c.Input
	}
	return c.SheetID
}

// troubleshooting returns hints printed when no keys could be read.
func (c config) troubleshooting() string {
	var b strings.Builder
	b.WriteString("Troubleshooting:\n")
	if c.Input != "" {
		b.WriteString("   1. Check that the file exists and is a .csv, .tsv or .xlsx file\n")
		b.WriteString("   2. Ensure the first column contains your string keys below a header row\n")
		fmt.Fprintf(&b, "\n   Current input: %s", c.Input)
		return b.String()
	}
	b.WriteString("   1. Check if the Google Sheet is publicly accessible\n")
	b.WriteString("   2. Verify the sheet id is correct\n")
	b.WriteString("   3. Ensure the first column contains your string keys\n")
	b.WriteString("   4. Check your internet connection\n")
	fmt.Fprintf(&b, "\n   Current Sheet URL: %s", sheet.ExportSource{SheetID: c.SheetID}.ViewURL())
	return b.String()
}
