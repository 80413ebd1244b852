package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/iancoleman/strcase"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/ajjensen13/sheetkeys/internal/record"
)

const (
	stdoutName = "<STDOUT>"
	stderrName = "<STDERR>"
)

func Execute() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// newRootCmd returns the base command. Every call returns a fresh command
// with its own flag set.
func newRootCmd() *cobra.Command {
	cfg := defaultConfig()

	cmd := &cobra.Command{
		Use:   "sheetkeys",
		Short: "Generate a string constants type from a Google Sheets key column",
		Long: `Generate a string constants type from a Google Sheets key column.

sheetkeys reads the first column of a sheet (skipping the header row) and writes
a source file declaring one type with a string property per key. Each property
is annotated with the key as its JSON name and defaults to the key itself.

Flags not given on the command line are looked up in the environment. A .env
file in the working directory is loaded first.`,
		Example: `  sheetkeys -p com.myapp.package -o src/main/kotlin
  sheetkeys --package com.example.app --output-dir app/src/main/java
  sheetkeys -s 1ABC123xyz -p com.myapp -o generated/kotlin
  sheetkeys --input strings.xlsx --target go -p example -o . -f <STDOUT>`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			envFile, _ := cmd.Flags().GetString("env-file")
			return loadEnvFile(envFile)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cfg.resolve(cmd.Flags()); err != nil {
				return err
			}
			return run(cmd, cfg)
		},
	}

	fs := cmd.Flags()
	fs.StringVarP(&cfg.Package, "package", "p", cfg.Package, "package name for the generated type. Falls back to $SHEETKEYS_PACKAGE")
	fs.StringVarP(&cfg.OutputDir, "output-dir", "o", cfg.OutputDir, "output directory for the generated file. Falls back to $SHEETKEYS_OUTPUT_DIR")
	fs.StringVarP(&cfg.SheetID, "sheet-id", "s", cfg.SheetID, "Google Sheets id. Falls back to $SHEETKEYS_SHEET_ID")
	fs.StringVarP(&cfg.GID, "gid", "g", cfg.GID, "sheet tab id used by the CSV export. Falls back to $SHEETKEYS_GID")
	fs.StringVarP(&cfg.Filename, "filename", "f", "", "output file name. Defaults to the type name plus the target's extension. As a special case, <STDOUT> writes to standard output")
	fs.StringVarP(&cfg.TypeName, "type", "t", cfg.TypeName, "name of the generated type")
	fs.StringVar(&cfg.Target, "target", cfg.Target, fmt.Sprintf("language of the generated file, one of %s. Falls back to $SHEETKEYS_TARGET", strings.Join(record.Languages(), ", ")))
	fs.StringVarP(&cfg.Input, "input", "i", "", "read keys from a local .csv, .tsv or .xlsx file instead of Google Sheets")
	fs.StringVar(&cfg.Worksheet, "worksheet", "", "worksheet of the --input workbook. Defaults to the first worksheet")
	fs.StringVar(&cfg.Credentials, "credentials", "", "credentials file for the Google Sheets API. Falls back to $SHEETKEYS_CREDENTIALS")
	fs.StringVar(&cfg.APIKey, "api-key", "", "API key for the Google Sheets API. Falls back to $SHEETKEYS_API_KEY")
	fs.StringVar(&cfg.Range, "range", cfg.Range, "A1 range holding the keys when the Google Sheets API is used")
	fs.DurationVar(&cfg.Timeout, "timeout", cfg.Timeout, "time limit for downloading the sheet")
	fs.BoolVar(&cfg.CopyToCwd, "copy-to-cwd", cfg.CopyToCwd, "also write the generated file to the current directory")
	fs.BoolVarP(&cfg.Quiet, "quiet", "q", false, "do not print progress or usage examples")
	fs.String("env-file", ".env", "environment file loaded before flags are resolved")

	return cmd
}

// loadEnvFile loads name into the environment. A missing file is not an
// error; variables already set are left alone.
func loadEnvFile(name string) error {
	if name == "" {
		return nil
	}
	if err := godotenv.Load(name); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to load %s: %w", name, err)
	}
	return nil
}

// run fetches the keys, renders them and persists the result.
func run(cmd *cobra.Command, cfg config) error {
	emitter, err := record.Lookup(cfg.Target)
	if err != nil {
		return err
	}

	filename := cfg.Filename
	if filename == "" {
		filename = defaultFilename(cfg.TypeName, emitter)
	}

	src := cfg.source()
	progress := progressWriter(cmd, cfg)
	fmt.Fprintln(progress, "Starting string constants generator")
	fmt.Fprintf(progress, "Package: %s\n", cfg.Package)
	fmt.Fprintf(progress, "Source: %s (%s)\n", cfg.sourceID(), cfg.describeSource())
	fmt.Fprintf(progress, "Output: %s\n", filepath.Join(cfg.OutputDir, filename))
	fmt.Fprintln(progress, strings.Repeat("-", 50))

	ctx, cancel := context.WithTimeout(cmd.Context(), cfg.Timeout)
	defer cancel()

	keys, err := src.Keys(ctx)
	if err != nil {
		return fmt.Errorf("no keys found or failed to download data: %w\n\n%s", err, cfg.troubleshooting())
	}
	fmt.Fprintf(progress, "Found %d total keys\n", len(keys))

	fields := record.Build(keys)
	code, err := emitter.Emit(fields, record.Options{
		Namespace: cfg.Package,
		SourceID:  cfg.sourceID(),
		TypeName:  cfg.TypeName,
		Generator: "sheetkeys",
	})
	if err != nil {
		return err
	}

	written, err := persist(cmd, cfg, filename, code)
	if err != nil {
		return err
	}
	for _, p := range written {
		fmt.Fprintf(progress, "Generated %s\n", p)
	}

	if !cfg.Quiet && filename != stdoutName {
		if err := printUsage(cmd.OutOrStdout(), cfg, emitter, fields); err != nil {
			return err
		}
	}

	fmt.Fprintf(progress, "Successfully generated %s with %d unique properties\n", filename, len(fields))
	return nil
}

// progressWriter returns where progress lines go.
func progressWriter(cmd *cobra.Command, cfg config) io.Writer {
	if cfg.Quiet {
		return io.Discard
	}
	return cmd.ErrOrStderr()
}

// defaultFilename returns the file name used when --filename is not given.
func defaultFilename(typeName string, e record.Emitter) string {
	if typeName == "" {
		typeName = record.DefaultTypeName
	}
	if e.Language() == "go" {
		return strcase.ToSnake(typeName) + e.FileExtension()
	}
	return typeName + e.FileExtension()
}

// persist writes code to the output directory and, if requested, to the
// current directory. It returns the paths written.
func persist(cmd *cobra.Command, cfg config, filename string, code []byte) ([]string, error) {
	if filename == stdoutName || filename == stderrName {
		return nil, writeOutput(cmd, filename, code)
	}

	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		return nil, fmt.Errorf("error creating directory %s: %w", cfg.OutputDir, err)
	}

	target := filepath.Join(cfg.OutputDir, filename)
	if err := writeOutput(cmd, target, code); err != nil {
		return nil, err
	}
	written := []string{target}

	if cfg.CopyToCwd && !samePath(target, filename) {
		if err := writeOutput(cmd, filename, code); err != nil {
			return written, err
		}
		written = append(written, filename)
	}
	return written, nil
}

func writeOutput(cmd *cobra.Command, name string, code []byte) error {
	out, closeFn, err := openOutputFile(cmd, name)
	if err != nil {
		return fmt.Errorf("error writing %s: %w", name, err)
	}

	if _, err := out.Write(code); err != nil {
		_ = closeFn()
		return fmt.Errorf("error writing %s: %w", name, err)
	}
	if err := closeFn(); err != nil {
		return fmt.Errorf("error writing %s: %w", name, err)
	}
	return nil
}

// resolveParameterValue returns the parameter value from f if it was specified
// by the user. Otherwise, if env is not empty, it looks up the value from the
// environment variable named env.
func resolveParameterValue(f *pflag.Flag, env string) (string, bool) {
	if f.Changed {
		return f.Value.String(), true
	}

	if env != "" {
		if v, ok := os.LookupEnv(env); ok {
			return v, true
		}
	}

	return f.DefValue, false
}

// openOutputFile opens/creates the file to write the output to.
// The returned func is the function to use to "close" the file.
func openOutputFile(cmd *cobra.Command, name string) (io.Writer, func() error, error) {
	switch name {
	case stdoutName:
		return cmd.OutOrStdout(), func() error { return nil }, nil
	case stderrName:
		return cmd.ErrOrStderr(), func() error { return nil }, nil
	default:
		ret, err := os.Create(name)
		if err != nil {
			return nil, nil, err
		}
		return ret, ret.Close, nil
	}
}

// samePath reports whether a and b name the same location.
func samePath(a, b string) bool {
	aa, err := filepath.Abs(a)
	if err != nil {
		return false
	}
	bb, err := filepath.Abs(b)
	if err != nil {
		return false
	}
	return aa == bb
}
