// Package example shows the Go target of sheetkeys. string_app.go is
// generated from keys.csv.
package example

//go:generate go run github.com/ajjensen13/sheetkeys --input keys.csv --target go -p example -o . --copy-to-cwd=false -q
