// Package sheet reads the key column of a spreadsheet.
//
// Keys are taken from the first column, starting at the second row; the
// first row is treated as a header. Cells are trimmed and blank cells are
// skipped.
package sheet

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrNoKeys is returned when a sheet holds no usable keys.
var ErrNoKeys = errors.New("no valid keys found in the sheet")

// Source provides the raw keys of a sheet in row order.
type Source interface {
	Keys(ctx context.Context) ([]string, error)
}

// FirstColumn returns the trimmed, non-blank first cells of every row
// after the header.
func FirstColumn(rows [][]string) []string {
	if len(rows) < 2 {
		return nil
	}

	var keys []string
	for _, row := range rows[1:] {
		if len(row) == 0 {
			continue
		}
		if k := strings.TrimSpace(row[0]); k != "" {
			keys = append(keys, k)
		}
	}
	return keys
}

// keysFrom returns the keys of rows, or ErrNoKeys wrapped with what.
func keysFrom(rows [][]string, what string) ([]string, error) {
	keys := FirstColumn(rows)
	if len(keys) == 0 {
		return nil, fmt.Errorf("%s: %w", what, ErrNoKeys)
	}
	return keys, nil
}

// readCSV reads every record of r. Rows may have differing widths.
func readCSV(r io.Reader, comma rune) ([][]string, error) {
	cr := csv.NewReader(r)
	cr.Comma = comma
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse CSV: %w", err)
	}
	return rows, nil
}
