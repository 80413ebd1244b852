package sheet

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

// FileSource reads keys from a local .csv, .tsv or Excel workbook.
type FileSource struct {
	Path string
	// Sheet names the worksheet of a workbook. The first worksheet is used
	// when empty.
	Sheet string
}

// Keys implements Source.
func (s FileSource) Keys(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var rows [][]string
	var err error
	switch ext := strings.ToLower(filepath.Ext(s.Path)); ext {
	case ".csv":
		rows, err = s.readDelimited(',')
	case ".tsv":
		rows, err = s.readDelimited('\t')
	case ".xlsx", ".xlsm", ".xltx", ".xltm":
		rows, err = s.readWorkbook()
	default:
		return nil, fmt.Errorf("unsupported file type %q: expected .csv, .tsv or .xlsx", ext)
	}
	if err != nil {
		return nil, err
	}

	return keysFrom(rows, s.Path)
}

func (s FileSource) readDelimited(comma rune) ([][]string, error) {
	f, err := os.Open(s.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", s.Path, err)
	}
	defer f.Close()

	return readCSV(f, comma)
}

func (s FileSource) readWorkbook() ([][]string, error) {
	f, err := excelize.OpenFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook %s: %w", s.Path, err)
	}
	defer f.Close()

	name := s.Sheet
	if name == "" {
		list := f.GetSheetList()
		if len(list) == 0 {
			return nil, fmt.Errorf("workbook %s has no worksheets", s.Path)
		}
		name = list[0]
	}

	rows, err := f.GetRows(name)
	if err != nil {
		return nil, fmt.Errorf("failed to read worksheet %q: %w", name, err)
	}
	return rows, nil
}
