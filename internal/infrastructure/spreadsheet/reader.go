package spreadsheet

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"
)

var ErrNoSheet = errors.New("workbook has no sheets")

// Table is the first sheet of a workbook split into header and data rows.
// Rows are padded to the header width so columns can be read by index.
type Table struct {
	Sheet  string
	Header []string
	Rows   [][]string
}

func ReadFile(path string) (Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return Table{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return readFirstSheet(f)
}

func Read(r io.Reader) (Table, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return Table{}, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()
	return readFirstSheet(f)
}

func readFirstSheet(f *excelize.File) (Table, error) {
	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return Table{}, ErrNoSheet
	}
	sheet := sheets[0]

	rows, err := f.Rows(sheet)
	if err != nil {
		return Table{}, fmt.Errorf("read sheet %s: %w", sheet, err)
	}
	defer rows.Close()

	t := Table{Sheet: sheet}
	for rows.Next() {
		cols, err := rows.Columns()
		if err != nil {
			return Table{}, fmt.Errorf("read row: %w", err)
		}
		if t.Header == nil {
			if blank(cols) {
				continue
			}
			t.Header = trimAll(cols)
			continue
		}
		if blank(cols) {
			continue
		}
		t.Rows = append(t.Rows, pad(cols, len(t.Header)))
	}
	if err := rows.Error(); err != nil {
		return Table{}, err
	}
	return t, nil
}

func blank(cols []string) bool {
	for _, c := range cols {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

func trimAll(cols []string) []string {
	out := make([]string, len(cols))
	for i, c := range cols {
		out[i] = strings.TrimSpace(c)
	}
	return out
}

func pad(cols []string, width int) []string {
	if len(cols) >= width {
		return cols
	}
	out := make([]string, width)
	copy(out, cols)
	return out
}
