// Package files provides tabular file access for the pipeline: loading
// CSV/XLSX tables and resolving dataset paths.
package files

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	apperrors "battpulse/internal/errors"
)

// Table is an in-memory tabular file: one header row plus string cells.
// Rows may be ragged; use Field for bounds-safe access.
type Table struct {
	Headers []string
	Rows    [][]string
}

// Column returns the index of the named header, or -1 when absent.
// Header names are matched after trimming surrounding whitespace.
func (t *Table) Column(name string) int {
	for i, h := range t.Headers {
		if strings.TrimSpace(h) == name {
			return i
		}
	}
	return -1
}

// Field returns the cell at (row, col), or "" when the row is shorter
// than col. Excel rows routinely omit trailing empty cells.
func (t *Table) Field(row, col int) string {
	if row < 0 || row >= len(t.Rows) || col < 0 || col >= len(t.Rows[row]) {
		return ""
	}
	return t.Rows[row][col]
}

// ReadTable loads a tabular file, dispatching on extension: .xlsx/.xls go
// through excelize, everything else is parsed as CSV. Failures come back
// as *errors.ReadError so callers can log the distinct kind.
func ReadTable(path string) (*Table, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, apperrors.NewRead(apperrors.KindNotFound, path, err)
		}
		return nil, apperrors.NewRead(apperrors.KindUnreadable, path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xls":
		return readExcel(path)
	default:
		return readCSV(path)
	}
}

func readCSV(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, apperrors.NewRead(apperrors.KindUnreadable, path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	rows, err := r.ReadAll()
	if err != nil {
		return nil, apperrors.NewRead(apperrors.KindParseError, path, err)
	}
	if len(rows) == 0 {
		return &Table{}, nil
	}
	return &Table{Headers: rows[0], Rows: rows[1:]}, nil
}

func readExcel(path string) (*Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, apperrors.NewRead(apperrors.KindUnreadable, path, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, apperrors.NewRead(apperrors.KindParseError, path, nil)
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, apperrors.NewRead(apperrors.KindParseError, path, err)
	}
	if len(rows) == 0 {
		return &Table{}, nil
	}
	return &Table{Headers: rows[0], Rows: rows[1:]}, nil
}
