// Package excelize writes records to XLSX workbooks using excelize.
package excelize

import (
	"context"
	"os"
	"path/filepath"

	"github.com/fwojciec/bulletin"
	"github.com/xuri/excelize/v2"
)

// Ensure Writer implements bulletin.RecordWriter at compile time.
var _ bulletin.RecordWriter = (*Writer)(nil)

// Writer writes records to the first sheet of an XLSX workbook, with the
// column names in the first row.
type Writer struct {
	path string
}

// NewWriter creates a Writer that saves to path.
func NewWriter(path string) *Writer {
	return &Writer{path: path}
}

// Path returns the output file path.
func (w *Writer) Path() string { return w.path }

// WriteRecords replaces the workbook with records.
func (w *Writer) WriteRecords(ctx context.Context, records []*bulletin.Record) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	sheet := f.GetSheetName(0)

	set := func(col, row int, value string) error {
		cell, err := excelize.CoordinatesToCellName(col, row)
		if err != nil {
			return err
		}
		return f.SetCellValue(sheet, cell, value)
	}

	for i, h := range bulletin.Columns {
		if err := set(i+1, 1, h); err != nil {
			return err
		}
	}

	for i, r := range records {
		if err := ctx.Err(); err != nil {
			return err
		}
		if r == nil {
			return bulletin.Errorf(bulletin.EINVALID, "nil record")
		}
		if err := r.Validate(); err != nil {
			return err
		}
		for col, v := range r.Row() {
			if err := set(col+1, i+2, v); err != nil {
				return err
			}
		}
	}

	if err := os.MkdirAll(filepath.Dir(w.path), 0o755); err != nil {
		return err
	}
	return f.SaveAs(w.path)
}
