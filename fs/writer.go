// Package fs writes records to local files.
package fs

import (
	"bufio"
	"context"
	"encoding/csv"
	"encoding/json"
	"io"
	"os"
	"path/filepath"

	"github.com/fwojciec/bulletin"
)

// utf8BOM lets spreadsheet applications detect UTF-8 in CSV files.
const utf8BOM = "\ufeff"

// OutputPath returns dir/name.ext.
func OutputPath(dir, name, ext string) string {
	return filepath.Join(dir, name+"."+ext)
}

// Ensure CSVWriter implements bulletin.RecordWriter at compile time.
var _ bulletin.RecordWriter = (*CSVWriter)(nil)

// CSVWriter writes records as a UTF-8 CSV file with a header row.
type CSVWriter struct {
	path string
}

// NewCSVWriter creates a CSVWriter that writes to path.
func NewCSVWriter(path string) *CSVWriter {
	return &CSVWriter{path: path}
}

// Path returns the output file path.
func (w *CSVWriter) Path() string { return w.path }

// WriteRecords replaces the file with records.
func (w *CSVWriter) WriteRecords(ctx context.Context, records []*bulletin.Record) error {
	if err := validate(records); err != nil {
		return err
	}
	return writeAtomic(w.path, func(out io.Writer) error {
		if _, err := io.WriteString(out, utf8BOM); err != nil {
			return err
		}
		cw := csv.NewWriter(out)
		if err := cw.Write(bulletin.Columns); err != nil {
			return err
		}
		for _, r := range records {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := cw.Write(r.Row()); err != nil {
				return err
			}
		}
		cw.Flush()
		return cw.Error()
	})
}

// Ensure JSONWriter implements bulletin.RecordWriter at compile time.
var _ bulletin.RecordWriter = (*JSONWriter)(nil)

// JSONWriter writes records as an indented JSON array.
type JSONWriter struct {
	path string
}

// NewJSONWriter creates a JSONWriter that writes to path.
func NewJSONWriter(path string) *JSONWriter {
	return &JSONWriter{path: path}
}

// Path returns the output file path.
func (w *JSONWriter) Path() string { return w.path }

// WriteRecords replaces the file with records.
func (w *JSONWriter) WriteRecords(ctx context.Context, records []*bulletin.Record) error {
	if err := validate(records); err != nil {
		return err
	}
	if records == nil {
		records = []*bulletin.Record{}
	}
	out := make([]*bulletin.Record, len(records))
	for i, r := range records {
		cp := *r
		if cp.Images == nil {
			cp.Images = []string{}
		}
		out[i] = &cp
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	return writeAtomic(w.path, func(f io.Writer) error {
		enc := json.NewEncoder(f)
		enc.SetEscapeHTML(false)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	})
}

func validate(records []*bulletin.Record) error {
	for _, r := range records {
		if r == nil {
			return bulletin.Errorf(bulletin.EINVALID, "nil record")
		}
		if err := r.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// writeAtomic writes to path.tmp and renames it over path once write
// succeeds. The temporary file is removed on failure.
func writeAtomic(path string, write func(io.Writer) error) (err error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	tmp := path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = f.Close()
			_ = os.Remove(tmp)
		}
	}()

	bw := bufio.NewWriter(f)
	if err = write(bw); err != nil {
		return err
	}
	if err = bw.Flush(); err != nil {
		return err
	}
	if err = f.Close(); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}
