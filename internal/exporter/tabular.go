package exporter

import (
	"encoding/csv"
	"errors"
	"io"
	"os"
	"path/filepath"
)

// Record is one flat row of tabular data keyed by field name.
// Column order always comes from the schema, never from the map.
type Record map[string]any

// ExportTabular writes records to w as comma-delimited text: one header
// line with the schema's field names, then one line per record with
// fields in schema order. Lines end with LF. Fields containing the
// delimiter, a double quote, or a line break are quoted per RFC 4180,
// with embedded quotes doubled.
//
// Every record must carry every declared field; a missing field fails
// the whole call with a SchemaError before anything is written. Keys a
// record carries beyond the schema are ignored, not written.
func ExportTabular(w io.Writer, schema []string, records []Record) error {
	if err := checkSchema(schema, records); err != nil {
		return err
	}

	cw := csv.NewWriter(w)

	if err := cw.Write(schema); err != nil {
		return &WriteError{Err: err}
	}

	row := make([]string, len(schema))
	for _, rec := range records {
		for i, field := range schema {
			row[i] = formatValue(rec[field])
		}
		if err := cw.Write(row); err != nil {
			return &WriteError{Err: err}
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return &WriteError{Err: err}
	}
	return nil
}

// WriteTabularFile exports records to a file, fully overwriting any
// previous content. The schema check runs before the destination is
// opened, so a mismatch never truncates an existing file. On a write
// failure mid-stream the file's final content is undefined and the
// error surfaces as a WriteError.
func WriteTabularFile(path string, schema []string, records []Record) error {
	if err := checkSchema(schema, records); err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return &WriteError{Path: path, Err: err}
	}

	file, err := os.Create(path)
	if err != nil {
		return &WriteError{Path: path, Err: err}
	}

	if err := ExportTabular(file, schema, records); err != nil {
		file.Close()
		return withPath(err, path)
	}

	if err := file.Close(); err != nil {
		return &WriteError{Path: path, Err: err}
	}
	return nil
}

// checkSchema verifies every record carries every declared field
func checkSchema(schema []string, records []Record) error {
	for i, rec := range records {
		for _, field := range schema {
			if _, ok := rec[field]; !ok {
				return &SchemaError{Row: i, Field: field}
			}
		}
	}
	return nil
}

// withPath attaches the destination path to a WriteError that lacks one
func withPath(err error, path string) error {
	var we *WriteError
	if errors.As(err, &we) && we.Path == "" {
		we.Path = path
	}
	return err
}
