package exporter

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Member is one key/value pair of an Object.
type Member struct {
	Key   string
	Value any
}

// Object is a JSON mapping that keeps its members in insertion order.
// Go maps and encoding/json both sort keys, and sample documents must
// not be reordered, so objects are pair slices with a custom marshaler.
type Object []Member

// Array is an ordered JSON sequence.
type Array []any

// MarshalJSON emits the object's members in their declared order
func (o Object) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, m := range o {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(m.Key)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		value, err := json.Marshal(m.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Get returns the value of the first member with the given key
func (o Object) Get(key string) (any, bool) {
	for _, m := range o {
		if m.Key == key {
			return m.Value, true
		}
	}
	return nil, false
}

// ExportDocument serializes a JSON-compatible value tree to w. An indent
// of 0 produces compact output; a positive indent nests elements by that
// many spaces per level. Numbers use encoding/json's shortest
// round-trippable decimal form, so parsing the output and re-exporting
// it with the same indent is byte-identical. The output ends with a
// single trailing LF.
func ExportDocument(w io.Writer, value any, indent int) error {
	enc := json.NewEncoder(w)
	if indent > 0 {
		enc.SetIndent("", strings.Repeat(" ", indent))
	}
	if err := enc.Encode(value); err != nil {
		return &WriteError{Err: err}
	}
	return nil
}

// WriteDocumentFile exports a document to a file, fully overwriting any
// previous content. Failure modes mirror WriteTabularFile.
func WriteDocumentFile(path string, value any, indent int) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return &WriteError{Path: path, Err: err}
	}

	file, err := os.Create(path)
	if err != nil {
		return &WriteError{Path: path, Err: err}
	}

	if err := ExportDocument(file, value, indent); err != nil {
		file.Close()
		return withPath(err, path)
	}

	if err := file.Close(); err != nil {
		return &WriteError{Path: path, Err: err}
	}
	return nil
}
