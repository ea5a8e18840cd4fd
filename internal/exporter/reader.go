package exporter

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// ParseTabular reads delimited text produced by ExportTabular. The
// header row becomes the schema and every field value comes back as a
// string; round-trip comparisons are therefore defined after value
// formatting, not on the original scalar types.
func ParseTabular(r io.Reader) ([]string, []Record, error) {
	cr := csv.NewReader(r)

	schema, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, nil, fmt.Errorf("parse tabular: missing header row")
	}
	if err != nil {
		return nil, nil, fmt.Errorf("parse tabular header: %w", err)
	}

	var records []Record
	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("parse tabular row %d: %w", len(records)+1, err)
		}
		rec := make(Record, len(schema))
		for i, field := range schema {
			rec[field] = row[i]
		}
		records = append(records, rec)
	}

	return schema, records, nil
}

// ParseDocument reads a JSON document from r, rebuilding mappings as
// Object values so that key order survives a re-export. Numbers decode
// as float64, which re-serializes to the same shortest decimal form.
func ParseDocument(r io.Reader) (any, error) {
	dec := json.NewDecoder(r)

	value, err := decodeValue(dec)
	if err != nil {
		return nil, fmt.Errorf("parse document: %w", err)
	}
	return value, nil
}

func decodeValue(dec *json.Decoder) (any, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}

	delim, ok := tok.(json.Delim)
	if !ok {
		// string, float64, bool or nil
		return tok, nil
	}

	switch delim {
	case '{':
		return decodeObject(dec)
	case '[':
		return decodeArray(dec)
	default:
		return nil, fmt.Errorf("unexpected delimiter %q", delim.String())
	}
}

func decodeObject(dec *json.Decoder) (Object, error) {
	obj := Object{}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("object key is %T, want string", tok)
		}
		value, err := decodeValue(dec)
		if err != nil {
			return nil, err
		}
		obj = append(obj, Member{Key: key, Value: value})
	}
	// consume the closing brace
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return obj, nil
}

func decodeArray(dec *json.Decoder) (Array, error) {
	arr := Array{}
	for dec.More() {
		value, err := decodeValue(dec)
		if err != nil {
			return nil, err
		}
		arr = append(arr, value)
	}
	// consume the closing bracket
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return arr, nil
}
