// Command convert translates a dataset file between the tabular (CSV)
// and document (JSON) formats the generator produces.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"samplegen/internal/exporter"
)

func main() {
	in := flag.String("in", "", "input file (.csv or .json)")
	out := flag.String("out", "", "output file (.csv or .json)")
	indent := flag.Int("indent", 2, "spaces per nesting level for JSON output, 0 for compact")
	flag.Parse()

	if *in == "" || *out == "" {
		fmt.Fprintln(os.Stderr, "usage: convert -in <file.csv|file.json> -out <file.json|file.csv> [-indent n]")
		os.Exit(2)
	}

	if err := convert(*in, *out, *indent); err != nil {
		slog.Error("Conversion failed",
			slog.String("in", *in),
			slog.String("out", *out),
			slog.String("error", err.Error()))
		os.Exit(1)
	}

	slog.Info("Conversion complete", slog.String("in", *in), slog.String("out", *out))
}

// convert dispatches on the input and output file extensions
func convert(inPath, outPath string, indent int) error {
	inExt := strings.ToLower(filepath.Ext(inPath))
	outExt := strings.ToLower(filepath.Ext(outPath))

	switch {
	case inExt == ".csv" && outExt == ".json":
		return tabularToDocument(inPath, outPath, indent)
	case inExt == ".json" && outExt == ".csv":
		return documentToTabular(inPath, outPath)
	default:
		return fmt.Errorf("unsupported conversion %s -> %s (want .csv -> .json or .json -> .csv)", inExt, outExt)
	}
}

// tabularToDocument reads a CSV file and writes it as an array of
// objects whose member order follows the header row
func tabularToDocument(inPath, outPath string, indent int) error {
	f, err := os.Open(inPath)
	if err != nil {
		return fmt.Errorf("open input: %w", err)
	}
	defer f.Close()

	schema, records, err := exporter.ParseTabular(f)
	if err != nil {
		return err
	}

	arr := make(exporter.Array, 0, len(records))
	for _, rec := range records {
		obj := make(exporter.Object, 0, len(schema))
		for _, field := range schema {
			obj = append(obj, exporter.Member{Key: field, Value: rec[field]})
		}
		arr = append(arr, obj)
	}

	return exporter.WriteDocumentFile(outPath, arr, indent)
}

// documentToTabular reads a JSON array of flat objects and writes it as
// CSV, taking the schema from the first object's member order
func documentToTabular(inPath, outPath string) error {
	f, err := os.Open(inPath)
	if err != nil {
		return fmt.Errorf("open input: %w", err)
	}
	defer f.Close()

	doc, err := exporter.ParseDocument(f)
	if err != nil {
		return err
	}

	schema, records, err := flattenDocument(doc)
	if err != nil {
		return err
	}

	return exporter.WriteTabularFile(outPath, schema, records)
}

// flattenDocument turns an array of flat objects into a schema plus
// records. Objects after the first may only differ in extra keys;
// missing keys surface later as a schema mismatch on export.
func flattenDocument(doc any) ([]string, []exporter.Record, error) {
	arr, ok := doc.(exporter.Array)
	if !ok {
		return nil, nil, fmt.Errorf("document is %T, want an array of objects", doc)
	}
	if len(arr) == 0 {
		return nil, nil, fmt.Errorf("document array is empty, no schema to derive")
	}

	var schema []string
	records := make([]exporter.Record, 0, len(arr))

	for i, item := range arr {
		obj, ok := item.(exporter.Object)
		if !ok {
			return nil, nil, fmt.Errorf("array element %d is %T, want an object", i, item)
		}

		if i == 0 {
			for _, m := range obj {
				schema = append(schema, m.Key)
			}
		}

		rec := make(exporter.Record, len(obj))
		for _, m := range obj {
			switch m.Value.(type) {
			case exporter.Object, exporter.Array:
				return nil, nil, fmt.Errorf("array element %d field %q is nested, tabular output needs flat values", i, m.Key)
			}
			rec[m.Key] = m.Value
		}
		records = append(records, rec)
	}

	return schema, records, nil
}
