// Package exporter serializes in-memory records and document trees to
// tabular text, JSON documents, and Excel workbooks.
//
// This package contains three main components:
//
// Tabular export: ExportTabular and WriteTabularFile turn a schema plus
// a sequence of flat records into comma-delimited UTF-8 text with one
// header row, LF line endings, and RFC 4180 quoting. ParseTabular reads
// that format back.
//
// Document export: ExportDocument and WriteDocumentFile serialize a
// JSON-compatible value tree, with Object preserving mapping key order
// that plain Go maps would lose. ParseDocument reads documents back
// into order-preserving form.
//
// Excel export: WriteWorkbook writes the same schema/record shape as a
// single-sheet workbook with native cell types.
//
// All exporters are stateless single-shot calls: the destination is
// fully overwritten on success, and the only failure kinds are a
// SchemaError (record missing a declared field, checked before any
// byte is written) and a WriteError (sink could not be written).
// Reporting is the caller's responsibility; nothing in this package
// logs.
//
// Example usage:
//
//	schema := []string{"id", "name"}
//	records := []exporter.Record{
//		{"id": 1, "name": "Ann"},
//		{"id": 2, "name": "Bo,b"},
//	}
//
//	err := exporter.WriteTabularFile("data/datasets/users.csv", schema, records)
//
//	doc := exporter.Object{
//		{Key: "dataset", Value: "users"},
//		{Key: "rows", Value: 2},
//	}
//	err = exporter.WriteDocumentFile("data/datasets/users.json", doc, 2)
package exporter
