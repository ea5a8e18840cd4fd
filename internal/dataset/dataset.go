package dataset

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"samplegen/internal/exporter"
)

// Format identifies an output file format for a dataset.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatJSON Format = "json"
	FormatXLSX Format = "xlsx"
)

// ParseFormat converts a format name to a Format
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatCSV, FormatJSON, FormatXLSX:
		return Format(s), nil
	default:
		return "", fmt.Errorf("unknown format %q (want csv, json or xlsx)", s)
	}
}

// Dataset is one named sample collection ready for export.
type Dataset interface {
	// Name is the file base name, e.g. "financial_kpis"
	Name() string
	// Schema is the ordered field list controlling column order
	Schema() []string
	// Records returns one flat record per sample row
	Records() []exporter.Record
	// Document returns the collection as an order-stable document tree
	Document() any
	// DefaultFormat is the format the original sample set ships in
	DefaultFormat() Format
	// Len is the number of sample rows
	Len() int
}

// TableDataset is a named collection of flat records sharing one schema.
// It implements Dataset for all sample collections in this package.
type TableDataset struct {
	name          string
	schema        []string
	records       []exporter.Record
	defaultFormat Format
}

// Name returns the dataset's file base name
func (d *TableDataset) Name() string {
	return d.name
}

// Schema returns a copy of the ordered field list
func (d *TableDataset) Schema() []string {
	schema := make([]string, len(d.schema))
	copy(schema, d.schema)
	return schema
}

// Records returns the dataset's rows as exporter records
func (d *TableDataset) Records() []exporter.Record {
	return d.records
}

// Document renders the dataset as an array of objects whose member
// order follows the schema
func (d *TableDataset) Document() any {
	arr := make(exporter.Array, 0, len(d.records))
	for _, rec := range d.records {
		obj := make(exporter.Object, 0, len(d.schema))
		for _, field := range d.schema {
			obj = append(obj, exporter.Member{Key: field, Value: rec[field]})
		}
		arr = append(arr, obj)
	}
	return arr
}

// DefaultFormat returns the format the original sample set ships in
func (d *TableDataset) DefaultFormat() Format {
	return d.defaultFormat
}

// Len returns the number of sample rows
func (d *TableDataset) Len() int {
	return len(d.records)
}

// validate checks struct tags on every sample item before it becomes a record
var validate = validator.New(validator.WithRequiredStructEnabled())

// validateAll validates a typed sample collection item by item
func validateAll[T any](name string, items []T) error {
	for i, item := range items {
		if err := validate.Struct(item); err != nil {
			return fmt.Errorf("dataset %s: item %d invalid: %w", name, i, err)
		}
	}
	return nil
}

// All returns every sample dataset in fixed registry order.
func All() ([]Dataset, error) {
	builders := []func() (*TableDataset, error){
		FinancialKPIs,
		OperationsMetrics,
		OperationsEfficiency,
		UserEngagement,
		FeatureAdoptions,
	}

	datasets := make([]Dataset, 0, len(builders))
	for _, build := range builders {
		ds, err := build()
		if err != nil {
			return nil, err
		}
		datasets = append(datasets, ds)
	}
	return datasets, nil
}
