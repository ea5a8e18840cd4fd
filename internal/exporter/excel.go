package exporter

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"
)

// defaultSheetName is the sheet excelize creates in a new workbook
const defaultSheetName = "Sheet1"

// WriteWorkbook exports records to an Excel workbook with a single
// sheet: a header row with the schema's field names followed by one row
// per record in schema order. Cell values keep their native types
// (string, bool, integer, float). Schema and failure semantics match
// WriteTabularFile: a missing field fails with a SchemaError before the
// destination is touched, and sink failures surface as a WriteError.
func WriteWorkbook(path, sheet string, schema []string, records []Record) error {
	if err := checkSchema(schema, records); err != nil {
		return err
	}

	f := excelize.NewFile()
	defer f.Close()

	if sheet != defaultSheetName {
		if err := f.SetSheetName(defaultSheetName, sheet); err != nil {
			return fmt.Errorf("rename sheet: %w", err)
		}
	}

	for col, field := range schema {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return fmt.Errorf("header cell %d: %w", col+1, err)
		}
		if err := f.SetCellValue(sheet, cell, field); err != nil {
			return fmt.Errorf("write header cell %s: %w", cell, err)
		}
	}

	for rowIdx, rec := range records {
		for col, field := range schema {
			cell, err := excelize.CoordinatesToCellName(col+1, rowIdx+2)
			if err != nil {
				return fmt.Errorf("data cell %d:%d: %w", rowIdx+2, col+1, err)
			}
			if err := f.SetCellValue(sheet, cell, rec[field]); err != nil {
				return fmt.Errorf("write data cell %s: %w", cell, err)
			}
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return &WriteError{Path: path, Err: err}
	}
	if err := f.SaveAs(path); err != nil {
		return &WriteError{Path: path, Err: err}
	}
	return nil
}
