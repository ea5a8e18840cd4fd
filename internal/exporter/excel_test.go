package exporter

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestWriteWorkbook(t *testing.T) {
	path := filepath.Join(t.TempDir(), "metrics.xlsx")

	schema := []string{"metric", "value", "on_target"}
	records := []Record{
		{"metric": "Production Output", "value": int64(1250), "on_target": true},
		{"metric": "Defect Rate", "value": 2.3, "on_target": false},
	}

	require.NoError(t, WriteWorkbook(path, "Metrics", schema, records))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Metrics")
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, schema, rows[0])
	assert.Equal(t, []string{"Production Output", "1250", "TRUE"}, rows[1])
	assert.Equal(t, []string{"Defect Rate", "2.3", "FALSE"}, rows[2])
}

func TestWriteWorkbook_DefaultSheet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plain.xlsx")

	require.NoError(t, WriteWorkbook(path, "Sheet1", []string{"a"}, []Record{{"a": "x"}}))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Sheet1")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"x"}, rows[1])
}

func TestWriteWorkbook_SchemaMismatch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.xlsx")

	err := WriteWorkbook(path, "Data", []string{"a", "b"}, []Record{{"a": 1}})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSchemaMismatch)

	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}
