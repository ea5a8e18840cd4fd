package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"samplegen/internal/exporter"
	"samplegen/pkg/contracts/domain"
)

func TestAll(t *testing.T) {
	datasets, err := All()
	require.NoError(t, err)
	require.Len(t, datasets, 5)

	tests := []struct {
		name          string
		rows          int
		defaultFormat Format
	}{
		{"financial_kpis", 10, FormatJSON},
		{"operations_metrics", 10, FormatCSV},
		{"operations_efficiency", 5, FormatJSON},
		{"user_engagement", 6, FormatCSV},
		{"feature_adoption", 5, FormatJSON},
	}

	for i, tt := range tests {
		ds := datasets[i]
		assert.Equal(t, tt.name, ds.Name())
		assert.Equal(t, tt.rows, ds.Len())
		assert.Equal(t, tt.defaultFormat, ds.DefaultFormat())

		// every record must carry every schema field, or exports would fail
		schema := ds.Schema()
		for row, rec := range ds.Records() {
			for _, field := range schema {
				assert.Contains(t, rec, field, "dataset %s row %d", ds.Name(), row)
			}
		}
	}
}

func TestTableDataset_Document(t *testing.T) {
	ds, err := FinancialKPIs()
	require.NoError(t, err)

	doc := ds.Document()
	arr, ok := doc.(exporter.Array)
	require.True(t, ok)
	require.Len(t, arr, ds.Len())

	first, ok := arr[0].(exporter.Object)
	require.True(t, ok)

	// member order must follow the schema, not map iteration order
	keys := make([]string, 0, len(first))
	for _, m := range first {
		keys = append(keys, m.Key)
	}
	assert.Equal(t, ds.Schema(), keys)

	name, ok := first.Get("kpi_name")
	require.True(t, ok)
	assert.Equal(t, "Monthly Recurring Revenue", name)
}

func TestTableDataset_SchemaCopy(t *testing.T) {
	ds, err := UserEngagement()
	require.NoError(t, err)

	schema := ds.Schema()
	schema[0] = "mutated"
	assert.Equal(t, "user_id", ds.Schema()[0])
}

func TestValidateAll(t *testing.T) {
	valid := sampleEngagementEvents()
	assert.NoError(t, validateAll("user_engagement", valid))

	invalid := []domain.EngagementEvent{
		{UserID: "USER009", Date: "2024-01-18", Feature: "Search", Action: "query", Duration: 5, Device: "watch", UserSegment: "regular"},
	}
	err := validateAll("user_engagement", invalid)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "item 0 invalid")
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input   string
		want    Format
		wantErr bool
	}{
		{"csv", FormatCSV, false},
		{"json", FormatJSON, false},
		{"xlsx", FormatXLSX, false},
		{"yaml", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseFormat(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
