package exporter

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportDocument_KeyOrder(t *testing.T) {
	// insertion order must survive; encoding/json alone would sort keys
	doc := Object{
		{Key: "b", Value: 1},
		{Key: "a", Value: 2},
	}

	var buf bytes.Buffer
	require.NoError(t, ExportDocument(&buf, doc, 0))
	assert.Equal(t, "{\"b\":1,\"a\":2}\n", buf.String())
}

func TestExportDocument_Indent(t *testing.T) {
	doc := Object{
		{Key: "name", Value: "Ann"},
		{Key: "tags", Value: Array{"x", "y"}},
	}

	tests := []struct {
		name   string
		indent int
		want   string
	}{
		{
			name:   "compact",
			indent: 0,
			want:   "{\"name\":\"Ann\",\"tags\":[\"x\",\"y\"]}\n",
		},
		{
			name:   "two spaces",
			indent: 2,
			want:   "{\n  \"name\": \"Ann\",\n  \"tags\": [\n    \"x\",\n    \"y\"\n  ]\n}\n",
		},
		{
			name:   "four spaces",
			indent: 4,
			want:   "{\n    \"name\": \"Ann\",\n    \"tags\": [\n        \"x\",\n        \"y\"\n    ]\n}\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, ExportDocument(&buf, doc, tt.indent))
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestDocumentRoundTrip(t *testing.T) {
	doc := Object{
		{Key: "dataset", Value: "feature_adoption"},
		{Key: "count", Value: float64(5)},
		{Key: "ratios", Value: Array{65.0, 40.5, nil, true}},
		{Key: "nested", Value: Object{
			{Key: "z", Value: "last key first"},
			{Key: "a", Value: "first key last"},
		}},
		{Key: "empty_list", Value: Array{}},
		{Key: "empty_map", Value: Object{}},
	}

	for indent := 0; indent <= 4; indent++ {
		var buf bytes.Buffer
		require.NoError(t, ExportDocument(&buf, doc, indent))

		parsed, err := ParseDocument(bytes.NewReader(buf.Bytes()))
		require.NoError(t, err, "indent %d", indent)
		assert.Equal(t, doc, parsed, "indent %d", indent)
	}
}

func TestExportDocument_Idempotent(t *testing.T) {
	// integers become float64 on parse; the shortest-decimal convention
	// keeps the re-export byte-identical anyway
	doc := Array{
		Object{
			{Key: "kpi_name", Value: "Monthly Recurring Revenue"},
			{Key: "value", Value: 125000},
			{Key: "variance", Value: 4.17},
		},
		Object{
			{Key: "kpi_name", Value: "Gross Margin %"},
			{Key: "value", Value: 68.5},
			{Key: "variance", Value: -2.14},
		},
	}

	var first bytes.Buffer
	require.NoError(t, ExportDocument(&first, doc, 2))

	parsed, err := ParseDocument(bytes.NewReader(first.Bytes()))
	require.NoError(t, err)

	var second bytes.Buffer
	require.NoError(t, ExportDocument(&second, parsed, 2))
	assert.Equal(t, first.String(), second.String())
}

func TestParseDocument_Scalars(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  any
	}{
		{"number", "42", float64(42)},
		{"float", "99.8", 99.8},
		{"string", `"hello"`, "hello"},
		{"bool", "true", true},
		{"null", "null", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDocument(strings.NewReader(tt.input))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseDocument_Invalid(t *testing.T) {
	_, err := ParseDocument(strings.NewReader("{\"unterminated\":"))
	assert.Error(t, err)
}

func TestObject_Get(t *testing.T) {
	obj := Object{
		{Key: "a", Value: 1},
		{Key: "b", Value: 2},
	}

	v, ok := obj.Get("b")
	assert.True(t, ok)
	assert.Equal(t, 2, v)

	_, ok = obj.Get("missing")
	assert.False(t, ok)
}

func TestWriteDocumentFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "doc.json")

	doc := Object{{Key: "ok", Value: true}}
	require.NoError(t, WriteDocumentFile(path, doc, 0))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "{\"ok\":true}\n", string(content))
}

func TestWriteDocumentFile_Overwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.json")
	require.NoError(t, os.WriteFile(path, []byte("{\"stale\":true}\n"), 0644))

	require.NoError(t, WriteDocumentFile(path, Object{{Key: "fresh", Value: 1}}, 0))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "{\"fresh\":1}\n", string(content))
}

func TestWriteDocumentFile_IOFailure(t *testing.T) {
	dir := t.TempDir()

	err := WriteDocumentFile(dir, Object{{Key: "a", Value: 1}}, 0)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrIO)
}
