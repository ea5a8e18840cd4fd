// Package dataset holds the built-in sample business data collections
// and drives their export to disk.
//
// Five collections ship with the generator: monthly financial KPIs,
// daily departmental operations metrics, per-process efficiency
// figures, product engagement events, and feature adoption statistics.
// Each collection is defined as typed records in pkg/contracts/domain,
// validated with struct tags, and exposed through the Dataset interface
// as a schema plus flat records for the exporters.
//
// ExportAll writes every collection to an output directory in the
// requested formats (CSV, JSON, XLSX) and returns a run Manifest that
// can itself be written as a document.
package dataset
