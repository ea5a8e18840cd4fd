package dataset

import (
	"samplegen/internal/exporter"
	"samplegen/pkg/contracts/domain"
)

var operationsMetricSchema = []string{
	"date", "department", "metric", "value", "unit", "target", "efficiency",
}

// sampleOperationsMetrics holds two reporting days of departmental metrics
func sampleOperationsMetrics() []domain.OperationsMetric {
	return []domain.OperationsMetric{
		{Date: "2024-01-01", Department: "Manufacturing", Metric: "Production Output", Value: 1250, Unit: "units", Target: 1200, Efficiency: 104.17},
		{Date: "2024-01-01", Department: "Manufacturing", Metric: "Defect Rate", Value: 2.3, Unit: "%", Target: 3.0, Efficiency: 123.33},
		{Date: "2024-01-01", Department: "Logistics", Metric: "Delivery Time", Value: 2.1, Unit: "days", Target: 2.5, Efficiency: 116.00},
		{Date: "2024-01-01", Department: "Customer Service", Metric: "Response Time", Value: 4.5, Unit: "hours", Target: 6.0, Efficiency: 125.00},
		{Date: "2024-01-01", Department: "IT", Metric: "System Uptime", Value: 99.8, Unit: "%", Target: 99.5, Efficiency: 100.30},
		{Date: "2024-02-01", Department: "Manufacturing", Metric: "Production Output", Value: 1320, Unit: "units", Target: 1250, Efficiency: 105.60},
		{Date: "2024-02-01", Department: "Manufacturing", Metric: "Defect Rate", Value: 1.9, Unit: "%", Target: 3.0, Efficiency: 136.84},
		{Date: "2024-02-01", Department: "Logistics", Metric: "Delivery Time", Value: 1.8, Unit: "days", Target: 2.5, Efficiency: 128.00},
		{Date: "2024-02-01", Department: "Customer Service", Metric: "Response Time", Value: 3.2, Unit: "hours", Target: 6.0, Efficiency: 146.67},
		{Date: "2024-02-01", Department: "IT", Metric: "System Uptime", Value: 99.9, Unit: "%", Target: 99.5, Efficiency: 100.40},
	}
}

// OperationsMetrics returns the departmental operations metrics sample dataset.
func OperationsMetrics() (*TableDataset, error) {
	items := sampleOperationsMetrics()
	if err := validateAll("operations_metrics", items); err != nil {
		return nil, err
	}

	records := make([]exporter.Record, 0, len(items))
	for _, m := range items {
		records = append(records, exporter.Record{
			"date":       m.Date,
			"department": m.Department,
			"metric":     m.Metric,
			"value":      m.Value,
			"unit":       m.Unit,
			"target":     m.Target,
			"efficiency": m.Efficiency,
		})
	}

	return &TableDataset{
		name:          "operations_metrics",
		schema:        operationsMetricSchema,
		records:       records,
		defaultFormat: FormatCSV,
	}, nil
}
