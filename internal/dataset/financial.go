package dataset

import (
	"samplegen/internal/exporter"
	"samplegen/pkg/contracts/domain"
)

var financialKPISchema = []string{
	"kpi_name", "value", "target", "variance", "period", "department",
}

// sampleFinancialKPIs holds two months of monthly KPI readings
func sampleFinancialKPIs() []domain.FinancialKPI {
	return []domain.FinancialKPI{
		{KPIName: "Monthly Recurring Revenue", Value: 125000, Target: 120000, Variance: 4.17, Period: "2024-01", Department: "Finance"},
		{KPIName: "Customer Acquisition Cost", Value: 85, Target: 90, Variance: -5.56, Period: "2024-01", Department: "Marketing"},
		{KPIName: "Gross Margin %", Value: 68.5, Target: 70, Variance: -2.14, Period: "2024-01", Department: "Finance"},
		{KPIName: "Cash Flow", Value: 45000, Target: 40000, Variance: 12.5, Period: "2024-01", Department: "Finance"},
		{KPIName: "EBITDA", Value: 28000, Target: 25000, Variance: 12, Period: "2024-01", Department: "Finance"},
		{KPIName: "Monthly Recurring Revenue", Value: 132000, Target: 125000, Variance: 5.6, Period: "2024-02", Department: "Finance"},
		{KPIName: "Customer Acquisition Cost", Value: 82, Target: 85, Variance: -3.53, Period: "2024-02", Department: "Marketing"},
		{KPIName: "Gross Margin %", Value: 71.2, Target: 70, Variance: 1.71, Period: "2024-02", Department: "Finance"},
		{KPIName: "Cash Flow", Value: 52000, Target: 45000, Variance: 15.56, Period: "2024-02", Department: "Finance"},
		{KPIName: "EBITDA", Value: 35000, Target: 30000, Variance: 16.67, Period: "2024-02", Department: "Finance"},
	}
}

// FinancialKPIs returns the monthly financial KPI sample dataset.
func FinancialKPIs() (*TableDataset, error) {
	items := sampleFinancialKPIs()
	if err := validateAll("financial_kpis", items); err != nil {
		return nil, err
	}

	records := make([]exporter.Record, 0, len(items))
	for _, k := range items {
		records = append(records, exporter.Record{
			"kpi_name":   k.KPIName,
			"value":      k.Value,
			"target":     k.Target,
			"variance":   k.Variance,
			"period":     k.Period,
			"department": k.Department,
		})
	}

	return &TableDataset{
		name:          "financial_kpis",
		schema:        financialKPISchema,
		records:       records,
		defaultFormat: FormatJSON,
	}, nil
}

var processEfficiencySchema = []string{
	"process_name", "current_time", "target_time", "efficiency", "cost_per_unit", "department",
}

// sampleProcessEfficiencies holds per-process cycle time and unit cost samples
func sampleProcessEfficiencies() []domain.ProcessEfficiency {
	return []domain.ProcessEfficiency{
		{ProcessName: "Order Processing", CurrentTime: 2.5, TargetTime: 3.0, Efficiency: 116.67, CostPerUnit: 12.50, Department: "Operations"},
		{ProcessName: "Inventory Management", CurrentTime: 1.2, TargetTime: 1.5, Efficiency: 120.00, CostPerUnit: 8.75, Department: "Warehouse"},
		{ProcessName: "Quality Control", CurrentTime: 0.8, TargetTime: 1.0, Efficiency: 125.00, CostPerUnit: 15.25, Department: "QA"},
		{ProcessName: "Customer Onboarding", CurrentTime: 4.5, TargetTime: 5.0, Efficiency: 111.11, CostPerUnit: 25.00, Department: "Customer Success"},
		{ProcessName: "Invoice Processing", CurrentTime: 1.8, TargetTime: 2.0, Efficiency: 110.00, CostPerUnit: 6.50, Department: "Finance"},
	}
}

// OperationsEfficiency returns the process efficiency sample dataset.
func OperationsEfficiency() (*TableDataset, error) {
	items := sampleProcessEfficiencies()
	if err := validateAll("operations_efficiency", items); err != nil {
		return nil, err
	}

	records := make([]exporter.Record, 0, len(items))
	for _, p := range items {
		records = append(records, exporter.Record{
			"process_name":  p.ProcessName,
			"current_time":  p.CurrentTime,
			"target_time":   p.TargetTime,
			"efficiency":    p.Efficiency,
			"cost_per_unit": p.CostPerUnit,
			"department":    p.Department,
		})
	}

	return &TableDataset{
		name:          "operations_efficiency",
		schema:        processEfficiencySchema,
		records:       records,
		defaultFormat: FormatJSON,
	}, nil
}
