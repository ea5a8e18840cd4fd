package domain

// FinancialKPI represents one monthly reading of a financial
// key-performance indicator against its target.
type FinancialKPI struct {
	KPIName    string  `json:"kpi_name" validate:"required"`
	Value      float64 `json:"value"`
	Target     float64 `json:"target"`
	Variance   float64 `json:"variance"`
	Period     string  `json:"period" validate:"required"`
	Department string  `json:"department" validate:"required"`
}

// ProcessEfficiency represents measured cycle time and unit cost for
// one business process compared to its target.
type ProcessEfficiency struct {
	ProcessName string  `json:"process_name" validate:"required"`
	CurrentTime float64 `json:"current_time" validate:"min=0"`
	TargetTime  float64 `json:"target_time" validate:"min=0"`
	Efficiency  float64 `json:"efficiency" validate:"min=0"`
	CostPerUnit float64 `json:"cost_per_unit" validate:"min=0"`
	Department  string  `json:"department" validate:"required"`
}
