package domain

// OperationsMetric represents one daily measurement of a departmental
// operations metric against its target.
type OperationsMetric struct {
	Date       string  `json:"date" validate:"required,datetime=2006-01-02"`
	Department string  `json:"department" validate:"required"`
	Metric     string  `json:"metric" validate:"required"`
	Value      float64 `json:"value"`
	Unit       string  `json:"unit" validate:"required"`
	Target     float64 `json:"target"`
	Efficiency float64 `json:"efficiency" validate:"min=0"`
}
