package domain

// EngagementEvent represents a single interaction of a user with a
// product feature, with the time spent in seconds.
type EngagementEvent struct {
	UserID      string `json:"user_id" validate:"required"`
	Date        string `json:"date" validate:"required,datetime=2006-01-02"`
	Feature     string `json:"feature" validate:"required"`
	Action      string `json:"action" validate:"required"`
	Duration    int64  `json:"duration" validate:"min=0"`
	Device      string `json:"device" validate:"required,oneof=desktop mobile tablet"`
	UserSegment string `json:"user_segment" validate:"required"`
}

// FeatureAdoption represents adoption and retention statistics for one
// released product feature.
type FeatureAdoption struct {
	FeatureName  string  `json:"feature_name" validate:"required"`
	ReleaseDate  string  `json:"release_date" validate:"required,datetime=2006-01-02"`
	TotalUsers   int64   `json:"total_users" validate:"min=0"`
	ActiveUsers  int64   `json:"active_users" validate:"min=0"`
	AdoptionRate float64 `json:"adoption_rate" validate:"min=0,max=100"`
	Retention7d  float64 `json:"retention_7d" validate:"min=0,max=100"`
	Retention30d float64 `json:"retention_30d" validate:"min=0,max=100"`
}
