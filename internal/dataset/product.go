package dataset

import (
	"samplegen/internal/exporter"
	"samplegen/pkg/contracts/domain"
)

var engagementEventSchema = []string{
	"user_id", "date", "feature", "action", "duration", "device", "user_segment",
}

// sampleEngagementEvents holds per-user feature interaction samples
func sampleEngagementEvents() []domain.EngagementEvent {
	return []domain.EngagementEvent{
		{UserID: "USER001", Date: "2024-01-15", Feature: "Dashboard", Action: "view", Duration: 180, Device: "desktop", UserSegment: "power_user"},
		{UserID: "USER001", Date: "2024-01-15", Feature: "Analytics", Action: "click", Duration: 45, Device: "desktop", UserSegment: "power_user"},
		{UserID: "USER002", Date: "2024-01-15", Feature: "Profile", Action: "edit", Duration: 120, Device: "mobile", UserSegment: "regular"},
		{UserID: "USER003", Date: "2024-01-16", Feature: "Search", Action: "query", Duration: 30, Device: "tablet", UserSegment: "new_user"},
		{UserID: "USER004", Date: "2024-01-16", Feature: "Dashboard", Action: "view", Duration: 240, Device: "desktop", UserSegment: "power_user"},
		{UserID: "USER005", Date: "2024-01-17", Feature: "Export", Action: "download", Duration: 60, Device: "desktop", UserSegment: "regular"},
	}
}

// UserEngagement returns the product engagement event sample dataset.
func UserEngagement() (*TableDataset, error) {
	items := sampleEngagementEvents()
	if err := validateAll("user_engagement", items); err != nil {
		return nil, err
	}

	records := make([]exporter.Record, 0, len(items))
	for _, e := range items {
		records = append(records, exporter.Record{
			"user_id":      e.UserID,
			"date":         e.Date,
			"feature":      e.Feature,
			"action":       e.Action,
			"duration":     e.Duration,
			"device":       e.Device,
			"user_segment": e.UserSegment,
		})
	}

	return &TableDataset{
		name:          "user_engagement",
		schema:        engagementEventSchema,
		records:       records,
		defaultFormat: FormatCSV,
	}, nil
}

var featureAdoptionSchema = []string{
	"feature_name", "release_date", "total_users", "active_users",
	"adoption_rate", "retention_7d", "retention_30d",
}

// sampleFeatureAdoptions holds adoption and retention stats per released feature
func sampleFeatureAdoptions() []domain.FeatureAdoption {
	return []domain.FeatureAdoption{
		{FeatureName: "AI Chat", ReleaseDate: "2024-01-01", TotalUsers: 1000, ActiveUsers: 650, AdoptionRate: 65.0, Retention7d: 45.2, Retention30d: 32.1},
		{FeatureName: "Knowledge Graph", ReleaseDate: "2024-02-01", TotalUsers: 1200, ActiveUsers: 480, AdoptionRate: 40.0, Retention7d: 35.8, Retention30d: 28.3},
		{FeatureName: "Multi-Persona Insights", ReleaseDate: "2024-03-01", TotalUsers: 1350, ActiveUsers: 810, AdoptionRate: 60.0, Retention7d: 52.4, Retention30d: 41.7},
		{FeatureName: "Advanced Filters", ReleaseDate: "2024-01-15", TotalUsers: 1000, ActiveUsers: 750, AdoptionRate: 75.0, Retention7d: 68.3, Retention30d: 58.9},
		{FeatureName: "Export Dashboard", ReleaseDate: "2023-12-01", TotalUsers: 950, ActiveUsers: 855, AdoptionRate: 90.0, Retention7d: 82.1, Retention30d: 74.5},
	}
}

// FeatureAdoptions returns the feature adoption sample dataset.
func FeatureAdoptions() (*TableDataset, error) {
	items := sampleFeatureAdoptions()
	if err := validateAll("feature_adoption", items); err != nil {
		return nil, err
	}

	records := make([]exporter.Record, 0, len(items))
	for _, f := range items {
		records = append(records, exporter.Record{
			"feature_name":  f.FeatureName,
			"release_date":  f.ReleaseDate,
			"total_users":   f.TotalUsers,
			"active_users":  f.ActiveUsers,
			"adoption_rate": f.AdoptionRate,
			"retention_7d":  f.Retention7d,
			"retention_30d": f.Retention30d,
		})
	}

	return &TableDataset{
		name:          "feature_adoption",
		schema:        featureAdoptionSchema,
		records:       records,
		defaultFormat: FormatJSON,
	}, nil
}
