package models

type DashboardResponse struct {
	Stats     AggregateStats            `json:"stats"`
	Summary   HabitSummary              `json:"summary"`
	Analytics map[string]HabitAnalytics `json:"analytics"`
	Progress  []ProgressRow             `json:"progress"`
	Streaks   []StreakRow               `json:"streaks"`
	Rank      Rank                      `json:"rank"`
	Badges    BadgeStats                `json:"badges"`
	Errors    []string                  `json:"errors,omitempty"`

	// Err joins the fetch failures behind Errors.
	Err error `json:"-"`
}
