package models

// DashboardFasting is the fasting widget state on the dashboard.
type DashboardFasting struct {
	Active       bool    `json:"active"`
	ElapsedHours float64 `json:"elapsed_hours,omitempty"`
	TargetHours  int     `json:"target_hours,omitempty"`
}

// DashboardWorkouts is the workout widget state on the dashboard.
type DashboardWorkouts struct {
	Count    int     `json:"count"`
	Calories float64 `json:"calories"`
}

// DashboardGoals carries today's targets.
type DashboardGoals struct {
	Calories *float64 `json:"calories"`
	Protein  *float64 `json:"protein"`
	Water    float64  `json:"water"`
}

// DashboardStats is the aggregated "today" view.
type DashboardStats struct {
	Nutrition MacroTotals       `json:"nutrition"`
	Water     float64           `json:"water"`
	Workouts  DashboardWorkouts `json:"workouts"`
	Fasting   DashboardFasting  `json:"fasting"`
	Goals     DashboardGoals    `json:"goals"`
}

// DashboardResponse is returned by GET /api/dashboard/stats.
type DashboardResponse struct {
	APIResponse
	Stats         DashboardStats `json:"stats"`
	Notifications []Notification `json:"notifications"`
}
