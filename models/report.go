package models

// ReportPeriod bounds the reporting window.
type ReportPeriod struct {
	Start     string `json:"start"`
	End       string `json:"end"`
	DaysCount int    `json:"days_count,omitempty"`
	Month     string `json:"month,omitempty"`
}

// ReportNutrition summarises intake over the period.
type ReportNutrition struct {
	TotalCalories         float64 `json:"total_calories"`
	TotalProtein          float64 `json:"total_protein"`
	TotalCarbs            float64 `json:"total_carbs"`
	TotalFat              float64 `json:"total_fat"`
	DailyAvgCalories      float64 `json:"daily_avg_calories"`
	DailyAvgProtein       float64 `json:"daily_avg_protein"`
	CalorieGoalPercentage float64 `json:"calorie_goal_percentage"`
	ProteinGoalPercentage float64 `json:"protein_goal_percentage"`
}

// ReportFitness summarises training over the period.
type ReportFitness struct {
	WorkoutsCount        int     `json:"workouts_count"`
	TotalWorkoutCalories float64 `json:"total_workout_calories"`
	TotalWorkoutDuration int     `json:"total_workout_duration"`
	AvgWorkoutDuration   float64 `json:"avg_workout_duration"`
}

// ReportHydration summarises water intake over the period.
type ReportHydration struct {
	TotalWater          float64 `json:"total_water"`
	DailyAvgWater       float64 `json:"daily_avg_water"`
	WaterGoalPercentage float64 `json:"water_goal_percentage"`
}

// ReportSleep summarises sleep over the period.
type ReportSleep struct {
	AvgSleepDuration float64 `json:"avg_sleep_duration"`
	AvgSleepQuality  float64 `json:"avg_sleep_quality"`
}

// Report is the full weekly or monthly summary document.
type Report struct {
	Period          ReportPeriod    `json:"period"`
	Nutrition       ReportNutrition `json:"nutrition"`
	Fitness         ReportFitness   `json:"fitness"`
	Hydration       ReportHydration `json:"hydration"`
	Sleep           ReportSleep     `json:"sleep"`
	Recommendations []string        `json:"recommendations"`
}

// ReportResponse is returned by the weekly and monthly report endpoints.
type ReportResponse struct {
	APIResponse
	Report *Report `json:"report,omitempty"`
}

// ReportHistoryEntry is a stored, previously generated report.
type ReportHistoryEntry struct {
	ID          int64  `json:"id"`
	ReportType  string `json:"report_type"`
	PeriodStart string `json:"period_start"`
	PeriodEnd   string `json:"period_end"`
	CreatedAt   string `json:"created_at"`
}

// ReportHistoryResponse is returned by GET /api/reports/history.
type ReportHistoryResponse struct {
	APIResponse
	Reports []ReportHistoryEntry `json:"reports"`
}
