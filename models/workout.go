package models

// Workout is a single logged training session.
type Workout struct {
	ID             int64   `json:"id,omitempty"`
	Name           string  `json:"name"`
	Description    string  `json:"description,omitempty"`
	Duration       int     `json:"duration"`
	CaloriesBurned float64 `json:"calories_burned"`
	WorkoutType    string  `json:"workout_type"`
	Intensity      string  `json:"intensity,omitempty"`
	Date           string  `json:"date,omitempty"`
}

// MonthlyWorkoutStats aggregates the current month's training volume.
type MonthlyWorkoutStats struct {
	TotalWorkouts int     `json:"total_workouts"`
	TotalDuration int     `json:"total_duration"`
	TotalCalories float64 `json:"total_calories"`
	AvgDuration   float64 `json:"avg_duration"`
}

// WorkoutsResponse is returned by GET /api/workouts.
type WorkoutsResponse struct {
	APIResponse
	Workouts     []Workout           `json:"workouts"`
	MonthlyStats MonthlyWorkoutStats `json:"monthly_stats"`
}

// WorkoutResponse is returned by workout create/update calls.
type WorkoutResponse struct {
	APIResponse
	Workout *Workout `json:"workout,omitempty"`
}
