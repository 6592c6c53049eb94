package models

// Meal is a single logged meal entry.
type Meal struct {
	ID          int64   `json:"id,omitempty"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Calories    float64 `json:"calories"`
	Protein     float64 `json:"protein"`
	Carbs       float64 `json:"carbs"`
	Fat         float64 `json:"fat"`
	MealType    string  `json:"meal_type"`
	Date        string  `json:"date,omitempty"`
}

// MacroTotals aggregates calories and macronutrients over a set of meals.
type MacroTotals struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

// DailyGoals carries the per-day targets the server computed for the user.
type DailyGoals struct {
	Calories *float64 `json:"calories"`
	Protein  *float64 `json:"protein"`
	Carbs    *float64 `json:"carbs"`
	Fat      *float64 `json:"fat"`
}

// MealsResponse is returned by GET /api/meals.
type MealsResponse struct {
	APIResponse
	Meals      []Meal      `json:"meals"`
	Totals     MacroTotals `json:"totals"`
	DailyGoals DailyGoals  `json:"daily_goals"`
}

// MealResponse is returned by meal create/update calls.
type MealResponse struct {
	APIResponse
	Meal *Meal `json:"meal,omitempty"`
}

// DetectedFood is the recognition result of a food-image scan.
type DetectedFood struct {
	Name       string  `json:"name"`
	Calories   float64 `json:"calories"`
	Protein    float64 `json:"protein"`
	Carbs      float64 `json:"carbs"`
	Fat        float64 `json:"fat"`
	Confidence float64 `json:"confidence"`
}

// ScanResponse is returned by POST /api/meals/scan.
type ScanResponse struct {
	APIResponse
	ImageURL     string        `json:"image_url,omitempty"`
	DetectedFood *DetectedFood `json:"detected_food,omitempty"`
}
