package models

// NutritionItem is one row of the server's food reference database.
type NutritionItem struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	ServingSize string  `json:"serving_size"`
	Calories    float64 `json:"calories"`
	Protein     float64 `json:"protein"`
	Carbs       float64 `json:"carbs"`
	Fat         float64 `json:"fat"`
	Category    string  `json:"category"`
}

// NutritionResponse is returned by GET /api/nutrition/database.
type NutritionResponse struct {
	APIResponse
	Items []NutritionItem `json:"items"`
}

// DietRequest carries the optional overrides for POST /api/diet/calculate.
// Fields left nil fall back to the stored profile values server-side.
type DietRequest struct {
	Weight        *float64 `json:"weight,omitempty"`
	Height        *float64 `json:"height,omitempty"`
	Age           *int     `json:"age,omitempty"`
	Gender        *string  `json:"gender,omitempty"`
	ActivityLevel *string  `json:"activity_level,omitempty"`
	Goal          *string  `json:"goal,omitempty"`
}

// DietResponse is the computed daily plan: targets plus the BMR/TDEE the
// server derived them from.
type DietResponse struct {
	APIResponse
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
	BMR      float64 `json:"bmr"`
	TDEE     float64 `json:"tdee"`
}
