package models

// MealPlanEntry is one planned meal within a week.
type MealPlanEntry struct {
	ID          int64   `json:"id"`
	MealType    string  `json:"meal_type"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Calories    float64 `json:"calories"`
	Protein     float64 `json:"protein"`
	Carbs       float64 `json:"carbs"`
	Fat         float64 `json:"fat"`
}

// MealPlanResponse is returned by GET /api/meal-plans. Plans is keyed by
// weekday name ("Monday".."Sunday").
type MealPlanResponse struct {
	APIResponse
	WeekStart string                     `json:"week_start"`
	WeekEnd   string                     `json:"week_end"`
	Plans     map[string][]MealPlanEntry `json:"plans"`
}

// GroceryItem is one entry of the shopping list.
type GroceryItem struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Quantity  string `json:"quantity,omitempty"`
	Category  string `json:"category,omitempty"`
	Purchased bool   `json:"purchased"`
}

// GroceryListResponse is returned by GET /api/grocery. Items is keyed by
// category ("Protein", "Grains", ...).
type GroceryListResponse struct {
	APIResponse
	Items map[string][]GroceryItem `json:"items"`
	Total int                      `json:"total"`
}

// GroceryItemResponse is returned by POST /api/grocery.
type GroceryItemResponse struct {
	APIResponse
	Item *GroceryItem `json:"item,omitempty"`
}

// GroceryItemUpdate is the partial update body for PUT /api/grocery.
type GroceryItemUpdate struct {
	ID        int64   `json:"id"`
	Purchased *bool   `json:"purchased,omitempty"`
	Name      *string `json:"name,omitempty"`
	Quantity  *string `json:"quantity,omitempty"`
	Category  *string `json:"category,omitempty"`
}
