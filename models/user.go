package models

// User represents the account record returned by the Nutri Guide backend.
// It mirrors the server's user serialization: identity fields are always
// present, profile fields are nullable and omitted until the user fills
// them in.
type User struct {
	// ID is the server-assigned unique identifier of the user.
	ID int64 `json:"id"`

	// Username is the unique display name chosen at registration.
	Username string `json:"username"`

	// Email is the unique address used as the login identifier.
	Email string `json:"email"`

	// Age in years. Nil until set in the profile.
	Age *int `json:"age,omitempty"`

	// Weight in kilograms. Nil until set in the profile.
	Weight *float64 `json:"weight,omitempty"`

	// Height in centimetres. Nil until set in the profile.
	Height *float64 `json:"height,omitempty"`

	// Gender as a free-form string ("male", "female", ...). Nil until set.
	Gender *string `json:"gender,omitempty"`

	// Bio is an optional free-text self-description.
	Bio *string `json:"bio,omitempty"`

	// ProfilePicture is the server-relative URL of the uploaded avatar.
	ProfilePicture *string `json:"profile_picture,omitempty"`

	// ActivityLevel is one of sedentary/light/moderate/active/extreme.
	ActivityLevel string `json:"activity_level,omitempty"`

	// Goal is one of lose/maintain/gain.
	Goal string `json:"goal,omitempty"`

	// Daily targets computed by the server from the profile.
	DailyCalories *float64 `json:"daily_calories,omitempty"`
	DailyProtein  *float64 `json:"daily_protein,omitempty"`
	DailyCarbs    *float64 `json:"daily_carbs,omitempty"`
	DailyFat      *float64 `json:"daily_fat,omitempty"`

	// Reminder toggles managed on the settings screen.
	NotificationsEnabled *bool `json:"notifications_enabled,omitempty"`
	WaterReminder        *bool `json:"water_reminder,omitempty"`
	MealReminder         *bool `json:"meal_reminder,omitempty"`
	WorkoutReminder      *bool `json:"workout_reminder,omitempty"`
	SleepReminder        *bool `json:"sleep_reminder,omitempty"`
	FastingReminder      *bool `json:"fasting_reminder,omitempty"`

	// CreatedAt is the ISO timestamp of account creation.
	CreatedAt string `json:"created_at,omitempty"`
}

// ProfileUpdate is a partial user record sent to PUT /api/user/profile.
// Only non-nil fields are transmitted; the server keeps current values for
// everything omitted.
type ProfileUpdate struct {
	Username      *string  `json:"username,omitempty"`
	Email         *string  `json:"email,omitempty"`
	Bio           *string  `json:"bio,omitempty"`
	Age           *int     `json:"age,omitempty"`
	Weight        *float64 `json:"weight,omitempty"`
	Height        *float64 `json:"height,omitempty"`
	Gender        *string  `json:"gender,omitempty"`
	ActivityLevel *string  `json:"activity_level,omitempty"`
	Goal          *string  `json:"goal,omitempty"`

	NotificationsEnabled *bool `json:"notifications_enabled,omitempty"`
	WaterReminder        *bool `json:"water_reminder,omitempty"`
	MealReminder         *bool `json:"meal_reminder,omitempty"`
	WorkoutReminder      *bool `json:"workout_reminder,omitempty"`
	SleepReminder        *bool `json:"sleep_reminder,omitempty"`
	FastingReminder      *bool `json:"fasting_reminder,omitempty"`
}
