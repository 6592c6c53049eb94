package adapter

import (
	"context"
	"io"

	"github.com/nutriguide/go-nutri-client/models"
)

// TokenStore is the persisted mirror of the bearer token. SetToken and
// ClearToken write through to it so that the in-memory credential and the
// durable copy can never be observed disagreeing.
//
// The store package provides the SQLite-backed implementation; a nil
// TokenStore keeps the token in memory only (used in tests).
type TokenStore interface {
	// SaveToken durably stores the bearer token, replacing any previous one.
	SaveToken(ctx context.Context, token string) error

	// DeleteToken removes the persisted bearer token. Deleting an absent
	// token is not an error.
	DeleteToken(ctx context.Context) error
}

// ServerAdapter defines transport-agnostic communication with the Nutri
// Guide backend. Implementations are responsible for serialisation,
// authentication header management, and mapping transport-level errors to
// the sentinel values defined in this package.
//
// Every endpoint method is a thin mapping from parameters to one request;
// none of them contain business logic, retries, or caching.
type ServerAdapter interface {
	// SetToken stores the bearer token attached to all subsequent
	// authenticated requests and writes it through to the persisted mirror.
	// It is called after a successful Register or Login.
	SetToken(ctx context.Context, token string) error

	// ClearToken drops the bearer token from memory and from the persisted
	// mirror. Subsequent requests carry no Authorization header.
	ClearToken(ctx context.Context) error

	// Token returns the bearer token currently held, or an empty string.
	Token() string

	// Register creates a new account via POST /api/register.
	Register(ctx context.Context, username, email, password string) (models.AuthResponse, error)

	// Login authenticates via POST /api/login.
	Login(ctx context.Context, email, password string) (models.AuthResponse, error)

	// Logout invalidates the server-side session via POST /api/logout.
	// It does not touch the locally held token; that is the session
	// service's responsibility.
	Logout(ctx context.Context) error

	// GetProfile fetches the current user record.
	GetProfile(ctx context.Context) (models.User, error)

	// UpdateProfile sends a partial profile update and returns the full
	// user record the server persisted.
	UpdateProfile(ctx context.Context, update models.ProfileUpdate) (models.User, error)

	// UploadProfilePicture uploads an avatar as a multipart form body.
	UploadProfilePicture(ctx context.Context, filename string, image io.Reader) (models.UploadResponse, error)

	// GetMeals lists logged meals, optionally filtered by ISO date
	// ("2006-01-02") and meal type. Empty filters list everything.
	GetMeals(ctx context.Context, date, mealType string) (models.MealsResponse, error)

	// CreateMeal logs a new meal.
	CreateMeal(ctx context.Context, meal models.Meal) (models.Meal, error)

	// UpdateMeal updates the meal identified by id.
	UpdateMeal(ctx context.Context, id int64, meal models.Meal) (models.Meal, error)

	// DeleteMeal removes the meal identified by id.
	DeleteMeal(ctx context.Context, id int64) error

	// ScanFood uploads a food photo for recognition.
	ScanFood(ctx context.Context, filename string, image io.Reader) (models.ScanResponse, error)

	// SearchNutrition queries the food reference database.
	SearchNutrition(ctx context.Context, search, category string, limit int) ([]models.NutritionItem, error)

	// CalculateDiet asks the server to (re)compute daily targets.
	CalculateDiet(ctx context.Context, req models.DietRequest) (models.DietResponse, error)

	// GetMealPlan fetches the plan for the week starting at weekStart
	// ("2006-01-02"); empty means the current week.
	GetMealPlan(ctx context.Context, weekStart string) (models.MealPlanResponse, error)

	// GenerateMealPlan replaces the plan for the given week and rebuilds
	// the grocery list from it.
	GenerateMealPlan(ctx context.Context, weekStart string) error

	// GetGroceryList fetches shopping-list items grouped by category.
	GetGroceryList(ctx context.Context, purchased bool) (models.GroceryListResponse, error)

	// AddGroceryItem appends one item to the shopping list.
	AddGroceryItem(ctx context.Context, item models.GroceryItem) (models.GroceryItem, error)

	// UpdateGroceryItem applies a partial update to one item.
	UpdateGroceryItem(ctx context.Context, update models.GroceryItemUpdate) error

	// DeleteGroceryItem removes one item.
	DeleteGroceryItem(ctx context.Context, id int64) error

	// GetWorkouts lists logged workouts with this month's aggregate stats.
	GetWorkouts(ctx context.Context, date, workoutType string) (models.WorkoutsResponse, error)

	// CreateWorkout logs a new workout.
	CreateWorkout(ctx context.Context, workout models.Workout) (models.Workout, error)

	// UpdateWorkout updates the workout identified by id.
	UpdateWorkout(ctx context.Context, id int64, workout models.Workout) (models.Workout, error)

	// DeleteWorkout removes the workout identified by id.
	DeleteWorkout(ctx context.Context, id int64) error

	// GetHydration fetches one day's water log; empty date means today.
	GetHydration(ctx context.Context, date string) (models.HydrationResponse, error)

	// LogWater records a water intake in millilitres.
	LogWater(ctx context.Context, amount float64) (models.WaterLog, error)

	// GetSleep fetches the most recent sleep logs with rolling averages.
	GetSleep(ctx context.Context, limit int) (models.SleepResponse, error)

	// LogSleep records one night of sleep (hours, quality 1-10).
	LogSleep(ctx context.Context, duration float64, quality int) (models.SleepLog, error)

	// GetFastingStatus reports the active fast, if any.
	GetFastingStatus(ctx context.Context) (models.FastingStatusResponse, error)

	// StartFasting begins a fast with the given target duration in hours.
	StartFasting(ctx context.Context, targetHours int) (models.FastingSession, error)

	// EndFasting completes the fast identified by sessionID and returns
	// the elapsed hours.
	EndFasting(ctx context.Context, sessionID int64) (float64, error)

	// GetWeightLogs fetches the most recent weight measurements.
	GetWeightLogs(ctx context.Context, limit int) ([]models.WeightLog, error)

	// LogWeight records a body-weight measurement in kilograms.
	LogWeight(ctx context.Context, weight float64) (models.WeightLog, error)

	// GetNotifications lists notifications with the unread counter.
	GetNotifications(ctx context.Context, unreadOnly bool, limit int) (models.NotificationsResponse, error)

	// MarkNotificationRead marks one notification as read.
	MarkNotificationRead(ctx context.Context, id int64) error

	// MarkAllNotificationsRead marks every unread notification as read.
	MarkAllNotificationsRead(ctx context.Context) error

	// GetFriends lists the social graph filtered by friendship status
	// ("accepted", "pending").
	GetFriends(ctx context.Context, status string) ([]models.Friend, error)

	// SendFriendRequest sends a friend request to the named user.
	SendFriendRequest(ctx context.Context, username string) error

	// RespondFriendRequest accepts or rejects an incoming friend request.
	RespondFriendRequest(ctx context.Context, friendshipID int64, accept bool) error

	// RemoveFriend deletes a friendship (or withdraws a pending request).
	RemoveFriend(ctx context.Context, friendshipID int64) error

	// GetFeed fetches the activity feed. userID 0 means the friends feed;
	// a concrete userID restricts to that user's posts.
	GetFeed(ctx context.Context, userID int64, limit, offset int) (models.FeedResponse, error)

	// CreatePost publishes a post, optionally referencing an uploaded image.
	CreatePost(ctx context.Context, content, imageURL string) (models.Post, error)

	// LikePost toggles the like on a post.
	LikePost(ctx context.Context, postID int64) (models.LikeResponse, error)

	// GetComments lists a post's comments, oldest first.
	GetComments(ctx context.Context, postID int64) ([]models.Comment, error)

	// AddComment appends a comment to a post.
	AddComment(ctx context.Context, postID int64, content string) (models.Comment, error)

	// SearchUsers finds users by username or email fragment.
	SearchUsers(ctx context.Context, query string, limit int) ([]models.UserSearchHit, error)

	// GetWeeklyReport generates and returns the current week's summary.
	GetWeeklyReport(ctx context.Context) (models.Report, error)

	// GetMonthlyReport generates and returns the current month's summary.
	GetMonthlyReport(ctx context.Context) (models.Report, error)

	// GetReportHistory lists previously generated reports.
	GetReportHistory(ctx context.Context, reportType string, limit int) ([]models.ReportHistoryEntry, error)

	// GetDashboardStats fetches the aggregated "today" view.
	GetDashboardStats(ctx context.Context) (models.DashboardResponse, error)
}
