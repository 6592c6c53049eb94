package models

// WaterLog is one recorded water intake.
type WaterLog struct {
	ID     int64   `json:"id"`
	Amount float64 `json:"amount"`
	Time   string  `json:"time,omitempty"`
}

// HydrationResponse is returned by GET /api/hydration for one day.
type HydrationResponse struct {
	APIResponse
	Total float64    `json:"total"`
	Goal  float64    `json:"goal"`
	Logs  []WaterLog `json:"logs"`
}

// WaterLogResponse is returned by POST /api/hydration.
type WaterLogResponse struct {
	APIResponse
	Log *WaterLog `json:"log,omitempty"`
}

// SleepLog is one recorded night of sleep.
type SleepLog struct {
	ID       int64   `json:"id"`
	Duration float64 `json:"duration"`
	Quality  int     `json:"quality"`
	Date     string  `json:"date,omitempty"`
}

// SleepAverages carries the rolling averages over the requested window.
type SleepAverages struct {
	Duration float64 `json:"duration"`
	Quality  float64 `json:"quality"`
}

// SleepResponse is returned by GET /api/sleep.
type SleepResponse struct {
	APIResponse
	Logs     []SleepLog    `json:"logs"`
	Averages SleepAverages `json:"averages"`
}

// SleepLogResponse is returned by POST /api/sleep.
type SleepLogResponse struct {
	APIResponse
	Log *SleepLog `json:"log,omitempty"`
}

// FastingSession describes the active fast, if any.
type FastingSession struct {
	ID             int64   `json:"id"`
	StartTime      string  `json:"start_time"`
	TargetDuration int     `json:"target_duration"`
	ElapsedHours   float64 `json:"elapsed_hours,omitempty"`
	RemainingHours float64 `json:"remaining_hours,omitempty"`
}

// FastingStatusResponse is returned by GET /api/fasting. Active is the
// discriminator: Session is nil when no fast is running.
type FastingStatusResponse struct {
	APIResponse
	Active  bool            `json:"active"`
	Session *FastingSession `json:"session,omitempty"`
}

// FastingSessionResponse is returned by POST /api/fasting.
type FastingSessionResponse struct {
	APIResponse
	Session *FastingSession `json:"session,omitempty"`
}

// FastingEndResponse is returned by PUT /api/fasting.
type FastingEndResponse struct {
	APIResponse
	ElapsedHours float64 `json:"elapsed_hours"`
}

// WeightLog is one recorded body-weight measurement.
type WeightLog struct {
	ID     int64   `json:"id"`
	Weight float64 `json:"weight"`
	Date   string  `json:"date,omitempty"`
}

// WeightLogsResponse is returned by GET /api/weight-logs.
type WeightLogsResponse struct {
	APIResponse
	Logs []WeightLog `json:"logs"`
}

// WeightLogResponse is returned by POST /api/weight-logs.
type WeightLogResponse struct {
	APIResponse
	Log *WeightLog `json:"log,omitempty"`
}
