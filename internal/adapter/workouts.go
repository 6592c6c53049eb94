package adapter

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/nutriguide/go-nutri-client/models"
)

func (h *httpServerAdapter) GetWorkouts(ctx context.Context, date, workoutType string) (models.WorkoutsResponse, error) {
	req := h.request(ctx)
	if date != "" {
		req.SetQueryParam("date", date)
	}
	if workoutType != "" {
		req.SetQueryParam("type", workoutType)
	}

	var out models.WorkoutsResponse
	resp, err := req.SetResult(&out).Get("/api/workouts")
	if err != nil {
		return models.WorkoutsResponse{}, fmt.Errorf("get workouts request: %w", err)
	}
	if err = mapAPIError(resp); err != nil {
		return models.WorkoutsResponse{}, err
	}

	return out, nil
}

func (h *httpServerAdapter) CreateWorkout(ctx context.Context, workout models.Workout) (models.Workout, error) {
	var out models.WorkoutResponse
	resp, err := h.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(workout).
		SetResult(&out).
		Post("/api/workouts")
	if err != nil {
		return models.Workout{}, fmt.Errorf("create workout request: %w", err)
	}
	if err = mapAPIError(resp); err != nil {
		return models.Workout{}, err
	}
	if out.Workout == nil {
		return models.Workout{}, errors.New("workout response missing workout")
	}

	return *out.Workout, nil
}

func (h *httpServerAdapter) UpdateWorkout(ctx context.Context, id int64, workout models.Workout) (models.Workout, error) {
	var out models.WorkoutResponse
	resp, err := h.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(workout).
		SetResult(&out).
		Put("/api/workouts/" + strconv.FormatInt(id, 10))
	if err != nil {
		return models.Workout{}, fmt.Errorf("update workout request: %w", err)
	}
	if err = mapAPIError(resp); err != nil {
		return models.Workout{}, err
	}
	if out.Workout == nil {
		return models.Workout{}, errors.New("workout response missing workout")
	}

	return *out.Workout, nil
}

func (h *httpServerAdapter) DeleteWorkout(ctx context.Context, id int64) error {
	resp, err := h.request(ctx).Delete("/api/workouts/" + strconv.FormatInt(id, 10))
	if err != nil {
		return fmt.Errorf("delete workout request: %w", err)
	}

	return mapAPIError(resp)
}
