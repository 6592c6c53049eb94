package adapter

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/nutriguide/go-nutri-client/models"
)

type generatePlanRequest struct {
	WeekStart string `json:"week_start"`
}

// weekMonday returns the Monday of now's week as an ISO date. The meal-plan
// POST requires week_start, so "current week" is resolved client-side.
func weekMonday(now time.Time) string {
	offset := (int(now.Weekday()) + 6) % 7
	return now.AddDate(0, 0, -offset).Format("2006-01-02")
}

func (h *httpServerAdapter) GetMealPlan(ctx context.Context, weekStart string) (models.MealPlanResponse, error) {
	req := h.request(ctx)
	if weekStart != "" {
		req.SetQueryParam("week_start", weekStart)
	}

	var out models.MealPlanResponse
	resp, err := req.SetResult(&out).Get("/api/meal-plans")
	if err != nil {
		return models.MealPlanResponse{}, fmt.Errorf("get meal plan request: %w", err)
	}
	if err = mapAPIError(resp); err != nil {
		return models.MealPlanResponse{}, err
	}

	return out, nil
}

func (h *httpServerAdapter) GenerateMealPlan(ctx context.Context, weekStart string) error {
	if weekStart == "" {
		weekStart = weekMonday(time.Now())
	}

	resp, err := h.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(generatePlanRequest{WeekStart: weekStart}).
		Post("/api/meal-plans")
	if err != nil {
		return fmt.Errorf("generate meal plan request: %w", err)
	}

	return mapAPIError(resp)
}

func (h *httpServerAdapter) GetGroceryList(ctx context.Context, purchased bool) (models.GroceryListResponse, error) {
	var out models.GroceryListResponse
	resp, err := h.request(ctx).
		SetQueryParam("purchased", strconv.FormatBool(purchased)).
		SetResult(&out).
		Get("/api/grocery")
	if err != nil {
		return models.GroceryListResponse{}, fmt.Errorf("get grocery list request: %w", err)
	}
	if err = mapAPIError(resp); err != nil {
		return models.GroceryListResponse{}, err
	}

	return out, nil
}

func (h *httpServerAdapter) AddGroceryItem(ctx context.Context, item models.GroceryItem) (models.GroceryItem, error) {
	var out models.GroceryItemResponse
	resp, err := h.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(item).
		SetResult(&out).
		Post("/api/grocery")
	if err != nil {
		return models.GroceryItem{}, fmt.Errorf("add grocery item request: %w", err)
	}
	if err = mapAPIError(resp); err != nil {
		return models.GroceryItem{}, err
	}
	if out.Item == nil {
		return models.GroceryItem{}, errors.New("grocery response missing item")
	}

	return *out.Item, nil
}

func (h *httpServerAdapter) UpdateGroceryItem(ctx context.Context, update models.GroceryItemUpdate) error {
	resp, err := h.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(update).
		Put("/api/grocery")
	if err != nil {
		return fmt.Errorf("update grocery item request: %w", err)
	}

	return mapAPIError(resp)
}

func (h *httpServerAdapter) DeleteGroceryItem(ctx context.Context, id int64) error {
	resp, err := h.request(ctx).
		SetQueryParam("id", strconv.FormatInt(id, 10)).
		Delete("/api/grocery")
	if err != nil {
		return fmt.Errorf("delete grocery item request: %w", err)
	}

	return mapAPIError(resp)
}
