package adapter

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/nutriguide/go-nutri-client/models"
)

func (h *httpServerAdapter) GetMeals(ctx context.Context, date, mealType string) (models.MealsResponse, error) {
	req := h.request(ctx)
	if date != "" {
		req.SetQueryParam("date", date)
	}
	if mealType != "" {
		req.SetQueryParam("type", mealType)
	}

	var out models.MealsResponse
	resp, err := req.SetResult(&out).Get("/api/meals")
	if err != nil {
		return models.MealsResponse{}, fmt.Errorf("get meals request: %w", err)
	}
	if err = mapAPIError(resp); err != nil {
		return models.MealsResponse{}, err
	}

	return out, nil
}

func (h *httpServerAdapter) CreateMeal(ctx context.Context, meal models.Meal) (models.Meal, error) {
	var out models.MealResponse
	resp, err := h.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(meal).
		SetResult(&out).
		Post("/api/meals")
	if err != nil {
		return models.Meal{}, fmt.Errorf("create meal request: %w", err)
	}
	if err = mapAPIError(resp); err != nil {
		return models.Meal{}, err
	}
	if out.Meal == nil {
		return models.Meal{}, errors.New("meal response missing meal")
	}

	return *out.Meal, nil
}

func (h *httpServerAdapter) UpdateMeal(ctx context.Context, id int64, meal models.Meal) (models.Meal, error) {
	var out models.MealResponse
	resp, err := h.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(meal).
		SetResult(&out).
		Put("/api/meals/" + strconv.FormatInt(id, 10))
	if err != nil {
		return models.Meal{}, fmt.Errorf("update meal request: %w", err)
	}
	if err = mapAPIError(resp); err != nil {
		return models.Meal{}, err
	}
	if out.Meal == nil {
		return models.Meal{}, errors.New("meal response missing meal")
	}

	return *out.Meal, nil
}

func (h *httpServerAdapter) DeleteMeal(ctx context.Context, id int64) error {
	resp, err := h.request(ctx).Delete("/api/meals/" + strconv.FormatInt(id, 10))
	if err != nil {
		return fmt.Errorf("delete meal request: %w", err)
	}

	return mapAPIError(resp)
}

func (h *httpServerAdapter) ScanFood(ctx context.Context, filename string, image io.Reader) (models.ScanResponse, error) {
	var out models.ScanResponse
	resp, err := h.request(ctx).
		SetFileReader("image", filename, image).
		SetResult(&out).
		Post("/api/meals/scan")
	if err != nil {
		return models.ScanResponse{}, fmt.Errorf("scan food request: %w", err)
	}
	if err = mapAPIError(resp); err != nil {
		return models.ScanResponse{}, err
	}

	return out, nil
}
