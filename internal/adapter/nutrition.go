package adapter

import (
	"context"
	"fmt"
	"strconv"

	"github.com/nutriguide/go-nutri-client/models"
)

func (h *httpServerAdapter) SearchNutrition(ctx context.Context, search, category string, limit int) ([]models.NutritionItem, error) {
	req := h.request(ctx)
	if search != "" {
		req.SetQueryParam("search", search)
	}
	if category != "" {
		req.SetQueryParam("category", category)
	}
	if limit > 0 {
		req.SetQueryParam("limit", strconv.Itoa(limit))
	}

	var out models.NutritionResponse
	resp, err := req.SetResult(&out).Get("/api/nutrition/database")
	if err != nil {
		return nil, fmt.Errorf("search nutrition request: %w", err)
	}
	if err = mapAPIError(resp); err != nil {
		return nil, err
	}

	return out.Items, nil
}

func (h *httpServerAdapter) CalculateDiet(ctx context.Context, req models.DietRequest) (models.DietResponse, error) {
	var out models.DietResponse
	resp, err := h.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&out).
		Post("/api/diet/calculate")
	if err != nil {
		return models.DietResponse{}, fmt.Errorf("calculate diet request: %w", err)
	}
	if err = mapAPIError(resp); err != nil {
		return models.DietResponse{}, err
	}

	return out, nil
}
