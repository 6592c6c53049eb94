package adapter

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/nutriguide/go-nutri-client/models"
)

type waterLogRequest struct {
	Amount float64 `json:"amount"`
}

type sleepLogRequest struct {
	Duration float64 `json:"duration"`
	Quality  int     `json:"quality"`
}

type startFastingRequest struct {
	TargetDuration int `json:"target_duration"`
}

type endFastingRequest struct {
	SessionID int64 `json:"session_id"`
}

type weightLogRequest struct {
	Weight float64 `json:"weight"`
}

func (h *httpServerAdapter) GetHydration(ctx context.Context, date string) (models.HydrationResponse, error) {
	req := h.request(ctx)
	if date != "" {
		req.SetQueryParam("date", date)
	}

	var out models.HydrationResponse
	resp, err := req.SetResult(&out).Get("/api/hydration")
	if err != nil {
		return models.HydrationResponse{}, fmt.Errorf("get hydration request: %w", err)
	}
	if err = mapAPIError(resp); err != nil {
		return models.HydrationResponse{}, err
	}

	return out, nil
}

func (h *httpServerAdapter) LogWater(ctx context.Context, amount float64) (models.WaterLog, error) {
	var out models.WaterLogResponse
	resp, err := h.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(waterLogRequest{Amount: amount}).
		SetResult(&out).
		Post("/api/hydration")
	if err != nil {
		return models.WaterLog{}, fmt.Errorf("log water request: %w", err)
	}
	if err = mapAPIError(resp); err != nil {
		return models.WaterLog{}, err
	}
	if out.Log == nil {
		return models.WaterLog{}, errors.New("hydration response missing log")
	}

	return *out.Log, nil
}

func (h *httpServerAdapter) GetSleep(ctx context.Context, limit int) (models.SleepResponse, error) {
	req := h.request(ctx)
	if limit > 0 {
		req.SetQueryParam("limit", strconv.Itoa(limit))
	}

	var out models.SleepResponse
	resp, err := req.SetResult(&out).Get("/api/sleep")
	if err != nil {
		return models.SleepResponse{}, fmt.Errorf("get sleep request: %w", err)
	}
	if err = mapAPIError(resp); err != nil {
		return models.SleepResponse{}, err
	}

	return out, nil
}

func (h *httpServerAdapter) LogSleep(ctx context.Context, duration float64, quality int) (models.SleepLog, error) {
	var out models.SleepLogResponse
	resp, err := h.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(sleepLogRequest{Duration: duration, Quality: quality}).
		SetResult(&out).
		Post("/api/sleep")
	if err != nil {
		return models.SleepLog{}, fmt.Errorf("log sleep request: %w", err)
	}
	if err = mapAPIError(resp); err != nil {
		return models.SleepLog{}, err
	}
	if out.Log == nil {
		return models.SleepLog{}, errors.New("sleep response missing log")
	}

	return *out.Log, nil
}

func (h *httpServerAdapter) GetFastingStatus(ctx context.Context) (models.FastingStatusResponse, error) {
	var out models.FastingStatusResponse
	resp, err := h.request(ctx).
		SetResult(&out).
		Get("/api/fasting")
	if err != nil {
		return models.FastingStatusResponse{}, fmt.Errorf("get fasting status request: %w", err)
	}
	if err = mapAPIError(resp); err != nil {
		return models.FastingStatusResponse{}, err
	}

	return out, nil
}

func (h *httpServerAdapter) StartFasting(ctx context.Context, targetHours int) (models.FastingSession, error) {
	var out models.FastingSessionResponse
	resp, err := h.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(startFastingRequest{TargetDuration: targetHours}).
		SetResult(&out).
		Post("/api/fasting")
	if err != nil {
		return models.FastingSession{}, fmt.Errorf("start fasting request: %w", err)
	}
	if err = mapAPIError(resp); err != nil {
		return models.FastingSession{}, err
	}
	if out.Session == nil {
		return models.FastingSession{}, errors.New("fasting response missing session")
	}

	return *out.Session, nil
}

func (h *httpServerAdapter) EndFasting(ctx context.Context, sessionID int64) (float64, error) {
	var out models.FastingEndResponse
	resp, err := h.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(endFastingRequest{SessionID: sessionID}).
		SetResult(&out).
		Put("/api/fasting")
	if err != nil {
		return 0, fmt.Errorf("end fasting request: %w", err)
	}
	if err = mapAPIError(resp); err != nil {
		return 0, err
	}

	return out.ElapsedHours, nil
}

func (h *httpServerAdapter) GetWeightLogs(ctx context.Context, limit int) ([]models.WeightLog, error) {
	req := h.request(ctx)
	if limit > 0 {
		req.SetQueryParam("limit", strconv.Itoa(limit))
	}

	var out models.WeightLogsResponse
	resp, err := req.SetResult(&out).Get("/api/weight-logs")
	if err != nil {
		return nil, fmt.Errorf("get weight logs request: %w", err)
	}
	if err = mapAPIError(resp); err != nil {
		return nil, err
	}

	return out.Logs, nil
}

func (h *httpServerAdapter) LogWeight(ctx context.Context, weight float64) (models.WeightLog, error) {
	var out models.WeightLogResponse
	resp, err := h.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(weightLogRequest{Weight: weight}).
		SetResult(&out).
		Post("/api/weight-logs")
	if err != nil {
		return models.WeightLog{}, fmt.Errorf("log weight request: %w", err)
	}
	if err = mapAPIError(resp); err != nil {
		return models.WeightLog{}, err
	}
	if out.Log == nil {
		return models.WeightLog{}, errors.New("weight response missing log")
	}

	return *out.Log, nil
}
