package adapter

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/nutriguide/go-nutri-client/models"
)

func (h *httpServerAdapter) GetWeeklyReport(ctx context.Context) (models.Report, error) {
	return h.getReport(ctx, "/api/reports/weekly")
}

func (h *httpServerAdapter) GetMonthlyReport(ctx context.Context) (models.Report, error) {
	return h.getReport(ctx, "/api/reports/monthly")
}

func (h *httpServerAdapter) getReport(ctx context.Context, path string) (models.Report, error) {
	var out models.ReportResponse
	resp, err := h.request(ctx).
		SetResult(&out).
		Get(path)
	if err != nil {
		return models.Report{}, fmt.Errorf("get report request: %w", err)
	}
	if err = mapAPIError(resp); err != nil {
		return models.Report{}, err
	}
	if out.Report == nil {
		return models.Report{}, errors.New("report response missing report")
	}

	return *out.Report, nil
}

func (h *httpServerAdapter) GetReportHistory(ctx context.Context, reportType string, limit int) ([]models.ReportHistoryEntry, error) {
	req := h.request(ctx)
	if reportType != "" {
		req.SetQueryParam("type", reportType)
	}
	if limit > 0 {
		req.SetQueryParam("limit", strconv.Itoa(limit))
	}

	var out models.ReportHistoryResponse
	resp, err := req.SetResult(&out).Get("/api/reports/history")
	if err != nil {
		return nil, fmt.Errorf("get report history request: %w", err)
	}
	if err = mapAPIError(resp); err != nil {
		return nil, err
	}

	return out.Reports, nil
}

func (h *httpServerAdapter) GetDashboardStats(ctx context.Context) (models.DashboardResponse, error) {
	var out models.DashboardResponse
	resp, err := h.request(ctx).
		SetResult(&out).
		Get("/api/dashboard/stats")
	if err != nil {
		return models.DashboardResponse{}, fmt.Errorf("get dashboard stats request: %w", err)
	}
	if err = mapAPIError(resp); err != nil {
		return models.DashboardResponse{}, err
	}

	return out, nil
}
