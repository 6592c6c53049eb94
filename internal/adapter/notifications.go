package adapter

import (
	"context"
	"fmt"
	"strconv"

	"github.com/nutriguide/go-nutri-client/models"
)

type notificationUpdateRequest struct {
	ID      int64 `json:"id,omitempty"`
	MarkAll bool  `json:"mark_all,omitempty"`
}

func (h *httpServerAdapter) GetNotifications(ctx context.Context, unreadOnly bool, limit int) (models.NotificationsResponse, error) {
	req := h.request(ctx).
		SetQueryParam("unread_only", strconv.FormatBool(unreadOnly))
	if limit > 0 {
		req.SetQueryParam("limit", strconv.Itoa(limit))
	}

	var out models.NotificationsResponse
	resp, err := req.SetResult(&out).Get("/api/notifications")
	if err != nil {
		return models.NotificationsResponse{}, fmt.Errorf("get notifications request: %w", err)
	}
	if err = mapAPIError(resp); err != nil {
		return models.NotificationsResponse{}, err
	}

	return out, nil
}

func (h *httpServerAdapter) MarkNotificationRead(ctx context.Context, id int64) error {
	resp, err := h.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(notificationUpdateRequest{ID: id}).
		Put("/api/notifications")
	if err != nil {
		return fmt.Errorf("mark notification read request: %w", err)
	}

	return mapAPIError(resp)
}

func (h *httpServerAdapter) MarkAllNotificationsRead(ctx context.Context) error {
	resp, err := h.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(notificationUpdateRequest{MarkAll: true}).
		Put("/api/notifications")
	if err != nil {
		return fmt.Errorf("mark all notifications read request: %w", err)
	}

	return mapAPIError(resp)
}
