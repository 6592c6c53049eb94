package adapter

import (
	"context"
	"fmt"

	"github.com/nutriguide/go-nutri-client/models"
)

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *httpServerAdapter) Register(ctx context.Context, username, email, password string) (models.AuthResponse, error) {
	var out models.AuthResponse
	resp, err := h.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(registerRequest{Username: username, Email: email, Password: password}).
		SetResult(&out).
		Post("/api/register")
	if err != nil {
		return models.AuthResponse{}, fmt.Errorf("register request: %w", err)
	}
	if err = mapAPIError(resp); err != nil {
		return models.AuthResponse{}, err
	}

	return out, nil
}

func (h *httpServerAdapter) Login(ctx context.Context, email, password string) (models.AuthResponse, error) {
	var out models.AuthResponse
	resp, err := h.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(loginRequest{Email: email, Password: password}).
		SetResult(&out).
		Post("/api/login")
	if err != nil {
		return models.AuthResponse{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapAPIError(resp); err != nil {
		return models.AuthResponse{}, err
	}

	return out, nil
}

func (h *httpServerAdapter) Logout(ctx context.Context) error {
	resp, err := h.request(ctx).Post("/api/logout")
	if err != nil {
		return fmt.Errorf("logout request: %w", err)
	}

	return mapAPIError(resp)
}
