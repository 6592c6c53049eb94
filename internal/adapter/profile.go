package adapter

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/nutriguide/go-nutri-client/models"
)

// GetProfile reads the bare user record; unlike the PUT, the GET carries no
// envelope around it.
func (h *httpServerAdapter) GetProfile(ctx context.Context) (models.User, error) {
	var out models.User
	resp, err := h.request(ctx).
		SetResult(&out).
		Get("/api/user/profile")
	if err != nil {
		return models.User{}, fmt.Errorf("get profile request: %w", err)
	}
	if err = mapAPIError(resp); err != nil {
		return models.User{}, err
	}

	return out, nil
}

func (h *httpServerAdapter) UpdateProfile(ctx context.Context, update models.ProfileUpdate) (models.User, error) {
	var out models.ProfileResponse
	resp, err := h.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(update).
		SetResult(&out).
		Put("/api/user/profile")
	if err != nil {
		return models.User{}, fmt.Errorf("update profile request: %w", err)
	}
	if err = mapAPIError(resp); err != nil {
		return models.User{}, err
	}
	if out.User == nil {
		return models.User{}, errors.New("profile response missing user")
	}

	return *out.User, nil
}

func (h *httpServerAdapter) UploadProfilePicture(ctx context.Context, filename string, image io.Reader) (models.UploadResponse, error) {
	var out models.UploadResponse
	resp, err := h.request(ctx).
		SetFileReader("file", filename, image).
		SetResult(&out).
		Post("/api/user/upload-profile-picture")
	if err != nil {
		return models.UploadResponse{}, fmt.Errorf("upload profile picture request: %w", err)
	}
	if err = mapAPIError(resp); err != nil {
		return models.UploadResponse{}, err
	}

	return out, nil
}
