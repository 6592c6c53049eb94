package adapter

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/nutriguide/go-nutri-client/models"
)

type friendActionRequest struct {
	Action       string `json:"action"`
	Username     string `json:"username,omitempty"`
	FriendshipID int64  `json:"friendship_id,omitempty"`
}

type createPostRequest struct {
	Content  string `json:"content"`
	ImageURL string `json:"image_url,omitempty"`
}

type createCommentRequest struct {
	Content string `json:"content"`
}

func (h *httpServerAdapter) GetFriends(ctx context.Context, status string) ([]models.Friend, error) {
	req := h.request(ctx)
	if status != "" {
		req.SetQueryParam("status", status)
	}

	var out models.FriendsResponse
	resp, err := req.SetResult(&out).Get("/api/social/friends")
	if err != nil {
		return nil, fmt.Errorf("get friends request: %w", err)
	}
	if err = mapAPIError(resp); err != nil {
		return nil, err
	}

	return out.Friends, nil
}

func (h *httpServerAdapter) SendFriendRequest(ctx context.Context, username string) error {
	resp, err := h.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(friendActionRequest{Action: "send", Username: username}).
		Post("/api/social/friends")
	if err != nil {
		return fmt.Errorf("send friend request: %w", err)
	}

	return mapAPIError(resp)
}

func (h *httpServerAdapter) RespondFriendRequest(ctx context.Context, friendshipID int64, accept bool) error {
	action := "reject"
	if accept {
		action = "accept"
	}

	resp, err := h.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(friendActionRequest{Action: action, FriendshipID: friendshipID}).
		Post("/api/social/friends")
	if err != nil {
		return fmt.Errorf("respond friend request: %w", err)
	}

	return mapAPIError(resp)
}

func (h *httpServerAdapter) RemoveFriend(ctx context.Context, friendshipID int64) error {
	resp, err := h.request(ctx).
		SetQueryParam("id", strconv.FormatInt(friendshipID, 10)).
		Delete("/api/social/friends")
	if err != nil {
		return fmt.Errorf("remove friend request: %w", err)
	}

	return mapAPIError(resp)
}

func (h *httpServerAdapter) GetFeed(ctx context.Context, userID int64, limit, offset int) (models.FeedResponse, error) {
	req := h.request(ctx)
	if userID > 0 {
		req.SetQueryParam("user_id", strconv.FormatInt(userID, 10))
	}
	if limit > 0 {
		req.SetQueryParam("limit", strconv.Itoa(limit))
	}
	if offset > 0 {
		req.SetQueryParam("offset", strconv.Itoa(offset))
	}

	var out models.FeedResponse
	resp, err := req.SetResult(&out).Get("/api/social/posts")
	if err != nil {
		return models.FeedResponse{}, fmt.Errorf("get feed request: %w", err)
	}
	if err = mapAPIError(resp); err != nil {
		return models.FeedResponse{}, err
	}

	return out, nil
}

func (h *httpServerAdapter) CreatePost(ctx context.Context, content, imageURL string) (models.Post, error) {
	var out models.PostResponse
	resp, err := h.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(createPostRequest{Content: content, ImageURL: imageURL}).
		SetResult(&out).
		Post("/api/social/posts")
	if err != nil {
		return models.Post{}, fmt.Errorf("create post request: %w", err)
	}
	if err = mapAPIError(resp); err != nil {
		return models.Post{}, err
	}
	if out.Post == nil {
		return models.Post{}, errors.New("post response missing post")
	}

	return *out.Post, nil
}

func (h *httpServerAdapter) LikePost(ctx context.Context, postID int64) (models.LikeResponse, error) {
	var out models.LikeResponse
	resp, err := h.request(ctx).
		SetResult(&out).
		Post("/api/social/posts/" + strconv.FormatInt(postID, 10) + "/like")
	if err != nil {
		return models.LikeResponse{}, fmt.Errorf("like post request: %w", err)
	}
	if err = mapAPIError(resp); err != nil {
		return models.LikeResponse{}, err
	}

	return out, nil
}

func (h *httpServerAdapter) GetComments(ctx context.Context, postID int64) ([]models.Comment, error) {
	var out models.CommentsResponse
	resp, err := h.request(ctx).
		SetResult(&out).
		Get("/api/social/posts/" + strconv.FormatInt(postID, 10) + "/comments")
	if err != nil {
		return nil, fmt.Errorf("get comments request: %w", err)
	}
	if err = mapAPIError(resp); err != nil {
		return nil, err
	}

	return out.Comments, nil
}

func (h *httpServerAdapter) AddComment(ctx context.Context, postID int64, content string) (models.Comment, error) {
	var out models.CommentResponse
	resp, err := h.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(createCommentRequest{Content: content}).
		SetResult(&out).
		Post("/api/social/posts/" + strconv.FormatInt(postID, 10) + "/comments")
	if err != nil {
		return models.Comment{}, fmt.Errorf("add comment request: %w", err)
	}
	if err = mapAPIError(resp); err != nil {
		return models.Comment{}, err
	}
	if out.Comment == nil {
		return models.Comment{}, errors.New("comment response missing comment")
	}

	return *out.Comment, nil
}

func (h *httpServerAdapter) SearchUsers(ctx context.Context, query string, limit int) ([]models.UserSearchHit, error) {
	req := h.request(ctx).SetQueryParam("q", query)
	if limit > 0 {
		req.SetQueryParam("limit", strconv.Itoa(limit))
	}

	var out models.UserSearchResponse
	resp, err := req.SetResult(&out).Get("/api/social/search-users")
	if err != nil {
		return nil, fmt.Errorf("search users request: %w", err)
	}
	if err = mapAPIError(resp); err != nil {
		return nil, err
	}

	return out.Users, nil
}
