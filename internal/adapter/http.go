package adapter

import (
	"context"
	"fmt"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"

	"github.com/nutriguide/go-nutri-client/internal/config"
	"github.com/nutriguide/go-nutri-client/internal/logger"
)

type httpServerAdapter struct {
	client *resty.Client
	log    *logger.Logger

	mu     sync.RWMutex
	token  string
	tokens TokenStore
}

// NewHTTPServerAdapter builds the REST implementation of [ServerAdapter].
// tokens may be nil, in which case the bearer token lives in memory only.
func NewHTTPServerAdapter(cfg config.ClientAdapter, tokens TokenStore, log *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("error normalize base url: %w", err)
	}

	// The backend issues a session cookie alongside the bearer token; a jar
	// keeps it flowing back on subsequent requests.
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("error create cookie jar: %w", err)
	}

	cli := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(cfg.RequestTimeout).
		SetCookieJar(jar)

	return &httpServerAdapter{client: cli, tokens: tokens, log: log}, nil
}

func (h *httpServerAdapter) SetToken(ctx context.Context, token string) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	token = strings.TrimSpace(token)
	if h.tokens != nil {
		if err := h.tokens.SaveToken(ctx, token); err != nil {
			return fmt.Errorf("error persist token: %w", err)
		}
	}
	h.token = token

	return nil
}

func (h *httpServerAdapter) ClearToken(ctx context.Context) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.tokens != nil {
		if err := h.tokens.DeleteToken(ctx); err != nil {
			return fmt.Errorf("error delete persisted token: %w", err)
		}
	}
	h.token = ""

	return nil
}

func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// request is the shared request primitive: context, request id, and the
// bearer token when one is held. Every endpoint method goes through it.
func (h *httpServerAdapter) request(ctx context.Context) *resty.Request {
	req := h.client.R().
		SetContext(ctx).
		SetHeader("X-Request-Id", uuid.NewString())
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty base url")
	}
	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("parse base url %q: %w", raw, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", fmt.Errorf("unsupported scheme %q in base url", u.Scheme)
	}
	if u.Host == "" {
		return "", fmt.Errorf("missing host in base url %q", raw)
	}

	return strings.TrimRight(u.String(), "/"), nil
}
