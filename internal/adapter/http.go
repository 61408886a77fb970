package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/MKhiriev/shelfsync/internal/config"
	"github.com/MKhiriev/shelfsync/internal/logger"
	"github.com/MKhiriev/shelfsync/internal/utils"
	"github.com/MKhiriev/shelfsync/models"
	"github.com/go-resty/resty/v2"
)

// APIKeyHeader carries the shared API key on every request.
const APIKeyHeader = "X-API-Key"

const snapshotPath = "/api/users/{userID}/snapshot"

type httpServerAdapter struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of [ServerAdapter].
// The base URL is normalised from cfg.HTTPAddress ("host:port" gets an http
// scheme); cfg.APIKey is attached to every request.
//
// An empty address yields an adapter whose network methods all fail with
// [ErrNotConfigured] without sending anything, so a client can run offline.
func NewHTTPServerAdapter(cfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	if strings.TrimSpace(cfg.HTTPAddress) == "" {
		logger.Warn().Msg("server address is not configured, adapter works offline")
		return &httpServerAdapter{logger: logger}, nil
	}

	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient(baseURL, cfg.RequestTimeout)
	client.SetHeader(APIKeyHeader, cfg.APIKey)

	return &httpServerAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrNotConfigured
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [ServerAdapter]. The token is whitespace-trimmed.
func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [ServerAdapter].
func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Register implements [ServerAdapter]. It POSTs the credentials to
// /api/auth/register and takes the bearer token from the Authorization
// response header.
func (h *httpServerAdapter) Register(ctx context.Context, user models.User) (models.User, error) {
	return h.authenticate(ctx, "/api/auth/register", user)
}

// Login implements [ServerAdapter]. It POSTs the credentials to
// /api/auth/login and takes the bearer token from the Authorization
// response header.
func (h *httpServerAdapter) Login(ctx context.Context, user models.User) (models.User, error) {
	return h.authenticate(ctx, "/api/auth/login", user)
}

func (h *httpServerAdapter) authenticate(ctx context.Context, path string, user models.User) (models.User, error) {
	if h.client == nil {
		return models.User{}, ErrNotConfigured
	}

	var result models.User

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(user).
		SetResult(&result).
		Post(path)
	if err != nil {
		return models.User{}, fmt.Errorf("%s request: %w", path, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return models.User{}, fmt.Errorf("%s parse bearer token: %w", path, err)
	}
	h.SetToken(token)

	if result.Login == "" {
		result.Login = user.Login
	}
	result.Password = ""
	return result, nil
}

// Ping implements [ServerAdapter] with GET /api/ping.
func (h *httpServerAdapter) Ping(ctx context.Context) error {
	if h.client == nil {
		return ErrNotConfigured
	}

	resp, err := h.client.R().SetContext(ctx).Get("/api/ping")
	if err != nil {
		return fmt.Errorf("ping request: %w", err)
	}
	return mapHTTPError(resp)
}

// FetchSnapshot implements [ServerAdapter] with GET /api/users/{userID}/snapshot.
func (h *httpServerAdapter) FetchSnapshot(ctx context.Context, userID string) (models.Snapshot, error) {
	if h.client == nil {
		return models.Snapshot{}, ErrNotConfigured
	}

	resp, err := h.authedRequest(ctx).
		SetPathParam("userID", userID).
		Get(snapshotPath)
	if err != nil {
		return models.Snapshot{}, fmt.Errorf("fetch snapshot request: %w", err)
	}
	if err = mapSnapshotError(resp); err != nil {
		return models.Snapshot{}, err
	}

	var snapshot models.Snapshot
	if err = json.Unmarshal(resp.Body(), &snapshot); err != nil {
		return models.Snapshot{}, fmt.Errorf("decode snapshot response: %w", err)
	}
	return snapshot, nil
}

// UpsertSnapshot implements [ServerAdapter] with PUT /api/users/{userID}/snapshot.
func (h *httpServerAdapter) UpsertSnapshot(ctx context.Context, userID string, snapshot models.Snapshot) error {
	if h.client == nil {
		return ErrNotConfigured
	}

	resp, err := h.authedRequest(ctx).
		SetPathParam("userID", userID).
		SetHeader("Content-Type", "application/json").
		SetBody(snapshot).
		Put(snapshotPath)
	if err != nil {
		return fmt.Errorf("upsert snapshot request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}
