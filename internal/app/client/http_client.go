package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"itemstore/internal/app/client/config"
	"itemstore/internal/domain/item"

	"golang.org/x/exp/slog"
)

type httpClient struct {
	client    *http.Client
	config    *config.Config
	log       *slog.Logger
	baseURL   string
	userAgent string
}

func NewHTTPClient(cfg *config.Config, log *slog.Logger) (*httpClient, error) {
	client := &http.Client{
		Timeout: 30 * time.Second,
		Transport: &http.Transport{
			MaxIdleConns:        100,
			IdleConnTimeout:     90 * time.Second,
			MaxIdleConnsPerHost: 10,
		},
	}

	scheme := "http://"
	if cfg.EnableTLS {
		scheme = "https://"
	}

	return &httpClient{
		client:    client,
		config:    cfg,
		log:       log,
		baseURL:   scheme + cfg.ServerAddress,
		userAgent: "itemstore-client/" + clientVersion,
	}, nil
}

// HealthCheck verifies the server is reachable and healthy.
func (h *httpClient) HealthCheck(ctx context.Context) (*HealthStatus, error) {
	resp, err := h.doRequest(ctx, http.MethodGet, "/v1/health", nil)
	if err != nil {
		return nil, err
	}

	var env healthEnvelope
	if err := h.parseResponse(resp, &env); err != nil {
		return nil, err
	}
	if env.Error != nil {
		return nil, env.Error
	}
	return &env.Data, nil
}

// ListItems fetches one page of items.
func (h *httpClient) ListItems(ctx context.Context, params ListParams) ([]item.Item, *Pagination, error) {
	values := url.Values{}
	if params.Page > 0 {
		values.Set("page", strconv.Itoa(params.Page))
	}
	if params.Limit > 0 {
		values.Set("limit", strconv.Itoa(params.Limit))
	}
	if params.Sort != "" {
		values.Set("sort", params.Sort)
	}
	if params.Order != "" {
		values.Set("order", params.Order)
	}

	path := "/v1/items"
	if len(values) > 0 {
		path += "?" + values.Encode()
	}

	resp, err := h.doRequest(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, nil, err
	}

	var env listEnvelope
	if err := h.parseResponse(resp, &env); err != nil {
		return nil, nil, err
	}
	if env.Error != nil {
		return nil, nil, env.Error
	}
	return env.Data, env.Meta.Pagination, nil
}

func (h *httpClient) GetItem(ctx context.Context, id string) (*item.Item, error) {
	resp, err := h.doRequest(ctx, http.MethodGet, "/v1/items/"+url.PathEscape(id), nil)
	if err != nil {
		return nil, err
	}
	return h.parseSingle(resp)
}

func (h *httpClient) CreateItem(ctx context.Context, name, description string) (*item.Item, error) {
	body := resourceBody[createAttributes]{
		Data: resource[createAttributes]{
			Type: "item",
			Attributes: createAttributes{
				Name:        name,
				Description: description,
			},
		},
	}

	resp, err := h.doRequest(ctx, http.MethodPost, "/v1/items", body)
	if err != nil {
		return nil, err
	}
	return h.parseSingle(resp)
}

func (h *httpClient) UpdateItem(ctx context.Context, id string, name, description *string) (*item.Item, error) {
	body := resourceBody[updateAttributes]{
		Data: resource[updateAttributes]{
			Type: "item",
			Attributes: updateAttributes{
				Name:        name,
				Description: description,
			},
		},
	}

	resp, err := h.doRequest(ctx, http.MethodPatch, "/v1/items/"+url.PathEscape(id), body)
	if err != nil {
		return nil, err
	}
	return h.parseSingle(resp)
}

func (h *httpClient) DeleteItem(ctx context.Context, id string) error {
	resp, err := h.doRequest(ctx, http.MethodDelete, "/v1/items/"+url.PathEscape(id), nil)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNoContent {
		return nil
	}
	return h.decodeError(resp)
}

func (h *httpClient) doRequest(ctx context.Context, method, path string, body any) (*http.Response, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshal request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, h.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("User-Agent", h.userAgent)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := h.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("server unreachable: %w", err)
	}
	return resp, nil
}

func (h *httpClient) parseSingle(resp *http.Response) (*item.Item, error) {
	var env singleEnvelope
	if err := h.parseResponse(resp, &env); err != nil {
		return nil, err
	}
	if env.Error != nil {
		return nil, env.Error
	}
	return &env.Data, nil
}

// parseResponse decodes success and error envelopes alike; both carry
// the same outer shape, so one decode covers both branches.
func (h *httpClient) parseResponse(resp *http.Response, out any) error {
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if err := json.Unmarshal(payload, out); err != nil {
		return fmt.Errorf("decode response (status %d): %w", resp.StatusCode, err)
	}
	return nil
}

func (h *httpClient) decodeError(resp *http.Response) error {
	defer resp.Body.Close()

	var env struct {
		Error *APIError `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil || env.Error == nil {
		return fmt.Errorf("server returned status %d", resp.StatusCode)
	}
	return env.Error
}
