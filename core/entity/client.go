package entity

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
)

// requestInput is the wire shape of one batched request.
type requestInput struct {
	Operation Operation     `json:"operation"`
	Type      Type          `json:"type"`
	Params    requestParams `json:"params"`
}

type requestParams struct {
	Entity   any    `json:"entity,omitempty"`
	Token    string `json:"token"`
	Location string `json:"location"`
}

// NewClient creates an HTTP-backed Channel for the ledger backend.
func NewClient(cfg Config) (Channel, error) {
	if cfg.URL == "" {
		return nil, fmt.Errorf("backend url is required")
	}

	timeout := cfg.TimeoutSeconds
	if timeout <= 0 {
		timeout = 30
	}
	timeoutDuration := time.Duration(timeout) * time.Second

	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   timeoutDuration,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		ForceAttemptHTTP2:     true,
		MaxIdleConns:          100,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   timeoutDuration,
		ExpectContinueTimeout: 1 * time.Second,
		ResponseHeaderTimeout: timeoutDuration,
	}

	return &client{
		url: strings.TrimSuffix(cfg.URL, "/"),
		key: cfg.ApiKey,
		http: &http.Client{
			Transport: transport,
			Timeout:   timeoutDuration,
		},
	}, nil
}

type client struct {
	url  string
	key  string
	http *http.Client
}

// RequestMany posts one batch of requests to the backend.
// Items missing a token or location are logged and skipped rather than
// failing the whole batch.
func (c *client) RequestMany(ctx context.Context, typ Type, op Operation, items []Item) error {
	inputs := make([]requestInput, 0, len(items))

	for _, item := range items {
		if item.Token == "" || item.Location == "" {
			zap.L().Error("Invalid entity requested",
				zap.String("token", item.Token),
				zap.String("location", item.Location))
			continue
		}

		inputs = append(inputs, requestInput{
			Operation: op,
			Type:      typ,
			Params: requestParams{
				Entity:   item.Entity,
				Token:    item.Token,
				Location: item.Location,
			},
		})
	}

	if len(inputs) == 0 {
		return nil
	}

	body, err := json.Marshal(inputs)
	if err != nil {
		return fmt.Errorf("failed to encode entity requests: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url+"/entity/request", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build entity request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	if c.key != "" {
		req.Header.Set("X-Api-Key", c.key)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("failed to submit entity requests: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("backend rejected entity requests: status %d: %s", resp.StatusCode, string(snippet))
	}

	return nil
}
