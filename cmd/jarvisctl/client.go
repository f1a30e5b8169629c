package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

const apiPrefix = "/api/v1/assistant"

type commandResp struct {
	Message              string   `json:"message" yaml:"message"`
	RequiresConfirmation bool     `json:"requiresConfirmation,omitempty" yaml:"requiresConfirmation,omitempty"`
	PendingID            string   `json:"pendingId,omitempty" yaml:"pendingId,omitempty"`
	Confidence           *float64 `json:"confidence,omitempty" yaml:"confidence,omitempty"`
	ActionsExecuted      *int     `json:"actionsExecuted,omitempty" yaml:"actionsExecuted,omitempty"`
	Source               string   `json:"source,omitempty" yaml:"source,omitempty"`
}

type pendingResp struct {
	ID              string   `json:"id" yaml:"id"`
	Actions         []string `json:"actions" yaml:"actions"`
	OriginalCommand string   `json:"originalCommand" yaml:"originalCommand"`
	Confidence      float64  `json:"confidence" yaml:"confidence"`
	IsGenerated     bool     `json:"isGenerated" yaml:"isGenerated"`
	Explanation     string   `json:"explanation,omitempty" yaml:"explanation,omitempty"`
	CreatedAt       string   `json:"createdAt" yaml:"createdAt"`
}

type statsResp struct {
	TotalCommands  int `json:"totalCommands" yaml:"totalCommands"`
	TotalHistory   int `json:"totalHistory" yaml:"totalHistory"`
	IntentPatterns int `json:"intentPatterns" yaml:"intentPatterns"`
}

// apiError is a non-2xx answer from the assistant.
type apiError struct {
	Status  int
	Message string
}

func (e *apiError) Error() string {
	return fmt.Sprintf("%s (HTTP %d)", e.Message, e.Status)
}

type client struct {
	base string
	http *http.Client
}

func newClient(opts *options) *client {
	return &client{
		base: strings.TrimRight(opts.server, "/"),
		http: &http.Client{Timeout: opts.timeout},
	}
}

func (c *client) say(ctx context.Context, text string) (commandResp, error) {
	var out commandResp
	err := c.do(ctx, http.MethodPost, "/command", map[string]string{"text": text}, &out)
	return out, err
}

func (c *client) confirm(ctx context.Context) (commandResp, error) {
	var out commandResp
	err := c.do(ctx, http.MethodPost, "/confirm", nil, &out)
	return out, err
}

func (c *client) cancel(ctx context.Context) (commandResp, error) {
	var out commandResp
	err := c.do(ctx, http.MethodPost, "/cancel", nil, &out)
	return out, err
}

func (c *client) pending(ctx context.Context) (pendingResp, error) {
	var out pendingResp
	err := c.do(ctx, http.MethodGet, "/pending", nil, &out)
	return out, err
}

func (c *client) stats(ctx context.Context) (statsResp, error) {
	var out statsResp
	err := c.do(ctx, http.MethodGet, "/stats", nil, &out)
	return out, err
}

func (c *client) do(ctx context.Context, method, path string, body, out any) error {
	var rd io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		rd = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.base+apiPrefix+path, rd)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request %s: %w", path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var e struct {
			Error   string `json:"error"`
			Message string `json:"message"`
		}
		_ = json.Unmarshal(data, &e)
		msg := e.Error
		if msg == "" {
			msg = e.Message
		}
		if msg == "" {
			msg = http.StatusText(resp.StatusCode)
		}
		return &apiError{Status: resp.StatusCode, Message: msg}
	}

	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
