// Package client is a small typed client for the local tasks API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"gin-task-forms/internal/domain"
)

// APIError carries the envelope message of a non-2xx response.
type APIError struct {
	Status int
	Msg    string
}

func (e *APIError) Error() string { return fmt.Sprintf("%d: %s", e.Status, e.Msg) }

type Client struct {
	BaseURL string // e.g. http://127.0.0.1:4180/api
	HTTP    *http.Client
}

func New(baseURL string, timeout time.Duration) *Client {
	return &Client{BaseURL: strings.TrimRight(baseURL, "/"), HTTP: &http.Client{Timeout: timeout}}
}

type envelope struct {
	Code int             `json:"code"`
	Msg  string          `json:"msg"`
	Data json.RawMessage `json:"data"`
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return err
		}
		rd = bytes.NewReader(b)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, rd)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := c.HTTP.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer res.Body.Close()

	var env envelope
	if err := json.NewDecoder(res.Body).Decode(&env); err != nil {
		return &APIError{Status: res.StatusCode, Msg: "invalid response body"}
	}
	if res.StatusCode < 200 || res.StatusCode > 299 {
		return &APIError{Status: res.StatusCode, Msg: env.Msg}
	}
	if out == nil {
		return nil
	}
	return json.Unmarshal(env.Data, out)
}

type TaskInput struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Status      string `json:"status,omitempty"`
}

func (c *Client) CreateTask(ctx context.Context, in TaskInput) (domain.Task, error) {
	var t domain.Task
	err := c.do(ctx, http.MethodPost, "/tasks", in, &t)
	return t, err
}

func (c *Client) ListTasks(ctx context.Context) ([]domain.Task, error) {
	var out struct {
		Items []domain.Task `json:"items"`
	}
	if err := c.do(ctx, http.MethodGet, "/tasks", nil, &out); err != nil {
		return nil, err
	}
	return out.Items, nil
}

func (c *Client) DeleteTask(ctx context.Context, id int64) (domain.Task, error) {
	var out struct {
		Deleted domain.Task `json:"deleted"`
	}
	err := c.do(ctx, http.MethodDelete, "/tasks/"+strconv.FormatInt(id, 10), nil, &out)
	return out.Deleted, err
}
