// Package client talks to a tablero server over HTTP
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/thenoetrevino/tablero/internal/api"
	"github.com/thenoetrevino/tablero/internal/models"
	"github.com/thenoetrevino/tablero/internal/reorder"
)

const defaultTimeout = 10 * time.Second

// Error is a non-2xx answer from the server
type Error struct {
	StatusCode int
	Message    string
}

func (e *Error) Error() string {
	return fmt.Sprintf("server returned %d: %s", e.StatusCode, e.Message)
}

// Unwrap lets callers use errors.Is with the model sentinels
func (e *Error) Unwrap() error {
	switch e.StatusCode {
	case http.StatusBadRequest:
		return models.ErrInvalidInput
	case http.StatusNotFound:
		return models.ErrNotFound
	case http.StatusConflict:
		return models.ErrConflict
	default:
		return nil
	}
}

// Client is a typed client for the tablero HTTP API
type Client struct {
	baseURL *url.URL
	http    *http.Client
}

// Option configures a Client
type Option func(*Client)

// WithHTTPClient replaces the underlying http.Client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// New creates a client for the server at addr ("host:port" or a full URL)
func New(addr string, opts ...Option) (*Client, error) {
	if !strings.Contains(addr, "://") {
		addr = "http://" + addr
	}
	u, err := url.Parse(strings.TrimRight(addr, "/"))
	if err != nil {
		return nil, fmt.Errorf("invalid server address %q: %w", addr, err)
	}

	c := &Client{
		baseURL: u,
		http:    &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

var _ reorder.Persister = (*Client)(nil)

// Health checks that the server is reachable
func (c *Client) Health(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, "/api/health", nil, nil)
}

// ListProjects returns every project
func (c *Client) ListProjects(ctx context.Context) ([]*models.Project, error) {
	var projects []*models.Project
	err := c.do(ctx, http.MethodGet, "/api/projects", nil, &projects)
	return projects, err
}

// LoadBoard returns a project's columns and cards
func (c *Client) LoadBoard(ctx context.Context, projectID int) (*models.Board, error) {
	var board models.Board
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/projects/%d/board", projectID), nil, &board); err != nil {
		return nil, err
	}
	return &board, nil
}

// TaskDetail returns one card with its labels and checklist
func (c *Client) TaskDetail(ctx context.Context, taskID int) (*models.TaskDetail, error) {
	var detail models.TaskDetail
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/tasks/%d", taskID), nil, &detail); err != nil {
		return nil, err
	}
	return &detail, nil
}

// MoveTask moves a task to position within a column
func (c *Client) MoveTask(ctx context.Context, taskID, columnID, position int) error {
	body := api.MoveRequest{ColumnID: columnID, Position: position}
	return c.do(ctx, http.MethodPut, fmt.Sprintf("/api/tasks/%d/move", taskID), body, nil)
}

// ReorderColumns sets the full column order of a project
func (c *Client) ReorderColumns(ctx context.Context, projectID int, columnIDs []int) error {
	body := api.OrderRequest{IDs: columnIDs}
	return c.do(ctx, http.MethodPut, fmt.Sprintf("/api/projects/%d/columns/order", projectID), body, nil)
}

// ListTasksByStatus returns tasks whose column maps to status (projectID 0 = all projects)
func (c *Client) ListTasksByStatus(ctx context.Context, projectID int, status string) ([]*models.TaskDetail, error) {
	q := url.Values{"status": {status}}
	if projectID > 0 {
		q.Set("project", strconv.Itoa(projectID))
	}
	var tasks []*models.TaskDetail
	err := c.do(ctx, http.MethodGet, "/api/tasks?"+q.Encode(), nil, &tasks)
	return tasks, err
}

// MapStatus asks the server which status a column name maps to
func (c *Client) MapStatus(ctx context.Context, name string) (api.StatusMapping, error) {
	var m api.StatusMapping
	err := c.do(ctx, http.MethodGet, "/api/statuses/map?"+url.Values{"name": {name}}.Encode(), nil, &m)
	return m, err
}

// PersistMove saves one drag/drop move on the server.
// Task moves become PUT /tasks/:id/move; column moves rewrite the project's column order.
func (c *Client) PersistMove(ctx context.Context, move reorder.Move) error {
	switch move.ItemType {
	case reorder.ItemTask:
		return c.MoveTask(ctx, move.ItemID, move.ToContainerID, move.Position)
	case reorder.ItemColumn:
		ids := make([]int, 0, len(move.Placements))
		for _, p := range move.Placements {
			if p.ContainerID == move.ToContainerID {
				ids = append(ids, p.ItemID)
			}
		}
		return c.ReorderColumns(ctx, move.ToContainerID, ids)
	default:
		return fmt.Errorf("unknown item type %q", move.ItemType)
	}
}

// do sends a JSON request and decodes the envelope's data into out (if non-nil)
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL.String()+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	var env api.Envelope[json.RawMessage]
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("decoding response: %w", err)
	}

	if resp.StatusCode >= 300 || !env.Success {
		msg := env.Error
		if msg == "" {
			msg = http.StatusText(resp.StatusCode)
		}
		return &Error{StatusCode: resp.StatusCode, Message: msg}
	}

	if out == nil || len(env.Data) == 0 {
		return nil
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("decoding response data: %w", err)
	}
	return nil
}
