// Package asana implements the REST client for the hosted task
// service: plain JSON over HTTPS with bearer-token auth. Every method
// is a single blocking request; nothing is cached or retried.
package asana

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"
	"github.com/lightningnetwork/lnd/fn/v2"
)

// DefaultBaseURL is the production API root.
const DefaultBaseURL = "https://app.asana.com/api/1.0"

// defaultTimeout bounds each request; a short-lived CLI should fail
// fast rather than hang.
const defaultTimeout = 30 * time.Second

// ClientConfig configures a Client. Zero values fall back to
// production defaults.
type ClientConfig struct {
	// APIKey is the personal access token sent as a bearer token.
	APIKey string

	// BaseURL overrides the API root, without a trailing slash.
	// Tests point this at a local server.
	BaseURL string

	// HTTPClient overrides the underlying HTTP client.
	HTTPClient *http.Client

	// Logger receives per-request debug lines.
	Logger *slog.Logger
}

// Client talks to the task service. It is safe for sequential use by a
// single invocation; it keeps no mutable state beyond the stamped
// request ID.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	log        *slog.Logger

	// requestID tags every request of this invocation, both in the
	// X-Client-Request-Id header and in debug logs.
	requestID string
}

// NewClient builds a Client from the given configuration.
func NewClient(cfg ClientConfig) *Client {
	c := &Client{
		apiKey:     cfg.APIKey,
		baseURL:    cfg.BaseURL,
		httpClient: cfg.HTTPClient,
		log:        cfg.Logger,
		requestID:  uuid.NewString(),
	}
	if c.baseURL == "" {
		c.baseURL = DefaultBaseURL
	}
	if c.httpClient == nil {
		c.httpClient = &http.Client{Timeout: defaultTimeout}
	}
	if c.log == nil {
		c.log = slog.Default()
	}
	return c
}

// ListWorkspaces returns the caller's workspaces in service order.
func (c *Client) ListWorkspaces(ctx context.Context) ([]Workspace, error) {
	var out []Workspace
	err := c.get(ctx, "workspaces", nil, &out)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ListProjects returns the projects of one workspace.
func (c *Client) ListProjects(
	ctx context.Context, workspaceID string,
) ([]Project, error) {

	query := url.Values{"workspace": {workspaceID}}

	var out []Project
	if err := c.get(ctx, "projects", query, &out); err != nil {
		return nil, err
	}

	for i := range out {
		out[i].WorkspaceID = workspaceID
	}
	return out, nil
}

// ListUsers returns the members of one workspace.
func (c *Client) ListUsers(
	ctx context.Context, workspaceID string,
) ([]User, error) {

	var out []User
	path := "workspaces/" + workspaceID + "/users"
	if err := c.get(ctx, path, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListWorkspaceTasks lists the caller's tasks across a workspace. The
// API rejects workspace-wide task queries without an assignee, so the
// filter is always assignee=me.
func (c *Client) ListWorkspaceTasks(
	ctx context.Context, workspaceID string, showCompleted bool,
) ([]Task, error) {

	query := url.Values{
		"workspace": {workspaceID},
		"assignee":  {"me"},
	}
	if !showCompleted {
		query.Set("completed_since", "now")
	}

	var out []Task
	if err := c.get(ctx, "tasks", query, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListProjectTasks lists a project's tasks. The API cannot filter on
// project and assignee at once, so when an assignee filter is given
// the assignee field is requested and the filtering happens here.
func (c *Client) ListProjectTasks(
	ctx context.Context, projectID string, showCompleted bool,
	assignee fn.Option[string],
) ([]Task, error) {

	query := url.Values{"project": {projectID}}
	if assignee.IsSome() {
		query.Set("opt_fields", "name,assignee")
	}
	if !showCompleted {
		query.Set("completed_since", "now")
	}

	var out []Task
	if err := c.get(ctx, "tasks", query, &out); err != nil {
		return nil, err
	}

	if assignee.IsNone() {
		return out, nil
	}

	want := assignee.UnwrapOr("")
	filtered := make([]Task, 0, len(out))
	for _, task := range out {
		if task.Assignee != nil && task.Assignee.ID == want {
			filtered = append(filtered, task)
		}
	}
	return filtered, nil
}

// CreateTask creates a task in a workspace. An absent assignee assigns
// the caller; dueOn is a YYYY-MM-DD date.
func (c *Client) CreateTask(
	ctx context.Context, workspaceID, name string,
	assignee fn.Option[string], dueOn fn.Option[string],
) (Task, error) {

	payload := map[string]any{
		"workspace": workspaceID,
		"name":      name,
		"assignee":  assignee.UnwrapOr("me"),
	}
	dueOn.WhenSome(func(d string) {
		payload["due_on"] = d
	})

	var out Task
	err := c.send(ctx, http.MethodPost, "tasks", payload, &out)
	if err != nil {
		return Task{}, err
	}
	return out, nil
}

// AttachProject adds an existing task to a project.
func (c *Client) AttachProject(
	ctx context.Context, taskID, projectID string,
) error {

	path := "tasks/" + taskID + "/addProject"
	payload := map[string]any{"project": projectID}
	return c.send(ctx, http.MethodPost, path, payload, nil)
}

// CompleteTask marks a task as completed.
func (c *Client) CompleteTask(ctx context.Context, taskID string) error {
	payload := map[string]any{"completed": true}
	return c.send(ctx, http.MethodPut, "tasks/"+taskID, payload, nil)
}

// CommentTask posts a comment to a task's activity feed.
func (c *Client) CommentTask(
	ctx context.Context, taskID, text string,
) error {

	path := "tasks/" + taskID + "/stories"
	payload := map[string]any{"text": text}
	return c.send(ctx, http.MethodPost, path, payload, nil)
}

// CurrentUserID returns the authenticated caller's user ID.
func (c *Client) CurrentUserID(ctx context.Context) (string, error) {
	var out User
	if err := c.get(ctx, "users/me", nil, &out); err != nil {
		return "", err
	}
	return out.ID, nil
}

// get performs a GET request and decodes the data envelope into out.
func (c *Client) get(
	ctx context.Context, path string, query url.Values, out any,
) error {

	if len(query) > 0 {
		path = path + "?" + query.Encode()
	}
	return c.do(ctx, http.MethodGet, path, nil, out)
}

// send performs a POST or PUT with the payload wrapped in the data
// envelope the API expects.
func (c *Client) send(
	ctx context.Context, method, path string, payload, out any,
) error {

	body, err := json.Marshal(map[string]any{"data": payload})
	if err != nil {
		return fmt.Errorf("encode request: %w", err)
	}
	return c.do(ctx, method, path, body, out)
}

func (c *Client) do(
	ctx context.Context, method, path string, body []byte, out any,
) error {

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(
		ctx, method, c.baseURL+"/"+path, reader,
	)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Client-Request-Id", c.requestID)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	c.log.Debug("api request",
		"method", method,
		"path", path,
		"status", resp.StatusCode,
		"elapsed", time.Since(start),
		"request_id", c.requestID,
	)

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%s %s: read response: %w", method, path, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%s %s: %s", method, path,
			apiErrorMessage(raw, resp.StatusCode))
	}

	if out == nil {
		return nil
	}

	envelope := struct {
		Data json.RawMessage `json:"data"`
	}{}
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return fmt.Errorf("%s %s: decode response: %w",
			method, path, err)
	}
	if err := json.Unmarshal(envelope.Data, out); err != nil {
		return fmt.Errorf("%s %s: decode response data: %w",
			method, path, err)
	}
	return nil
}

// apiErrorMessage extracts the first service error message from an
// error response body, falling back to the HTTP status.
func apiErrorMessage(raw []byte, status int) string {
	payload := struct {
		Errors []struct {
			Message string `json:"message"`
		} `json:"errors"`
	}{}

	if err := json.Unmarshal(raw, &payload); err == nil &&
		len(payload.Errors) > 0 && payload.Errors[0].Message != "" {

		return fmt.Sprintf("%s (http %d)",
			payload.Errors[0].Message, status)
	}

	return fmt.Sprintf("http %d: %s", status, http.StatusText(status))
}
