package adapter

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/task-tracker/internal/config"
	"github.com/MKhiriev/task-tracker/internal/logger"
	"github.com/MKhiriev/task-tracker/internal/utils"
	"github.com/MKhiriev/task-tracker/models"
)

type httpTaskTrackerAdapter struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPTaskTrackerAdapter constructs the REST implementation of
// [TaskTrackerAdapter]. A token from cfg is reused for authenticated calls.
func NewHTTPTaskTrackerAdapter(cfg config.ClientConfig, logger *logger.Logger) (TaskTrackerAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.ServerURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidAddress, err)
	}

	adapter := &httpTaskTrackerAdapter{
		client: utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		logger: logger,
	}
	adapter.SetToken(cfg.Token)

	return adapter, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
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

func (h *httpTaskTrackerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpTaskTrackerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpTaskTrackerAdapter) Signup(ctx context.Context, request models.SignupRequest) (models.SignupResponse, error) {
	var created models.SignupResponse

	req := h.request(ctx).SetBody(request).SetResult(&created)
	if err := h.execute(req, http.MethodPost, "/auth/signup"); err != nil {
		return models.SignupResponse{}, fmt.Errorf("signup: %w", err)
	}

	return created, nil
}

// Login stores the token from the response body, falling back to the
// Authorization header.
func (h *httpTaskTrackerAdapter) Login(ctx context.Context, request models.LoginRequest) (models.LoginResponse, error) {
	var login models.LoginResponse

	req := h.request(ctx).SetBody(request).SetResult(&login)
	resp, err := req.Post("/auth/login")
	if err != nil {
		return models.LoginResponse{}, fmt.Errorf("login request: %w", err)
	}
	h.logResponse(resp)
	if err = mapHTTPError(resp); err != nil {
		return models.LoginResponse{}, fmt.Errorf("login: %w", err)
	}

	if login.Token == "" {
		login.Token, err = utils.ParseBearerToken(resp.Header().Get("Authorization"))
		if err != nil {
			return models.LoginResponse{}, fmt.Errorf("login parse bearer token: %w", err)
		}
	}

	h.SetToken(login.Token)
	return login, nil
}

func (h *httpTaskTrackerAdapter) Me(ctx context.Context) (models.PublicUser, error) {
	var profile models.PublicUser

	req, err := h.authedRequest(ctx)
	if err != nil {
		return models.PublicUser{}, err
	}
	if err = h.execute(req.SetResult(&profile), http.MethodGet, "/users/me"); err != nil {
		return models.PublicUser{}, fmt.Errorf("me: %w", err)
	}

	return profile, nil
}

func (h *httpTaskTrackerAdapter) CreateTask(ctx context.Context, request models.TaskRequest) (models.Task, error) {
	return h.taskCall(ctx, http.MethodPost, "/tasks", request, "create task")
}

func (h *httpTaskTrackerAdapter) ListTasks(ctx context.Context, query models.TaskListQuery) ([]models.Task, error) {
	tasks := []models.Task{}

	req, err := h.authedRequest(ctx)
	if err != nil {
		return nil, err
	}
	req.SetQueryParams(queryParams(query)).SetResult(&tasks)

	if err = h.execute(req, http.MethodGet, "/tasks"); err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}

	return tasks, nil
}

func (h *httpTaskTrackerAdapter) GetTask(ctx context.Context, taskID int64) (models.Task, error) {
	return h.taskCall(ctx, http.MethodGet, taskPath(taskID), nil, "get task")
}

func (h *httpTaskTrackerAdapter) UpdateTask(ctx context.Context, taskID int64, request models.UpdateTaskRequest) (models.Task, error) {
	return h.taskCall(ctx, http.MethodPut, taskPath(taskID), request, "update task")
}

func (h *httpTaskTrackerAdapter) CompleteTask(ctx context.Context, taskID int64, request models.StatusRequest) (models.Task, error) {
	return h.taskCall(ctx, http.MethodPatch, taskPath(taskID)+"/complete", request, "complete task")
}

func (h *httpTaskTrackerAdapter) DeleteTask(ctx context.Context, taskID int64) (models.Task, error) {
	return h.taskCall(ctx, http.MethodDelete, taskPath(taskID), nil, "delete task")
}

// taskCall sends an authenticated request whose response is a single task.
func (h *httpTaskTrackerAdapter) taskCall(ctx context.Context, method, path string, body any, op string) (models.Task, error) {
	var task models.Task

	req, err := h.authedRequest(ctx)
	if err != nil {
		return models.Task{}, err
	}
	if body != nil {
		req.SetBody(body)
	}

	if err = h.execute(req.SetResult(&task), method, path); err != nil {
		return models.Task{}, fmt.Errorf("%s: %w", op, err)
	}

	return task, nil
}

func (h *httpTaskTrackerAdapter) request(ctx context.Context) *resty.Request {
	return h.client.R().
		SetContext(ctx).
		SetError(&models.ErrorResponse{})
}

func (h *httpTaskTrackerAdapter) authedRequest(ctx context.Context) (*resty.Request, error) {
	token := h.Token()
	if token == "" {
		return nil, ErrNoToken
	}
	return h.request(ctx).SetHeader("Authorization", utils.BearerHeader(token)), nil
}

func (h *httpTaskTrackerAdapter) execute(req *resty.Request, method, path string) error {
	resp, err := req.Execute(method, path)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	h.logResponse(resp)

	return mapHTTPError(resp)
}

func (h *httpTaskTrackerAdapter) logResponse(resp *resty.Response) {
	h.logger.Debug().
		Str("method", resp.Request.Method).
		Str("url", resp.Request.URL).
		Int("status", resp.StatusCode()).
		Dur("duration", resp.Time()).
		Msg("response received")
}

func taskPath(taskID int64) string {
	return "/tasks/" + strconv.FormatInt(taskID, 10)
}

func queryParams(query models.TaskListQuery) map[string]string {
	params := map[string]string{}
	for key, value := range map[string]string{
		"status":  query.Status,
		"dueDate": query.DueDate,
		"limit":   query.Limit,
		"offset":  query.Offset,
	} {
		if value != "" {
			params[key] = value
		}
	}
	return params
}
