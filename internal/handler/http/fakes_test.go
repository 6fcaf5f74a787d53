package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/task-tracker/internal/config"
	"github.com/MKhiriev/task-tracker/internal/logger"
	"github.com/MKhiriev/task-tracker/internal/service"
	"github.com/MKhiriev/task-tracker/models"
)

// ---- func-field fakes of the service layer ----

type fakeAuthService struct {
	registerFn    func(ctx context.Context, request models.SignupRequest) (models.User, error)
	loginFn       func(ctx context.Context, request models.LoginRequest) (models.User, error)
	createTokenFn func(ctx context.Context, user models.User) (models.Token, error)
	parseTokenFn  func(ctx context.Context, token string) (models.Token, error)
}

func (f *fakeAuthService) RegisterUser(ctx context.Context, request models.SignupRequest) (models.User, error) {
	return f.registerFn(ctx, request)
}

func (f *fakeAuthService) Login(ctx context.Context, request models.LoginRequest) (models.User, error) {
	return f.loginFn(ctx, request)
}

func (f *fakeAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	return f.createTokenFn(ctx, user)
}

func (f *fakeAuthService) ParseToken(ctx context.Context, token string) (models.Token, error) {
	if f.parseTokenFn == nil {
		return models.Token{}, service.ErrInvalidToken
	}
	return f.parseTokenFn(ctx, token)
}

type fakeUserService struct {
	getProfileFn func(ctx context.Context, userID int64) (models.PublicUser, error)
}

func (f *fakeUserService) GetProfile(ctx context.Context, userID int64) (models.PublicUser, error) {
	return f.getProfileFn(ctx, userID)
}

type fakeTaskService struct {
	createFn    func(ctx context.Context, userID int64, request models.TaskRequest) (models.Task, error)
	listFn      func(ctx context.Context, userID int64, query models.TaskListQuery) ([]models.Task, error)
	getFn       func(ctx context.Context, userID, taskID int64) (models.Task, error)
	updateFn    func(ctx context.Context, userID, taskID int64, request models.UpdateTaskRequest) (models.Task, error)
	setStatusFn func(ctx context.Context, userID, taskID int64, request models.StatusRequest) (models.Task, error)
	deleteFn    func(ctx context.Context, userID, taskID int64) (models.Task, error)
}

func (f *fakeTaskService) CreateTask(ctx context.Context, userID int64, request models.TaskRequest) (models.Task, error) {
	return f.createFn(ctx, userID, request)
}

func (f *fakeTaskService) ListTasks(ctx context.Context, userID int64, query models.TaskListQuery) ([]models.Task, error) {
	return f.listFn(ctx, userID, query)
}

func (f *fakeTaskService) GetTask(ctx context.Context, userID, taskID int64) (models.Task, error) {
	return f.getFn(ctx, userID, taskID)
}

func (f *fakeTaskService) UpdateTask(ctx context.Context, userID, taskID int64, request models.UpdateTaskRequest) (models.Task, error) {
	return f.updateFn(ctx, userID, taskID, request)
}

func (f *fakeTaskService) SetTaskStatus(ctx context.Context, userID, taskID int64, request models.StatusRequest) (models.Task, error) {
	return f.setStatusFn(ctx, userID, taskID, request)
}

func (f *fakeTaskService) DeleteTask(ctx context.Context, userID, taskID int64) (models.Task, error) {
	return f.deleteFn(ctx, userID, taskID)
}

type fakeAppInfoService struct {
	version string
	pingErr error
}

func (f *fakeAppInfoService) GetAppVersion(context.Context) string { return f.version }
func (f *fakeAppInfoService) Ping(context.Context) error           { return f.pingErr }

// ---- helpers ----

const testToken = "valid-token"

// authAs accepts testToken for userID and rejects anything else.
func authAs(userID int64) *fakeAuthService {
	return &fakeAuthService{
		parseTokenFn: func(_ context.Context, token string) (models.Token, error) {
			if token != testToken {
				return models.Token{}, service.ErrInvalidToken
			}
			return models.Token{UserID: userID}, nil
		},
	}
}

func newTestRouter(t *testing.T, services *service.Services) http.Handler {
	t.Helper()
	if services.AuthService == nil {
		services.AuthService = &fakeAuthService{}
	}
	if services.AppInfoService == nil {
		services.AppInfoService = &fakeAppInfoService{version: "test"}
	}
	return NewHandler(services, config.Server{}, logger.Nop()).Init()
}

func doRequest(t *testing.T, router http.Handler, method, path string, body any, token string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(b)
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func newRequest(method, path string) *http.Request {
	return httptest.NewRequest(method, path, nil)
}

func serve(h http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}
