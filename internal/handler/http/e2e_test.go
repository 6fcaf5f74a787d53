package http

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/MKhiriev/task-tracker/internal/config"
	"github.com/MKhiriev/task-tracker/internal/logger"
	"github.com/MKhiriev/task-tracker/internal/service"
	"github.com/MKhiriev/task-tracker/internal/store"
	"github.com/MKhiriev/task-tracker/models"
)

// newSQLiteRouter wires the real services over an in-memory SQLite store.
func newSQLiteRouter(t *testing.T) http.Handler {
	t.Helper()
	ctx := context.Background()

	db, err := store.NewDB(ctx, config.DB{Driver: config.DriverSQLite, DSN: ":memory:"}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, db.Migrate(ctx))

	cfg := config.StructuredConfig{
		App: config.App{
			TokenSignKey:     "e2e-sign-key",
			TokenIssuer:      "task-tracker",
			TokenDuration:    time.Hour,
			PasswordHashCost: bcrypt.MinCost,
			Version:          "e2e",
		},
	}
	services, err := service.NewServices(store.NewStorages(db, logger.Nop()), db, cfg, logger.Nop())
	require.NoError(t, err)

	return NewHandler(services, config.Server{RequestTimeout: 5 * time.Second}, logger.Nop()).Init()
}

func signupAndLogin(t *testing.T, router http.Handler, username string) string {
	t.Helper()

	rec := doRequest(t, router, http.MethodPost, "/auth/signup", models.SignupRequest{
		Username: username, Password: "secret1", Email: username + "@x.com", PhoneNumber: "1234567890",
	}, "")
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = doRequest(t, router, http.MethodPost, "/auth/login", models.LoginRequest{Username: username, Password: "secret1"}, "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	token := decodeBody[models.LoginResponse](t, rec).Token
	require.NotEmpty(t, token)
	return token
}

func TestE2E_AliceScenario(t *testing.T) {
	router := newSQLiteRouter(t)

	rec := doRequest(t, router, http.MethodPost, "/auth/signup", models.SignupRequest{
		Username: "alice", Password: "secret1", Email: "a@x.com", PhoneNumber: "1234567890",
	}, "")
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	signup := decodeBody[models.SignupResponse](t, rec)
	assert.Equal(t, "alice", signup.Username)
	assert.Positive(t, signup.UserID)

	rec = doRequest(t, router, http.MethodPost, "/auth/login", models.LoginRequest{Username: "alice", Password: "secret1"}, "")
	require.Equal(t, http.StatusOK, rec.Code)
	token := decodeBody[models.LoginResponse](t, rec).Token
	require.NotEmpty(t, token)

	rec = doRequest(t, router, http.MethodPost, "/tasks", `{"title":"buy milk"}`, token)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	created := decodeBody[models.Task](t, rec)
	assert.Equal(t, models.TaskStatusPending, created.Status)
	assert.Equal(t, signup.UserID, created.UserID)

	rec = doRequest(t, router, http.MethodPatch, fmt.Sprintf("/tasks/%d/complete", created.ID), `{"status":"completed"}`, token)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, models.TaskStatusCompleted, decodeBody[models.Task](t, rec).Status)

	rec = doRequest(t, router, http.MethodGet, "/tasks?status=completed", nil, token)
	require.Equal(t, http.StatusOK, rec.Code)
	tasks := decodeBody[[]models.Task](t, rec)
	require.Len(t, tasks, 1)
	assert.Equal(t, created.ID, tasks[0].ID)

	rec = doRequest(t, router, http.MethodGet, "/users/me", nil, token)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "a@x.com", decodeBody[models.PublicUser](t, rec).Email)
}

func TestE2E_DuplicateSignup(t *testing.T) {
	router := newSQLiteRouter(t)
	signupAndLogin(t, router, "alice")

	rec := doRequest(t, router, http.MethodPost, "/auth/signup", models.SignupRequest{
		Username: "alice", Password: "another1", Email: "b@x.com", PhoneNumber: "1234567890",
	}, "")
	assert.Equal(t, http.StatusConflict, rec.Code)

	// the original password still works, so no second row replaced the first
	rec = doRequest(t, router, http.MethodPost, "/auth/login", models.LoginRequest{Username: "alice", Password: "secret1"}, "")
	assert.Equal(t, http.StatusOK, rec.Code)
	rec = doRequest(t, router, http.MethodPost, "/auth/login", models.LoginRequest{Username: "alice", Password: "another1"}, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestE2E_BadCredentialsAreIndistinguishable(t *testing.T) {
	router := newSQLiteRouter(t)
	signupAndLogin(t, router, "alice")

	wrong := doRequest(t, router, http.MethodPost, "/auth/login", models.LoginRequest{Username: "alice", Password: "nope"}, "")
	unknown := doRequest(t, router, http.MethodPost, "/auth/login", models.LoginRequest{Username: "nobody", Password: "nope"}, "")

	assert.Equal(t, http.StatusUnauthorized, wrong.Code)
	assert.Equal(t, wrong.Code, unknown.Code)
	assert.Equal(t, wrong.Body.String(), unknown.Body.String())
}

func TestE2E_CrossUserAccessIsNotFound(t *testing.T) {
	router := newSQLiteRouter(t)
	aliceToken := signupAndLogin(t, router, "alice")
	bobToken := signupAndLogin(t, router, "bob")

	rec := doRequest(t, router, http.MethodPost, "/tasks", `{"title":"alice only"}`, aliceToken)
	require.Equal(t, http.StatusCreated, rec.Code)
	task := decodeBody[models.Task](t, rec)
	path := fmt.Sprintf("/tasks/%d", task.ID)

	for _, req := range []struct {
		method, path string
		body         any
	}{
		{http.MethodGet, path, nil},
		{http.MethodPut, path, `{"title":"hijacked"}`},
		{http.MethodPatch, path + "/complete", nil},
		{http.MethodDelete, path, nil},
	} {
		rec = doRequest(t, router, req.method, req.path, req.body, bobToken)
		assert.Equal(t, http.StatusNotFound, rec.Code, "%s %s", req.method, req.path)
	}

	rec = doRequest(t, router, http.MethodGet, "/tasks", nil, bobToken)
	assert.JSONEq(t, `[]`, rec.Body.String())

	rec = doRequest(t, router, http.MethodGet, path, nil, aliceToken)
	require.Equal(t, http.StatusOK, rec.Code)
	unchanged := decodeBody[models.Task](t, rec)
	assert.Equal(t, "alice only", unchanged.Title)
	assert.Equal(t, models.TaskStatusPending, unchanged.Status)
}

func TestE2E_RoundTripUpdateAndDoubleDelete(t *testing.T) {
	router := newSQLiteRouter(t)
	token := signupAndLogin(t, router, "alice")

	rec := doRequest(t, router, http.MethodPost, "/tasks",
		`{"title":"report","description":"quarterly","status":"in_progress","dueDate":"2025-03-01T10:00:00Z"}`, token)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	created := decodeBody[models.Task](t, rec)

	rec = doRequest(t, router, http.MethodGet, fmt.Sprintf("/tasks/%d", created.ID), nil, token)
	require.Equal(t, http.StatusOK, rec.Code)
	fetched := decodeBody[models.Task](t, rec)
	assert.Equal(t, created.Title, fetched.Title)
	assert.Equal(t, created.Description, fetched.Description)
	assert.Equal(t, created.Status, fetched.Status)
	require.NotNil(t, fetched.DueDate)
	assert.True(t, time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC).Equal(*fetched.DueDate))

	// full replace: omitted fields fall back to defaults
	rec = doRequest(t, router, http.MethodPut, fmt.Sprintf("/tasks/%d", created.ID), `{"title":"report v2"}`, token)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	updated := decodeBody[models.Task](t, rec)
	assert.Equal(t, "report v2", updated.Title)
	assert.Empty(t, updated.Description)
	assert.Equal(t, models.TaskStatusPending, updated.Status)
	assert.Nil(t, updated.DueDate)

	rec = doRequest(t, router, http.MethodDelete, fmt.Sprintf("/tasks/%d", created.ID), nil, token)
	assert.Equal(t, http.StatusOK, rec.Code)
	rec = doRequest(t, router, http.MethodDelete, fmt.Sprintf("/tasks/%d", created.ID), nil, token)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestE2E_StatusAndDueDateFiltersCombine(t *testing.T) {
	router := newSQLiteRouter(t)
	token := signupAndLogin(t, router, "alice")

	for _, body := range []string{
		`{"title":"match","status":"pending","dueDate":"2025-01-01T09:00:00Z"}`,
		`{"title":"wrong status","status":"completed","dueDate":"2025-01-01T09:00:00Z"}`,
		`{"title":"wrong day","status":"pending","dueDate":"2025-01-02T09:00:00Z"}`,
		`{"title":"no due date","status":"pending"}`,
	} {
		rec := doRequest(t, router, http.MethodPost, "/tasks", body, token)
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	}

	rec := doRequest(t, router, http.MethodGet, "/tasks?status=pending&dueDate=2025-01-01", nil, token)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	tasks := decodeBody[[]models.Task](t, rec)
	require.Len(t, tasks, 1)
	assert.Equal(t, "match", tasks[0].Title)

	rec = doRequest(t, router, http.MethodGet, "/tasks?status=pending&dueDate=2025-01-01T09:00:00Z", nil, token)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decodeBody[[]models.Task](t, rec), 1)

	rec = doRequest(t, router, http.MethodGet, "/tasks?limit=2&offset=1", nil, token)
	require.Equal(t, http.StatusOK, rec.Code)
	page := decodeBody[[]models.Task](t, rec)
	require.Len(t, page, 2)
	assert.Equal(t, "wrong status", page[0].Title)

	rec = doRequest(t, router, http.MethodGet, "/tasks?offset=3", nil, token)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decodeBody[[]models.Task](t, rec), 1)

	rec = doRequest(t, router, http.MethodGet, "/tasks?limit=-1", nil, token)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestE2E_PagingAboveInt64IsBadRequest(t *testing.T) {
	router := newSQLiteRouter(t)
	token := signupAndLogin(t, router, "alice")

	for _, query := range []string{
		"limit=18446744073709551615",
		"offset=18446744073709551615",
		"limit=9223372036854775808",
	} {
		rec := doRequest(t, router, http.MethodGet, "/tasks?"+query, nil, token)
		assert.Equal(t, http.StatusBadRequest, rec.Code, query)
	}

	rec := doRequest(t, router, http.MethodGet, "/tasks?limit=9223372036854775807&offset=9223372036854775807", nil, token)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Empty(t, decodeBody[[]models.Task](t, rec))
}

func TestE2E_SignupPasswordLongerThanBcryptAllows(t *testing.T) {
	router := newSQLiteRouter(t)

	rec := doRequest(t, router, http.MethodPost, "/auth/signup", models.SignupRequest{
		Username: "alice", Password: strings.Repeat("a", 80), Email: "a@x.com", PhoneNumber: "1234567890",
	}, "")
	require.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())
	assert.Equal(t, []models.FieldError{{Field: "password", Constraint: "maxBytes=72"}},
		decodeBody[models.ErrorResponse](t, rec).Errors)

	rec = doRequest(t, router, http.MethodPost, "/auth/signup", models.SignupRequest{
		Username: "alice", Password: strings.Repeat("a", 72), Email: "a@x.com", PhoneNumber: "1234567890",
	}, "")
	assert.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
}
