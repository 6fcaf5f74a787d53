package store

import (
	"errors"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/task-tracker/internal/logger"
	"github.com/MKhiriev/task-tracker/models"
)

var taskRowColumns = []string{"id", "user_id", "title", "description", "status", "due_date", "created_at", "updated_at"}

var fixedNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func newTestTaskRepo(t *testing.T) (TaskRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock := newTestDB(t)
	repo := NewTaskRepository(newPostgresDB(db), logger.Nop())
	repo.(*taskRepository).now = func() time.Time { return fixedNow }
	return repo, mock
}

func taskRow(id, userID int64, title string, status models.TaskStatus, due any) *sqlmock.Rows {
	return sqlmock.NewRows(taskRowColumns).AddRow(id, userID, title, "", string(status), due, fixedNow, fixedNow)
}

func TestTaskRepository_CreateTask(t *testing.T) {
	repo, mock := newTestTaskRepo(t)
	due := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO tasks (user_id,title,description,status,due_date) VALUES ($1,$2,$3,$4,$5) RETURNING")).
		WithArgs(int64(1), "Buy milk", "", "pending", due).
		WillReturnRows(taskRow(10, 1, "Buy milk", models.TaskStatusPending, due))

	created, err := repo.CreateTask(testContext(), models.Task{UserID: 1, Title: "Buy milk", DueDate: &due})
	require.NoError(t, err)

	assert.Equal(t, int64(10), created.ID)
	assert.Equal(t, models.TaskStatusPending, created.Status)
	require.NotNil(t, created.DueDate)
	assert.True(t, due.Equal(*created.DueDate))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestTaskRepository_CreateTask_Error(t *testing.T) {
	repo, mock := newTestTaskRepo(t)
	mock.ExpectQuery("INSERT INTO tasks").WillReturnError(errors.New("boom"))

	_, err := repo.CreateTask(testContext(), models.Task{UserID: 1})
	assert.ErrorIs(t, err, ErrExecutingQuery)
}

func TestTaskRepository_ListTasks_StatusAndDueDate(t *testing.T) {
	repo, mock := newTestTaskRepo(t)
	due := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	status := models.TaskStatusPending

	mock.ExpectQuery(regexp.QuoteMeta("FROM tasks WHERE user_id = $1 AND status = $2 AND due_date = $3 ORDER BY id ASC")).
		WithArgs(int64(1), "pending", due).
		WillReturnRows(taskRow(1, 1, "a", models.TaskStatusPending, due).
			AddRow(2, 1, "b", "", "pending", due, fixedNow, fixedNow))

	tasks, err := repo.ListTasks(testContext(), models.TaskFilter{UserID: 1, Status: &status, DueFrom: &due})
	require.NoError(t, err)
	require.Len(t, tasks, 2)
	assert.Equal(t, int64(1), tasks[0].ID)
	assert.Equal(t, int64(2), tasks[1].ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestTaskRepository_ListTasks_EmptyIsNotNil(t *testing.T) {
	repo, mock := newTestTaskRepo(t)
	mock.ExpectQuery("FROM tasks WHERE user_id").WillReturnRows(sqlmock.NewRows(taskRowColumns))

	tasks, err := repo.ListTasks(testContext(), models.TaskFilter{UserID: 1})
	require.NoError(t, err)
	assert.NotNil(t, tasks)
	assert.Empty(t, tasks)
}

func TestTaskRepository_ListTasks_Errors(t *testing.T) {
	repo, mock := newTestTaskRepo(t)

	mock.ExpectQuery("FROM tasks").WillReturnError(errors.New("boom"))
	_, err := repo.ListTasks(testContext(), models.TaskFilter{UserID: 1})
	assert.ErrorIs(t, err, ErrExecutingQuery)

	mock.ExpectQuery("FROM tasks").WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	_, err = repo.ListTasks(testContext(), models.TaskFilter{UserID: 1})
	assert.ErrorIs(t, err, ErrScanningRow)

	mock.ExpectQuery("FROM tasks").WillReturnRows(taskRow(1, 1, "a", models.TaskStatusPending, nil).RowError(0, errors.New("broken")))
	_, err = repo.ListTasks(testContext(), models.TaskFilter{UserID: 1})
	assert.ErrorIs(t, err, ErrScanningRows)
}

func TestTaskRepository_GetTask(t *testing.T) {
	repo, mock := newTestTaskRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM tasks WHERE id = $1 AND user_id = $2")).
		WithArgs(int64(5), int64(1)).
		WillReturnRows(taskRow(5, 1, "mine", models.TaskStatusInProgress, nil))

	task, err := repo.GetTask(testContext(), 5, 1)
	require.NoError(t, err)
	assert.Equal(t, "mine", task.Title)
	assert.Nil(t, task.DueDate)
	assert.Equal(t, models.TaskStatusInProgress, task.Status)
}

func TestTaskRepository_ForeignTaskIsNotFound(t *testing.T) {
	repo, mock := newTestTaskRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT")).WithArgs(int64(5), int64(2)).WillReturnRows(sqlmock.NewRows(taskRowColumns))
	mock.ExpectQuery(regexp.QuoteMeta("UPDATE tasks SET title")).WillReturnRows(sqlmock.NewRows(taskRowColumns))
	mock.ExpectQuery(regexp.QuoteMeta("UPDATE tasks SET status")).WillReturnRows(sqlmock.NewRows(taskRowColumns))
	mock.ExpectQuery(regexp.QuoteMeta("DELETE FROM tasks")).WillReturnRows(sqlmock.NewRows(taskRowColumns))

	_, err := repo.GetTask(testContext(), 5, 2)
	assert.ErrorIs(t, err, ErrTaskNotFound)

	_, err = repo.UpdateTask(testContext(), models.Task{ID: 5, UserID: 2, Status: models.TaskStatusPending})
	assert.ErrorIs(t, err, ErrTaskNotFound)

	_, err = repo.SetTaskStatus(testContext(), 5, 2, models.TaskStatusCompleted)
	assert.ErrorIs(t, err, ErrTaskNotFound)

	_, err = repo.DeleteTask(testContext(), 5, 2)
	assert.ErrorIs(t, err, ErrTaskNotFound)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestTaskRepository_UpdateTask(t *testing.T) {
	repo, mock := newTestTaskRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("UPDATE tasks SET title = $1, description = $2, status = $3, due_date = $4, updated_at = $5 WHERE id = $6 AND user_id = $7")).
		WithArgs("new", "", "completed", nil, fixedNow, int64(5), int64(1)).
		WillReturnRows(taskRow(5, 1, "new", models.TaskStatusCompleted, nil))

	task, err := repo.UpdateTask(testContext(), models.Task{ID: 5, UserID: 1, Title: "new", Status: models.TaskStatusCompleted})
	require.NoError(t, err)
	assert.Equal(t, "new", task.Title)
	assert.Equal(t, models.TaskStatusCompleted, task.Status)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestTaskRepository_SetTaskStatus(t *testing.T) {
	repo, mock := newTestTaskRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("UPDATE tasks SET status = $1, updated_at = $2 WHERE id = $3 AND user_id = $4")).
		WithArgs("completed", fixedNow, int64(5), int64(1)).
		WillReturnRows(taskRow(5, 1, "t", models.TaskStatusCompleted, nil))

	task, err := repo.SetTaskStatus(testContext(), 5, 1, models.TaskStatusCompleted)
	require.NoError(t, err)
	assert.Equal(t, models.TaskStatusCompleted, task.Status)
}

func TestTaskRepository_DeleteTwice(t *testing.T) {
	repo, mock := newTestTaskRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("DELETE FROM tasks WHERE id = $1 AND user_id = $2")).
		WithArgs(int64(5), int64(1)).
		WillReturnRows(taskRow(5, 1, "t", models.TaskStatusPending, nil))
	mock.ExpectQuery(regexp.QuoteMeta("DELETE FROM tasks WHERE id = $1 AND user_id = $2")).
		WithArgs(int64(5), int64(1)).
		WillReturnRows(sqlmock.NewRows(taskRowColumns))

	deleted, err := repo.DeleteTask(testContext(), 5, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(5), deleted.ID)

	_, err = repo.DeleteTask(testContext(), 5, 1)
	assert.ErrorIs(t, err, ErrTaskNotFound)
}

func TestTaskRepository_DriverErrorIsNotNotFound(t *testing.T) {
	repo, mock := newTestTaskRepo(t)
	mock.ExpectQuery("FROM tasks").WillReturnError(errors.New("boom"))

	_, err := repo.GetTask(testContext(), 1, 1)
	assert.ErrorIs(t, err, ErrExecutingQuery)
	assert.NotErrorIs(t, err, ErrTaskNotFound)
}

func TestTaskRepository_RetriesRolledBackStatements(t *testing.T) {
	repo, mock := newTestTaskRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM tasks WHERE id = $1 AND user_id = $2")).
		WillReturnError(&pgconn.PgError{Code: pgerrcode.SerializationFailure})
	mock.ExpectQuery(regexp.QuoteMeta("FROM tasks WHERE id = $1 AND user_id = $2")).
		WillReturnError(&pgconn.PgError{Code: pgerrcode.DeadlockDetected})
	mock.ExpectQuery(regexp.QuoteMeta("FROM tasks WHERE id = $1 AND user_id = $2")).
		WillReturnRows(taskRow(5, 1, "mine", models.TaskStatusPending, nil))

	task, err := repo.GetTask(testContext(), 5, 1)
	require.NoError(t, err)
	assert.Equal(t, "mine", task.Title)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTaskRepository_GivesUpAfterMaxAttempts(t *testing.T) {
	repo, mock := newTestTaskRepo(t)

	for range maxQueryAttempts {
		mock.ExpectQuery(regexp.QuoteMeta("FROM tasks WHERE user_id = $1")).
			WillReturnError(&pgconn.PgError{Code: pgerrcode.SerializationFailure})
	}

	_, err := repo.ListTasks(testContext(), models.TaskFilter{UserID: 1})
	assert.ErrorIs(t, err, ErrExecutingQuery)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTaskRepository_DoesNotRetryLostConnection(t *testing.T) {
	repo, mock := newTestTaskRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("DELETE FROM tasks")).
		WillReturnError(&pgconn.PgError{Code: pgerrcode.ConnectionFailure})

	_, err := repo.DeleteTask(testContext(), 5, 1)
	assert.ErrorIs(t, err, ErrExecutingQuery)
	assert.NoError(t, mock.ExpectationsWereMet())
}
