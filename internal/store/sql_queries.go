package store

import (
	"math"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/task-tracker/internal/config"
	"github.com/MKhiriev/task-tracker/models"
)

var (
	usersTable = models.User{}.TableName()
	tasksTable = models.Task{}.TableName()

	userColumns       = []string{"id", "username", "password_hash", "email", "phone_number", "created_at"}
	publicUserColumns = []string{"id", "username", "email", "phone_number", "created_at"}
	taskColumns       = []string{"id", "user_id", "title", "description", "status", "due_date", "created_at", "updated_at"}
)

func returning(columns []string) string {
	return "RETURNING " + strings.Join(columns, ", ")
}

// buildCreateUserQuery inserts a user unless the username is taken. A taken
// username produces no returned row instead of an error.
func (db *DB) buildCreateUserQuery(user models.User) (string, []any, error) {
	return db.builder.
		Insert(usersTable).
		Columns("username", "password_hash", "email", "phone_number").
		Values(user.Username, user.PasswordHash, user.Email, user.PhoneNumber).
		Suffix("ON CONFLICT (username) DO NOTHING " + returning(userColumns)).
		ToSql()
}

func (db *DB) buildFindUserByUsernameQuery(username string) (string, []any, error) {
	return db.builder.
		Select(userColumns...).
		From(usersTable).
		Where(sq.Eq{"username": username}).
		ToSql()
}

func (db *DB) buildFindUserByIDQuery(userID int64) (string, []any, error) {
	return db.builder.
		Select(publicUserColumns...).
		From(usersTable).
		Where(sq.Eq{"id": userID}).
		ToSql()
}

func (db *DB) buildCreateTaskQuery(task models.Task) (string, []any, error) {
	return db.builder.
		Insert(tasksTable).
		Columns("user_id", "title", "description", "status", "due_date").
		Values(task.UserID, task.Title, task.Description, string(task.Status), nullableTime(task.DueDate)).
		Suffix(returning(taskColumns)).
		ToSql()
}

// buildListTasksQuery always scopes by owner. Every optional predicate is a
// separate Where call, which squirrel joins with AND.
func (db *DB) buildListTasksQuery(filter models.TaskFilter) (string, []any, error) {
	query := db.builder.
		Select(taskColumns...).
		From(tasksTable).
		Where(sq.Eq{"user_id": filter.UserID})

	if filter.Status != nil {
		query = query.Where(sq.Eq{"status": string(*filter.Status)})
	}

	if filter.DueFrom != nil {
		if filter.DueTo == nil {
			query = query.Where(sq.Eq{"due_date": filter.DueFrom.UTC()})
		} else {
			query = query.
				Where(sq.GtOrEq{"due_date": filter.DueFrom.UTC()}).
				Where(sq.Lt{"due_date": filter.DueTo.UTC()})
		}
	}

	query = query.OrderBy("id ASC")

	switch {
	case filter.Limit != nil:
		query = query.Limit(*filter.Limit)
	case filter.Offset != nil && db.driver == config.DriverSQLite:
		// SQLite only accepts OFFSET after a LIMIT clause.
		query = query.Limit(math.MaxInt64)
	}

	if filter.Offset != nil {
		query = query.Offset(*filter.Offset)
	}

	return query.ToSql()
}

func (db *DB) buildGetTaskQuery(taskID, userID int64) (string, []any, error) {
	return db.builder.
		Select(taskColumns...).
		From(tasksTable).
		Where(sq.Eq{"id": taskID}).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
}

// buildUpdateTaskQuery replaces every mutable field in one statement that
// also checks ownership.
func (db *DB) buildUpdateTaskQuery(task models.Task, now time.Time) (string, []any, error) {
	return db.builder.
		Update(tasksTable).
		Set("title", task.Title).
		Set("description", task.Description).
		Set("status", string(task.Status)).
		Set("due_date", nullableTime(task.DueDate)).
		Set("updated_at", now.UTC()).
		Where(sq.Eq{"id": task.ID}).
		Where(sq.Eq{"user_id": task.UserID}).
		Suffix(returning(taskColumns)).
		ToSql()
}

func (db *DB) buildSetTaskStatusQuery(taskID, userID int64, status models.TaskStatus, now time.Time) (string, []any, error) {
	return db.builder.
		Update(tasksTable).
		Set("status", string(status)).
		Set("updated_at", now.UTC()).
		Where(sq.Eq{"id": taskID}).
		Where(sq.Eq{"user_id": userID}).
		Suffix(returning(taskColumns)).
		ToSql()
}

func (db *DB) buildDeleteTaskQuery(taskID, userID int64) (string, []any, error) {
	return db.builder.
		Delete(tasksTable).
		Where(sq.Eq{"id": taskID}).
		Where(sq.Eq{"user_id": userID}).
		Suffix(returning(taskColumns)).
		ToSql()
}

// nullableTime converts an optional time into a UTC driver value.
func nullableTime(t *time.Time) any {
	if t == nil {
		return nil
	}
	return t.UTC()
}
