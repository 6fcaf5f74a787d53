package models

import "time"

// TaskStatus is the lifecycle state of a task.
//
// The usual progression is pending -> in_progress -> completed, but any
// value may be written at any time; no transition order is enforced.
type TaskStatus string

const (
	TaskStatusPending    TaskStatus = "pending"
	TaskStatusInProgress TaskStatus = "in_progress"
	TaskStatusCompleted  TaskStatus = "completed"
)

// TaskStatuses lists every accepted TaskStatus value.
var TaskStatuses = []TaskStatus{
	TaskStatusPending,
	TaskStatusInProgress,
	TaskStatusCompleted,
}

// IsValid reports whether s is one of the enumerated statuses.
func (s TaskStatus) IsValid() bool {
	for _, status := range TaskStatuses {
		if s == status {
			return true
		}
	}
	return false
}

// String implements fmt.Stringer.
func (s TaskStatus) String() string {
	return string(s)
}

// Task is a unit of work owned by exactly one user.
type Task struct {
	// ID is the server-assigned identifier of the task.
	ID int64 `json:"id"`

	// UserID is the owner of the task. It is always taken from the
	// authenticated identity and never reassigned.
	UserID int64 `json:"userId"`

	Title       string     `json:"title"`
	Description string     `json:"description"`
	Status      TaskStatus `json:"status"`

	// DueDate is optional; nil means the task has no deadline.
	DueDate *time.Time `json:"dueDate"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName returns the name of the database table
// associated with the Task model.
func (t Task) TableName() string {
	return "tasks"
}

// TaskFilter narrows a task listing. UserID is always set by the server
// from the authenticated identity; every other field is optional and
// combined conjunctively.
type TaskFilter struct {
	UserID int64

	// Status keeps only tasks in the given state.
	Status *TaskStatus

	// DueFrom and DueTo bound due_date to the half-open interval
	// [DueFrom, DueTo). When DueTo is nil the filter is an equality on DueFrom.
	DueFrom *time.Time
	DueTo   *time.Time

	// Limit caps the number of returned tasks; nil means unbounded.
	Limit *uint64

	// Offset skips the first tasks of the window; nil means no skip.
	Offset *uint64
}
