package http

import (
	"net/http"

	"github.com/MKhiriev/task-tracker/internal/utils"
	"github.com/MKhiriev/task-tracker/models"
)

func (h *Handler) createTask(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var request models.TaskRequest
	if err = decodeJSON(r, &request, false); err != nil {
		writeError(w, r, err)
		return
	}

	task, err := h.services.TaskService.CreateTask(r.Context(), userID, request)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, task, http.StatusCreated)
}

func (h *Handler) listTasks(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	params := r.URL.Query()
	tasks, err := h.services.TaskService.ListTasks(r.Context(), userID, models.TaskListQuery{
		Status:  params.Get("status"),
		DueDate: params.Get("dueDate"),
		Limit:   params.Get("limit"),
		Offset:  params.Get("offset"),
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	if tasks == nil {
		tasks = []models.Task{}
	}
	utils.WriteJSON(w, tasks, http.StatusOK)
}

func (h *Handler) getTask(w http.ResponseWriter, r *http.Request) {
	userID, taskID, err := taskRoute(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	task, err := h.services.TaskService.GetTask(r.Context(), userID, taskID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, task, http.StatusOK)
}

func (h *Handler) updateTask(w http.ResponseWriter, r *http.Request) {
	userID, taskID, err := taskRoute(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var request models.UpdateTaskRequest
	if err = decodeJSON(r, &request, false); err != nil {
		writeError(w, r, err)
		return
	}

	task, err := h.services.TaskService.UpdateTask(r.Context(), userID, taskID, request)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, task, http.StatusOK)
}

// completeTask accepts an optional {"status": ...} body; without one the
// task is marked completed.
func (h *Handler) completeTask(w http.ResponseWriter, r *http.Request) {
	userID, taskID, err := taskRoute(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var request models.StatusRequest
	if err = decodeJSON(r, &request, true); err != nil {
		writeError(w, r, err)
		return
	}

	task, err := h.services.TaskService.SetTaskStatus(r.Context(), userID, taskID, request)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, task, http.StatusOK)
}

func (h *Handler) deleteTask(w http.ResponseWriter, r *http.Request) {
	userID, taskID, err := taskRoute(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	task, err := h.services.TaskService.DeleteTask(r.Context(), userID, taskID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, task, http.StatusOK)
}

func taskRoute(r *http.Request) (userID, taskID int64, err error) {
	if userID, err = userIDFromRequest(r); err != nil {
		return 0, 0, err
	}
	if taskID, err = taskIDFromRequest(r); err != nil {
		return 0, 0, err
	}
	return userID, taskID, nil
}
