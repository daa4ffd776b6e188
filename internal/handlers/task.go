package handlers

import (
	"net/http"
	"strings"

	"quicklist/internal/models"
)

// TaskListData holds data for the task list fragment.
type TaskListData struct {
	Tasks   []models.Task
	Counter string
}

// StatusData holds data for the saving indicator fragment.
type StatusData struct {
	Saving bool
}

// taskList loads the current sequence and renders the list fragment,
// counter included, so both update together.
func (h *Handlers) taskList(w http.ResponseWriter, r *http.Request) {
	tasks, err := h.store.ListTasks(r.Context())
	if err != nil {
		respondServerError(w, err)
		return
	}

	h.renderPartial(w, "task_list.html", TaskListData{
		Tasks:   tasks,
		Counter: counterText(len(tasks)),
	})
}

// CreateTask appends a new task from the submitted form. Text that is
// empty after trimming is silently ignored: the list is re-rendered
// unchanged and the saving indicator is not flashed.
func (h *Handlers) CreateTask(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := r.ParseForm(); err != nil {
		respondError(w, http.StatusBadRequest, "invalid form data")
		return
	}

	text := strings.TrimSpace(r.FormValue("text"))
	if text == "" {
		h.taskList(w, r)
		return
	}

	task := &models.Task{Text: text}
	if err := task.Validate(); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.store.CreateTask(ctx, task); err != nil {
		respondServerError(w, err)
		return
	}

	h.indicator.Flash()
	h.taskList(w, r)
}

// DeleteTask removes the task identified by the URL parameter. An ID
// that matches no task removes nothing; the indicator still flashes
// because a removal was requested.
func (h *Handlers) DeleteTask(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := parseID(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid task id")
		return
	}

	if err := h.store.DeleteTask(ctx, id); err != nil {
		respondServerError(w, err)
		return
	}

	h.indicator.Flash()
	h.taskList(w, r)
}

// SaveStatus reports the saving indicator's visibility. The page polls
// this so the hide transition reaches the browser.
func (h *Handlers) SaveStatus(w http.ResponseWriter, r *http.Request) {
	h.renderPartial(w, "status.html", StatusData{Saving: h.indicator.Visible()})
}
