package handlers

import (
	"net/http"

	"quicklist/internal/models"
)

// HomeData holds data for the home page template.
type HomeData struct {
	Title   string
	Tasks   []models.Task
	Counter string
	Saving  bool
}

// Home renders the home page with the full task list, the counter, and
// the current state of the saving indicator.
func (h *Handlers) Home(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	tasks, err := h.store.ListTasks(ctx)
	if err != nil {
		respondServerError(w, err)
		return
	}

	data := HomeData{
		Title:   "Quick List",
		Tasks:   tasks,
		Counter: counterText(len(tasks)),
		Saving:  h.indicator.Visible(),
	}

	h.renderTemplate(w, "home.html", data)
}
