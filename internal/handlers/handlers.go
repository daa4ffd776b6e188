package handlers

import (
	"fmt"
	"html/template"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"quicklist/internal/status"
	"quicklist/internal/store"
)

// Handlers holds the HTTP handlers and their dependencies.
type Handlers struct {
	store     store.Store
	templates *template.Template
	indicator *status.Indicator
}

// New creates a new Handlers instance.
func New(s store.Store, tmpl *template.Template, ind *status.Indicator) *Handlers {
	return &Handlers{
		store:     s,
		templates: tmpl,
		indicator: ind,
	}
}

// parseID extracts and parses an integer ID from URL parameters.
func parseID(r *http.Request, param string) (int64, error) {
	idStr := chi.URLParam(r, param)
	return strconv.ParseInt(idStr, 10, 64)
}

// counterText renders the task count with singular/plural agreement.
func counterText(n int) string {
	if n == 1 {
		return "You have 1 task."
	}
	return fmt.Sprintf("You have %d tasks.", n)
}

// respondError sends an error response.
func respondError(w http.ResponseWriter, code int, message string) {
	w.WriteHeader(code)
	w.Write([]byte(message))
}

func respondServerError(w http.ResponseWriter, err error) {
	log.Printf("internal server error: %v", err)
	respondError(w, http.StatusInternalServerError, "internal server error")
}

func (h *Handlers) render(w http.ResponseWriter, name string, data interface{}) {
	if h.templates == nil {
		// For testing without templates
		w.WriteHeader(http.StatusOK)
		return
	}
	if err := h.templates.ExecuteTemplate(w, name, data); err != nil {
		respondServerError(w, err)
	}
}

// renderTemplate renders a full page template.
func (h *Handlers) renderTemplate(w http.ResponseWriter, name string, data interface{}) {
	h.render(w, name, data)
}

// renderPartial renders a fragment swapped into the page by the client.
func (h *Handlers) renderPartial(w http.ResponseWriter, name string, data interface{}) {
	h.render(w, name, data)
}
