package handler

import (
	"fmt"
	"net/http"

	"github.com/mergington/activities/api/internal/service"
)

// ActivityHandler handles activity registry HTTP requests
type ActivityHandler struct {
	svc *service.ActivityService
}

// NewActivityHandler creates a new activity handler
func NewActivityHandler(svc *service.ActivityService) *ActivityHandler {
	return &ActivityHandler{svc: svc}
}

// List handles GET /activities - the full registry keyed by activity name
func (h *ActivityHandler) List(w http.ResponseWriter, r *http.Request) {
	activities, err := h.svc.ListActivities(r.Context())
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteJSON(w, http.StatusOK, activities)
}

// Signup handles POST /activities/{name}/signup - enroll a participant.
// The activity name arrives percent-encoded in the path and the email as a
// query parameter.
func (h *ActivityHandler) Signup(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	email := r.URL.Query().Get("email")

	if err := h.svc.Signup(r.Context(), name, email); err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteMessage(w, fmt.Sprintf("Signed up %s for %s", email, name))
}

// Unregister handles DELETE /activities/{name}/unregister - withdraw a
// participant
func (h *ActivityHandler) Unregister(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	email := r.URL.Query().Get("email")

	if err := h.svc.Unregister(r.Context(), name, email); err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteMessage(w, fmt.Sprintf("Unregistered %s from %s", email, name))
}
