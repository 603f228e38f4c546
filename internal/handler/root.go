package handler

import (
	"net/http"

	"github.com/mergington/activities/api/internal/model"
)

// Root handles GET / - temporary redirect to the static front-end
func Root(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/static/index.html", http.StatusTemporaryRedirect)
}

// Health handles GET /health - liveness check
func Health(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, model.HealthResponse{Status: "ok"})
}
