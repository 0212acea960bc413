package handler

import "net/http"

type healthResponse struct {
	Status    string `json:"status"`
	Store     bool   `json:"store"`
	Completer bool   `json:"completer"`
}

// HandleHealthz serves GET /healthz: process liveness plus which turn
// dependencies are configured. Always 200; an unconfigured dependency is a
// deploy state, not an outage.
func (h *Handler) HandleHealthz(w http.ResponseWriter, r *http.Request) {
	store, completer := h.svc.Configured()
	writeJSON(w, http.StatusOK, healthResponse{
		Status:    "ok",
		Store:     store,
		Completer: completer,
	})
}
