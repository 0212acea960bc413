package handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"archie/internal/diagram"
	"archie/internal/gateway/usecase/chat"
)

type chatRequest struct {
	ProjectID string `json:"projectId"`
	Message   string `json:"message"`
}

type chatResponse struct {
	Message    string              `json:"message"`
	Operations []diagram.Operation `json:"operations"`
	Dangling   []string            `json:"dangling,omitempty"`
	Model      string              `json:"model,omitempty"`
}

// HandleChat serves POST /chat.
func (h *Handler) HandleChat(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, fmt.Errorf("%w: invalid request body", chat.ErrBadRequest))
		return
	}

	res, err := h.svc.HandleTurn(r.Context(), chat.Request{
		ProjectID: req.ProjectID,
		Message:   req.Message,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	ops := res.Operations
	if ops == nil {
		ops = []diagram.Operation{}
	}
	writeJSON(w, http.StatusOK, chatResponse{
		Message:    res.Message,
		Operations: ops,
		Dangling:   res.Dangling,
		Model:      res.Model,
	})
}
