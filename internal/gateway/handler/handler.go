// Package handler exposes the chat service over HTTP.
package handler

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"archie/internal/gateway/repository/chatstore"
	"archie/internal/gateway/usecase/chat"
)

type Handler struct {
	svc   *chat.Service
	store chatstore.Store
}

func New(svc *chat.Service, store chatstore.Store) *Handler {
	return &Handler{svc: svc, store: store}
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Printf("handler: write response failed: %v", err)
	}
}

func writeError(w http.ResponseWriter, err error) {
	writeJSON(w, statusFor(err), errorResponse{Error: err.Error()})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, chat.ErrBadRequest):
		return http.StatusBadRequest
	case errors.Is(err, chat.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, chat.ErrRateLimited):
		return http.StatusTooManyRequests
	case errors.Is(err, chat.ErrUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
