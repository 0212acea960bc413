package server

import (
	"net/http"

	"archie/internal/gateway/handler"
	"archie/internal/gateway/middleware"
)

func NewMux(h *handler.Handler) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/chat", h.HandleChat)
	mux.HandleFunc("/chat/watch", h.HandleWatch)
	mux.HandleFunc("/healthz", h.HandleHealthz)

	return middleware.CORS(mux)
}
