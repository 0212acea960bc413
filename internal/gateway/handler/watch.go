package handler

import (
	"context"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"archie/internal/gateway/repository/chatstore"
)

const (
	watchWSWriteWait = 10 * time.Second
	watchWSPongWait  = 60 * time.Second
	watchWSPingEvery = (watchWSPongWait * 9) / 10
	watchPollEvery   = 2 * time.Second
)

var watchWSUpgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(_ *http.Request) bool {
		return true
	},
}

type watchOutbound struct {
	Type      string `json:"type"`
	ProjectID string `json:"projectId,omitempty"`
	Role      string `json:"role,omitempty"`
	Content   string `json:"content,omitempty"`
	CreatedAt string `json:"createdAt,omitempty"`
	Message   string `json:"message,omitempty"`
}

// HandleWatch serves GET /chat/watch?projectId=... over a websocket,
// streaming new history rows as they land. Detection is poll-based against
// the store, so a watcher sees writes from any replica.
func (h *Handler) HandleWatch(w http.ResponseWriter, r *http.Request) {
	projectID := strings.TrimSpace(r.URL.Query().Get("projectId"))
	if _, err := uuid.Parse(projectID); err != nil {
		http.Error(w, "projectId must be a UUID", http.StatusBadRequest)
		return
	}
	if h.store == nil {
		http.Error(w, "no store configured", http.StatusServiceUnavailable)
		return
	}
	ok, err := h.store.ProjectExists(r.Context(), projectID)
	if err != nil {
		http.Error(w, "store unavailable", http.StatusServiceUnavailable)
		return
	}
	if !ok {
		http.Error(w, "project not found", http.StatusNotFound)
		return
	}

	conn, err := watchWSUpgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	if err := conn.SetReadDeadline(time.Now().Add(watchWSPongWait)); err != nil {
		log.Printf("watch ws set read deadline failed: %v", err)
		return
	}
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(watchWSPongWait))
	})

	writeCh := make(chan watchOutbound, 32)
	writerDone := make(chan struct{})
	go func() {
		defer close(writerDone)
		ticker := time.NewTicker(watchWSPingEvery)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case out, ok := <-writeCh:
				if !ok {
					return
				}
				_ = conn.SetWriteDeadline(time.Now().Add(watchWSWriteWait))
				if err := conn.WriteJSON(out); err != nil {
					return
				}
			case <-ticker.C:
				_ = conn.SetWriteDeadline(time.Now().Add(watchWSWriteWait))
				if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
					return
				}
			}
		}
	}()

	// reader: drains pongs and client close frames
	go func() {
		defer cancel()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	pushWatch(writeCh, watchOutbound{Type: "subscribed", ProjectID: projectID})
	h.pollHistory(ctx, projectID, writeCh)
	cancel()
	<-writerDone
}

// pollHistory pushes history rows newer than the last seen timestamp until
// the context ends.
func (h *Handler) pollHistory(ctx context.Context, projectID string, writeCh chan watchOutbound) {
	ticker := time.NewTicker(watchPollEvery)
	defer ticker.Stop()

	var lastSeen time.Time
	for {
		msgs, err := h.store.ListRecentMessages(ctx, projectID, chatstore.HistoryLimit)
		if err != nil {
			pushWatch(writeCh, watchOutbound{Type: "error", Message: "history read failed"})
		} else {
			for _, m := range msgs {
				if !m.CreatedAt.After(lastSeen) {
					continue
				}
				lastSeen = m.CreatedAt
				pushWatch(writeCh, watchOutbound{
					Type:      "message",
					ProjectID: projectID,
					Role:      m.Role,
					Content:   m.Content,
					CreatedAt: m.CreatedAt.UTC().Format(time.RFC3339Nano),
				})
			}
		}
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

func pushWatch(ch chan watchOutbound, out watchOutbound) {
	select {
	case ch <- out:
	default:
	}
}
