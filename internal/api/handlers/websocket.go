package handlers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/jmorgan/word-royale/internal/service"
	"github.com/jmorgan/word-royale/internal/ws"
)

type WebSocketHandler struct {
	games *service.GameService
	hub   *ws.Hub
}

func NewWebSocketHandler(games *service.GameService, hub *ws.Hub) *WebSocketHandler {
	return &WebSocketHandler{games: games, hub: hub}
}

// Handle subscribes the connection to a room's snapshot feed. The room
// must exist; clients that want to act still go through the JSON API.
func (h *WebSocketHandler) Handle(w http.ResponseWriter, r *http.Request) {
	code := normalizeCode(chi.URLParam(r, "code"))

	if _, err := h.games.State(r.Context(), code); err != nil {
		writeServiceError(w, err, "Failed to open room feed")
		return
	}

	h.hub.Serve(w, r, code)
}

func normalizeCode(code string) string {
	return strings.ToUpper(code)
}
