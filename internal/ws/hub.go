// Package ws pushes room snapshots to connected spectators. Polling
// remains the primary sync mechanism; the socket feed is an optional
// lower-latency mirror of the same state.
package ws

import (
	"encoding/json"
	"sync"

	"github.com/rs/zerolog/log"
)

type Hub struct {
	mu    sync.RWMutex
	rooms map[string]map[*Client]bool
}

func NewHub() *Hub {
	return &Hub{rooms: make(map[string]map[*Client]bool)}
}

func (h *Hub) add(code string, c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.rooms[code] == nil {
		h.rooms[code] = make(map[*Client]bool)
	}
	h.rooms[code][c] = true
}

func (h *Hub) remove(code string, c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if clients, ok := h.rooms[code]; ok {
		delete(clients, c)
		if len(clients) == 0 {
			delete(h.rooms, code)
		}
	}
}

// Broadcast sends payload to every client subscribed to the room code.
// Slow clients are dropped rather than blocking the sender.
func (h *Hub) Broadcast(code string, payload any) {
	data, err := json.Marshal(payload)
	if err != nil {
		log.Error().Err(err).Str("room", code).Msg("marshal broadcast payload")
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for c := range h.rooms[code] {
		select {
		case c.send <- data:
		default:
			// Closing the channel here would race with later sends
			// while the client is still registered. Dropping the
			// connection instead lets the read pump deregister and
			// tear the client down as the sole owner of the channel.
			c.conn.Close()
		}
	}
}

// CloseRoom disconnects every client of the room, for when the room is
// deleted.
func (h *Hub) CloseRoom(code string) {
	h.mu.Lock()
	clients := h.rooms[code]
	delete(h.rooms, code)
	h.mu.Unlock()

	for c := range clients {
		c.close()
	}
}
