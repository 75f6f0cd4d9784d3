package ws

import (
	"sync"

	"todo_webapp/internal/logger"
)

// Hub tracks every open tab per user so mutations made in one tab can tell
// the others to refetch the list instead of serving stale local state.
type Hub struct {
	mu      sync.RWMutex
	clients map[int64]map[*Client]struct{}
}

func NewHub() *Hub {
	return &Hub{
		clients: make(map[int64]map[*Client]struct{}),
	}
}

func (h *Hub) Register(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	set, ok := h.clients[c.UserID]
	if !ok {
		set = make(map[*Client]struct{})
		h.clients[c.UserID] = set
	}
	set[c] = struct{}{}
	logger.Debug("ws client registered", "user_id", c.UserID, "tabs", len(set))
}

func (h *Hub) Unregister(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	set, ok := h.clients[c.UserID]
	if !ok {
		return
	}
	delete(set, c)
	if len(set) == 0 {
		delete(h.clients, c.UserID)
	}
}

// NotifyTasksChanged pings every connected tab of the user. Slow tabs with a
// full send buffer are skipped; they will catch up on their next refetch.
func (h *Hub) NotifyTasksChanged(userID int64) {
	msg := []byte(`{"type":"tasks_changed"}`)

	h.mu.RLock()
	defer h.mu.RUnlock()

	for c := range h.clients[userID] {
		select {
		case c.Send <- msg:
		default:
		}
	}
}

// ConnectedTabs reports how many tabs the user currently has open.
func (h *Hub) ConnectedTabs(userID int64) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients[userID])
}
