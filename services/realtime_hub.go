package services

import (
	"encoding/json"
	"sync"

	"github.com/gorilla/websocket"
)

type WSClient struct {
	SessionID string
	Conn      *websocket.Conn
}

// RealtimeHub fans store-change events out to the open connections of a
// session, so every client of the same session sees writes as they land.
// Delivery is best-effort; write errors are ignored and the read loop owns
// cleanup.
type RealtimeHub struct {
	mu      sync.RWMutex
	clients map[string]map[*WSClient]struct{}
}

func NewRealtimeHub() *RealtimeHub {
	return &RealtimeHub{clients: make(map[string]map[*WSClient]struct{})}
}

func (h *RealtimeHub) Register(c *WSClient) {
	h.mu.Lock()
	if h.clients[c.SessionID] == nil {
		h.clients[c.SessionID] = make(map[*WSClient]struct{})
	}
	h.clients[c.SessionID][c] = struct{}{}
	h.mu.Unlock()
}

func (h *RealtimeHub) Unregister(c *WSClient) {
	h.mu.Lock()
	if set := h.clients[c.SessionID]; set != nil {
		delete(set, c)
		if len(set) == 0 {
			delete(h.clients, c.SessionID)
		}
	}
	h.mu.Unlock()
	_ = c.Conn.Close()
}

func (h *RealtimeHub) Broadcast(sessionID string, payload any) {
	msg, _ := json.Marshal(payload)
	h.mu.RLock()
	defer h.mu.RUnlock()
	for c := range h.clients[sessionID] {
		_ = c.Conn.WriteMessage(websocket.TextMessage, msg)
	}
}

// WatchStore wires store mutations into the hub.
func (h *RealtimeHub) WatchStore(store SessionStore) {
	store.Subscribe(func(ev ChangeEvent) {
		kind := "storage." + ev.Action
		if ev.Action == "cleared" {
			kind = "session.cleared"
		}
		h.Broadcast(ev.SessionID, map[string]any{
			"kind": kind,
			"key":  ev.Key,
		})
	})
}
