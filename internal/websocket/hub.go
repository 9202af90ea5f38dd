package websocket

import (
	"encoding/json"
	"sync"

	"interview-assistant-be/internal/pkg/logger"
	"interview-assistant-be/pkg/events"
)

// Hub fans pipeline status events out to the browser tabs watching a
// session. A session can have several connections (multiple tabs).
type Hub struct {
	clients map[string][]*Client // session ID -> connections

	register   chan *Client
	unregister chan *Client

	mu sync.RWMutex

	logger logger.ILogger
}

func NewHub(log logger.ILogger) *Hub {
	return &Hub{
		register:   make(chan *Client),
		unregister: make(chan *Client),
		clients:    make(map[string][]*Client),
		logger:     log,
	}
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client.SessionID] = append(h.clients[client.SessionID], client)
			h.mu.Unlock()
			h.logger.Info("Hub", "Client registered", map[string]interface{}{"session_id": client.SessionID})

		case client := <-h.unregister:
			h.mu.Lock()
			if clients, ok := h.clients[client.SessionID]; ok {
				for i, c := range clients {
					if c == client {
						h.clients[client.SessionID] = append(clients[:i], clients[i+1:]...)
						close(client.Send)
						break
					}
				}
				if len(h.clients[client.SessionID]) == 0 {
					delete(h.clients, client.SessionID)
				}
			}
			h.mu.Unlock()
		}
	}
}

// SendStatus delivers a status event to every connection watching its
// session. Connections that cannot keep up are dropped.
func (h *Hub) SendStatus(status events.PipelineStatus) {
	data, err := json.Marshal(map[string]interface{}{
		"type": "status",
		"data": status,
	})
	if err != nil {
		return
	}

	h.mu.RLock()
	clients := h.clients[status.SessionID]
	var stale []*Client
	for _, client := range clients {
		select {
		case client.Send <- data:
		default:
			stale = append(stale, client)
		}
	}
	h.mu.RUnlock()

	for _, client := range stale {
		h.unregister <- client
	}
}
