package websocket

import (
	"context"
	"encoding/json"
	"sync"

	"pathfinder-be/internal/dto"
	"pathfinder-be/internal/pkg/logger"
)

// Hub tracks connected clients and pushes the one-shot ready frame. Clients
// that connect after readiness receive the frame on registration.
type Hub struct {
	// Registered clients.
	clients map[*Client]bool

	// Register requests from the clients.
	register chan *Client

	// Unregister requests from clients.
	unregister chan *Client

	// Closed once Run has returned; sends to register and unregister give up.
	done chan struct{}

	// Lock for safe map access
	mu sync.RWMutex

	// Serialized ready frame, nil until the store is ready
	readyFrame []byte

	logger logger.ILogger
}

func NewHub(log logger.ILogger) *Hub {
	return &Hub{
		register:   make(chan *Client),
		unregister: make(chan *Client),
		done:       make(chan struct{}),
		clients:    make(map[*Client]bool),
		logger:     log,
	}
}

// Run processes registrations until ctx is cancelled.
func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			h.mu.Lock()
			close(h.done)
			for client := range h.clients {
				delete(h.clients, client)
				close(client.Send)
			}
			h.mu.Unlock()
			return

		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = true
			if h.readyFrame != nil {
				h.deliver(client, h.readyFrame)
			}
			h.mu.Unlock()
			h.logger.Debug("Hub", "Client registered", map[string]interface{}{"client_id": client.Id})

		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.Send)
			}
			h.mu.Unlock()
			h.logger.Debug("Hub", "Client unregistered", map[string]interface{}{"client_id": client.Id})
		}
	}
}

// Register hands the client to the hub. It reports false once the hub has
// stopped.
func (h *Hub) Register(client *Client) bool {
	select {
	case h.register <- client:
		return true
	case <-h.done:
		return false
	}
}

// Unregister removes the client. After the hub stopped it is a no-op.
func (h *Hub) Unregister(client *Client) {
	select {
	case h.unregister <- client:
	case <-h.done:
	}
}

// BroadcastReady records the ready frame and sends it to every connected
// client. Only the first call has an effect.
func (h *Hub) BroadcastReady(frame dto.ReadyFrame) {
	frame.Type = "ready"
	data, err := json.Marshal(frame)
	if err != nil {
		h.logger.Error("Hub", "Failed to encode ready frame", map[string]interface{}{"error": err.Error()})
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	if h.readyFrame != nil {
		return
	}
	h.readyFrame = data
	for client := range h.clients {
		h.deliver(client, data)
	}
	h.logger.Info("Hub", "Ready frame broadcast", map[string]interface{}{"clients": len(h.clients)})
}

// ClientCount returns the number of connected clients.
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// deliver must be called with h.mu held. A full buffer drops the frame
// rather than blocking the hub.
func (h *Hub) deliver(client *Client, data []byte) {
	select {
	case client.Send <- data:
	default:
		h.logger.Warn("Hub", "Client Send buffer full, dropping message", map[string]interface{}{"client_id": client.Id})
	}
}
