// Package realtime fans tournament events out to websocket viewers.
// Services publish through a Notifier onto a watermill topic; a relay
// feeds that topic into the Hub, which owns one room per tournament.
package realtime

import (
	"context"
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/Shamsear/kickoff/logging"
)

type HubOptions struct {
	Logger *logging.Logger
	// Dropped counts messages skipped because a client was too slow.
	Dropped prometheus.Counter
	// AllowedOrigins lists the Origin headers accepted on upgrade.
	// Empty or "*" accepts any origin.
	AllowedOrigins []string
}

type Hub struct {
	register   chan *Client
	unregister chan *Client
	done       chan struct{}

	mu    sync.RWMutex
	rooms map[string]map[*Client]struct{}

	logger         *logging.Logger
	dropped        prometheus.Counter
	allowedOrigins map[string]struct{}
}

func NewHub(opts HubOptions) *Hub {
	logger := opts.Logger
	if logger == nil {
		logger = logging.Default()
	}
	h := &Hub{
		register:   make(chan *Client),
		unregister: make(chan *Client),
		done:       make(chan struct{}),
		rooms:      make(map[string]map[*Client]struct{}),
		logger:     logger.With("component", "hub"),
		dropped:    opts.Dropped,
	}
	for _, o := range opts.AllowedOrigins {
		if o == "*" {
			h.allowedOrigins = nil
			break
		}
		if h.allowedOrigins == nil {
			h.allowedOrigins = make(map[string]struct{})
		}
		h.allowedOrigins[o] = struct{}{}
	}
	return h
}

// Run serves registrations until ctx is cancelled, then closes every
// client's send channel.
func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			if _, ok := h.rooms[client.room]; !ok {
				h.rooms[client.room] = make(map[*Client]struct{})
			}
			h.rooms[client.room][client] = struct{}{}
			size := len(h.rooms[client.room])
			h.mu.Unlock()
			h.logger.Debug("client registered", "room", client.room, "clients", size)

		case client := <-h.unregister:
			h.mu.Lock()
			h.removeLocked(client)
			h.mu.Unlock()

		case <-ctx.Done():
			h.mu.Lock()
			for _, clients := range h.rooms {
				for client := range clients {
					h.removeLocked(client)
				}
			}
			h.mu.Unlock()
			h.logger.Info("hub stopped")
			return
		}
	}
}

func (h *Hub) removeLocked(client *Client) {
	clients, ok := h.rooms[client.room]
	if !ok {
		return
	}
	if _, ok := clients[client]; !ok {
		return
	}
	close(client.send)
	delete(clients, client)
	if len(clients) == 0 {
		delete(h.rooms, client.room)
		h.logger.Debug("room closed", "room", client.room)
	}
}

// Register adds a client to its room. It returns false once the hub has stopped.
func (h *Hub) Register(c *Client) bool {
	select {
	case h.register <- c:
		return true
	case <-h.done:
		return false
	}
}

func (h *Hub) Unregister(c *Client) {
	select {
	case h.unregister <- c:
	case <-h.done:
	}
}

// BroadcastToRoom queues data for every client in the room without
// blocking. Clients whose buffer is full miss the message.
func (h *Hub) BroadcastToRoom(room string, data []byte) int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	delivered := 0
	for client := range h.rooms[room] {
		select {
		case client.send <- data:
			delivered++
		default:
			if h.dropped != nil {
				h.dropped.Inc()
			}
			h.logger.Warn("client send buffer full, message dropped", "room", room)
		}
	}
	return delivered
}

// RoomSize reports how many clients are in a room.
func (h *Hub) RoomSize(room string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.rooms[room])
}

func (h *Hub) originAllowed(origin string) bool {
	if h.allowedOrigins == nil || origin == "" {
		return true
	}
	_, ok := h.allowedOrigins[origin]
	return ok
}
