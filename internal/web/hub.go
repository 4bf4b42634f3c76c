package web

import (
	"encoding/json"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/mosheDeveloper/league-standings/internal/logger"
)

// Notice is what the hub pushes to connected pages. The only producer
// today is the rebuild scheduler.
type Notice struct {
	Type        string `json:"type"` // "connected" | "rebuilt"
	BuildID     string `json:"build_id,omitempty"`
	GeneratedAt string `json:"generated_at_utc,omitempty"`
}

type client struct {
	hub  *Hub
	conn *websocket.Conn
	send chan []byte
}

// Hub fans a Notice out to every connected websocket client.
type Hub struct {
	clients    map[*client]bool
	broadcast  chan *Notice
	register   chan *client
	unregister chan *client
	mu         sync.RWMutex
}

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[*client]bool),
		broadcast:  make(chan *Notice, 16),
		register:   make(chan *client),
		unregister: make(chan *client),
	}
}

func (h *Hub) Run() {
	for {
		select {
		case c := <-h.register:
			h.mu.Lock()
			h.clients[c] = true
			n := len(h.clients)
			h.mu.Unlock()
			logger.L().Debug("ws client connected", "clients", n)

		case c := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[c]; ok {
				delete(h.clients, c)
				close(c.send)
			}
			h.mu.Unlock()

		case notice := <-h.broadcast:
			data, err := json.Marshal(notice)
			if err != nil {
				continue
			}
			h.mu.Lock()
			for c := range h.clients {
				select {
				case c.send <- data:
				default:
					// Slow client; drop it rather than block the hub.
					close(c.send)
					delete(h.clients, c)
				}
			}
			h.mu.Unlock()
		}
	}
}

// Broadcast queues a notice for every client. Never blocks the caller.
func (h *Hub) Broadcast(n *Notice) {
	select {
	case h.broadcast <- n:
	default:
	}
}

func (c *client) writePump() {
	defer c.conn.Close()
	for msg := range c.send {
		if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
			break
		}
	}
}

func (c *client) readPump() {
	defer func() {
		c.hub.unregister <- c
		c.conn.Close()
	}()
	for {
		// Clients never send anything meaningful; reading just detects
		// disconnects.
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}
