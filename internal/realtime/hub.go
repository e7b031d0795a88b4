// Package realtime pushes row-change events to the owning user's websocket,
// so open clients can refresh without polling.
package realtime

import (
	"sync"

	"github.com/gorilla/websocket"
)

type EventType string

const (
	EventInsert EventType = "INSERT"
	EventUpdate EventType = "UPDATE"
	EventDelete EventType = "DELETE"
)

// Event mirrors the change-feed payload shape clients already consume:
// which table, what happened, and the affected record.
type Event struct {
	Table  string    `json:"table"`
	Type   EventType `json:"type"`
	Record any       `json:"record"`
}

// Publisher is the slice of the hub that services need.
type Publisher interface {
	Publish(userID string, event Event)
}

type Hub struct {
	connections map[string]*websocket.Conn
	mutex       sync.RWMutex
}

func NewHub() *Hub {
	return &Hub{
		connections: make(map[string]*websocket.Conn),
	}
}

func (h *Hub) Register(userID string, conn *websocket.Conn) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	if oldConn, exists := h.connections[userID]; exists && oldConn != nil {
		_ = oldConn.Close()
	}

	h.connections[userID] = conn
}

func (h *Hub) Unregister(userID string) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	if conn, exists := h.connections[userID]; exists && conn != nil {
		_ = conn.Close()
		delete(h.connections, userID)
	}
}

// Publish sends the event to the user's connection if one is open.
// Delivery is best effort; a write failure drops the connection. The write
// happens under the hub lock because gorilla/websocket allows at most one
// concurrent writer per connection.
func (h *Hub) Publish(userID string, event Event) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	conn, exists := h.connections[userID]
	if !exists || conn == nil {
		return
	}

	if err := conn.WriteJSON(event); err != nil {
		_ = conn.Close()
		delete(h.connections, userID)
	}
}

func (h *Hub) IsOnline(userID string) bool {
	h.mutex.RLock()
	defer h.mutex.RUnlock()

	_, exists := h.connections[userID]
	return exists
}

func (h *Hub) Close() {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	for id, conn := range h.connections {
		if conn != nil {
			_ = conn.Close()
		}
		delete(h.connections, id)
	}
}
