package events

import (
	"GymAttendanceTracker/internal/models"
	"encoding/json"
	"log"
	"sync"

	"github.com/gorilla/websocket"
)

type EventType string

const (
	GymClassCreated EventType = "created"
	GymClassUpdated EventType = "updated"
	GymClassDeleted EventType = "deleted"
)

// Event describes one gym class mutation. Record is nil for deletions.
type Event struct {
	Type   EventType        `json:"type"`
	ID     string           `json:"id"`
	Record *models.GymClass `json:"record,omitempty"`
}

// Conn is the part of a websocket connection the hub writes to.
type Conn interface {
	WriteMessage(messageType int, data []byte) error
	Close() error
}

type Subscriber struct {
	UserID string
	Conn   Conn
	mu     sync.Mutex
}

// send serializes writes; websocket connections allow one writer at a time.
func (s *Subscriber) send(messageType int, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.Conn.WriteMessage(messageType, data)
}

// Hub fans gym class events out to the subscribers of each user.
type Hub struct {
	mu          sync.RWMutex
	subscribers map[string]map[*Subscriber]struct{}
}

func NewHub() *Hub {
	return &Hub{subscribers: make(map[string]map[*Subscriber]struct{})}
}

func (h *Hub) Register(s *Subscriber) {
	h.mu.Lock()
	if h.subscribers[s.UserID] == nil {
		h.subscribers[s.UserID] = make(map[*Subscriber]struct{})
	}
	h.subscribers[s.UserID][s] = struct{}{}
	h.mu.Unlock()
}

func (h *Hub) Unregister(s *Subscriber) {
	h.mu.Lock()
	_, registered := h.subscribers[s.UserID][s]
	if set := h.subscribers[s.UserID]; set != nil {
		delete(set, s)
		if len(set) == 0 {
			delete(h.subscribers, s.UserID)
		}
	}
	h.mu.Unlock()
	if registered {
		_ = s.Conn.Close()
	}
}

// Count returns the number of live subscribers for userID.
func (h *Hub) Count(userID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subscribers[userID])
}

// Publish sends event to every subscriber of userID and drops the ones
// whose write fails.
func (h *Hub) Publish(userID string, event Event) {
	msg, err := json.Marshal(event)
	if err != nil {
		log.Printf("Hub.Publish(): failed to marshal event: %v", err)
		return
	}

	h.mu.RLock()
	targets := make([]*Subscriber, 0, len(h.subscribers[userID]))
	for s := range h.subscribers[userID] {
		targets = append(targets, s)
	}
	h.mu.RUnlock()

	for _, s := range targets {
		if err := s.send(websocket.TextMessage, msg); err != nil {
			log.Printf("Hub.Publish(): dropping subscriber of %s: %v", userID, err)
			h.Unregister(s)
		}
	}
}

// Ping writes a ping frame to s; callers use it as a keepalive.
func (h *Hub) Ping(s *Subscriber) error {
	return s.send(websocket.PingMessage, nil)
}
