package events

import (
	"GymAttendanceTracker/internal/models"
	"encoding/json"
	"errors"
	"sync"
	"testing"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeConn struct {
	mu       sync.Mutex
	messages [][]byte
	failNext bool
	closed   bool
}

func (f *fakeConn) WriteMessage(messageType int, data []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failNext {
		return errors.New("broken pipe")
	}
	if messageType == websocket.TextMessage {
		f.messages = append(f.messages, data)
	}
	return nil
}

func (f *fakeConn) Close() error {
	f.closed = true
	return nil
}

func TestPublishReachesOnlySameUser(t *testing.T) {
	hub := NewHub()
	mine := &fakeConn{}
	other := &fakeConn{}
	hub.Register(&Subscriber{UserID: "u1", Conn: mine})
	hub.Register(&Subscriber{UserID: "u2", Conn: other})

	record := models.GymClass{ID: "gym-class-1", UserID: "u1", Date: "2024-03-01", Attendance: 5}
	hub.Publish("u1", Event{Type: GymClassCreated, ID: record.ID, Record: &record})

	require.Len(t, mine.messages, 1)
	assert.Empty(t, other.messages)

	var got Event
	require.NoError(t, json.Unmarshal(mine.messages[0], &got))
	assert.Equal(t, GymClassCreated, got.Type)
	assert.Equal(t, "gym-class-1", got.Record.ID)
}

func TestPublishDropsFailingSubscriber(t *testing.T) {
	hub := NewHub()
	broken := &fakeConn{failNext: true}
	hub.Register(&Subscriber{UserID: "u1", Conn: broken})
	require.Equal(t, 1, hub.Count("u1"))

	hub.Publish("u1", Event{Type: GymClassDeleted, ID: "gym-class-1"})

	assert.Equal(t, 0, hub.Count("u1"))
	assert.True(t, broken.closed)
}

func TestUnregisterIsIdempotent(t *testing.T) {
	hub := NewHub()
	s := &Subscriber{UserID: "u1", Conn: &fakeConn{}}
	hub.Register(s)
	hub.Unregister(s)
	hub.Unregister(s)
	assert.Equal(t, 0, hub.Count("u1"))
}
