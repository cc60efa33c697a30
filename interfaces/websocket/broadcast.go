// interfaces/websocket/broadcast.go
package websocket

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SendToUser delivers one event to every open session of a user. Delivery is
// best-effort: a session whose outbound buffer is full is dropped and
// unregistered rather than blocking the caller.
func (h *Hub) SendToUser(userID uuid.UUID, event string, data interface{}) {
	frame, err := h.marshalEnvelope(event, data)
	if err != nil {
		return
	}
	for _, client := range h.registry.SessionsFor(userID) {
		h.enqueue(client, frame)
	}
}

// SendToSession delivers one event to a single session, used for the
// sender-side confirmation echo.
func (h *Hub) SendToSession(sessionID uuid.UUID, event string, data interface{}) {
	client := h.registry.Session(sessionID)
	if client == nil {
		return
	}
	h.sendToClient(client, event, data)
}

func (h *Hub) sendToClient(client *Client, event string, data interface{}) {
	frame, err := h.marshalEnvelope(event, data)
	if err != nil {
		return
	}
	h.enqueue(client, frame)
}

func (h *Hub) marshalEnvelope(event string, data interface{}) ([]byte, error) {
	frame, err := json.Marshal(outEnvelope{
		Type:      event,
		Data:      data,
		Timestamp: time.Now(),
	})
	if err != nil {
		h.log.Error("envelope marshal failed", zap.String("event", event), zap.Error(err))
		return nil, err
	}
	return frame, nil
}

// enqueue hands a frame to the session's write pump. A full buffer means the
// reader on the other end stopped draining; the session gets torn down.
func (h *Hub) enqueue(client *Client, frame []byte) {
	defer func() {
		// Send may already be closed by a concurrent unregister.
		if r := recover(); r != nil {
			h.log.Debug("enqueue on closed session",
				zap.String("session_id", client.ID.String()))
		}
	}()

	select {
	case client.Send <- frame:
	default:
		h.log.Warn("session send buffer full, dropping session",
			zap.String("session_id", client.ID.String()),
			zap.String("user_id", client.UserID.String()))
		go func() { h.unregister <- client }()
	}
}
