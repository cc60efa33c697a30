// infrastructure/adapter/realtime_adapter.go
package adapter

import (
	"github.com/google/uuid"

	"github.com/pairchat/gofiber-dm-api/domain/port"
	"github.com/pairchat/gofiber-dm-api/interfaces/websocket"
)

// RealtimeAdapter implements port.RealtimePort on top of the websocket hub,
// so application services can fan out events without importing the websocket
// package.
type RealtimeAdapter struct {
	hub *websocket.Hub
}

func NewRealtimeAdapter(hub *websocket.Hub) port.RealtimePort {
	return &RealtimeAdapter{hub: hub}
}

func (a *RealtimeAdapter) DeliverToUser(userID uuid.UUID, event string, data interface{}) {
	a.hub.SendToUser(userID, event, data)
}

func (a *RealtimeAdapter) DeliverToSession(sessionID uuid.UUID, event string, data interface{}) {
	a.hub.SendToSession(sessionID, event, data)
}
