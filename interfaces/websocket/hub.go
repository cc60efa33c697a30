// interfaces/websocket/hub.go
package websocket

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/gofiber/contrib/websocket"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/pairchat/gofiber-dm-api/domain/dto"
	"github.com/pairchat/gofiber-dm-api/domain/port"
	"github.com/pairchat/gofiber-dm-api/domain/service"
)

// Event names on the realtime channel, shared with the service layer through
// domain/port. Client-originated events arrive inside an Envelope;
// server-originated events go out the same way.
const (
	EventUserConnect = port.EventUserConnect
	EventUsersStatus = port.EventUsersStatus
	EventUserOnline  = port.EventUserOnline
	EventUserOffline = port.EventUserOffline
	EventUserStatus  = port.EventUserStatus

	EventMessageSend    = port.EventMessageSend
	EventMessageReceive = port.EventMessageReceive
	EventMessageSent    = port.EventMessageSent
	EventMessageError   = port.EventMessageError
)

// Presence statuses a client may report.
const (
	StatusOnline = port.StatusOnline
	StatusIdle   = port.StatusIdle
	StatusOff    = port.StatusOffline
)

// Envelope is the wire frame for every realtime event, both directions.
type Envelope struct {
	Type      string          `json:"type"`
	Data      json.RawMessage `json:"data,omitempty"`
	Timestamp time.Time       `json:"timestamp"`
}

// outEnvelope is the marshal-side counterpart of Envelope.
type outEnvelope struct {
	Type      string      `json:"type"`
	Data      interface{} `json:"data,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
}

// Client is one open websocket session.
type Client struct {
	ID     uuid.UUID
	UserID uuid.UUID
	Conn   *websocket.Conn
	Send   chan []byte

	// limiter throttles inbound events per session.
	limiter *rate.Limiter

	closeOnce sync.Once
}

func (c *Client) closeSend() {
	c.closeOnce.Do(func() { close(c.Send) })
}

// statusEvent carries a client-reported presence update into the hub loop.
type statusEvent struct {
	client *Client
	status string
}

// Hub owns the presence map and serializes every mutation of it through Run.
// Registration, disconnects and status reports arrive on channels; only the
// Run goroutine writes h.status, so presence transitions are totally ordered.
type Hub struct {
	registry *Registry

	statusMu sync.RWMutex
	status   map[uuid.UUID]string

	presenceService service.PresenceService
	messageService  service.MessageService

	register     chan *Client
	unregister   chan *Client
	statusEvents chan statusEvent

	log *zap.Logger
}

func NewHub(registry *Registry, log *zap.Logger) *Hub {
	return &Hub{
		registry:     registry,
		status:       make(map[uuid.UUID]string),
		register:     make(chan *Client, 64),
		unregister:   make(chan *Client, 64),
		statusEvents: make(chan statusEvent, 256),
		log:          log,
	}
}

// SetPresenceService and SetMessageService break the construction cycle: the
// services need the realtime adapter, which needs the hub.
func (h *Hub) SetPresenceService(s service.PresenceService) { h.presenceService = s }
func (h *Hub) SetMessageService(s service.MessageService)   { h.messageService = s }

// Run consumes hub events until the context is cancelled.
func (h *Hub) Run(ctx context.Context) {
	h.log.Info("websocket hub started")
	for {
		select {
		case <-ctx.Done():
			h.log.Info("websocket hub shutting down")
			return
		case client := <-h.register:
			h.handleRegister(client)
		case client := <-h.unregister:
			h.handleUnregister(client)
		case ev := <-h.statusEvents:
			h.handleStatusReport(ev.client, ev.status)
		}
	}
}

// StatusOf returns the stored status of a user, or "offline" when the map has
// no entry for them.
func (h *Hub) StatusOf(userID uuid.UUID) string {
	h.statusMu.RLock()
	defer h.statusMu.RUnlock()
	if s, ok := h.status[userID]; ok {
		return s
	}
	return StatusOff
}

// Snapshot returns a copy of the status map: every currently online or idle
// user.
func (h *Hub) Snapshot() map[uuid.UUID]string {
	h.statusMu.RLock()
	defer h.statusMu.RUnlock()
	out := make(map[uuid.UUID]string, len(h.status))
	for id, s := range h.status {
		out[id] = s
	}
	return out
}

func (h *Hub) handleRegister(client *Client) {
	becameReachable := h.registry.Register(client)
	h.log.Debug("session registered",
		zap.String("session_id", client.ID.String()),
		zap.String("user_id", client.UserID.String()),
		zap.Bool("became_reachable", becameReachable))

	if becameReachable {
		h.statusMu.Lock()
		h.status[client.UserID] = StatusOnline
		h.statusMu.Unlock()

		h.broadcastPresence(client.UserID, StatusOnline, EventUserOnline)
	}

	// One-time snapshot of everyone else who is online or idle, so the new
	// session can paint its contact list without a round of REST calls.
	snapshot := h.Snapshot()
	peers := make([]dto.UserStatus, 0, len(snapshot))
	for id, s := range snapshot {
		if id == client.UserID {
			continue
		}
		peers = append(peers, dto.UserStatus{UserID: id, Status: s})
	}
	h.sendToClient(client, EventUsersStatus, peers)
}

func (h *Hub) handleUnregister(client *Client) {
	becameUnreachable := h.registry.Unregister(client)
	client.closeSend()
	h.log.Debug("session unregistered",
		zap.String("session_id", client.ID.String()),
		zap.String("user_id", client.UserID.String()),
		zap.Bool("became_unreachable", becameUnreachable))

	if !becameUnreachable {
		return
	}

	h.statusMu.Lock()
	delete(h.status, client.UserID)
	h.statusMu.Unlock()

	h.broadcastPresence(client.UserID, StatusOff, EventUserOffline)

	if h.presenceService != nil {
		if err := h.presenceService.TouchLastSeen(client.UserID); err != nil {
			h.log.Warn("last-seen stamp failed",
				zap.String("user_id", client.UserID.String()), zap.Error(err))
		}
	}
}

// handleStatusReport stores and re-broadcasts a client-reported status. The
// value is advisory and taken at face value; only online and idle are
// accepted, a user cannot report itself offline while connected.
func (h *Hub) handleStatusReport(client *Client, status string) {
	if status != StatusOnline && status != StatusIdle {
		h.log.Debug("ignoring unknown status report",
			zap.String("user_id", client.UserID.String()),
			zap.String("status", status))
		return
	}
	if !h.registry.IsReachable(client.UserID) {
		return
	}

	h.statusMu.Lock()
	h.status[client.UserID] = status
	h.statusMu.Unlock()

	h.broadcastPresence(client.UserID, status, "")
}

// broadcastPresence tells every other connected user about a status change.
// A dedicated event name (user:online / user:offline) goes out alongside the
// generic user:status when one applies.
func (h *Hub) broadcastPresence(userID uuid.UUID, status, dedicatedEvent string) {
	payload := dto.UserStatus{UserID: userID, Status: status}

	for _, peerID := range h.registry.ConnectedUsers() {
		if peerID == userID {
			continue
		}
		if dedicatedEvent != "" {
			h.SendToUser(peerID, dedicatedEvent, payload)
		}
		h.SendToUser(peerID, EventUserStatus, payload)
	}
}
