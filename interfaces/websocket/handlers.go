// interfaces/websocket/handlers.go
package websocket

import (
	"encoding/json"

	"go.uber.org/zap"

	"github.com/pairchat/gofiber-dm-api/domain/dto"
	"github.com/pairchat/gofiber-dm-api/pkg/apperrors"
)

// dispatch routes one inbound envelope. It runs on the session's read
// goroutine, so events from a single session are handled strictly in arrival
// order; in particular message:send completes persistence and delivery before
// the next frame is read.
func (h *Hub) dispatch(client *Client, env *Envelope) {
	switch env.Type {
	case EventUserConnect:
		h.handleConnect(client)
	case EventUserStatus:
		h.handleStatus(client, env.Data)
	case EventMessageSend:
		h.handleMessageSend(client, env.Data)
	default:
		h.log.Debug("unknown event type",
			zap.String("type", env.Type),
			zap.String("session_id", client.ID.String()))
	}
}

// handleConnect registers the session with the hub. The user identity comes
// from the authenticated upgrade, never from the event payload.
func (h *Hub) handleConnect(client *Client) {
	h.register <- client
}

type statusReport struct {
	Status string `json:"status"`
}

func (h *Hub) handleStatus(client *Client, data json.RawMessage) {
	var report statusReport
	if err := json.Unmarshal(data, &report); err != nil {
		h.log.Debug("malformed status report",
			zap.String("session_id", client.ID.String()), zap.Error(err))
		return
	}
	h.statusEvents <- statusEvent{client: client, status: report.Status}
}

// handleMessageSend runs the full send pipeline synchronously on the read
// goroutine. Failures come back to the originating session as message:error;
// nothing is persisted on a rejected send.
func (h *Hub) handleMessageSend(client *Client, data json.RawMessage) {
	if h.messageService == nil {
		h.sendToClient(client, EventMessageError, map[string]interface{}{
			"code":    string(apperrors.CodeInternal),
			"message": "messaging unavailable",
		})
		return
	}

	var req dto.SendMessageRequest
	if err := json.Unmarshal(data, &req); err != nil {
		h.sendToClient(client, EventMessageError, map[string]interface{}{
			"code":    string(apperrors.CodeInvalidArgument),
			"message": "malformed message payload",
		})
		return
	}

	if _, err := h.messageService.Send(client.UserID, client.ID, &req); err != nil {
		h.log.Info("realtime send rejected",
			zap.String("sender_id", client.UserID.String()),
			zap.String("receiver_id", req.ReceiverID.String()),
			zap.Error(err))
		h.sendToClient(client, EventMessageError, map[string]interface{}{
			"code":    string(apperrors.CodeOf(err)),
			"message": err.Error(),
		})
	}
}
