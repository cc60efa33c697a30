// domain/service/message_service.go
package service

import (
	"github.com/google/uuid"
	"github.com/pairchat/gofiber-dm-api/domain/dto"
	"github.com/pairchat/gofiber-dm-api/domain/models"
)

// MessageService persists and fans out direct messages.
type MessageService interface {
	// Send gate-checks the relationship, persists the message, delivers it
	// to every open session of the receiver, echoes a confirmation to the
	// originating session (uuid.Nil when the send came over REST), and hands
	// off to the push dispatcher asynchronously. Push failures never fail
	// the send.
	Send(senderID uuid.UUID, originSession uuid.UUID, req *dto.SendMessageRequest) (*models.Message, error)

	// Conversation returns not-deleted messages between the caller and a
	// partner, newest first.
	Conversation(callerID, partnerID uuid.UUID, limit int, beforeID *uuid.UUID) ([]*models.Message, error)

	// Partners lists the identities the caller has exchanged messages with.
	Partners(callerID uuid.UUID) ([]*dto.UserBasicDTO, error)

	// SoftDelete marks a message deleted. Sender only; content stays on the row.
	SoftDelete(messageID, callerID uuid.UUID) error

	// React appends or replaces the caller's emoji reaction.
	React(messageID, callerID uuid.UUID, emoji string) (*models.Message, error)
}
