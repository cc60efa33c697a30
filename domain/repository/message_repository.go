// domain/repository/message_repository.go
package repository

import (
	"github.com/google/uuid"
	"github.com/pairchat/gofiber-dm-api/domain/models"
)

// SenderCount is one row of the unread aggregation.
type SenderCount struct {
	SenderID uuid.UUID `json:"sender_id"`
	Count    int64     `json:"count"`
}

type MessageRepository interface {
	Create(msg *models.Message) error
	FindByID(id uuid.UUID) (*models.Message, error)
	Update(msg *models.Message) error

	// FindBetween returns not-deleted messages between two identities in
	// either direction, newest first, optionally only those created before
	// the given cursor id's message.
	FindBetween(a, b uuid.UUID, limit int, beforeID *uuid.UUID) ([]*models.Message, error)

	// UnreadCountsBySender groups unread, not-deleted inbound messages of
	// receiverID by sender. Senders without unread messages are absent.
	UnreadCountsBySender(receiverID uuid.UUID) ([]SenderCount, error)

	// MarkRead flips is_read for the given ids where receiverID matches and
	// is_read is still false, stamping read_at. Returns rows updated.
	MarkRead(receiverID uuid.UUID, messageIDs []uuid.UUID) (int64, error)

	// PartnerIDs returns the distinct identities this user has exchanged
	// messages with.
	PartnerIDs(userID uuid.UUID) ([]uuid.UUID, error)
}
