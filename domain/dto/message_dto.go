// domain/dto/message_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/pairchat/gofiber-dm-api/domain/models"
)

// MessagePayload is the wire shape of message:receive and message:sent.
//
// The same logical message can reach a client both through live delivery and
// through a later history fetch. Clients reconcile duplicates by equal
// content with timestamps within ~2 seconds; the server does not deduplicate.
type MessagePayload struct {
	ID          uuid.UUID  `json:"id"`
	SenderID    uuid.UUID  `json:"sender_id"`
	ReceiverID  uuid.UUID  `json:"receiver_id"`
	Content     string     `json:"content"`
	MessageType string     `json:"message_type"`
	ReplyToID   *uuid.UUID `json:"reply_to_id,omitempty"`

	AttachmentURL  string `json:"attachment_url,omitempty"`
	AttachmentName string `json:"attachment_name,omitempty"`
	AttachmentSize int64  `json:"attachment_size,omitempty"`
	AttachmentMime string `json:"attachment_mime,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

// NewMessagePayload builds the delivery payload from a persisted message.
func NewMessagePayload(m *models.Message) *MessagePayload {
	return &MessagePayload{
		ID:             m.ID,
		SenderID:       m.SenderID,
		ReceiverID:     m.ReceiverID,
		Content:        m.Content,
		MessageType:    m.MessageType,
		ReplyToID:      m.ReplyToID,
		AttachmentURL:  m.AttachmentURL,
		AttachmentName: m.AttachmentName,
		AttachmentSize: m.AttachmentSize,
		AttachmentMime: m.AttachmentMime,
		CreatedAt:      m.CreatedAt,
	}
}

// Attachment carries optional attachment metadata on a send request.
type Attachment struct {
	URL  string `json:"url"`
	Name string `json:"name,omitempty"`
	Size int64  `json:"size,omitempty"`
	Mime string `json:"mime,omitempty"`
}

type SendMessageRequest struct {
	ReceiverID  uuid.UUID   `json:"receiver_id"`
	Content     string      `json:"content"`
	MessageType string      `json:"message_type"`
	Attachment  *Attachment `json:"attachment,omitempty"`
	ReplyToID   *uuid.UUID  `json:"reply_to_id,omitempty"`
}
