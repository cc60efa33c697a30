// domain/models/message.go
package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/pairchat/gofiber-dm-api/domain/types"
)

// Message types supported on the wire.
const (
	MessageTypeText   = "text"
	MessageTypeImage  = "image"
	MessageTypeFile   = "file"
	MessageTypeVideo  = "video"
	MessageTypeAudio  = "audio"
	MessageTypeSystem = "system"
)

// ValidMessageType reports whether t is one of the supported message types.
func ValidMessageType(t string) bool {
	switch t {
	case MessageTypeText, MessageTypeImage, MessageTypeFile,
		MessageTypeVideo, MessageTypeAudio, MessageTypeSystem:
		return true
	}
	return false
}

// Message - one direct message between two identities. Content is immutable
// after creation; only read state, reactions and the soft-delete flag mutate.
type Message struct {
	ID          uuid.UUID  `json:"id" gorm:"type:uuid;primaryKey"`
	SenderID    uuid.UUID  `json:"sender_id" gorm:"type:uuid;not null;index:idx_messages_pair_created"`
	ReceiverID  uuid.UUID  `json:"receiver_id" gorm:"type:uuid;not null;index:idx_messages_pair_created;index:idx_messages_unread"`
	Content     string     `json:"content" gorm:"type:text;not null"`
	MessageType string     `json:"message_type" gorm:"type:varchar(20);not null;default:'text'"`

	// Attachment metadata for non-text types. The binary itself is uploaded
	// through an external storage collaborator.
	AttachmentURL  string `json:"attachment_url,omitempty" gorm:"type:text"`
	AttachmentName string `json:"attachment_name,omitempty" gorm:"type:varchar(255)"`
	AttachmentSize int64  `json:"attachment_size,omitempty"`
	AttachmentMime string `json:"attachment_mime,omitempty" gorm:"type:varchar(100)"`

	ReplyToID *uuid.UUID `json:"reply_to_id,omitempty" gorm:"type:uuid"`

	IsRead bool       `json:"is_read" gorm:"default:false;index:idx_messages_unread"`
	ReadAt *time.Time `json:"read_at,omitempty"`

	IsDeleted bool       `json:"is_deleted" gorm:"default:false"`
	DeletedAt *time.Time `json:"deleted_at,omitempty"`

	Reactions types.ReactionList `json:"reactions,omitempty" gorm:"type:jsonb"`

	CreatedAt time.Time `json:"created_at" gorm:"index:idx_messages_pair_created,sort:desc"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Message) TableName() string {
	return "messages"
}
