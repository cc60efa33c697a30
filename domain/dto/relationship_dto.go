// domain/dto/relationship_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/pairchat/gofiber-dm-api/domain/models"
)

// RelationshipView is a relationship row interpreted from one identity's
// perspective: whether a pending request is outgoing or incoming, and who
// performed a block, are derived from the acting party.
type RelationshipView struct {
	ID         uuid.UUID                 `json:"id,omitempty"`
	OtherID    uuid.UUID                 `json:"other_id"`
	Status     models.RelationshipStatus `json:"status"`
	Direction  string                    `json:"direction,omitempty"` // outgoing | incoming, pending only
	BlockedBy  *uuid.UUID                `json:"blocked_by,omitempty"`
	AcceptedAt *time.Time                `json:"accepted_at,omitempty"`
	UpdatedAt  time.Time                 `json:"updated_at,omitempty"`
}

// StatusNone is reported when no relationship row exists for a pair.
const StatusNone models.RelationshipStatus = "none"

type UserBasicDTO struct {
	ID              uuid.UUID `json:"id"`
	Username        string    `json:"username"`
	DisplayName     string    `json:"display_name,omitempty"`
	ProfileImageURL string    `json:"profile_image_url,omitempty"`
}

type FriendDTO struct {
	User     UserBasicDTO `json:"user"`
	SinceAt  *time.Time   `json:"since_at,omitempty"`
	FriendID uuid.UUID    `json:"friend_id"`
}
